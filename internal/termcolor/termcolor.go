// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package termcolor colors the output of the command line tool, with
// automatic terminal detection and support of NO_COLOR (https://no-color.org/).
package termcolor

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI escape codes.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	bold   = "\033[1m"
)

// Mode controls when colors are used.
type Mode int

const (
	// Auto enables colors only when writing to a terminal.
	Auto Mode = iota
	// Always forces colors.
	Always
	// Never disables colors.
	Never
)

// ParseMode parses "auto", "always", or "never".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ShouldColorize reports whether f is a terminal and NO_COLOR is not set.
func ShouldColorize(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd from os.File.Fd()
}

// Painter wraps strings in ANSI codes when enabled.
type Painter struct {
	enabled bool
}

// New resolves the mode against the output file.
func New(f *os.File, mode Mode) Painter {
	switch mode {
	case Always:
		return Painter{enabled: true}
	case Never:
		return Painter{}
	default:
		return Painter{enabled: ShouldColorize(f)}
	}
}

// Enabled reports whether colors are used.
func (p Painter) Enabled() bool { return p.enabled }

func (p Painter) paint(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + reset
}

// Red is for deletions.
func (p Painter) Red(s string) string { return p.paint(red, s) }

// Green is for insertions.
func (p Painter) Green(s string) string { return p.paint(green, s) }

// Yellow is for substitutions.
func (p Painter) Yellow(s string) string { return p.paint(yellow, s) }

// Bold is for headers.
func (p Painter) Bold(s string) string { return p.paint(bold, s) }
