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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"github.com/shenwei356/levtopk"
	"github.com/shenwei356/levtopk/internal/termcolor"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
Top-K Levenshtein alignments in Golang

Version: v%s

Input file format:
  pairs of lines, the first sequence starts with '>', the second with '<'.
  Example:
  >TGCA
  <TCTA
  >frankfurt
  <frnkfurt

Usage:
  1. Align two sequences from the positional arguments.

        %s [options] <seq a> <seq b>

  2. Align sequence pairs from the input file (described above).

        %s [options] -i input.txt

Options/Flags:
`, version, app, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	infile := flag.String("i", "", "input file.")
	topK := flag.Int("k", levtopk.DefaultOptions.K, "number of alignments with the smallest edit distances")
	gap := flag.String("g", string(levtopk.DefaultGap), "gap symbol, a single character absent in the sequences")
	quick := flag.Bool("q", false, "use quickselect instead of sorting to select the K smallest candidates")
	seed := flag.Uint64("s", 1, "seed for shuffling in quickselect, 0 for median-of-three pivots")
	threads := flag.Int("j", 1, "number of goroutines to fill the table")
	explain := flag.Bool("e", false, "explain every alignment as edit operations")
	plot := flag.Bool("t", false, "plot the best entry of every table cell")
	check := flag.Bool("c", false, "check the best distance against the Wagner-Fischer algorithm")
	colorMode := flag.String("color", "auto", "color output: auto, always, or never")
	noOutput := flag.Bool("N", false, "do not output alignments (for benchmark)")
	verbose := flag.Bool("v", false, "print debug information")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if len(*gap) != 1 {
		checkError(fmt.Errorf("the gap symbol should be a single character: %q", *gap))
	}
	mode, err := termcolor.ParseMode(*colorMode)
	checkError(err)

	// go tool pprof -http=:8080 cpu.pprof
	if *pprofCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pprofMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	outfh := bufio.NewWriter(os.Stdout)

	opt := levtopk.DefaultOptions
	opt.K = *topK
	opt.Gap = (*gap)[0]
	opt.Seed = *seed
	opt.Threads = *threads
	opt.Logger = logger
	if *quick {
		opt.Selection = levtopk.QuickSelection
	}

	p := &printer{
		wtr:     outfh,
		color:   termcolor.New(os.Stdout, mode),
		explain: *explain,
	}

	algn := levtopk.New(&opt)

	defer func() {
		levtopk.RecycleAligner(algn)
		outfh.Flush()
	}()

	var n int
	falign2Seq := func(a, b string) error {
		n++
		_a, _b := []byte(a), []byte(b)
		alignments, err := algn.Align(_a, _b)
		if err != nil {
			return fmt.Errorf("pair %d: %w", n, err)
		}
		logger.Debug("aligned", "pair", n, "lenA", len(_a), "lenB", len(_b), "alignments", len(alignments))

		if *check {
			if d := levtopk.Distance(_a, _b); d != alignments[0].EditDistance {
				return fmt.Errorf("pair %d: best distance %d differs from Wagner-Fischer distance %d",
					n, alignments[0].EditDistance, d)
			}
		}

		if *noOutput {
			return nil
		}
		if *plot {
			algn.Table().Plot(outfh)
			fmt.Fprintln(outfh)
		}
		p.print(a, b, alignments)
		return nil
	}

	// two sequences from positional arguments

	if *infile == "" {
		if flag.NArg() != 2 {
			checkError(fmt.Errorf("if flag -i not given, please give me two sequences"))
		}
		checkError(falign2Seq(flag.Arg(0), flag.Arg(1)))
		return
	}

	// sequence pairs from a file

	fh, err := os.Open(*infile)
	if err != nil {
		checkError(fmt.Errorf("failed to read file: %s", *infile))
	}
	defer fh.Close()

	checkError(readPairs(fh, falign2Seq))
	logger.Debug("done", "pairs", n)
}

// readPairs reads pairs of lines starting with '>' and '<', and calls fn for every pair.
// Empty lines are skipped.
func readPairs(r io.Reader, fn func(a, b string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<30)

	var a string
	var hasA bool
	var line string
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line = strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		switch line[0] {
		case '>':
			if hasA {
				return fmt.Errorf("line %d: sequence after '>' expected to start with '<'", lineNum)
			}
			a, hasA = line[1:], true
		case '<':
			if !hasA {
				return fmt.Errorf("line %d: sequence starting with '<' without a preceding '>'", lineNum)
			}
			if err := fn(a, line[1:]); err != nil {
				return err
			}
			hasA = false
		default:
			return fmt.Errorf("line %d: sequences should start with '>' or '<'", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("something wrong in reading input: %w", err)
	}
	if hasA {
		return fmt.Errorf("the last sequence starting with '>' has no mate")
	}
	return nil
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
