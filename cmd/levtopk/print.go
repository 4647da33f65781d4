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
	"fmt"
	"io"

	"github.com/shenwei356/levtopk"
	"github.com/shenwei356/levtopk/internal/termcolor"
)

// printer writes alignments of a pair of sequences in a human-readable way.
type printer struct {
	wtr     io.Writer
	color   termcolor.Painter
	explain bool
}

func (p *printer) print(a, b string, alignments []*levtopk.Alignment) {
	fmt.Fprintln(p.wtr, p.color.Bold(fmt.Sprintf("a: %s", a)))
	fmt.Fprintln(p.wtr, p.color.Bold(fmt.Sprintf("b: %s", b)))
	fmt.Fprintf(p.wtr, "alignments: %d\n\n", len(alignments))

	for i, algn := range alignments {
		A, M, B := algn.Text()
		s := algn.Stats()

		fmt.Fprintf(p.wtr, "#%d  distance: %d\n", i+1, algn.EditDistance)
		fmt.Fprintf(p.wtr, "a       %s\n", A)
		fmt.Fprintf(p.wtr, "        %s\n", M)
		fmt.Fprintf(p.wtr, "b       %s\n", B)
		fmt.Fprintf(p.wtr, "common  %s\n", algn.Common)
		fmt.Fprintf(p.wtr, "cigar   %s\n", algn.CIGAR())
		fmt.Fprintf(p.wtr, "length: %d, matches: %d (%.2f%%), mismatches: %d, gaps: %d, gap regions: %d\n",
			s.AlignLen, s.Matches, percent(s.Matches, s.AlignLen), s.Mismatches, s.Gaps, s.GapRegions)

		if p.explain {
			fmt.Fprintln(p.wtr, "transformation of a to b:")
			for _, op := range algn.EditScript() {
				fmt.Fprintln(p.wtr, p.paint(op))
			}
		}
		fmt.Fprintln(p.wtr)
	}
}

func (p *printer) paint(op levtopk.EditOp) string {
	switch op.Kind {
	case levtopk.Substitute:
		return p.color.Yellow(op.String())
	case levtopk.Insert:
		return p.color.Green(op.String())
	case levtopk.Delete:
		return p.color.Red(op.String())
	default:
		return op.String()
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
