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

package levtopk

import (
	"fmt"
	"io"
)

// Plot plots the table as a tab-delimited text table.
//
// A table cell contains the operation symbol and the distance of its best
// entry. The first row and column stand for the empty prefixes.
// Symbols:
//
//	⊕    Origin
//	↓    Insertion, a character of a against a gap
//	→    Deletion, a character of b against a gap
//	↘    Substitution, a match or a mismatch
func (tb *Table) Plot(wtr io.Writer) {
	fmt.Fprintf(wtr, "   \t \t   ")
	for j := range tb.b {
		fmt.Fprintf(wtr, "\t%3d", j+1)
	}
	fmt.Fprintln(wtr)
	fmt.Fprintf(wtr, "   \t \t   ")
	for _, c := range tb.b {
		fmt.Fprintf(wtr, "\t%3c", c)
	}
	fmt.Fprintln(wtr)

	var e CellEntry
	for i := 0; i < tb.Rows; i++ {
		if i == 0 {
			fmt.Fprintf(wtr, "   \t ")
		} else {
			fmt.Fprintf(wtr, "%3d\t%c", i, tb.a[i-1])
		}
		for j := 0; j < tb.Cols; j++ {
			e = tb.Entry(i, j, 0)
			fmt.Fprintf(wtr, "\t%c%2d", opArrows[e.Op()], e.Distance())
		}
		fmt.Fprintln(wtr)
	}
}
