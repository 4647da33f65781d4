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

// Table is the memoization table of the top-K dynamic programming,
// a grid of (len(a)+1) x (len(b)+1) cells.
//
// All cell entries live in a single flat arena, a cell is a slice of it
// addressed by a per-cell offset index. The size of every cell is known
// before filling:
//
//	size(0,0) = size(i,0) = size(0,j) = 1
//	size(i,j) = min(K, size(i-1,j) + size(i,j-1) + size(i-1,j-1))
//
// so the offsets are computed in advance and each cell owns a disjoint
// region of the arena, which can be filled in any order respecting the
// dependencies, or concurrently along anti-diagonals.
type Table struct {
	Rows, Cols int // len(a)+1, len(b)+1
	K          int

	a, b []byte

	// entries of cell (i,j) are entries[offsets[i*Cols+j]:offsets[i*Cols+j+1]]
	offsets []int
	entries []CellEntry
}

// reset computes the layout of a new table and resizes the arena.
// Old data are not cleared, as every entry is overwritten during filling.
func (tb *Table) reset(a, b []byte, k int) {
	tb.a, tb.b = a, b
	tb.Rows, tb.Cols, tb.K = len(a)+1, len(b)+1, k

	n := tb.Rows * tb.Cols
	if cap(tb.offsets) < n+1 {
		tb.offsets = make([]int, n+1)
	} else {
		tb.offsets = tb.offsets[:n+1]
	}

	offsets := tb.offsets
	cols := tb.Cols
	offsets[0] = 0
	var idx, size int
	for i := 0; i < tb.Rows; i++ {
		for j := 0; j < cols; j++ {
			idx = i*cols + j
			if i == 0 || j == 0 {
				size = 1
			} else {
				size = tb.size(idx-cols) + tb.size(idx-1) + tb.size(idx-cols-1)
				if size > k {
					size = k
				}
			}
			offsets[idx+1] = offsets[idx] + size
		}
	}

	total := offsets[n]
	if cap(tb.entries) < total {
		tb.entries = make([]CellEntry, total)
	} else {
		tb.entries = tb.entries[:total]
	}
}

// release drops references to the input sequences.
// Large arenas are dropped too, so a pooled object does not pin them.
func (tb *Table) release() {
	tb.a, tb.b = nil, nil
	if cap(tb.entries) > maxPooledEntries {
		tb.entries = nil
		tb.offsets = nil
	}
}

// maxPooledEntries is the largest arena kept by a recycled Aligner.
const maxPooledEntries = 1 << 24

// size returns the number of entries of a cell given its flat index.
func (tb *Table) size(idx int) int {
	return tb.offsets[idx+1] - tb.offsets[idx]
}

// Cell returns the entries of cell (i,j), sorted in ascending order.
// The returned slice is a view of the table, do not modify it.
func (tb *Table) Cell(i, j int) []CellEntry {
	idx := i*tb.Cols + j
	s, e := tb.offsets[idx], tb.offsets[idx+1]
	return tb.entries[s:e:e]
}

// Entry returns the entry of the given rank in cell (i,j).
func (tb *Table) Entry(i, j, rank int) CellEntry {
	return tb.entries[tb.offsets[i*tb.Cols+j]+rank]
}

// Entries returns the total number of entries in the table.
func (tb *Table) Entries() int {
	return len(tb.entries)
}

// Print lists the entries of all cells, one row of the table per block.
func (tb *Table) Print(wtr io.Writer) {
	for i := 0; i < tb.Rows; i++ {
		for j := 0; j < tb.Cols; j++ {
			fmt.Fprintf(wtr, "(%d,%d):", i, j)
			for _, e := range tb.Cell(i, j) {
				fmt.Fprintf(wtr, " %s", e)
			}
			fmt.Fprintln(wtr)
		}
	}
}
