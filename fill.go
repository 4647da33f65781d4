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
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// minCellsPerWorker is the smallest number of cells of an anti-diagonal
// a goroutine would process, shorter diagonals are filled sequentially.
const minCellsPerWorker = 64

// fill builds the table of a and b.
func (algn *Aligner) fill(a, b []byte) error {
	startTime := time.Now()

	k := algn.opt.K
	threads := algn.opt.Threads
	tb := &algn.table
	tb.reset(a, b, k)

	algn.resetWorkers(threads)

	// boundary cells
	tb.entries[0] = originEntry()
	for i := 1; i < tb.Rows; i++ {
		tb.entries[tb.offsets[i*tb.Cols]] = firstColEntry(i)
	}
	for j := 1; j < tb.Cols; j++ {
		tb.entries[tb.offsets[j]] = firstRowEntry(j)
	}

	var err error
	if threads > 1 && tb.Rows > 2 && tb.Cols > 2 {
		err = algn.fillWavefront()
	} else {
		wk := &algn.workers[0]
		for i := 1; i < tb.Rows && err == nil; i++ {
			for j := 1; j < tb.Cols; j++ {
				if err = tb.fillCell(i, j, wk); err != nil {
					break
				}
			}
		}
	}
	if err != nil {
		return err
	}

	if !slices.IsSorted(tb.Cell(len(a), len(b))) {
		return fmt.Errorf("%w: cell (%d,%d) is not sorted", errCellSize, len(a), len(b))
	}

	algn.logger.Debug("table filled",
		"rows", tb.Rows, "cols", tb.Cols, "k", k,
		"entries", tb.Entries(),
		"selection", algn.opt.Selection.String(),
		"threads", threads,
		"elapsed", time.Since(startTime))
	return nil
}

// fillWavefront fills interior cells along anti-diagonals. Cells of one
// anti-diagonal only depend on the two previous ones, so they are split
// into chunks processed by at most Threads goroutines.
func (algn *Aligner) fillWavefront() error {
	tb := &algn.table
	threads := algn.opt.Threads
	lastRow, lastCol := tb.Rows-1, tb.Cols-1

	var iLo, iHi, n, chunk int
	for d := 2; d <= lastRow+lastCol; d++ {
		iLo, iHi = max(1, d-lastCol), min(lastRow, d-1)
		n = iHi - iLo + 1

		if n < minCellsPerWorker<<1 {
			wk := &algn.workers[0]
			for i := iLo; i <= iHi; i++ {
				if err := tb.fillCell(i, d-i, wk); err != nil {
					return err
				}
			}
			continue
		}

		chunk = max(minCellsPerWorker, (n+threads-1)/threads)

		var g errgroup.Group
		for w, start := 0, iLo; start <= iHi; w, start = w+1, start+chunk {
			end := min(start+chunk-1, iHi)
			wk := &algn.workers[w]
			g.Go(func() error {
				for i := start; i <= end; i++ {
					if err := tb.fillCell(i, d-i, wk); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// fillCell computes the interior cell (i,j) from its three neighbours.
func (tb *Table) fillCell(i, j int, wk *worker) error {
	wk.buf = appendCandidates(wk.buf[:0],
		tb.Cell(i-1, j), tb.Cell(i, j-1), tb.Cell(i-1, j-1),
		tb.a[i-1] == tb.b[j-1])

	best := wk.sel.selectK(wk.buf, tb.K)

	cell := tb.Cell(i, j)
	if len(best) != len(cell) {
		return fmt.Errorf("%w: cell (%d,%d) has %d entries, %d expected",
			errCellSize, i, j, len(best), len(cell))
	}
	copy(cell, best)
	return nil
}

// resetWorkers prepares one worker for each goroutine, with a fresh random
// stream, so that every call is reproducible.
func (algn *Aligner) resetWorkers(threads int) {
	if len(algn.workers) < threads {
		algn.workers = append(algn.workers, make([]worker, threads-len(algn.workers))...)
	}
	for w := range algn.workers[:threads] {
		algn.workers[w].sel = newSelector(algn.opt.Selection, algn.opt.Seed, w)
	}
}
