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
	"bytes"
	"fmt"
	"log/slog"
	"sync"
)

// DefaultGap is the default gap symbol.
const DefaultGap byte = '_'

// Options contains the options of an Aligner.
type Options struct {
	K   int  // the number of alignments to return, in [1, MaxK]
	Gap byte // gap symbol, which must not occur in the input sequences

	Selection SelectionMethod // strategy to select the K smallest candidates of a cell
	Seed      uint64          // for QuickSelection, 0 for median-of-three pivots instead of shuffling

	// Threads > 1 fills the table along anti-diagonals with this number of goroutines.
	Threads int

	// SkipGapCheck skips checking whether the gap symbol occurs in the input.
	// Set it only when the caller guarantees it, as gap-stripped aligned
	// sequences would not reproduce the input otherwise.
	SkipGapCheck bool

	// Logger receives debug records. nil for slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns 10 alignments with the gap symbol '_',
// using sort-based selection in a single goroutine.
var DefaultOptions = Options{
	K:         10,
	Gap:       DefaultGap,
	Selection: SortSelection,
	Threads:   1,
}

// Aligner computes top-K alignments for pairs of sequences.
// It's from an object pool, in case a large number of alignments are needed,
// and it's not safe for concurrent use.
type Aligner struct {
	opt    Options
	logger *slog.Logger

	table Table

	// one for each goroutine filling the table.
	workers []worker
}

type worker struct {
	buf []CellEntry // candidates of the current cell
	sel selector
}

// object pool of aligners.
var poolAligner = &sync.Pool{New: func() interface{} {
	return &Aligner{}
}}

// New returns an Aligner from the object pool.
// If opt is nil, DefaultOptions is used.
func New(opt *Options) *Aligner {
	algn := poolAligner.Get().(*Aligner)
	if opt == nil {
		opt = &DefaultOptions
	}
	algn.opt = *opt
	algn.opt.Threads = max(1, algn.opt.Threads)
	algn.logger = opt.Logger
	if algn.logger == nil {
		algn.logger = slog.Default()
	}
	return algn
}

// RecycleAligner recycles an Aligner object.
// Alignments returned by it stay valid, but its Table does not.
func RecycleAligner(algn *Aligner) {
	if algn == nil {
		return
	}
	algn.table.release()
	algn.logger = nil
	algn.opt.Logger = nil
	poolAligner.Put(algn)
}

// Options returns the options of the aligner.
func (algn *Aligner) Options() Options {
	return algn.opt
}

// Table returns the table of the last alignment,
// which is valid until the next call of Align or RecycleAligner.
func (algn *Aligner) Table() *Table {
	return &algn.table
}

// Align returns the K alignments of a and b with the smallest edit distances,
// in ascending order of the distance. Fewer than K alignments are returned
// only if a and b do not have that many, e.g., when one of them is empty.
// The result is never empty.
func (algn *Aligner) Align(a, b []byte) ([]*Alignment, error) {
	if err := algn.validate(a, b); err != nil {
		return nil, err
	}

	if err := algn.fill(a, b); err != nil {
		return nil, err
	}

	tb := &algn.table
	last := tb.Cell(len(a), len(b))
	result := make([]*Alignment, len(last))
	for i, e := range last {
		result[i] = tb.backtrace(e, algn.opt.Gap)
	}
	return result, nil
}

// validate checks the options and inputs before any allocation.
func (algn *Aligner) validate(a, b []byte) error {
	k := algn.opt.K
	if k < 1 || k > MaxK {
		return fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if algn.opt.SkipGapCheck {
		return nil
	}
	gap := algn.opt.Gap
	if i := bytes.IndexByte(a, gap); i >= 0 {
		return fmt.Errorf("%w: %q at position %d of sequence a", ErrGapCollision, gap, i+1)
	}
	if i := bytes.IndexByte(b, gap); i >= 0 {
		return fmt.Errorf("%w: %q at position %d of sequence b", ErrGapCollision, gap, i+1)
	}
	return nil
}

// TopK returns the k alignments of a and b with the smallest edit distances,
// in ascending order of the distance, with default options for the others.
func TopK(a, b []byte, k int, gap byte) ([]*Alignment, error) {
	opt := DefaultOptions
	opt.K = k
	opt.Gap = gap

	algn := New(&opt)
	defer RecycleAligner(algn)

	return algn.Align(a, b)
}
