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
	"math/rand/v2"
	"slices"
)

// SelectionMethod is the strategy to select the K smallest candidates of a cell.
type SelectionMethod int

const (
	// SortSelection sorts all candidates and truncates them, O(n*log(n)).
	SortSelection SelectionMethod = iota
	// QuickSelection uses Hoare's selection with three-way partitioning,
	// expected O(n), and then sorts the selected k entries.
	QuickSelection
)

func (m SelectionMethod) String() string {
	switch m {
	case SortSelection:
		return "sort"
	case QuickSelection:
		return "quickselect"
	default:
		return fmt.Sprintf("SelectionMethod(%d)", int(m))
	}
}

// SortSelect returns the k smallest entries in ascending order,
// which are moved to the head of entries.
func SortSelect(entries []CellEntry, k int) []CellEntry {
	slices.Sort(entries)
	return entries[:max(0, min(k, len(entries)))]
}

// QuickSelect returns the k smallest entries in ascending order,
// which are moved to the head of entries.
//
// If rng is not nil, entries are shuffled before the selection, which
// guarantees the expected linear runtime whatever the input order is.
// Otherwise a median-of-three pivot is used and no randomness is involved.
// As entries of a cell never compare equal, the result does not depend on rng.
func QuickSelect(entries []CellEntry, k int, rng *rand.Rand) []CellEntry {
	n := len(entries)
	if k <= 0 {
		return entries[:0]
	}
	if k < n {
		if rng != nil {
			rng.Shuffle(n, func(i, j int) {
				entries[i], entries[j] = entries[j], entries[i]
			})
		}
		quickselect(entries, k-1, rng == nil)
		entries = entries[:k]
	}
	slices.Sort(entries)
	return entries
}

// quickselect rearranges s so that s[k] is the k-th smallest element (0-based),
// elements before it are smaller and elements after it are not smaller.
func quickselect(s []CellEntry, k int, medianPivot bool) {
	lo, hi := 0, len(s)-1
	var lt, gt int
	for lo < hi {
		if medianPivot {
			medianOfThree(s, lo, hi)
		}
		lt, gt = partition3(s, lo, hi)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return
		}
	}
}

// partition3 partitions s[lo..hi] around the pivot s[lo] (Dutch national flag).
// On return, s[lo:lt] < pivot, s[lt:gt+1] == pivot, and s[gt+1:hi+1] > pivot.
func partition3(s []CellEntry, lo, hi int) (lt, gt int) {
	pivot := s[lo]
	lt, gt = lo, hi
	i := lo + 1
	for i <= gt {
		switch {
		case s[i] < pivot:
			s[i], s[lt] = s[lt], s[i]
			i++
			lt++
		case s[i] > pivot:
			s[i], s[gt] = s[gt], s[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThree moves the median of s[lo], s[mid], s[hi] to s[lo].
func medianOfThree(s []CellEntry, lo, hi int) {
	mid := lo + (hi-lo)>>1
	if s[mid] < s[lo] {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if s[hi] < s[lo] {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if s[hi] < s[mid] {
		s[hi], s[mid] = s[mid], s[hi]
	}
	s[lo], s[mid] = s[mid], s[lo]
}

// selector selects the k smallest candidates of cells.
// It's not safe for concurrent use, each worker owns one.
type selector struct {
	method SelectionMethod
	rng    *rand.Rand // only for QuickSelection, nil for median-of-three pivots
}

// newSelector creates a selector for the worker of the given id.
// Every worker gets an independent random stream derived from the seed.
func newSelector(method SelectionMethod, seed uint64, worker int) selector {
	sel := selector{method: method}
	if method == QuickSelection && seed != 0 {
		sel.rng = rand.New(rand.NewPCG(seed, uint64(worker)))
	}
	return sel
}

func (sel *selector) selectK(entries []CellEntry, k int) []CellEntry {
	if sel.method == QuickSelection {
		return QuickSelect(entries, k, sel.rng)
	}
	return SortSelect(entries, k)
}
