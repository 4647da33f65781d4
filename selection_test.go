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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomEntries(rng *rand.Rand, n, maxDist int) []CellEntry {
	s := make([]CellEntry, n)
	for i := range s {
		s[i] = NewCellEntry(rng.IntN(maxDist), OpKind(1+rng.IntN(3)), rng.IntN(n))
	}
	return s
}

func TestSelection(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		n := 1 + rng.IntN(90)
		k := 1 + rng.IntN(n+5)
		// small distances for a lot of duplicated values
		entries := randomEntries(rng, n, 1+rng.IntN(8))

		want := slices.Clone(entries)
		slices.Sort(want)
		want = want[:min(k, n)]

		assert.Equal(t, want, SortSelect(slices.Clone(entries), k), "sort, n=%d, k=%d", n, k)
		assert.Equal(t, want, QuickSelect(slices.Clone(entries), k, nil), "median of three, n=%d, k=%d", n, k)
		assert.Equal(t, want, QuickSelect(slices.Clone(entries), k, rng), "shuffled, n=%d, k=%d", n, k)
	}
}

func TestSelection_Edges(t *testing.T) {
	entries := []CellEntry{NewCellEntry(3, Insertion, 0), NewCellEntry(1, Deletion, 0)}
	assert.Empty(t, QuickSelect(slices.Clone(entries), 0, nil))
	assert.Empty(t, SortSelect(slices.Clone(entries), 0))
	assert.Empty(t, QuickSelect(nil, 3, nil))

	// sorted, reversed, and constant inputs
	for _, s := range [][]CellEntry{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{8, 7, 6, 5, 4, 3, 2, 1},
		{4, 4, 4, 4, 4, 4},
	} {
		want := slices.Clone(s)
		slices.Sort(want)
		assert.Equal(t, want[:3], QuickSelect(slices.Clone(s), 3, nil))
	}
}

func TestPartition3(t *testing.T) {
	s := []CellEntry{5, 1, 9, 5, 3, 5, 7}
	lt, gt := partition3(s, 0, len(s)-1)
	for i := 0; i < lt; i++ {
		assert.Less(t, s[i], CellEntry(5))
	}
	for i := lt; i <= gt; i++ {
		assert.Equal(t, CellEntry(5), s[i])
	}
	for i := gt + 1; i < len(s); i++ {
		assert.Greater(t, s[i], CellEntry(5))
	}
}

func TestSelectionMethod_String(t *testing.T) {
	assert.Equal(t, "sort", SortSelection.String())
	assert.Equal(t, "quickselect", QuickSelection.String())
	assert.Equal(t, "SelectionMethod(5)", SelectionMethod(5).String())
}

func TestNewSelector(t *testing.T) {
	assert.Nil(t, newSelector(SortSelection, 42, 0).rng)
	assert.Nil(t, newSelector(QuickSelection, 0, 0).rng)
	assert.NotNil(t, newSelector(QuickSelection, 42, 1).rng)
}
