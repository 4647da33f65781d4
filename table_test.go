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
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alignForTable(t *testing.T, a, b string, k int) *Table {
	t.Helper()
	opt := DefaultOptions
	opt.K = k
	algn := New(&opt)
	t.Cleanup(func() { RecycleAligner(algn) })

	_, err := algn.Align([]byte(a), []byte(b))
	require.NoError(t, err)
	return algn.Table()
}

func TestTable_Layout(t *testing.T) {
	tb := alignForTable(t, "ab", "ab", 3)

	assert.Equal(t, 3, tb.Rows)
	assert.Equal(t, 3, tb.Cols)
	assert.Equal(t, 17, tb.Entries())

	assert.Equal(t, []CellEntry{originEntry()}, tb.Cell(0, 0))
	assert.Equal(t, []CellEntry{NewCellEntry(2, Insertion, 0)}, tb.Cell(2, 0))
	assert.Equal(t, []CellEntry{NewCellEntry(1, Deletion, 0)}, tb.Cell(0, 1))

	assert.Equal(t, []CellEntry{
		NewCellEntry(0, Substitution, 0),
		NewCellEntry(2, Insertion, 0),
		NewCellEntry(2, Deletion, 0),
	}, tb.Cell(1, 1))
	assert.Equal(t, NewCellEntry(2, Deletion, 0), tb.Entry(1, 1, 2))
}

func TestTable_Invariants(t *testing.T) {
	for _, k := range []int{1, 2, 5, 40} {
		tb := alignForTable(t, "kitten", "sitting", k)
		var total int
		for i := 0; i < tb.Rows; i++ {
			for j := 0; j < tb.Cols; j++ {
				cell := tb.Cell(i, j)
				total += len(cell)
				assert.NotEmpty(t, cell)
				assert.LessOrEqual(t, len(cell), k)
				assert.True(t, slices.IsSorted(cell), "cell (%d,%d)", i, j)
				if i == 0 || j == 0 {
					assert.Len(t, cell, 1)
				}
			}
		}
		assert.Equal(t, total, tb.Entries())
	}
}

func TestTable_ReuseSmaller(t *testing.T) {
	opt := DefaultOptions
	opt.K = 4
	algn := New(&opt)
	defer RecycleAligner(algn)

	_, err := algn.Align([]byte("abcdefgh"), []byte("bcdefghi"))
	require.NoError(t, err)
	large := algn.Table().Entries()

	_, err = algn.Align([]byte("ab"), []byte("ab"))
	require.NoError(t, err)
	assert.Less(t, algn.Table().Entries(), large)
	assert.Equal(t, originEntry(), algn.Table().Entry(0, 0, 0))
}

func TestTable_Plot(t *testing.T) {
	tb := alignForTable(t, "ab", "ab", 3)

	var buf bytes.Buffer
	tb.Plot(&buf)
	want := "   \t \t   \t  1\t  2\n" +
		"   \t \t   \t  a\t  b\n" +
		"   \t \t⊕ 0\t→ 1\t→ 2\n" +
		"  1\ta\t↓ 1\t↘ 0\t→ 1\n" +
		"  2\tb\t↓ 2\t↓ 1\t↘ 0\n"
	assert.Equal(t, want, buf.String())
}

func TestTable_Print(t *testing.T) {
	tb := alignForTable(t, "ab", "ab", 3)

	var buf bytes.Buffer
	tb.Print(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "(0,0): 0(Origin)", lines[0])
	assert.Equal(t, "(0,1): 1(Deletion@0)", lines[1])
	assert.Equal(t, "(1,1): 0(Substitution@0) 2(Insertion@0) 2(Deletion@0)", lines[4])
}
