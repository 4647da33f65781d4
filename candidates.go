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

// appendCandidates appends the extension candidates of the interior cell
// (i,j) to dst, given the cells (i-1,j), (i,j-1), (i-1,j-1), and whether
// a[i-1] equals b[j-1].
//
// Candidates are generated in a fixed order: the insertion block, the
// deletion block, and then the substitution block, each in ascending
// predecessor rank. The packed CellEntry keeps this order for equal
// distances.
func appendCandidates(dst []CellEntry, up, left, diag []CellEntry, match bool) []CellEntry {
	for r, e := range up {
		dst = append(dst, e.extend(InsertionCost, Insertion, r))
	}
	for r, e := range left {
		dst = append(dst, e.extend(DeletionCost, Deletion, r))
	}
	sub := SubstitutionCost
	if match {
		sub = 0
	}
	for r, e := range diag {
		dst = append(dst, e.extend(sub, Substitution, r))
	}
	return dst
}

// boundary entries.
func originEntry() CellEntry { return NewCellEntry(0, Origin, 0) }
func firstColEntry(i int) CellEntry { return NewCellEntry(i*InsertionCost, Insertion, 0) }
func firstRowEntry(j int) CellEntry { return NewCellEntry(j*DeletionCost, Deletion, 0) }
