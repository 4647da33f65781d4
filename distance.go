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

// Distance returns the edit distance of a and b with the Wagner-Fischer
// algorithm, keeping only one row of the matrix.
// It equals the distance of the first top-K alignment.
func Distance(a, b []byte) int {
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j * DeletionCost
	}

	var diag, up, sub int
	for i := 1; i <= len(a); i++ {
		diag = row[0]
		row[0] = i * InsertionCost
		for j := 1; j <= len(b); j++ {
			up = row[j]
			sub = SubstitutionCost
			if a[i-1] == b[j-1] {
				sub = 0
			}
			row[j] = min(up+InsertionCost, row[j-1]+DeletionCost, diag+sub)
			diag = up
		}
	}
	return row[len(b)]
}
