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

/*
Package levtopk computes the K alignments of two sequences with the smallest
edit distances (Levenshtein distance, unit costs), not just the best one.

It generalizes the Wagner-Fischer dynamic programming: every cell (i,j) of
the table keeps the K best sub-alignments of a[:i] and b[:j], each with the
operation and the rank of its predecessor entry, from which an alignment is
reconstructed by backtracing.

	alignments, err := levtopk.TopK([]byte("ABCD"), []byte("AXYD"), 3, '_')

	// ABCD    AB_CD   A_BCD
	// AXYD    AXY_D   AXY_D
	// A__D    A___D   A___D
	// 2       3       3

Runtime: O(M*N*K) with quickselect, O(M*N*K*log(K)) with sorting.
Memory: O(M*N*K), the whole table is kept for backtracing.
*/
package levtopk
