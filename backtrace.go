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
	"slices"
	"sync"
)

// backtrace reconstructs the alignment of the entry last of the cell (M,N),
// by following predecessor links back to the origin.
// The runtime complexity is O(M+N), independent of K.
func (tb *Table) backtrace(last CellEntry, gap byte) *Alignment {
	a, b := tb.a, tb.b
	i, j := len(a), len(b)

	A := poolBytes.Get().(*[]byte)
	B := poolBytes.Get().(*[]byte)
	C := poolBytes.Get().(*[]byte)

	var ca, cb byte
	curr := last
	for i > 0 || j > 0 {
		switch curr.Op() {
		case Insertion:
			ca = a[i-1]
			*A = append(*A, ca)
			*B = append(*B, gap)
			*C = append(*C, gap)
			i--
		case Deletion:
			cb = b[j-1]
			*A = append(*A, gap)
			*B = append(*B, cb)
			*C = append(*C, gap)
			j--
		case Substitution:
			ca, cb = a[i-1], b[j-1]
			*A = append(*A, ca)
			*B = append(*B, cb)
			if ca == cb {
				*C = append(*C, ca)
			} else {
				*C = append(*C, gap)
			}
			i--
			j--
		default:
			panic("levtopk: origin reached before cell (0,0)")
		}

		curr = tb.Entry(i, j, curr.Rank())
	}

	// they were saved in reverse order.
	slices.Reverse(*A)
	slices.Reverse(*B)
	slices.Reverse(*C)

	algn := &Alignment{
		EditDistance: last.Distance(),
		AlignedA:     string(*A),
		AlignedB:     string(*B),
		Common:       string(*C),
		Gap:          gap,
	}

	recycleBytes(A, B, C)
	return algn
}

var poolBytes = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 0, 1024)
	return &buf
}}

func recycleBytes(bufs ...*[]byte) {
	for _, buf := range bufs {
		*buf = (*buf)[:0]
		poolBytes.Put(buf)
	}
}
