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

import "fmt"

// Costs of the edit operations. A match costs 0.
const (
	InsertionCost    = 1
	DeletionCost     = 1
	SubstitutionCost = 1
)

// OpKind is the edit operation which leads to a cell entry from its predecessor.
type OpKind uint8

const (
	// Origin is the only entry of the cell (0,0).
	Origin OpKind = iota
	// Insertion consumes a character of a (row-1), it's aligned to a gap in b.
	Insertion
	// Deletion consumes a character of b (col-1), it's aligned to a gap in a.
	Deletion
	// Substitution consumes a character of both sequences, a match or a mismatch.
	Substitution
)

var opKindNames = [...]string{"Origin", "Insertion", "Deletion", "Substitution"}

// for plotting, indexed by OpKind.
var opArrows = [...]rune{'⊕', '↓', '→', '↘'}

func (op OpKind) String() string {
	if int(op) < len(opKindNames) {
		return opKindNames[op]
	}
	return fmt.Sprintf("OpKind(%d)", op)
}

// the number of bits to save the predecessor rank and the operation.
const (
	rankBits  = 30
	opBits    = 2
	distShift = rankBits + opBits

	rankMask uint64 = (1 << rankBits) - 1
	opMask   uint64 = (1 << opBits) - 1
	lowMask  uint64 = (1 << distShift) - 1
)

// MaxK is the largest K supported, limited by the bits of predecessor ranks.
const MaxK = 1 << rankBits

// CellEntry is one of the K best sub-alignments ending at a prefix pair.
// It records the edit distance, the operation, and the rank of the
// predecessor entry in the neighbouring cell the operation comes from.
//
// The three fields are packed into one integer:
//
//	distance<<32 | op<<30 | rank
//
// So comparing two entries as integers orders them by distance first,
// then by operation (insertion, deletion, substitution), and then by the
// predecessor rank, which is exactly the order candidates are generated.
// Entries of one cell never compare equal.
type CellEntry uint64

// NewCellEntry creates a CellEntry.
func NewCellEntry(dist int, op OpKind, rank int) CellEntry {
	return CellEntry(uint64(dist)<<distShift | uint64(op)<<rankBits | uint64(rank)&rankMask)
}

// Distance returns the edit distance of the sub-alignment.
func (e CellEntry) Distance() int {
	return int(uint64(e) >> distShift)
}

// Op returns the operation.
func (e CellEntry) Op() OpKind {
	return OpKind(uint64(e) >> rankBits & opMask)
}

// Rank returns the index of the predecessor in its cell.
// It's meaningless for Origin.
func (e CellEntry) Rank() int {
	return int(uint64(e) & rankMask)
}

// extend returns a candidate extending e with an operation of the given cost,
// e itself being the entry of rank in the predecessor cell.
func (e CellEntry) extend(cost int, op OpKind, rank int) CellEntry {
	return CellEntry(uint64(e)&^lowMask + uint64(cost)<<distShift | uint64(op)<<rankBits | uint64(rank))
}

func (e CellEntry) String() string {
	if e.Op() == Origin {
		return fmt.Sprintf("%d(%s)", e.Distance(), e.Op())
	}
	return fmt.Sprintf("%d(%s@%d)", e.Distance(), e.Op(), e.Rank())
}
