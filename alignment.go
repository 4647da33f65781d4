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
	"strconv"
	"sync"
)

// Alignment is one alignment of sequences a and b.
//
// AlignedA, AlignedB, and Common have the same length. Removing gaps from
// AlignedA and AlignedB gives a and b. Common has the character of a
// column if AlignedA and AlignedB agree on it, and the gap symbol otherwise.
type Alignment struct {
	EditDistance int

	AlignedA string
	AlignedB string
	Common   string

	Gap byte
}

// EditKind is the kind of an edit operation transforming a into b.
type EditKind uint8

const (
	Keep EditKind = iota
	Substitute
	Insert // a character of b, aligned to a gap in a
	Delete // a character of a, aligned to a gap in b
)

var editKindNames = [...]string{"Keep", "Substitute", "Insert", "Delete"}

func (k EditKind) String() string {
	if int(k) < len(editKindNames) {
		return editKindNames[k]
	}
	return fmt.Sprintf("EditKind(%d)", k)
}

// EditOp is the edit operation of one alignment column.
// From is the character of a, To is the character of b.
type EditOp struct {
	Kind     EditKind
	From, To byte
}

func (op EditOp) String() string {
	switch op.Kind {
	case Substitute:
		return fmt.Sprintf("%10s: '%c' -> '%c'", op.Kind, op.From, op.To)
	case Insert:
		return fmt.Sprintf("%10s: '%c'", op.Kind, op.To)
	default: // Keep, Delete
		return fmt.Sprintf("%10s: '%c'", op.Kind, op.From)
	}
}

// column returns the edit operation of the column i.
func (algn *Alignment) column(i int) EditOp {
	x, y := algn.AlignedA[i], algn.AlignedB[i]
	switch {
	case x == algn.Gap:
		return EditOp{Kind: Insert, To: y}
	case y == algn.Gap:
		return EditOp{Kind: Delete, From: x}
	case x != y:
		return EditOp{Kind: Substitute, From: x, To: y}
	default:
		return EditOp{Kind: Keep, From: x, To: y}
	}
}

// EditScript returns the edit operations transforming a into b, one per column.
func (algn *Alignment) EditScript() []EditOp {
	ops := make([]EditOp, len(algn.AlignedA))
	for i := range ops {
		ops[i] = algn.column(i)
	}
	return ops
}

// Cost computes the edit distance from the aligned sequences,
// which equals EditDistance.
func (algn *Alignment) Cost() int {
	var cost int
	for i := 0; i < len(algn.AlignedA); i++ {
		switch algn.column(i).Kind {
		case Insert:
			cost += DeletionCost // a gap in a is a step along b.
		case Delete:
			cost += InsertionCost
		case Substitute:
			cost += SubstitutionCost
		}
	}
	return cost
}

// CIGARRecord records the operation and the number.
type CIGARRecord struct {
	N  uint32
	Op byte
}

// cigar operations indexed by EditKind.
var cigarOps = [...]byte{'M', 'X', 'I', 'D'}

// CIGARRecords returns the run-length encoded operations:
// M for matches, X for mismatches, I for gaps in a, and D for gaps in b.
func (algn *Alignment) CIGARRecords() []CIGARRecord {
	var ops []CIGARRecord
	var op byte
	for i := 0; i < len(algn.AlignedA); i++ {
		op = cigarOps[algn.column(i).Kind]
		if l := len(ops); l > 0 && ops[l-1].Op == op {
			ops[l-1].N++
			continue
		}
		ops = append(ops, CIGARRecord{N: 1, Op: op})
	}
	return ops
}

// CIGAR returns the CIGAR string, e.g., "1M1D2M1I".
func (algn *Alignment) CIGAR() string {
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, r := range algn.CIGARRecords() {
		buf.WriteString(strconv.Itoa(int(r.N)))
		buf.WriteByte(r.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

var poolBytesBuffer = &sync.Pool{New: func() interface{} {
	return bytes.NewBuffer(make([]byte, 0, 1024))
}}

// AlignmentStats contains stats of an alignment.
type AlignmentStats struct {
	AlignLen   int
	Matches    int
	Mismatches int
	Gaps       int
	GapRegions int // runs of consecutive gaps in the same sequence
}

// Stats returns the stats of the alignment.
func (algn *Alignment) Stats() AlignmentStats {
	var s AlignmentStats
	s.AlignLen = len(algn.AlignedA)
	for _, r := range algn.CIGARRecords() {
		switch r.Op {
		case 'M':
			s.Matches += int(r.N)
		case 'X':
			s.Mismatches += int(r.N)
		case 'I', 'D':
			s.Gaps += int(r.N)
			s.GapRegions++
		}
	}
	return s
}

// Text returns the formatted alignment text for a, matches, and b,
// where matched columns are marked with '|'.
func (algn *Alignment) Text() (string, string, string) {
	m := make([]byte, len(algn.Common))
	for i := range m {
		if algn.Common[i] == algn.Gap {
			m[i] = ' '
		} else {
			m[i] = '|'
		}
	}
	return algn.AlignedA, string(m), algn.AlignedB
}

func (algn *Alignment) String() string {
	return fmt.Sprintf("distance: %d, a: %s, b: %s, common: %s",
		algn.EditDistance, algn.AlignedA, algn.AlignedB, algn.Common)
}
