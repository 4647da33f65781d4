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

package levtopk_test

import (
	"testing"

	"github.com/shenwei356/levtopk"
	"github.com/stretchr/testify/assert"
)

func TestAlignment_EditScript(t *testing.T) {
	algn := &levtopk.Alignment{
		EditDistance: 3,
		AlignedA:     "ab_cd",
		AlignedB:     "axy_d",
		Common:       "a___d",
		Gap:          '_',
	}

	assert.Equal(t, []levtopk.EditOp{
		{Kind: levtopk.Keep, From: 'a', To: 'a'},
		{Kind: levtopk.Substitute, From: 'b', To: 'x'},
		{Kind: levtopk.Insert, To: 'y'},
		{Kind: levtopk.Delete, From: 'c'},
		{Kind: levtopk.Keep, From: 'd', To: 'd'},
	}, algn.EditScript())

	var lines []string
	for _, op := range algn.EditScript() {
		lines = append(lines, op.String())
	}
	assert.Equal(t, []string{
		"      Keep: 'a'",
		"Substitute: 'b' -> 'x'",
		"    Insert: 'y'",
		"    Delete: 'c'",
		"      Keep: 'd'",
	}, lines)

	assert.Equal(t, 3, algn.Cost())
	assert.Equal(t, "distance: 3, a: ab_cd, b: axy_d, common: a___d", algn.String())
}

func TestAlignment_CIGAR(t *testing.T) {
	tests := []struct {
		a, b  string
		cigar string
		stats levtopk.AlignmentStats
	}{
		{"ab_cd", "axy_d", "1M1X1I1D1M", levtopk.AlignmentStats{
			AlignLen: 5, Matches: 2, Mismatches: 1, Gaps: 2, GapRegions: 2}},
		{"TGC__A", "T_CTA_", "1M1D1M2I1D", levtopk.AlignmentStats{
			AlignLen: 6, Matches: 2, Mismatches: 0, Gaps: 4, GapRegions: 3}},
		{"abc", "abc", "3M", levtopk.AlignmentStats{AlignLen: 3, Matches: 3}},
		{"", "", "", levtopk.AlignmentStats{}},
	}
	for _, tt := range tests {
		algn := &levtopk.Alignment{AlignedA: tt.a, AlignedB: tt.b, Gap: '_'}
		assert.Equal(t, tt.cigar, algn.CIGAR(), "%s/%s", tt.a, tt.b)
		assert.Equal(t, tt.stats, algn.Stats(), "%s/%s", tt.a, tt.b)
	}
}

func TestAlignment_Text(t *testing.T) {
	result, err := levtopk.TopK([]byte("TGCA"), []byte("TCTA"), 1, '-')
	assert.NoError(t, err)

	A, M, B := result[0].Text()
	assert.Equal(t, "TGC-A", A)
	assert.Equal(t, "| | |", M)
	assert.Equal(t, "T-CTA", B)
}

func TestEditKind_String(t *testing.T) {
	assert.Equal(t, "Substitute", levtopk.Substitute.String())
	assert.Equal(t, "EditKind(7)", levtopk.EditKind(7).String())
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"TGCA", "TCTA", 2},
		{"frankfurt", "frnkfurt", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levtopk.Distance([]byte(tt.a), []byte(tt.b)), "%s/%s", tt.a, tt.b)
	}
}
