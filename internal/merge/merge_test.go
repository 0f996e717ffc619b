// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docpdf/internal/pdffixture"
)

func widths(t *testing.T, pdf []byte) []float64 {
	t.Helper()
	dims, err := PageSizes(pdf)
	require.NoError(t, err)
	out := make([]float64, len(dims))
	for i, d := range dims {
		out[i] = d.Width
	}
	return out
}

func assertWidths(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 0.5, "page %d", i+1)
	}
}

func TestMerge(t *testing.T) {
	a := pdffixture.Pages(t, 200, 210)
	b := pdffixture.Pages(t, 300)
	c := pdffixture.Pages(t, 400, 410, 420)

	tests := []struct {
		name  string
		input [][]byte
		want  []float64
	}{
		{name: "single document keeps its pages", input: [][]byte{a}, want: []float64{200, 210}},
		{name: "two documents in order", input: [][]byte{a, b}, want: []float64{200, 210, 300}},
		{name: "reversed order", input: [][]byte{b, a}, want: []float64{300, 200, 210}},
		{name: "three documents", input: [][]byte{c, a, b}, want: []float64{400, 410, 420, 200, 210, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(tt.input)
			require.NoError(t, err)

			n, err := PageCount(merged)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assertWidths(t, tt.want, widths(t, merged))
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	a := pdffixture.N(t, 2, 250)
	orig := append([]byte(nil), a...)

	_, err := Merge([][]byte{a, a})
	require.NoError(t, err)
	assert.Equal(t, orig, a)
}

func TestMerge_Errors(t *testing.T) {
	good := pdffixture.N(t, 1, 300)

	tests := []struct {
		name   string
		input  [][]byte
		target error
	}{
		{name: "no input", input: nil, target: ErrNoInput},
		{name: "empty document", input: [][]byte{good, {}}, target: ErrMerge},
		{name: "malformed document", input: [][]byte{good, []byte("not a pdf at all")}, target: ErrMerge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Merge(tt.input)
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, out, "no partial output on failure")
		})
	}
}

func TestPageCount_Malformed(t *testing.T) {
	_, err := PageCount([]byte("garbage"))
	assert.Error(t, err)
}
