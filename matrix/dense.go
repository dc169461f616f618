// Package matrix provides core linear algebra primitives for lattice computations.
// Mat3 is a fixed-size, row-major matrix stored inline; this file holds its
// constructors and formatting.
package matrix

import (
	"fmt"
	"strings"
)

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// FromRows builds a Mat3 from a slice of three length-3 rows.
// Stage 1 (Validate): exactly three rows, each of length three, all finite.
// Stage 2 (Execute): copy values; the input slice is never retained.
// Complexity: O(9).
func FromRows(rows [][]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != Dim {
		return m, fmt.Errorf("FromRows: %d rows: %w", len(rows), ErrBadShape)
	}
	var i int
	for i = 0; i < Dim; i++ {
		v, err := VecFromSlice(rows[i])
		if err != nil {
			return Mat3{}, fmt.Errorf("FromRows: row %d: %w", i, err)
		}
		m[i] = v
	}

	return m, nil
}

// FromCols builds a Mat3 whose columns are c0, c1 and c2.
func FromCols(c0, c1, c2 Vec3) Mat3 {
	var m Mat3
	m.SetCol(0, c0)
	m.SetCol(1, c1)
	m.SetCol(2, c2)

	return m
}

// VecFromSlice builds a Vec3 from a length-3 slice of finite values.
func VecFromSlice(s []float64) (Vec3, error) {
	var v Vec3
	if len(s) != Dim {
		return v, fmt.Errorf("VecFromSlice: length %d: %w", len(s), ErrBadShape)
	}
	copy(v[:], s)
	if err := ValidateFiniteVec(v); err != nil {
		return Vec3{}, err
	}

	return v, nil
}

// Rows returns m as a freshly allocated [][]float64 (row-major).
func (m Mat3) Rows() [][]float64 {
	out := make([][]float64, Dim)
	var i int
	for i = 0; i < Dim; i++ {
		out[i] = []float64{m[i][0], m[i][1], m[i][2]}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// One bracketed row per line, values formatted with %g.
func (m Mat3) String() string {
	var sb strings.Builder
	var i int
	for i = 0; i < Dim; i++ {
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", m[i][0], m[i][1], m[i][2])
	}

	return sb.String()
}
