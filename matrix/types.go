// SPDX-License-Identifier: MIT

// Package matrix: value types for three-dimensional lattice arithmetic.
// This file contains ONLY the Vec3/Mat3 types and their element-level helpers.
// Kernels (Mul, Det, Inverse, ...) live in impl_linear_algebra.go; errors and
// validators live in dedicated files per the package conventions.
package matrix

import "math"

// Dim is the fixed dimension of every vector and matrix in this package.
const Dim = 3

// Vec3 is a 3-component real vector.
// Lattice code treats it as a ROW vector: a fractional coordinate f maps to
// the Cartesian position f·L where the rows of L are the lattice vectors.
type Vec3 [Dim]float64

// Mat3 is a row-major 3×3 real matrix.
// Being an array, Mat3 is a value: assignment copies, and no two Mat3 values
// ever alias the same storage.
type Mat3 [Dim][Dim]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns alpha·v.
func (v Vec3) Scale(alpha float64) Vec3 {
	return Vec3{alpha * v[0], alpha * v[1], alpha * v[2]}
}

// Dot returns the Euclidean inner product v·w.
// Summation order is fixed (0,1,2) so results are bit-for-bit reproducible.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm2 returns the squared Euclidean norm ‖v‖².
func (v Vec3) Norm2() float64 { return v.Dot(v) }

// Norm returns the Euclidean norm ‖v‖.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Round rounds every component to the nearest integer, halves to even.
// Negative zero comes back as +0.
func (v Vec3) Round() Vec3 {
	return Vec3{roundInt(v[0]), roundInt(v[1]), roundInt(v[2])}
}

// roundInt is math.RoundToEven with -0 folded to +0.
func roundInt(x float64) float64 { return math.RoundToEven(x) + 0 }

// Floor returns the componentwise floor of v.
func (v Vec3) Floor() Vec3 {
	return Vec3{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2])}
}

// MulMat returns the row vector v·m.
// Complexity: O(9).
func (v Vec3) MulMat(m Mat3) Vec3 {
	var out Vec3
	var i, j int // loop iterators
	for j = 0; j < Dim; j++ {
		for i = 0; i < Dim; i++ {
			out[j] += v[i] * m[i][j]
		}
	}

	return out
}

// Row returns row i of m. Panics if i is outside [0,3) (programmer error).
func (m Mat3) Row(i int) Vec3 { return Vec3(m[i]) }

// Col returns column j of m. Panics if j is outside [0,3) (programmer error).
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// SetCol overwrites column j of m with v.
func (m *Mat3) SetCol(j int, v Vec3) {
	m[0][j], m[1][j], m[2][j] = v[0], v[1], v[2]
}

// SwapCols exchanges columns i and j of m in place.
func (m *Mat3) SwapCols(i, j int) {
	var r int
	for r = 0; r < Dim; r++ {
		m[r][i], m[r][j] = m[r][j], m[r][i]
	}
}

// IsInteger reports whether every entry of m lies within tol of an integer.
func (m Mat3) IsInteger(tol float64) bool {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if math.Abs(m[i][j]-math.RoundToEven(m[i][j])) > tol {
				return false
			}
		}
	}

	return true
}

// Round rounds every entry to the nearest integer, halves to even.
// Used to snap accumulated integer bookkeeping back onto exact integers.
func (m Mat3) Round() Mat3 {
	var out Mat3
	var i int
	for i = 0; i < Dim; i++ {
		out[i] = Vec3(m[i]).Round()
	}

	return out
}
