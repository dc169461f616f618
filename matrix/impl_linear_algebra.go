// SPDX-License-Identifier: MIT
// Package matrix provides fixed-size linear-algebra kernels on Mat3/Vec3:
// multiplication, transpose, determinant and inverse.
//
// Purpose:
//   - Declare the canonical kernels used by the lattice reducer and the
//     periodic distance search.
//   - Keep loop orders fixed so every kernel is bit-for-bit deterministic.
//
// Notes:
//   - Kernels that can fail return plain sentinels wrapped via matrixErrorf.
//   - Kernels that cannot fail (Mul, Transpose, MulVec) return values only.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constant for unified error wrapping.
const opInverse = "Inverse"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b.
//
// Determinism:
//   - Fixed i→j→k loop order; each entry is summed k=0,1,2.
//
// Complexity:
//   - Time O(27), no allocation.
func Mul(a, b Mat3) Mat3 {
	var out Mat3
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			sum = ZeroSum
			for k = 0; k < Dim; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns the column product m·x.
func MulVec(m Mat3, x Vec3) Vec3 {
	return Vec3{m.Row(0).Dot(x), m.Row(1).Dot(x), m.Row(2).Dot(x)}
}

// Transpose returns mᵀ.
func Transpose(m Mat3) Mat3 {
	var out Mat3
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Det returns the determinant of m by cofactor expansion along the first row.
// Complexity: O(1) (fixed 9 multiplies per cofactor).
func Det(m Mat3) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Volume returns |det m|, the volume of the parallelepiped spanned by the rows of m.
func Volume(m Mat3) float64 { return math.Abs(Det(m)) }

// Inverse returns m⁻¹ computed as adj(m)/det(m).
// Implementation:
//   - Stage 1: Validate finiteness; compute det and reject det == 0.
//   - Stage 2: Build the adjugate (transposed cofactor matrix) and scale by 1/det.
//
// Behavior highlights:
//   - No pivot ordering: permutation and other zero-diagonal unimodular
//     matrices invert without special handling.
//   - For an integer matrix with det = ±1 the result is exactly integer, since
//     every cofactor is an integer and division by ±1 is exact.
//
// Errors:
//   - ErrNaNInf (non-finite input), ErrSingular (det == 0 or non-finite result).
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse(m Mat3) (Mat3, error) {
	if err := ValidateFinite(m); err != nil {
		return Mat3{}, matrixErrorf(opInverse, err)
	}
	det := Det(m)
	if det == 0 {
		return Mat3{}, matrixErrorf(opInverse, ErrSingular)
	}

	var adj Mat3
	adj[0][0] = m[1][1]*m[2][2] - m[1][2]*m[2][1]
	adj[0][1] = m[0][2]*m[2][1] - m[0][1]*m[2][2]
	adj[0][2] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	adj[1][0] = m[1][2]*m[2][0] - m[1][0]*m[2][2]
	adj[1][1] = m[0][0]*m[2][2] - m[0][2]*m[2][0]
	adj[1][2] = m[0][2]*m[1][0] - m[0][0]*m[1][2]
	adj[2][0] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	adj[2][1] = m[0][1]*m[2][0] - m[0][0]*m[2][1]
	adj[2][2] = m[0][0]*m[1][1] - m[0][1]*m[1][0]

	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			adj[i][j] /= det
		}
	}
	if err := ValidateFinite(adj); err != nil {
		// det underflowed relative to the cofactors.
		return Mat3{}, matrixErrorf(opInverse, ErrSingular)
	}

	return adj, nil
}
