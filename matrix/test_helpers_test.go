// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pmu2022/lsms/matrix"
	"gonum.org/v1/gonum/mat"
)

// MustFromRows builds a Mat3 from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) matrix.Mat3 {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// RandMat3 RETURNS a Mat3 filled with deterministic U(-1,1) values by seed.
func RandMat3(seed int64) matrix.Mat3 {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Mat3
	var i, j int
	for i = 0; i < matrix.Dim; i++ {
		for j = 0; j < matrix.Dim; j++ {
			m[i][j] = rng.Float64()*2 - 1
		}
	}

	return m
}

// toGonum copies m into a gonum Dense used as an independent oracle.
func toGonum(m matrix.Mat3) *mat.Dense {
	return mat.NewDense(matrix.Dim, matrix.Dim, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// CompareClose fails if any entry of a and got differs by more than atol+rtol*|a|.
func CompareClose(t *testing.T, want *mat.Dense, got matrix.Mat3, rtol, atol float64) {
	t.Helper()
	var i, j int
	for i = 0; i < matrix.Dim; i++ {
		for j = 0; j < matrix.Dim; j++ {
			w := want.At(i, j)
			diff := math.Abs(w - got[i][j])
			limit := atol + rtol*math.Abs(w)
			if diff > limit {
				t.Fatalf("entry (%d,%d): want %g, got %g (|diff|=%g > %g)", i, j, w, got[i][j], diff, limit)
			}
		}
	}
}
