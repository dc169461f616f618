package lll

import (
	"fmt"
	"math"

	"github.com/pmu2022/lsms/matrix"
)

// Check verifies that a basis (rows are vectors) is LLL-reduced for delta.
//
// A fresh Gram–Schmidt state is computed and two conditions are tested:
//   - size reduction: |U[i][j]| ≤ 1/2 + slack for every j < i;
//   - Lovász: M[k] ≥ (δ − U[k][k-1]²)·M[k-1]·(1 − slack) for k = 1, 2.
//
// slack absorbs rounding between the incremental state Reduce maintains and
// the recomputed one. It must be finite and non-negative.
//
// Errors:
//   - ErrOptionViolation (bad delta or slack), ErrDegenerateLattice,
//     ErrNotSizeReduced, ErrLovaszViolated.
func Check(basis matrix.Mat3, delta, slack float64) error {
	return check(basis, delta, slack, DefaultTolerance)
}

func check(basis matrix.Mat3, delta, slack, tol float64) error {
	if math.IsNaN(delta) || delta <= 0.25 || delta >= 1 {
		return lllErrorf(opCheck, fmt.Errorf("%w: delta %v outside (0.25, 1)", ErrOptionViolation, delta))
	}
	if math.IsNaN(slack) || math.IsInf(slack, 0) || slack < 0 {
		return lllErrorf(opCheck, fmt.Errorf("%w: slack %v must be finite and >= 0", ErrOptionViolation, slack))
	}
	if err := matrix.ValidateFinite(basis); err != nil {
		return lllErrorf(opCheck, err)
	}

	var gs GSState
	if err := gs.init(matrix.Transpose(basis), tol); err != nil {
		return lllErrorf(opCheck, err)
	}

	var i, j int
	for i = 1; i < matrix.Dim; i++ {
		for j = 0; j < i; j++ {
			if math.Abs(gs.U[i][j]) > sizeBound+slack {
				return lllErrorf(opCheck, fmt.Errorf("u[%d][%d] = %g: %w", i, j, gs.U[i][j], ErrNotSizeReduced))
			}
		}
	}
	var mu float64
	for i = 1; i < matrix.Dim; i++ {
		mu = gs.U[i][i-1]
		if gs.M[i] < (delta-mu*mu)*gs.M[i-1]*(1-slack) {
			return lllErrorf(opCheck, fmt.Errorf("pair (%d,%d): m=%g < (δ-u²)·m'=%g: %w",
				i-1, i, gs.M[i], (delta-mu*mu)*gs.M[i-1], ErrLovaszViolated))
		}
	}

	return nil
}
