// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for numeric input checks.
//  - Keep kernels minimal by delegating finiteness checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ValidateFinite ensures every entry of m is finite.
// Returns wrapped ErrNaNInf naming the first offending cell in i→j order.
// Complexity: O(9).
func ValidateFinite(m Mat3) error {
	var i, j int
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if isNonFinite(m[i][j]) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec ensures every component of v is finite.
func ValidateFiniteVec(v Vec3) error {
	var i int
	for i = 0; i < Dim; i++ {
		if isNonFinite(v[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec(%d)", i), ErrNaNInf)
		}
	}

	return nil
}
