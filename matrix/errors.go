// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep for.
// DO NOT %w wrap these sentinels when defining them; wrap at the call site with
// fmt.Errorf("ctx: %w", ErrX) and callers still match with errors.Is.

var (
	// ErrBadShape is returned when input rows do not form a 3×3 (or length-3) shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a matrix has a zero determinant and cannot be inverted.
	ErrSingular = errors.New("matrix: singular matrix")
)
