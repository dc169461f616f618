// Package matrix offers fixed-size 3×3 linear algebra for lattice work.
//
// The matrix package provides:
//
//   - Vec3 and Mat3 value types (row-major, inline storage, no aliasing).
//   - Deterministic kernels: Mul, MulVec, Transpose, Det, Inverse.
//   - Validators for finite input and sentinel errors matched via errors.Is.
//
// Lattices are stored with one lattice vector per ROW. A fractional
// coordinate f is a row vector and its Cartesian position is f.MulMat(L).
//
// See the examples in this package and in lll and pbc for usage patterns.
package matrix
