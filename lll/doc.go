// Package lll reduces three-dimensional lattice bases with the
// Lenstra–Lenstra–Lovász algorithm.
//
// 🚀 What is LLL reduction?
//
//	A lattice is every integer combination of its basis vectors. Many bases
//	describe the same lattice; some are long and nearly parallel, others
//	short and nearly orthogonal. LLL walks from the former to the latter
//	using only integer column operations, so the lattice never changes.
//	The result is what periodic-image searches need:
//	  • short, near-orthogonal vectors of comparable length
//	  • an integer unimodular Mapping certifying the equivalence
//
// ✨ Key features:
//   - fixed reduction parameter δ (default 0.75, WithDelta to override)
//   - integer bookkeeping carried exactly in float64 (round-half-to-even)
//   - step guard (WithMaxSteps) so floating-point pathologies fail loudly
//   - degeneracy detection (ErrDegenerateLattice) before any result is built
//   - self-check: every returned basis is verified by Check
//   - optional step hook for tracing (WithStepHook)
//
// ⚙️ Usage:
//
//	import "github.com/pmu2022/lsms/lll"
//
//	res, err := lll.Reduce(lattice)          // rows of lattice are vectors
//	if err != nil {
//	  // ErrDegenerateLattice, ErrDivergence, ErrOptionViolation, ...
//	}
//	// res.Reduced == res.Mapping · lattice
//	// fractional coords in the reduced frame: f.MulMat(res.Inverse)
//
// Conventions:
//
//	The public API uses rows for lattice vectors. Internally the algorithm
//	runs on columns (a = latticeᵀ) and converts back before returning.
//
// Performance:
//
//   - Time:   O(steps) with O(1) work per step; steps is small for d = 3
//   - Memory: O(1), all state lives in fixed-size arrays
//
// Reduce is a pure function of its input and options; concurrent calls on
// distinct inputs need no coordination.
package lll
