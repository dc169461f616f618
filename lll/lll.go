package lll

import (
	"fmt"
	"math"

	"github.com/pmu2022/lsms/matrix"
)

// sizeBound is the size-reduction threshold: |u| > 1/2 triggers an integer update.
const sizeBound = 0.5

// Reduce performs LLL reduction of a 3-dimensional lattice.
//
// Description:
//
//	Reduce returns a basis of the same lattice whose vectors are short and
//	nearly orthogonal, together with the integer unimodular Mapping such
//	that Reduced = Mapping · lattice. Rows of lattice are the basis vectors.
//
// Algorithm Outline (1-based pointer k, column basis a = latticeᵀ):
//  1. Gram–Schmidt state (B, M, U) from a; Mapping = I; k = 2.
//  2. While k ≤ 3:
//     a. size reduction: for i = k-1 down to 1, if |U[k-1][i-1]| > 1/2,
//     q = round(U[k-1][i-1]); a[k-1] -= q·a[i-1] (same on Mapping);
//     U[k-1][0..i-2] -= q·U[i-1][0..i-2]; U[k-1][i-1] -= q.
//     b. Lovász test: M[k-1] ≥ (δ − U[k-1][k-2]²)·M[k-2] ⇒ k++.
//     c. otherwise swap a[k-1], a[k-2] (same on Mapping), recompute the
//     state from row k-2 onward, and k-- if k > 2.
//  3. Reduced = aᵀ, Mapping = Mᵀ.
//
// The pointer moves backwards after a swap because the swap can break the
// property already established for the previous pair. Termination follows
// from δ < 1: every swap shrinks Π M[i] by a factor below δ.
//
// Errors:
//   - ErrOptionViolation: invalid Option.
//   - matrix.ErrNaNInf: non-finite input.
//   - ErrDegenerateLattice: singular or near-singular basis.
//   - ErrDivergence: more than MaxSteps iterations.
//   - ErrNotSizeReduced, ErrLovaszViolated: the result failed its self-check.
//
// Complexity:
//
//	Time   = O(steps), O(1) per step
//	Memory = O(1)
func Reduce(lattice matrix.Mat3, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateFinite(lattice); err != nil {
		return nil, lllErrorf(opReduce, err)
	}

	// Column representation: a.Col(i) is lattice vector i.
	a := matrix.Transpose(lattice)
	var gs GSState
	if err := gs.init(a, o.Tolerance); err != nil {
		return nil, lllErrorf(opReduce, err)
	}

	mapping := matrix.Identity()
	var (
		k       = 2 // 1-based progress pointer
		steps   int
		swaps   int
		r, i, j int
		q       float64
		updates int
	)
	for k <= matrix.Dim {
		if steps >= o.MaxSteps {
			return nil, lllErrorf(opReduce, fmt.Errorf("%w after %d steps (%d swaps)", ErrDivergence, steps, swaps))
		}
		steps++
		r = k - 1 // 0-based row under reduction
		updates = 0

		// Size reduction of row r against rows r-1 … 0.
		for i = r - 1; i >= 0; i-- {
			if math.Abs(gs.U[r][i]) <= sizeBound {
				continue
			}
			q = math.RoundToEven(gs.U[r][i])
			a.SetCol(r, a.Col(r).Sub(a.Col(i).Scale(q)))
			mapping.SetCol(r, mapping.Col(r).Sub(mapping.Col(i).Scale(q)))
			for j = 0; j < i; j++ {
				gs.U[r][j] -= q * gs.U[i][j]
			}
			gs.U[r][i] -= q
			updates++
		}

		// Lovász test on the pair (r-1, r).
		mu := gs.U[r][r-1]
		if gs.M[r] >= (o.Delta-mu*mu)*gs.M[r-1] {
			k++
			notify(o.OnStep, Step{Iteration: steps, K: r + 1, Action: Advance, Updates: updates, Swaps: swaps})
			continue
		}

		a.SwapCols(r, r-1)
		mapping.SwapCols(r, r-1)
		swaps++
		// Rows after the pair project onto the swapped B vectors too, so
		// everything from r-1 onward is recomputed.
		for j = r - 1; j < matrix.Dim; j++ {
			if err := gs.refresh(a, j, o.Tolerance); err != nil {
				return nil, lllErrorf(opReduce, err)
			}
		}
		if k > 2 {
			k--
		}
		notify(o.OnStep, Step{Iteration: steps, K: r + 1, Action: Swap, Updates: updates, Swaps: swaps})
	}

	return finalize(a, mapping, o, steps, swaps)
}

// finalize converts the column state back to rows, derives the inverse
// mapping and verifies the reduction predicate on the result.
func finalize(a, mapping matrix.Mat3, o Options, steps, swaps int) (*Result, error) {
	res := &Result{
		Reduced: matrix.Transpose(a),
		Mapping: matrix.Transpose(mapping).Round(),
		Steps:   steps,
		Swaps:   swaps,
	}

	inv, err := matrix.Inverse(res.Mapping)
	if err != nil {
		return nil, lllErrorf(opReduce, err)
	}
	res.Inverse = inv.Round()

	if err = check(res.Reduced, o.Delta, CheckSlack, o.Tolerance); err != nil {
		return nil, lllErrorf(opReduce, err)
	}

	return res, nil
}

// notify calls fn with s when a hook is installed.
func notify(fn func(Step), s Step) {
	if fn != nil {
		fn(s)
	}
}
