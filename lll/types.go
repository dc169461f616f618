// Package lll provides tunable options, results and error definitions
// for lattice basis reduction.
package lll

import (
	"errors"
	"fmt"
	"math"

	"github.com/pmu2022/lsms/matrix"
)

// Defaults - single source of truth for zero-option behavior.
const (
	// DefaultDelta is the Lovász parameter δ. Must satisfy 1/4 < δ < 1.
	DefaultDelta = 0.75

	// DefaultMaxSteps caps the number of loop iterations before ErrDivergence.
	// Three-dimensional reductions of realistic cells finish in tens of steps.
	DefaultMaxSteps = 10000

	// DefaultTolerance is the relative threshold below which an orthogonal
	// component counts as collapsed: m[i] ≤ tol·‖a_i‖² ⇒ ErrDegenerateLattice.
	DefaultTolerance = 1e-12

	// CheckSlack is the relative slack Reduce grants its own self-check.
	CheckSlack = 1e-9
)

// Sentinel errors for lattice reduction.
var (
	// ErrDegenerateLattice is returned when the basis is singular or numerically
	// indistinguishable from singular.
	ErrDegenerateLattice = errors.New("lll: degenerate lattice")

	// ErrDivergence is returned when the reduction loop exceeds its step budget.
	ErrDivergence = errors.New("lll: reduction did not terminate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lll: invalid option supplied")

	// ErrNotSizeReduced is returned by Check when some |u[i][j]| exceeds 1/2.
	ErrNotSizeReduced = errors.New("lll: basis is not size-reduced")

	// ErrLovaszViolated is returned by Check when an adjacent pair fails the Lovász condition.
	ErrLovaszViolated = errors.New("lll: Lovász condition violated")
)

// Operation tags used when wrapping sentinels.
const (
	opReduce = "Reduce"
	opCheck  = "Check"
	opGS     = "GramSchmidt"
)

// lllErrorf wraps err with an operation tag, preserving it for errors.Is.
func lllErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Action tells what one reduction step did after size reduction.
type Action int

const (
	// Advance: the Lovász condition held and the pointer moved forward.
	Advance Action = iota

	// Swap: the pair was exchanged and the pointer moved back (never below 2).
	Swap
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case Advance:
		return "advance"
	case Swap:
		return "swap"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Step describes one iteration of the reduction loop, for tracing.
type Step struct {
	Iteration int    // 1-based iteration counter
	K         int    // progress pointer before the step (1-based, in [2,3])
	Action    Action // what the step did
	Updates   int    // number of size-reduction updates applied this step
	Swaps     int    // total swaps so far, including this step
}

// Option configures Reduce via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Reduce is invoked.
type Option func(*Options)

// Options holds the parameters of one reduction.
type Options struct {
	// Delta is the Lovász parameter δ ∈ (1/4, 1).
	Delta float64

	// MaxSteps bounds the loop; exceeding it yields ErrDivergence.
	MaxSteps int

	// Tolerance is the relative degeneracy threshold (see DefaultTolerance).
	Tolerance float64

	// OnStep, if non-nil, is called after every loop iteration.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with δ = 0.75, the default step budget,
// the default degeneracy tolerance and no hook.
func DefaultOptions() Options {
	return Options{
		Delta:     DefaultDelta,
		MaxSteps:  DefaultMaxSteps,
		Tolerance: DefaultTolerance,
	}
}

// WithDelta sets the Lovász parameter. δ must lie strictly between 1/4 and 1;
// δ = 1 risks non-termination under rounding.
func WithDelta(delta float64) Option {
	return func(o *Options) {
		if math.IsNaN(delta) || delta <= 0.25 || delta >= 1 {
			o.err = fmt.Errorf("%w: delta %v outside (0.25, 1)", ErrOptionViolation, delta)
			return
		}
		o.Delta = delta
	}
}

// WithMaxSteps sets the iteration budget. n must be positive.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max steps %d must be > 0", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithTolerance sets the relative degeneracy threshold. tol must be finite and in [0, 1).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
			o.err = fmt.Errorf("%w: tolerance %v outside [0, 1)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithStepHook installs a callback invoked after every loop iteration.
// A nil hook is ignored.
func WithStepHook(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result is the outcome of a successful reduction.
//
// Invariants:
//   - Reduced = Mapping · Lattice (rows are lattice vectors).
//   - Mapping is integer-valued with det(Mapping) = ±1.
//   - Inverse = Mapping⁻¹, also integer-valued.
type Result struct {
	Reduced matrix.Mat3
	Mapping matrix.Mat3
	Inverse matrix.Mat3

	Steps int // loop iterations
	Swaps int // column exchanges
}
