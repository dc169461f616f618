package lll_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/pmu2022/lsms/lll"
	"github.com/pmu2022/lsms/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triclinic is the lattice the reduction was first exercised on (rows are vectors).
var triclinic = matrix.Mat3{
	{2.0, 0.0, 0.0},
	{0.1, 1.8, 0.0},
	{0.1, 0.2, 0.9},
}

// assertUnimodular checks that m is integer-valued with det = ±1.
func assertUnimodular(t *testing.T, m matrix.Mat3) {
	t.Helper()
	assert.True(t, m.IsInteger(0), "mapping must be integer-valued: %v", m)
	assert.Equal(t, 1.0, math.Abs(matrix.Det(m)), "mapping must have det ±1: %v", m)
}

// assertEquivalent checks Reduced ≈ Mapping·lattice entrywise.
func assertEquivalent(t *testing.T, lattice matrix.Mat3, res *lll.Result, tol float64) {
	t.Helper()
	prod := matrix.Mul(res.Mapping, lattice)
	var i, j int
	for i = 0; i < matrix.Dim; i++ {
		for j = 0; j < matrix.Dim; j++ {
			assert.InDelta(t, prod[i][j], res.Reduced[i][j], tol, "entry (%d,%d)", i, j)
		}
	}
}

// skewedRandom returns a random lattice sheared by an integer lower-triangular matrix.
func skewedRandom(rng *rand.Rand) matrix.Mat3 {
	var base matrix.Mat3
	var i, j int
	for i = 0; i < matrix.Dim; i++ {
		for j = 0; j < matrix.Dim; j++ {
			base[i][j] = rng.Float64()*2 - 1
		}
	}
	shear := matrix.Mat3{
		{1, 0, 0},
		{float64(rng.Intn(19) - 9), 1, 0},
		{float64(rng.Intn(19) - 9), float64(rng.Intn(19) - 9), 1},
	}

	return matrix.Mul(shear, base)
}

func TestReduce_TriclinicCell(t *testing.T) {
	res, err := lll.Reduce(triclinic)
	require.NoError(t, err)

	// The shortest vector (0.1,0.2,0.9) moves to the front; no size reduction is needed.
	want := matrix.Mat3{
		{0.1, 0.2, 0.9},
		{2.0, 0.0, 0.0},
		{0.1, 1.8, 0.0},
	}
	assert.Equal(t, want, res.Reduced)
	assert.Equal(t, matrix.Mat3{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, res.Mapping)
	assert.Equal(t, matrix.Transpose(res.Mapping), res.Inverse, "permutation inverse is its transpose")
	assert.Equal(t, 2, res.Swaps)
	assert.Equal(t, 5, res.Steps)

	assertUnimodular(t, res.Mapping)
	assert.Equal(t, res.Reduced, matrix.Mul(res.Mapping, triclinic), "Reduced must equal Mapping·lattice exactly")
	assert.NoError(t, lll.Check(res.Reduced, lll.DefaultDelta, 0))
}

func TestReduce_DuplicateVectorsAreDegenerate(t *testing.T) {
	cases := map[string]matrix.Mat3{
		"identical rows": {{1, 2, 3}, {1, 2, 3}, {0, 0, 1}},
		"zero vector":    {{1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
		"coplanar":       {{1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		"near coplanar":  {{1, 0, 0}, {0, 1, 0}, {1, 1, 1e-9}},
		"zero first":     {{0, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	for name, lat := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := lll.Reduce(lat)
			assert.ErrorIs(t, err, lll.ErrDegenerateLattice)
			assert.Nil(t, res, "no partial result on a degenerate lattice")
		})
	}
}

func TestReduce_NonFiniteInput(t *testing.T) {
	lat := triclinic
	lat[1][2] = math.Inf(-1)
	_, err := lll.Reduce(lat)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestReduce_AlreadyReducedIsUntouched(t *testing.T) {
	cubic := matrix.Identity()
	res, err := lll.Reduce(cubic)
	require.NoError(t, err)
	assert.Equal(t, cubic, res.Reduced)
	assert.Equal(t, matrix.Identity(), res.Mapping)
	assert.Zero(t, res.Swaps)
	assert.Equal(t, 2, res.Steps, "one advance per adjacent pair")
}

func TestReduce_ShearedCubicRecoversUnitCell(t *testing.T) {
	sheared := matrix.Mat3{{1, 0, 0}, {10, 1, 0}, {0, 0, 1}}
	res, err := lll.Reduce(sheared)
	require.NoError(t, err)
	assert.Equal(t, matrix.Identity(), res.Reduced)
	assert.Equal(t, matrix.Mat3{{1, 0, 0}, {-10, 1, 0}, {0, 0, 1}}, res.Mapping)
	assert.Equal(t, sheared, res.Inverse, "inverse mapping re-creates the shear")
}

// TestReduce_LaterRowsRefreshedAfterSwap uses a lattice whose third row
// carries stale projection coefficients if only the swapped pair is
// recomputed; the result then fails size reduction.
func TestReduce_LaterRowsRefreshedAfterSwap(t *testing.T) {
	lat := matrix.Mat3{{2, 0, -2}, {2, -2, -3}, {-2, 3, -2}}
	res, err := lll.Reduce(lat)
	require.NoError(t, err)

	assert.Equal(t, matrix.Mat3{{0, -2, -1}, {2, 0, -2}, {-2, 1, -3}}, res.Reduced)
	assert.Equal(t, matrix.Mat3{{-1, 1, 0}, {1, 0, 0}, {-1, 1, 1}}, res.Mapping)
	assert.Equal(t, matrix.Mat3{{0, 1, 0}, {1, 1, 0}, {-1, 0, 1}}, res.Inverse)
	assert.Equal(t, 1, res.Swaps)
	assertUnimodular(t, res.Mapping)
	assert.NoError(t, lll.Check(res.Reduced, lll.DefaultDelta, 0))
}

func TestReduce_RandomSkewedLattices(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	var n int
	for n = 0; n < 500; n++ {
		lat := skewedRandom(rng)
		if math.Abs(matrix.Det(lat)) < 0.05 {
			continue
		}
		res, err := lll.Reduce(lat)
		require.NoError(t, err, "lattice %d: %v", n, lat)

		assertUnimodular(t, res.Mapping)
		assertEquivalent(t, lat, res, 1e-9)
		assert.Equal(t, matrix.Identity(), matrix.Mul(res.Mapping, res.Inverse))
		assert.NoError(t, lll.Check(res.Reduced, lll.DefaultDelta, lll.CheckSlack))
		assert.InDelta(t, math.Abs(matrix.Det(lat)), math.Abs(matrix.Det(res.Reduced)), 1e-9,
			"reduction preserves the cell volume")
	}
}

func TestReduce_Idempotent(t *testing.T) {
	lattices := map[string]matrix.Mat3{
		"triclinic": triclinic,
		"integer":   {{2, 0, -2}, {2, -2, -3}, {-2, 3, -2}},
		"hexagonal": {{3, 0, 0}, {13.5, 2.598076211353316, 0}, {-1.5, 7.794228634059948, 5}},
	}
	for name, lat := range lattices {
		t.Run(name, func(t *testing.T) {
			first, err := lll.Reduce(lat)
			require.NoError(t, err)
			second, err := lll.Reduce(first.Reduced)
			require.NoError(t, err)

			assert.Equal(t, first.Reduced, second.Reduced)
			assert.Equal(t, matrix.Identity(), second.Mapping)
			assert.Zero(t, second.Swaps)
		})
	}
}

func TestReduce_CustomDelta(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var n int
	for n = 0; n < 50; n++ {
		lat := skewedRandom(rng)
		if math.Abs(matrix.Det(lat)) < 0.05 {
			continue
		}
		res, err := lll.Reduce(lat, lll.WithDelta(0.99))
		require.NoError(t, err)
		assert.NoError(t, lll.Check(res.Reduced, 0.99, lll.CheckSlack))
	}
}

func TestReduce_StepBudgetExceeded(t *testing.T) {
	_, err := lll.Reduce(triclinic, lll.WithMaxSteps(4))
	assert.ErrorIs(t, err, lll.ErrDivergence)

	_, err = lll.Reduce(triclinic, lll.WithMaxSteps(5))
	assert.NoError(t, err, "exactly the needed number of steps must succeed")
}

func TestReduce_InvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  lll.Option
	}{
		{"delta one", lll.WithDelta(1)},
		{"delta quarter", lll.WithDelta(0.25)},
		{"delta NaN", lll.WithDelta(math.NaN())},
		{"zero steps", lll.WithMaxSteps(0)},
		{"negative tolerance", lll.WithTolerance(-1)},
		{"tolerance one", lll.WithTolerance(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lll.Reduce(triclinic, tc.opt)
			assert.ErrorIs(t, err, lll.ErrOptionViolation)
		})
	}
}

func TestReduce_ToleranceControlsDegeneracy(t *testing.T) {
	thin := matrix.Mat3{{1, 0, 0}, {0, 1, 0}, {1, 1, 1e-4}}

	_, err := lll.Reduce(thin)
	require.NoError(t, err, "sin² ≈ 5e-9 is above the default threshold")

	_, err = lll.Reduce(thin, lll.WithTolerance(1e-6))
	assert.ErrorIs(t, err, lll.ErrDegenerateLattice)
}

func TestReduce_StepHook(t *testing.T) {
	var steps []lll.Step
	res, err := lll.Reduce(triclinic, lll.WithStepHook(func(s lll.Step) { steps = append(steps, s) }))
	require.NoError(t, err)
	require.Len(t, steps, res.Steps)

	var swaps int
	for i, s := range steps {
		assert.Equal(t, i+1, s.Iteration)
		assert.GreaterOrEqual(t, s.K, 2)
		assert.LessOrEqual(t, s.K, 3)
		if s.Action == lll.Swap {
			swaps++
		}
		assert.Equal(t, swaps, s.Swaps)
	}
	assert.Equal(t, res.Swaps, swaps)
	assert.Equal(t, lll.Advance, steps[len(steps)-1].Action, "the loop ends on an advance")
	assert.Equal(t, "swap", lll.Swap.String())
	assert.Equal(t, "advance", lll.Advance.String())
}

func TestReduce_ConcurrentCallsAreIndependent(t *testing.T) {
	want, err := lll.Reduce(triclinic)
	require.NoError(t, err)

	const workers = 8
	results := make(chan *lll.Result, workers)
	var w int
	for w = 0; w < workers; w++ {
		go func() {
			res, err := lll.Reduce(triclinic)
			if err != nil {
				results <- nil
				return
			}
			results <- res
		}()
	}
	for w = 0; w < workers; w++ {
		assert.Equal(t, want, <-results, fmt.Sprintf("worker %d", w))
	}
}
