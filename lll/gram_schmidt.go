package lll

import (
	"fmt"

	"github.com/pmu2022/lsms/matrix"
)

// GSState is the Gram–Schmidt state of a column basis a.
//
//	B[0] = a[0]
//	B[i] = a[i] - Σ_{j<i} U[i][j]·B[j]
//	U[i][j] = (a[i]·B[j]) / M[j]      (j < i; U is strictly lower triangular)
//	M[i] = ‖B[i]‖²
//
// B holds pure projections, not reduced basis vectors.
type GSState struct {
	B [matrix.Dim]matrix.Vec3
	M matrix.Vec3
	U matrix.Mat3
}

// GramSchmidt returns the Gram–Schmidt state of a lattice whose ROWS are the
// basis vectors. It fails with ErrDegenerateLattice when an orthogonal
// component collapses relative to its vector (see DefaultTolerance).
func GramSchmidt(lattice matrix.Mat3) (GSState, error) {
	var s GSState
	if err := matrix.ValidateFinite(lattice); err != nil {
		return s, lllErrorf(opGS, err)
	}
	if err := s.init(matrix.Transpose(lattice), DefaultTolerance); err != nil {
		return GSState{}, lllErrorf(opGS, err)
	}

	return s, nil
}

// init computes the full state for column basis a.
func (s *GSState) init(a matrix.Mat3, tol float64) error {
	var i int
	for i = 0; i < matrix.Dim; i++ {
		if err := s.refresh(a, i, tol); err != nil {
			return err
		}
	}

	return nil
}

// refresh recomputes row i of the state from column a[i] and B[0..i-1].
// Coefficients are all taken against the current B first; the projection sum
// is then subtracted in one go.
func (s *GSState) refresh(a matrix.Mat3, i int, tol float64) error {
	ai := a.Col(i)

	var j int
	for j = 0; j < i; j++ {
		s.U[i][j] = ai.Dot(s.B[j]) / s.M[j]
	}
	for j = i; j < matrix.Dim; j++ {
		s.U[i][j] = 0
	}

	var proj matrix.Vec3
	for j = 0; j < i; j++ {
		proj = proj.Add(s.B[j].Scale(s.U[i][j]))
	}
	s.B[i] = ai.Sub(proj)
	s.M[i] = s.B[i].Norm2()

	// Relative collapse: sin²(angle between a[i] and span(a[0..i-1])) ≤ tol.
	if s.M[i] <= tol*ai.Norm2() || s.M[i] == 0 {
		return fmt.Errorf("vector %d: orthogonal norm² %g: %w", i, s.M[i], ErrDegenerateLattice)
	}

	return nil
}
