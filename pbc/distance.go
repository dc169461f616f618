package pbc

import (
	"math"

	"github.com/pmu2022/lsms/matrix"
)

// Displacement is the result of a minimum-image query.
type Displacement struct {
	// Vector is the Cartesian displacement from the first point to the
	// nearest image of the second.
	Vector matrix.Vec3

	// Distance is ‖Vector‖.
	Distance float64

	// Image is the winning offset, expressed in the reduced frame and
	// applied after both points were wrapped into the home cell.
	Image Offset
}

// Wrap maps every component of a fractional coordinate into [0, 1).
// Values a hair below an integer whose floor rounds back to 1 are folded to 0.
func Wrap(f matrix.Vec3) matrix.Vec3 {
	w := f.Sub(f.Floor())
	var i int
	for i = 0; i < matrix.Dim; i++ {
		if w[i] >= 1 {
			w[i] = 0
		}
	}

	return w
}

// MinimumImage returns the shortest displacement from f1 to any periodic
// image of f2.
//
// Inputs:
//   - reduced: lattice basis with vectors as rows, ordinarily LLL-reduced.
//   - inverse: maps fractional coordinates of the ORIGINAL basis into the
//     frame of reduced (lll.Result.Inverse). Pass matrix.Identity() when f1
//     and f2 are already expressed in the reduced basis.
//   - f1, f2: fractional coordinates; any range is accepted.
//
// Algorithm:
//  1. g = Wrap(f · inverse) for both points.
//  2. pre = g2·R − g1·R.
//  3. For each of the 27 offsets o, d = pre + o·R; keep the strictly smallest ‖d‖².
//
// The 27-cell search is exact only when reduced is well-conditioned; with an
// arbitrary skewed basis the true nearest image may be farther away.
//
// Complexity: O(27).
func MinimumImage(reduced, inverse matrix.Mat3, f1, f2 matrix.Vec3) Displacement {
	g1 := Wrap(f1.MulMat(inverse))
	g2 := Wrap(f2.MulMat(inverse))
	pre := g2.MulMat(reduced).Sub(g1.MulMat(reduced))

	best := math.Inf(1)
	var (
		bestVec matrix.Vec3
		bestOff Offset
		d       matrix.Vec3
		d2      float64
	)
	for _, o := range images {
		d = pre.Add(o.Vec().MulMat(reduced))
		d2 = d.Norm2()
		if d2 < best {
			best, bestVec, bestOff = d2, d, o
		}
	}

	return Displacement{Vector: bestVec, Distance: math.Sqrt(best), Image: bestOff}
}

// Distance returns MinimumImage(...).Distance.
func Distance(reduced, inverse matrix.Mat3, f1, f2 matrix.Vec3) float64 {
	return MinimumImage(reduced, inverse, f1, f2).Distance
}
