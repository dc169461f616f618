package pbc

import (
	"fmt"

	"github.com/pmu2022/lsms/lll"
	"github.com/pmu2022/lsms/matrix"
)

// Cell is a periodic unit cell whose minimum-image queries run against an
// LLL-reduced copy of its basis. Fractional coordinates passed to a Cell are
// always relative to the ORIGINAL lattice.
type Cell struct {
	lattice matrix.Mat3
	red     lll.Result
}

// NewCell reduces lattice (rows are the cell vectors) once and returns a Cell
// ready for distance queries. opts are forwarded to lll.Reduce.
//
// Errors: anything lll.Reduce reports, wrapped with "NewCell".
func NewCell(lattice matrix.Mat3, opts ...lll.Option) (*Cell, error) {
	res, err := lll.Reduce(lattice, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewCell: %w", err)
	}

	return &Cell{lattice: lattice, red: *res}, nil
}

// MinimumImage returns the shortest displacement from f1 to any periodic
// image of f2. f1 and f2 are fractional in the original basis.
func (c *Cell) MinimumImage(f1, f2 matrix.Vec3) Displacement {
	return MinimumImage(c.red.Reduced, c.red.Inverse, f1, f2)
}

// Distance returns the minimum-image distance between f1 and f2.
func (c *Cell) Distance(f1, f2 matrix.Vec3) float64 {
	return c.MinimumImage(f1, f2).Distance
}

// ToCartesian maps a fractional coordinate to Cartesian: r = f · lattice.
func (c *Cell) ToCartesian(f matrix.Vec3) matrix.Vec3 {
	return f.MulMat(c.lattice)
}

// Lattice returns the original basis.
func (c *Cell) Lattice() matrix.Mat3 { return c.lattice }

// Reduction returns a copy of the reduction result backing the cell.
func (c *Cell) Reduction() lll.Result { return c.red }
