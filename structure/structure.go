package structure

import (
	"fmt"
	"math"
	"sort"

	"github.com/pmu2022/lsms/lll"
	"github.com/pmu2022/lsms/matrix"
	"github.com/pmu2022/lsms/pbc"
)

// New builds a Structure from a lattice (rows are cell vectors), fractional
// site coordinates and per-site species codes. opts are forwarded to the
// lattice reduction performed on the first distance query.
//
// New copies its slices; later changes by the caller do not affect the Structure.
func New(lattice matrix.Mat3, coords []matrix.Vec3, species []int, opts ...lll.Option) (*Structure, error) {
	if len(coords) != len(species) {
		return nil, fmt.Errorf("New: %d coords, %d species: %w", len(coords), len(species), ErrLengthMismatch)
	}
	if err := matrix.ValidateFinite(lattice); err != nil {
		return nil, fmt.Errorf("New: lattice: %w", err)
	}
	for i, c := range coords {
		if err := matrix.ValidateFiniteVec(c); err != nil {
			return nil, fmt.Errorf("New: site %d: %w", i, err)
		}
	}

	return &Structure{
		lattice: lattice,
		coords:  append([]matrix.Vec3(nil), coords...),
		species: append([]int(nil), species...),
		opts:    opts,
	}, nil
}

// Cell returns the reduced periodic cell, reducing the lattice on first use.
// A reduction failure is remembered and returned on every call.
func (s *Structure) Cell() (*pbc.Cell, error) {
	s.once.Do(func() {
		s.cell, s.cellErr = pbc.NewCell(s.lattice, s.opts...)
	})

	return s.cell, s.cellErr
}

// GetDistances returns the minimum-image displacement from f1 to f2, both
// fractional in the structure's lattice.
func (s *Structure) GetDistances(f1, f2 matrix.Vec3) (pbc.Displacement, error) {
	cell, err := s.Cell()
	if err != nil {
		return pbc.Displacement{}, err
	}

	return cell.MinimumImage(f1, f2), nil
}

// SiteDistance returns the minimum-image displacement from site i to site j.
func (s *Structure) SiteDistance(i, j int) (pbc.Displacement, error) {
	if err := s.checkIndex(i); err != nil {
		return pbc.Displacement{}, err
	}
	if err := s.checkIndex(j); err != nil {
		return pbc.Displacement{}, err
	}

	return s.GetDistances(s.coords[i], s.coords[j])
}

// Neighbors lists every other site whose minimum-image distance from site i
// is at most cutoff, nearest first; equal distances keep index order.
//
// Only the nearest image of each site is considered, so a cutoff larger than
// half the shortest reduced cell vector can miss farther copies.
func (s *Structure) Neighbors(i int, cutoff float64) ([]Neighbor, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) || cutoff <= 0 {
		return nil, fmt.Errorf("Neighbors: cutoff %v: %w", cutoff, ErrBadCutoff)
	}
	cell, err := s.Cell()
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, 0)
	for j, c := range s.coords {
		if j == i {
			continue
		}
		d := cell.MinimumImage(s.coords[i], c)
		if d.Distance <= cutoff {
			out = append(out, Neighbor{Index: j, Species: s.species[j], Displacement: d})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Displacement.Distance < out[b].Displacement.Distance
	})

	return out, nil
}

// Len returns the number of sites.
func (s *Structure) Len() int { return len(s.coords) }

// Lattice returns the cell vectors as rows.
func (s *Structure) Lattice() matrix.Mat3 { return s.lattice }

// Coords returns a copy of the fractional site coordinates.
func (s *Structure) Coords() []matrix.Vec3 { return append([]matrix.Vec3(nil), s.coords...) }

// Species returns a copy of the species codes.
func (s *Structure) Species() []int { return append([]int(nil), s.species...) }

// Volume returns |det(lattice)|.
func (s *Structure) Volume() float64 { return matrix.Volume(s.lattice) }

func (s *Structure) checkIndex(i int) error {
	if i < 0 || i >= len(s.coords) {
		return fmt.Errorf("site %d of %d: %w", i, len(s.coords), ErrSiteIndex)
	}

	return nil
}
