// Package structure defines the Structure type: a periodic lattice together
// with its atomic sites, and the minimum-image distance queries over it.
//
// The lattice is reduced at most once, on the first distance query, and the
// result (or failure) is cached for the lifetime of the Structure. A Structure
// is immutable and safe for concurrent use.
//
// Errors:
//
//	ErrLengthMismatch - coords and species have different lengths.
//	ErrSiteIndex      - a site index is out of range.
//	ErrBadCutoff      - a neighbour cutoff is not a positive finite number.
//	ErrEmptyDocument  - a structure document has no lattice.
package structure

import (
	"errors"
	"sync"

	"github.com/pmu2022/lsms/lll"
	"github.com/pmu2022/lsms/matrix"
	"github.com/pmu2022/lsms/pbc"
)

// Sentinel errors for structure operations.
var (
	// ErrLengthMismatch indicates coords and species do not pair up one-to-one.
	ErrLengthMismatch = errors.New("structure: coords and species length mismatch")

	// ErrSiteIndex indicates a site index outside [0, Len()).
	ErrSiteIndex = errors.New("structure: site index out of range")

	// ErrBadCutoff indicates a neighbour cutoff that is not positive and finite.
	ErrBadCutoff = errors.New("structure: cutoff must be positive and finite")

	// ErrEmptyDocument indicates a decoded document without a lattice.
	ErrEmptyDocument = errors.New("structure: document has no lattice")
)

// Structure is a periodic cell with fractional site coordinates.
type Structure struct {
	lattice matrix.Mat3
	coords  []matrix.Vec3
	species []int
	opts    []lll.Option

	once    sync.Once
	cell    *pbc.Cell
	cellErr error
}

// Neighbor is one entry of a neighbour list.
type Neighbor struct {
	// Index is the neighbouring site.
	Index int

	// Species is the species code of that site.
	Species int

	// Displacement is the minimum-image vector from the centre to Index.
	Displacement pbc.Displacement
}
