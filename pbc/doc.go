// Package pbc computes minimum-image displacements under periodic boundary
// conditions in three dimensions.
//
// 🚀 What is the minimum image?
//
//	In a periodic crystal every point has infinitely many copies, one per
//	lattice translation. The physical separation of two sites is the
//	shortest vector between one site and ANY copy of the other.
//
// How it works:
//
//	MinimumImage re-expresses both fractional points in the frame of an
//	LLL-reduced basis, wraps them into the home cell, and tries the 27
//	neighbouring translations {-1,0,1}³. For a reduced basis those 27 cells
//	are enough; for a long, skewed basis the nearest copy can sit several
//	cells away, which is why Cell always reduces first.
//
// ⚙️ Usage:
//
//	cell, err := pbc.NewCell(lattice)   // rows of lattice are vectors
//	if err != nil {
//	  // lll.ErrDegenerateLattice, ...
//	}
//	d := cell.MinimumImage(f1, f2)
//	fmt.Println(d.Vector, d.Distance)
//
// Everything here is a pure function of its inputs; a Cell is immutable
// after construction and safe for concurrent use.
package pbc
