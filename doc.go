// Package lsms is the crystal-geometry core of a multiple-scattering
// electronic-structure code: it turns an arbitrary lattice basis into a
// short, nearly orthogonal one and answers minimum-image distance queries
// between atomic sites under periodic boundary conditions.
//
// 🚀 What is inside?
//
//	• matrix/    : fixed-size 3×3 kernels (Vec3, Mat3, Det, Inverse, rounding)
//	• lll/       : Lenstra–Lenstra–Lovász reduction with an integer unimodular mapping
//	• pbc/       : 27-image minimum-image search and the reduced Cell
//	• structure/ : lattice + sites, cached reduction, neighbour lists, YAML loading
//	• cmd/lsms-lattice : command-line front end for all of the above
//
// ✨ Conventions
//
//   - Lattice vectors are the ROWS of a Mat3; a fractional point f sits at
//     r = f · L in Cartesian space.
//   - Reduce returns Reduced = Mapping · L with Mapping integer and
//     det(Mapping) = ±1; fractional coordinates move to the reduced frame as
//     f · Mapping⁻¹.
//   - Every operation is a pure function of its inputs; nothing blocks and
//     nothing is shared between calls.
//
// Quick ASCII example:
//
//	     b (10,1)                         b' (0,1)
//	     ╱                                │
//	    ╱            ── Reduce ──▶        │
//	   ╱                                  │
//	  o──── a (1,0)                       o──── a' (1,0)
//
//	the same square lattice, written with a long skewed vector and with
//	its reduced basis.
//
//	go get github.com/pmu2022/lsms
package lsms
