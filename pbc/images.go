package pbc

import "github.com/pmu2022/lsms/matrix"

// NumImages is the number of candidate translations searched per query.
const NumImages = 27

// Offset is an integer lattice translation in fractional units.
type Offset [matrix.Dim]int

// Vec returns o as a real vector.
func (o Offset) Vec() matrix.Vec3 {
	return matrix.Vec3{float64(o[0]), float64(o[1]), float64(o[2])}
}

// images holds {-1,0,1}³ in lexicographic order: (-1,-1,-1) first, (1,1,1)
// last, (0,0,0) at index 13.
var images = func() [NumImages]Offset {
	var out [NumImages]Offset
	var n, i, j, k int
	for i = -1; i <= 1; i++ {
		for j = -1; j <= 1; j++ {
			for k = -1; k <= 1; k++ {
				out[n] = Offset{i, j, k}
				n++
			}
		}
	}

	return out
}()

// Images returns the 27 candidate offsets in search order.
// Ties in MinimumImage are broken by this order: the first minimum wins.
func Images() [NumImages]Offset { return images }
