package pattern

import "math"

// TestSlope reports whether pattern p, when it would be used at the given
// tree depth, is consistent with the maximum allowed track slope. A width
// under 2 bins is always accepted (there is no meaningful slope to cut on
// at that resolution); otherwise the width is normalized by the bin-width
// doubling factor 2^depth and compared against maxSlope.
func TestSlope(p *Pattern, depth int, maxSlope float64) bool {
	width := p.Width()
	if width < 2 {
		return true
	}
	scale := float64(int64(1) << uint(depth))
	return math.Abs(float64(width-1)/scale) <= maxSlope
}

// LineCheck reports whether some straight line crosses every intermediate
// plane inside the bin occupied by p (no slope limit is applied here; that
// cut is TestSlope's), given the normalized plane z-positions z (len(z) ==
// p.N(), z[0] == 0, z[N-1] == 1). It assumes p.Bin(0) == 0, the
// canonical-origin invariant every stored Pattern satisfies.
//
// The arithmetic multiplies rather than divides to stay numerically
// stable near z == 0; callers relying on bit-exact reproduction of a
// reference tree must not reorder these operations.
func LineCheck(p *Pattern, z []float64) bool {
	n := p.N()
	xL := float64(p.Bin(n - 1))
	xRm1 := xL
	zL := z[n-1]
	zR := zL

	for i := n - 2; i > 0; i-- {
		pi := float64(p.Bin(i))

		dL := xL*z[i] - pi*zL
		if math.Abs(dL) >= zL {
			return false
		}
		dR := xRm1*z[i] - pi*zR
		if math.Abs(dR) >= zR {
			return false
		}

		if i > 1 {
			if dL > 0 {
				xRm1 = pi
				zR = z[i]
			}
			if dR < 0 {
				xL = pi
				zL = z[i]
			}
		}
	}

	return true
}
