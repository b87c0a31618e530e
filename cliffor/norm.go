// Package cliffor: norms, signum and ordering.
//
// Abs and Lsv are the largest and smallest singular values of the element
// in its 2×2 complex-matrix representation. With m = Σ aᵢ² (the sum of all
// eight squared coefficients) and d = z0² − Z·Z (the complex scalar that
// c·Bar(c) collapses to), the squared singular values are
//
//	λ± = m ± √(m² − |d|²),
//
// so Abs = √λ₊ and Lsv = √λ₋. Sub-algebra shapes keep their closed-form
// fast paths (they are trivially correct and dominate real workloads).

package cliffor

import "math"

// sumSquares returns the sum of all eight squared coefficients.
func (c Cliffor) sumSquares() float64 {
	var m float64
	for _, x := range c.a {
		m += x * x
	}

	return m
}

// barDet returns the complex scalar z0² − Z·Z, i.e. the value that
// c·Bar(c) collapses to in the grade-0,3 sub-algebra.
func (c Cliffor) barDet() complex128 {
	z0, z := c.spinor()

	return z0*z0 - (z[0]*z[0] + z[1]*z[1] + z[2]*z[2])
}

// singularSquares returns (λ₊, λ₋), the squared singular values, clamping
// the radicand at zero against rounding.
func (c Cliffor) singularSquares() (float64, float64) {
	m := c.sumSquares()
	d := c.barDet()
	rad := m*m - (real(d)*real(d) + imag(d)*imag(d))
	if rad < 0 {
		rad = 0
	}
	s := math.Sqrt(rad)

	lo := m - s
	if lo < 0 {
		lo = 0
	}

	return m + s, lo
}

// Abs returns the largest singular value of c: a non-negative real
// magnitude, the primary ordering key. NewV3(3, 4, 0).Abs() == 5.
func (c Cliffor) Abs() float64 {
	switch c.variant {
	case R:
		return math.Abs(c.a[ixA0])
	case I:
		return math.Abs(c.a[ixA123])
	case V3, BV, H, C:
		// Both singular values coincide for these shapes.
		return math.Sqrt(c.sumSquares())
	default:
		hi, _ := c.singularSquares()

		return math.Sqrt(hi)
	}
}

// Lsv returns the smallest singular value of c: the secondary ordering
// key, and zero exactly for non-invertible elements.
func (c Cliffor) Lsv() float64 {
	switch c.variant {
	case R:
		return math.Abs(c.a[ixA0])
	case I:
		return math.Abs(c.a[ixA123])
	case V3, BV, H, C:
		return math.Sqrt(c.sumSquares())
	default:
		_, lo := c.singularSquares()

		return math.Sqrt(lo)
	}
}

// Signum returns c scaled to unit magnitude (Abs == 1), preserving the
// variant. The exact zero element (Abs() == 0, not merely below Tol) maps
// to the zero scalar; the exact-zero test is deliberate — a tolerance
// here interacts badly with the spectral decomposition of near-zero
// directional parts.
func (c Cliffor) Signum() Cliffor {
	n := c.Abs()
	if n == 0 {
		return Zero()
	}

	return c.Scale(1 / n)
}

// Compare orders c against o by Abs, breaking ties by Lsv. It returns
// −1, 0 or +1.
//
// Compare is a total preorder, not a total order: distinct, non-Equal
// values may compare 0 (any two values related by unitary left/right
// multiplication share both singular values). NaN magnitudes compare 0
// against everything, per IEEE comparison semantics.
func (c Cliffor) Compare(o Cliffor) int {
	ca, oa := c.Abs(), o.Abs()
	switch {
	case ca < oa:
		return -1
	case ca > oa:
		return 1
	}

	cl, ol := c.Lsv(), o.Lsv()
	switch {
	case cl < ol:
		return -1
	case cl > ol:
		return 1
	}

	return 0
}
