// Package cliffor: the graded arithmetic engine.
//
// Addition is a per-component sum landing on the minimal variant spanning
// the union of the operands' grade supports. The geometric product is
// computed once over the full 8-coefficient embedding in complex-
// paravector form and then masked onto a result variant precomputed per
// ordered variant pair from the Cl(3,0) grade-multiplication rules — a
// dense 11×11 table standing in for the 121 hand-specialized cases.
//
// Complex-paravector form: with i = e123 (central, i² = −1) every element
// is z0 + Z·e where z0 = a0 + i·a123 and Z_k = a_k + i·a_dual(k)
// (e23 = i·e1, e31 = i·e2, e12 = i·e3). The basis relation
// e_k·e_l = δ_kl + i·ε_klm·e_m collapses the whole multiplication table to
//
//	(z0 + Z·e)(w0 + W·e) = z0·w0 + Z·W + (z0·W + w0·Z + i·Z×W)·e.

package cliffor

// mulVariant[v1][v2] is the result variant of the geometric product of a
// v1-shaped element by a v2-shaped element: the minimal variant spanning
// every grade reachable from the operands' grade pairs.
var mulVariant [NumVariants][NumVariants]Variant

func init() {
	for v1 := 0; v1 < NumVariants; v1++ {
		for v2 := 0; v2 < NumVariants; v2++ {
			var m uint8
			for g1 := 0; g1 < 4; g1++ {
				if variantMask[v1]&(1<<g1) == 0 {
					continue
				}
				for g2 := 0; g2 < 4; g2++ {
					if variantMask[v2]&(1<<g2) == 0 {
						continue
					}
					m |= gradeProductMask(g1, g2)
				}
			}
			mulVariant[v1][v2] = minimalVariant[m]
		}
	}
}

// gradeProductMask reports the grades present in the product of a pure
// grade-r blade by a pure grade-s blade in Cl(3,0): every grade from
// |r−s| up to min(r+s, 6−r−s) in steps of 2 (the upper bound folds in the
// pseudoscalar duality of the 3-dimensional algebra).
func gradeProductMask(r, s int) uint8 {
	lo := r - s
	if lo < 0 {
		lo = -lo
	}
	hi := r + s
	if dual := 6 - r - s; dual < hi {
		hi = dual
	}

	var m uint8
	for g := lo; g <= hi; g += 2 {
		m |= 1 << g
	}

	return m
}

// Add returns c + o: the per-component sum on the minimal variant whose
// grade support is the union of both operands' supports. No reduction is
// performed, even when a resulting coefficient is exactly zero.
func (c Cliffor) Add(o Cliffor) Cliffor {
	var a [numCoeffs]float64
	for i := range a {
		a[i] = c.a[i] + o.a[i]
	}

	return newMasked(minimalVariant[variantMask[c.variant]|variantMask[o.variant]], a)
}

// Sub returns c − o on the union variant, like Add.
func (c Cliffor) Sub(o Cliffor) Cliffor {
	var a [numCoeffs]float64
	for i := range a {
		a[i] = c.a[i] - o.a[i]
	}

	return newMasked(minimalVariant[variantMask[c.variant]|variantMask[o.variant]], a)
}

// Neg returns −c on the same variant.
func (c Cliffor) Neg() Cliffor { return c.Scale(-1) }

// Scale returns c with every coefficient multiplied by s, on the same
// variant.
func (c Cliffor) Scale(s float64) Cliffor {
	a := c.a
	for i := range a {
		a[i] *= s
	}

	return newMasked(c.variant, a)
}

// spinor returns c in complex-paravector form: the central complex scalar
// z0 = a0 + i·a123 and the complex vector Z_k = a_k + i·a_dual(k).
func (c Cliffor) spinor() (z0 complex128, z [3]complex128) {
	z0 = complex(c.a[ixA0], c.a[ixA123])
	z[0] = complex(c.a[ixA1], c.a[ixA23])
	z[1] = complex(c.a[ixA2], c.a[ixA31])
	z[2] = complex(c.a[ixA3], c.a[ixA12])

	return z0, z
}

// fromSpinor rebuilds the full 8-coefficient embedding from
// complex-paravector form.
func fromSpinor(z0 complex128, z [3]complex128) [numCoeffs]float64 {
	return [numCoeffs]float64{
		ixA0:   real(z0),
		ixA1:   real(z[0]),
		ixA2:   real(z[1]),
		ixA3:   real(z[2]),
		ixA23:  imag(z[0]),
		ixA31:  imag(z[1]),
		ixA12:  imag(z[2]),
		ixA123: imag(z0),
	}
}

// Mul returns the geometric product c·o. Non-commutative. The result
// lands on the variant precomputed for the ordered pair
// (c.Variant(), o.Variant()); coefficients outside that support are
// exactly 0.
func (c Cliffor) Mul(o Cliffor) Cliffor {
	// Scalar operands commute with everything: keep the trivial fast path.
	if c.variant == R {
		return o.Scale(c.a[ixA0])
	}
	if o.variant == R {
		return c.Scale(o.a[ixA0])
	}

	z0, z := c.spinor()
	w0, w := o.spinor()

	s := z0*w0 + z[0]*w[0] + z[1]*w[1] + z[2]*w[2]
	v := [3]complex128{
		z0*w[0] + w0*z[0] + 1i*(z[1]*w[2]-z[2]*w[1]),
		z0*w[1] + w0*z[1] + 1i*(z[2]*w[0]-z[0]*w[2]),
		z0*w[2] + w0*z[2] + 1i*(z[0]*w[1]-z[1]*w[0]),
	}

	return newMasked(mulVariant[c.variant][o.variant], fromSpinor(s, v))
}
