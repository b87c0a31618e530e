// Package cliffor: reciprocals and division.
//
// Division never raises an error: a zero-norm (non-invertible) operand
// degrades to IEEE Inf/NaN coefficients, matching the pole of 1/x at 0.

package cliffor

// Recip returns the multiplicative inverse of c, per variant:
//
//   - R, H, C are division sub-algebras: the grade-appropriate conjugate
//     divided by the squared norm.
//   - V3, BV, I invert through their own conjugate rule (a vector squares
//     to +|v|², a bivector or trivector to −|v|²).
//   - PV, ODD, TPV use the collapse of c·Bar(c) to a pure scalar:
//     Recip(c) = Bar(c) / ToR(c·Bar(c)).
//   - BPV, APS are not sub-algebras and not guaranteed invertible: they
//     delegate to the spectral engine and reduce the reconstruction.
func (c Cliffor) Recip() Cliffor {
	switch c.variant {
	case R:
		return NewR(1 / c.a[ixA0])
	case V3:
		return c.Scale(1 / c.sumSquares())
	case BV, I:
		return c.Scale(-1 / c.sumSquares())
	case H:
		return c.Bar().Scale(1 / c.sumSquares())
	case C:
		return c.Dag().Scale(1 / c.sumSquares())
	case PV, ODD, TPV:
		b := c.Bar()

		return b.Scale(1 / c.Mul(b).a[ixA0])
	default: // BPV, APS
		return SpectralDcmp(recipSub, dRecipSub, c).Reduce()
	}
}

// Div returns c · Recip(o). Division is right-multiplication by the
// inverse; mind the non-commutativity when porting formulas.
func (c Cliffor) Div(o Cliffor) Cliffor {
	return c.Mul(o.Recip())
}

// recipSub inverts a sub-algebra (R, I or C) value through the complex
// scalar plane.
func recipSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(1 / c.a[ixA0])
	}

	return fromComplexScalar(1 / c.complexScalar())
}

// dRecipSub is the derivative companion of recipSub: d/dx (1/x) = −1/x².
// Pole at 0, shared with recipSub itself.
func dRecipSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	return fromComplexScalar(-1 / (z * z))
}
