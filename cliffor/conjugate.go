// Package cliffor: the algebra's involutions.

package cliffor

// flip negates the coefficients whose grade bit is in mask, preserving
// the variant (both involutions keep grade support unchanged).
func (c Cliffor) flip(mask uint8) Cliffor {
	a := c.a
	for i := range a {
		if coeffGrade[i]&mask != 0 {
			a[i] = -a[i]
		}
	}

	return newMasked(c.variant, a)
}

// Bar returns the Clifford conjugate of c: grades 1 and 2 negated.
// Bar is an involution (c.Bar().Bar().Equal(c)) and an anti-automorphism
// of the geometric product. For any c, c.Mul(c.Bar()) collapses to the
// complex-shaped sub-algebra (grades 0,3).
func (c Cliffor) Bar() Cliffor {
	return c.flip(gradeVector | gradeBivector)
}

// Dag returns the complex (hermitian/reversion) conjugate of c: grades 2
// and 3 negated. Dag is an involution.
func (c Cliffor) Dag() Cliffor {
	return c.flip(gradeBivector | gradeTrivector)
}
