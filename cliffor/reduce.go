// Package cliffor: tolerance-based grade reduction.

package cliffor

import "math"

// Tol is the classification and reduction tolerance: 128 × the float64
// machine epsilon. Grade contents and directional tests are compared
// against Tol scaled by the element's magnitude.
const Tol = 128 * 0x1p-53 // 1.4210854715202004e-14

// gradeNorm returns the Euclidean norm of c's grade-g coefficients
// (g is a single grade bit).
func (c Cliffor) gradeNorm(g uint8) float64 {
	var s float64
	for i, x := range c.a {
		if coeffGrade[i] == g {
			s += x * x
		}
	}

	return math.Sqrt(s)
}

// Reduce returns c in reduced form: every grade whose content is within
// Tol·Abs(c) of zero is dropped, and the result lands on the sparsest
// variant spanning the surviving grades. Reduce is idempotent and never
// grows the grade support of its input; the exact zero element reduces
// to R(0).
func (c Cliffor) Reduce() Cliffor {
	thr := Tol * c.Abs()

	var mask uint8
	a := c.a
	for _, g := range [4]uint8{gradeScalar, gradeVector, gradeBivector, gradeTrivector} {
		if c.gradeNorm(g) <= thr {
			for i := range a {
				if coeffGrade[i] == g {
					a[i] = 0
				}
			}
			continue
		}
		mask |= g
	}

	return newMasked(minimalVariant[mask], a)
}
