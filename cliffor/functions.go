// Package cliffor: the transcendental function family.
//
// Each function has a direct closed form on the sub-algebra variants
// (R through math, I and C through math/cmplx with the standard principal
// branches) and extends to the eight remaining variants through
// SpectralDcmp, paired with its fixed derivative companion for the Jordan
// fallback:
//
//	function │ derivative            │ pole(s)
//	─────────┼───────────────────────┼─────────────────
//	Exp      │ exp                   │ —
//	Log      │ 1/x                   │ 0
//	Sqrt     │ 1/(2√x)               │ 0
//	Sin      │ cos                   │ —
//	Cos      │ −sin                  │ —
//	Tan      │ sec² = 1/cos²         │ π/2 + kπ
//	Asin     │ 1/√(1−x²)             │ ±1
//	Acos     │ −1/√(1−x²)            │ ±1
//	Atan     │ 1/(1+x²)              │ ±i
//	Sinh     │ cosh                  │ —
//	Cosh     │ sinh                  │ —
//	Tanh     │ sech² = 1/cosh²       │ iπ/2 + ikπ
//	Asinh    │ 1/√(1+x²)             │ ±i
//	Acosh    │ 1/(√(x−1)·√(x+1))     │ ±1
//	Atanh    │ 1/(1−x²)              │ ±1
//
// Real arguments leaving a real function's domain continue analytically:
// Log of a negative scalar is complex with imaginary part π, Sqrt of one
// is a pure trivector, Asin beyond ±1 lands in the complex sub-algebra.
// Near-pole evaluation is the caller's concern; the library propagates
// IEEE Inf/NaN rather than guarding.

package cliffor

import (
	"math"
	"math/cmplx"
)

// subAlgebra reports whether c lives in the complex scalar plane
// (grades 0 and 3 only), where every function has its direct form.
func (c Cliffor) subAlgebra() bool {
	return c.variant == R || c.variant == I || c.variant == C
}

// Exp returns the exponential of c.
func (c Cliffor) Exp() Cliffor {
	if c.subAlgebra() {
		return expSub(c)
	}

	return SpectralDcmp(expSub, expSub, c)
}

func expSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Exp(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Exp(c.complexScalar()))
}

// Log returns the principal natural logarithm of c. A negative scalar
// continues into C with imaginary part π; the zero element maps to
// R(−Inf).
func (c Cliffor) Log() Cliffor {
	if c.subAlgebra() {
		return logSub(c)
	}

	return SpectralDcmp(logSub, recipSub, c)
}

func logSub(c Cliffor) Cliffor {
	if c.variant == R && c.a[ixA0] >= 0 {
		return NewR(math.Log(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Log(c.complexScalar()))
}

// Sqrt returns the principal square root of c. A negative scalar
// continues into a pure trivector: Sqrt(R(−4)) = I(2).
func (c Cliffor) Sqrt() Cliffor {
	if c.subAlgebra() {
		return sqrtSub(c)
	}

	return SpectralDcmp(sqrtSub, dSqrtSub, c)
}

func sqrtSub(c Cliffor) Cliffor {
	if c.variant == R && c.a[ixA0] >= 0 {
		return NewR(math.Sqrt(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Sqrt(c.complexScalar()))
}

func dSqrtSub(c Cliffor) Cliffor {
	return fromComplexScalar(0.5 / cmplx.Sqrt(c.complexScalar()))
}

// Sin returns the sine of c.
func (c Cliffor) Sin() Cliffor {
	if c.subAlgebra() {
		return sinSub(c)
	}

	return SpectralDcmp(sinSub, cosSub, c)
}

func sinSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Sin(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Sin(c.complexScalar()))
}

// Cos returns the cosine of c.
func (c Cliffor) Cos() Cliffor {
	if c.subAlgebra() {
		return cosSub(c)
	}

	return SpectralDcmp(cosSub, dCosSub, c)
}

func cosSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Cos(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Cos(c.complexScalar()))
}

func dCosSub(c Cliffor) Cliffor {
	return fromComplexScalar(-cmplx.Sin(c.complexScalar()))
}

// Tan returns the tangent of c. Pole at π/2 + kπ on the scalar axis.
func (c Cliffor) Tan() Cliffor {
	if c.subAlgebra() {
		return tanSub(c)
	}

	return SpectralDcmp(tanSub, dTanSub, c)
}

func tanSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Tan(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Tan(c.complexScalar()))
}

func dTanSub(c Cliffor) Cliffor {
	cz := cmplx.Cos(c.complexScalar())

	return fromComplexScalar(1 / (cz * cz))
}

// Asin returns the principal arcsine of c, with the standard branch cuts
// on the scalar axis outside [−1, 1].
func (c Cliffor) Asin() Cliffor {
	if c.subAlgebra() {
		return asinSub(c)
	}

	return SpectralDcmp(asinSub, dAsinSub, c)
}

func asinSub(c Cliffor) Cliffor {
	if c.variant == R && math.Abs(c.a[ixA0]) <= 1 {
		return NewR(math.Asin(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Asin(c.complexScalar()))
}

func dAsinSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	return fromComplexScalar(1 / cmplx.Sqrt(1-z*z))
}

// Acos returns the principal arccosine of c, with the standard branch
// cuts on the scalar axis outside [−1, 1].
func (c Cliffor) Acos() Cliffor {
	if c.subAlgebra() {
		return acosSub(c)
	}

	return SpectralDcmp(acosSub, dAcosSub, c)
}

func acosSub(c Cliffor) Cliffor {
	if c.variant == R && math.Abs(c.a[ixA0]) <= 1 {
		return NewR(math.Acos(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Acos(c.complexScalar()))
}

func dAcosSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	return fromComplexScalar(-1 / cmplx.Sqrt(1-z*z))
}

// Atan returns the principal arctangent of c. Poles at ±i on the
// trivector axis.
func (c Cliffor) Atan() Cliffor {
	if c.subAlgebra() {
		return atanSub(c)
	}

	return SpectralDcmp(atanSub, dAtanSub, c)
}

func atanSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Atan(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Atan(c.complexScalar()))
}

func dAtanSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	return fromComplexScalar(1 / (1 + z*z))
}

// Sinh returns the hyperbolic sine of c.
func (c Cliffor) Sinh() Cliffor {
	if c.subAlgebra() {
		return sinhSub(c)
	}

	return SpectralDcmp(sinhSub, coshSub, c)
}

func sinhSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Sinh(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Sinh(c.complexScalar()))
}

// Cosh returns the hyperbolic cosine of c.
func (c Cliffor) Cosh() Cliffor {
	if c.subAlgebra() {
		return coshSub(c)
	}

	return SpectralDcmp(coshSub, sinhSub, c)
}

func coshSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Cosh(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Cosh(c.complexScalar()))
}

// Tanh returns the hyperbolic tangent of c. Poles at ±iπ/2 + ikπ on the
// trivector axis.
func (c Cliffor) Tanh() Cliffor {
	if c.subAlgebra() {
		return tanhSub(c)
	}

	return SpectralDcmp(tanhSub, dTanhSub, c)
}

func tanhSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Tanh(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Tanh(c.complexScalar()))
}

func dTanhSub(c Cliffor) Cliffor {
	cz := cmplx.Cosh(c.complexScalar())

	return fromComplexScalar(1 / (cz * cz))
}

// Asinh returns the principal inverse hyperbolic sine of c, with branch
// cuts outside [−i, i] on the trivector axis.
func (c Cliffor) Asinh() Cliffor {
	if c.subAlgebra() {
		return asinhSub(c)
	}

	return SpectralDcmp(asinhSub, dAsinhSub, c)
}

func asinhSub(c Cliffor) Cliffor {
	if c.variant == R {
		return NewR(math.Asinh(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Asinh(c.complexScalar()))
}

func dAsinhSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	return fromComplexScalar(1 / cmplx.Sqrt(1+z*z))
}

// Acosh returns the principal inverse hyperbolic cosine of c. A scalar
// below 1 continues analytically into the complex sub-algebra.
func (c Cliffor) Acosh() Cliffor {
	if c.subAlgebra() {
		return acoshSub(c)
	}

	return SpectralDcmp(acoshSub, dAcoshSub, c)
}

func acoshSub(c Cliffor) Cliffor {
	if c.variant == R && c.a[ixA0] >= 1 {
		return NewR(math.Acosh(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Acosh(c.complexScalar()))
}

func dAcoshSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	// The split √(x−1)·√(x+1) keeps the derivative on the same branch as
	// Acosh itself, unlike √(x²−1).
	return fromComplexScalar(1 / (cmplx.Sqrt(z-1) * cmplx.Sqrt(z+1)))
}

// Atanh returns the principal inverse hyperbolic tangent of c, with
// branch cuts on the scalar axis outside [−1, 1]. Poles at ±1.
func (c Cliffor) Atanh() Cliffor {
	if c.subAlgebra() {
		return atanhSub(c)
	}

	return SpectralDcmp(atanhSub, dAtanhSub, c)
}

func atanhSub(c Cliffor) Cliffor {
	if c.variant == R && math.Abs(c.a[ixA0]) <= 1 {
		return NewR(math.Atanh(c.a[ixA0]))
	}

	return fromComplexScalar(cmplx.Atanh(c.complexScalar()))
}

func dAtanhSub(c Cliffor) Cliffor {
	z := c.complexScalar()

	return fromComplexScalar(1 / (1 - z*z))
}

// Pow returns c raised to the real power y via exp(y·log c). Positive
// scalars keep the exact math.Pow fast path.
func (c Cliffor) Pow(y float64) Cliffor {
	if c.variant == R && c.a[ixA0] > 0 {
		return NewR(math.Pow(c.a[ixA0], y))
	}

	return c.Log().Scale(y).Exp()
}
