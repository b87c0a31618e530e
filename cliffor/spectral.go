// Package cliffor: the spectral decomposition engine.
//
// Any analytic function f extends from the complex scalar plane to a
// general Cliffor through eigen-decomposition. After reduction, exactly
// one of four terminal branches applies:
//
//	Reduced ──► sub-algebra (R/I/C): direct closed form
//	        ──► Nilpotent:           Jordan form f(eig) + f′(eig)·n
//	        ──► Colinear:            f(eig₁)·p + f(eig₂)·p̄
//	        ──► NeedsBoost ──► Colinear (one boost, never more)
//
// The projector pair comes from the unit direction n̂ of the element's
// dominant directional content: p = ½(1 + n̂·e), p̄ = Bar(p), which are
// complementary idempotents (p·p = p, p + p̄ = 1, p·p̄ = 0). The
// eigenvalues are the doubled complex-scalar parts of p·c·p and p̄·c·p̄.

package cliffor

import "math"

// complexScalar returns the grade-0,3 content of c as a complex number
// a0 + i·a123 (i = e123 is central and squares to −1).
func (c Cliffor) complexScalar() complex128 {
	return complex(c.a[ixA0], c.a[ixA123])
}

// fromComplexScalar embeds a complex number back into the algebra on the
// sparsest variant: R for exactly-real values, I for exactly-imaginary
// ones, C otherwise.
func fromComplexScalar(z complex128) Cliffor {
	switch {
	case imag(z) == 0:
		return NewR(real(z))
	case real(z) == 0:
		return NewI(imag(z))
	default:
		return NewC(real(z), imag(z))
	}
}

// vectorPart returns the grade-1 coefficients as a real 3-vector.
func (c Cliffor) vectorPart() [3]float64 {
	return [3]float64{c.a[ixA1], c.a[ixA2], c.a[ixA3]}
}

// bivectorAsVector returns the grade-2 coefficients as the dual real
// 3-vector (e23, e31, e12 ↦ e1, e2, e3).
func (c Cliffor) bivectorAsVector() [3]float64 {
	return [3]float64{c.a[ixA23], c.a[ixA31], c.a[ixA12]}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm3(a [3]float64) float64 {
	return math.Sqrt(dot3(a, a))
}

// IsColinear reports whether the vector and bivector-as-vector parts of c
// are both nonzero and parallel or antiparallel (their unit directions'
// cross product is within Tol of zero).
func (c Cliffor) IsColinear() bool {
	v, b := c.vectorPart(), c.bivectorAsVector()
	nv, nb := norm3(v), norm3(b)
	if nv == 0 || nb == 0 {
		return false
	}

	w := cross3(v, b)

	return norm3(w)/(nv*nb) < Tol
}

// HasNilpotent reports whether the directional part of c squares to
// (within Tol of) zero: vector and bivector-as-vector parts both nonzero,
// exactly orthogonal, and equal in magnitude. Mutually exclusive with
// IsColinear by construction.
func (c Cliffor) HasNilpotent() bool {
	v, b := c.vectorPart(), c.bivectorAsVector()
	nv, nb := norm3(v), norm3(b)
	if nv == 0 || nb == 0 {
		return false
	}

	if math.Abs(dot3(v, b))/(nv*nb) >= Tol {
		return false
	}

	return math.Abs(nv-nb) < Tol*math.Max(nv, nb)
}

// axial reports whether at most one of the vector / bivector parts is
// nonzero — a degenerate colinear shape that skips the boost.
func (c Cliffor) axial() bool {
	return norm3(c.vectorPart()) == 0 || norm3(c.bivectorAsVector()) == 0
}

// direction returns the unit 3-vector of c's dominant directional
// content: the vector part when it is at least as large as the
// bivector-as-vector part, the bivector-as-vector part otherwise.
// The zero vector comes back for purely scalar content.
func (c Cliffor) direction() [3]float64 {
	v, b := c.vectorPart(), c.bivectorAsVector()
	nv, nb := norm3(v), norm3(b)
	u, n := v, nv
	if nb > nv {
		u, n = b, nb
	}
	if n == 0 {
		return [3]float64{}
	}

	return [3]float64{u[0] / n, u[1] / n, u[2] / n}
}

// Project returns the idempotent projector p = ½(1 + n̂·e) built from the
// unit direction of c's dominant directional content. Its complement is
// p.Bar(); together they satisfy p + p̄ = 1 and p·p̄ = 0.
func (c Cliffor) Project() Cliffor {
	n := c.direction()

	return NewPV(0.5, 0.5*n[0], 0.5*n[1], 0.5*n[2])
}

// Boost2Colinear returns the non-unitary boost B such that
// Bar(B)·c·B is colinear. The boost acts along the v×b axis with
// rapidity θ = ¼·atanh(2|v×b| / (v²+b²)); the atanh argument is
// strictly below 1 whenever HasNilpotent is false, so B is finite.
// For an already colinear (or axial) element, B is the identity.
func (c Cliffor) Boost2Colinear() Cliffor {
	v, b := c.vectorPart(), c.bivectorAsVector()
	w := cross3(v, b)
	nw := norm3(w)
	if nw == 0 {
		return One()
	}

	theta := 0.25 * math.Atanh(2*nw/(dot3(v, v)+dot3(b, b)))
	sh := math.Sinh(theta) / nw

	return NewPV(math.Cosh(theta), sh*w[0], sh*w[1], sh*w[2])
}

// eigvalsColinear returns the two eigenvalues of a colinear (or axial)
// element: the doubled complex-scalar parts of p·c·p and p̄·c·p̄.
func eigvalsColinear(c Cliffor) (Cliffor, Cliffor) {
	p := c.Project()
	pb := p.Bar()
	e1 := fromComplexScalar(2 * p.Mul(c).Mul(p).complexScalar())
	e2 := fromComplexScalar(2 * pb.Mul(c).Mul(pb).complexScalar())

	return e1, e2
}

// Eigvals returns the eigenvalue pair of c as sub-algebra (R/I/C) values.
// Sub-algebra inputs are their own (repeated) eigenvalue; a nilpotent-like
// element has its complex-scalar part doubled up; and a non-colinear
// element shares its eigenvalues with its boosted colinear form.
func (c Cliffor) Eigvals() (Cliffor, Cliffor) {
	r := c.Reduce()
	switch r.variant {
	case R, I, C:
		return r, r
	}

	if r.HasNilpotent() {
		eig := fromComplexScalar(r.complexScalar())

		return eig, eig
	}

	if r.axial() || r.IsColinear() {
		return eigvalsColinear(r)
	}

	bst := r.Boost2Colinear()

	return eigvalsColinear(bst.Bar().Mul(r).Mul(bst).Reduce())
}

// SpectralDcmp applies the analytic function fun to a Cliffor of any
// variant. fun and its derivative funPrime need only handle the
// sub-algebra variants R, I and C; the engine supplies the rest:
//
//   - sub-algebra inputs go straight to fun;
//   - nilpotent-like inputs use the Jordan normal form
//     fun(eig) + funPrime(eig)·n, where n is the nilpotent directional
//     part (the only place funPrime is consulted);
//   - colinear inputs are reconstructed as fun(eig₁)·p + fun(eig₂)·p̄;
//   - everything else is boosted to a colinear form first and the result
//     conjugated back: B·fun(Bar(B)·c·B)·Bar(B). The boosted form is
//     colinear by construction, so recursion depth never exceeds one.
func SpectralDcmp(fun, funPrime func(Cliffor) Cliffor, c Cliffor) Cliffor {
	r := c.Reduce()
	switch r.variant {
	case R, I, C:
		return fun(r)
	}

	if r.HasNilpotent() {
		return jordan(fun, funPrime, r)
	}

	if r.axial() || r.IsColinear() {
		return spectralColinear(fun, r)
	}

	bst := r.Boost2Colinear()
	col := bst.Bar().Mul(r).Mul(bst).Reduce()

	return bst.Mul(spectralColinear(fun, col)).Mul(bst.Bar())
}

// spectralColinear reconstructs fun over a colinear element from its
// eigenvalues and projector pair.
func spectralColinear(fun func(Cliffor) Cliffor, c Cliffor) Cliffor {
	p := c.Project()
	pb := p.Bar()
	e1 := fromComplexScalar(2 * p.Mul(c).Mul(p).complexScalar())
	e2 := fromComplexScalar(2 * pb.Mul(c).Mul(pb).complexScalar())

	return fun(e1).Mul(p).Add(fun(e2).Mul(pb))
}

// jordan evaluates fun over a nilpotent-like element c = eig + n with
// n² ≈ 0: the Jordan normal form fun(eig) + funPrime(eig)·n. The
// directional part n commutes with the central eigenvalue, so the order
// of the product is immaterial.
func jordan(fun, funPrime func(Cliffor) Cliffor, c Cliffor) Cliffor {
	eig := fromComplexScalar(c.complexScalar())
	n := c.ToBPV()

	return fun(eig).Add(funPrime(eig).Mul(n))
}
