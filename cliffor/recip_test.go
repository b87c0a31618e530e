package cliffor_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cl3/cliffor"
)

// TestRecip_SubAlgebras verifies v·Recip(v) reduces to R(1) within Tol
// for the division sub-algebras R, I, H, C.
func TestRecip_SubAlgebras(t *testing.T) {
	r := rand.New(rand.NewSource(SeedRecip))
	for _, variant := range []cliffor.Variant{cliffor.R, cliffor.I, cliffor.H, cliffor.C} {
		v := randOf(r, variant)
		assertScalarOne(t, v.Mul(v.Recip()), TolTight, "%s round-trip", variant)
		assertScalarOne(t, v.Recip().Mul(v), TolTight, "%s left round-trip", variant)
	}
}

// TestRecip_SingleGrades verifies the conjugate-over-norm reciprocals of
// pure vectors, bivectors and trivectors.
func TestRecip_SingleGrades(t *testing.T) {
	v := cliffor.NewV3(3, 4, 0)
	assertScalarOne(t, v.Mul(v.Recip()), TolTight, "vector")

	b := cliffor.NewBV(1, -2, 0.5)
	assertScalarOne(t, b.Mul(b.Recip()), TolTight, "bivector")

	i := cliffor.NewI(-2)
	assert.True(t, i.Recip().Equal(cliffor.NewI(0.5)), "Recip(−2·e123) = 0.5·e123")
}

// TestRecip_BarCollapse verifies the PV/ODD/TPV reciprocals built on the
// collapse of x·Bar(x) to a pure scalar.
func TestRecip_BarCollapse(t *testing.T) {
	r := rand.New(rand.NewSource(SeedRecip))
	for _, variant := range []cliffor.Variant{cliffor.PV, cliffor.ODD, cliffor.TPV} {
		v := randOf(r, variant)
		got := v.Mul(v.Recip()).Reduce()
		assertScalarOne(t, got, TolSpectral, "%s round-trip", variant)
	}
}

// TestRecip_Spectral verifies the spectral-path reciprocals of the
// general variants BPV and APS, both directions.
func TestRecip_Spectral(t *testing.T) {
	bpv := cliffor.NewBPV(1, 2, -0.5, 0.25, -1, 2)
	assertScalarOne(t, bpv.Mul(bpv.Recip()).Reduce(), TolSpectral, "BPV right")
	assertScalarOne(t, bpv.Recip().Mul(bpv).Reduce(), TolSpectral, "BPV left")

	aps := cliffor.NewAPS(0.5, 1, -2, 3, 0.25, -1, 2, -0.5)
	assertScalarOne(t, aps.Mul(aps.Recip()).Reduce(), TolSpectral, "APS right")
	assertScalarOne(t, aps.Recip().Mul(aps).Reduce(), TolSpectral, "APS left")
}

// TestRecip_ZeroNorm verifies the documented pole: inverting a zero-norm
// element degrades to IEEE Inf/NaN coefficients, never an error.
func TestRecip_ZeroNorm(t *testing.T) {
	inf := cliffor.NewR(0).Recip()
	assert.True(t, math.IsInf(inf.Coeffs()[0], 1), "1/0 = +Inf")

	// A light-like paravector (a0² == |v|²) is non-invertible.
	light := cliffor.NewPV(1, 1, 0, 0)
	got := light.Recip()
	hasNonFinite := false
	for _, coeff := range got.Coeffs() {
		if math.IsInf(coeff, 0) || math.IsNaN(coeff) {
			hasNonFinite = true
		}
	}
	assert.True(t, hasNonFinite, "light-like reciprocal must blow up, not error")
}

// TestDiv_Definition verifies Div is right-multiplication by the inverse.
func TestDiv_Definition(t *testing.T) {
	x := cliffor.NewH(1, 2, 3, 4)
	y := cliffor.NewH(0.5, -1, 0.25, 2)

	assertClose(t, x.Mul(y.Recip()), x.Div(y), TolExact, "Div == Mul ∘ Recip")
	assertScalarOne(t, y.Div(y), TolTight, "y/y = 1")
}
