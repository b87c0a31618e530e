// Package cliffor_test contains shared helpers for the cliffor tests.
//
// Purpose:
//   - Provide small, deterministic fixtures and closeness assertions over
//     the full 8-coefficient embedding.
//   - Keep magic numbers out of test bodies (named tolerances, seeds and
//     coefficient sets).

package cliffor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cl3/cliffor"
	"github.com/katalvlaran/cl3/clrand"
)

// Tolerances used across the tests (looser than cliffor.Tol where a chain
// of spectral operations accumulates rounding).
const (
	TolExact    = 0.0
	TolTight    = cliffor.Tol
	TolSpectral = 1e-9
)

// Deterministic seeds: property loops must be reproducible.
const (
	SeedPairs     = 7
	SeedRecip     = 11
	SeedSpectral  = 13
	SeedFunctions = 17
)

// Magnitude bounds for random values: away from 0 (invertibility) and
// from overflow.
const (
	MagLo = 0.5
	MagHi = 2.0
)

// allVariants enumerates the closed Variant set in declaration order.
var allVariants = [cliffor.NumVariants]cliffor.Variant{
	cliffor.R, cliffor.V3, cliffor.BV, cliffor.I,
	cliffor.PV, cliffor.H, cliffor.C,
	cliffor.BPV, cliffor.ODD, cliffor.TPV, cliffor.APS,
}

// assertClose asserts that got and want agree coefficient-by-coefficient
// over the full embedding within tol (absolute).
func assertClose(t *testing.T, want, got cliffor.Cliffor, tol float64, msgAndArgs ...interface{}) {
	t.Helper()

	w, g := want.Coeffs(), got.Coeffs()
	for i := range w {
		assert.InDelta(t, w[i], g[i], tol, msgAndArgs...)
	}
}

// assertScalarOne asserts that got is within tol of the multiplicative
// identity R(1).
func assertScalarOne(t *testing.T, got cliffor.Cliffor, tol float64, msgAndArgs ...interface{}) {
	t.Helper()

	assertClose(t, cliffor.One(), got, tol, msgAndArgs...)
}

// randOf draws a deterministic random value of variant v with magnitude
// in [MagLo, MagHi).
func randOf(r *rand.Rand, v cliffor.Variant) cliffor.Cliffor {
	return clrand.RandVariant(r, v, MagLo, MagHi)
}
