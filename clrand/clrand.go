// Package clrand: deterministic random Cliffor generation.

package clrand

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cl3/cliffor"
)

// Rand draws one value of a uniformly-chosen variant whose magnitude lies
// uniformly in [|lo|, |hi|), with uniformly random direction and sign.
// The *rand.Rand is the entire generator state; the draw advances it.
func Rand(r *rand.Rand, lo, hi float64) cliffor.Cliffor {
	v := cliffor.Variant(r.Intn(cliffor.NumVariants))

	return RandVariant(r, v, lo, hi)
}

// RandVariant draws one value of the given variant whose magnitude lies
// uniformly in [|lo|, |hi|), with uniformly random direction and sign.
// The bounds constrain Abs, not the raw coefficients, and may be given
// in either order.
func RandVariant(r *rand.Rand, v cliffor.Variant, lo, hi float64) cliffor.Cliffor {
	lo, hi = math.Abs(lo), math.Abs(hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	mag := lo + (hi-lo)*r.Float64()

	// A gaussian draw per coefficient gives a rotation-symmetric direction
	// within the variant's grade support; scaling by mag/Abs pins the
	// magnitude exactly (singular values scale linearly).
	for {
		var coeffs [8]float64
		for i := range coeffs {
			coeffs[i] = r.NormFloat64()
		}
		u := cliffor.New(v, coeffs)
		if n := u.Abs(); n > 0 {
			return u.Scale(mag / n)
		}
	}
}
