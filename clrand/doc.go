// Package clrand generates pseudo-random Cliffor values from an explicit
// generator state — the workhorse behind property-style tests and
// Monte-Carlo sampling over the algebra.
//
// 🚀 What does it generate?
//
//	Given magnitude bounds (lo, hi) and a *rand.Rand, Rand draws a value
//	of a uniformly-chosen variant (each of the 11 with equal probability)
//	whose magnitude Abs lies uniformly in [|lo|, |hi|) with a uniformly
//	random direction and sign. The bounds constrain the magnitude, not
//	the raw coefficients. RandVariant does the same for a fixed variant.
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	v := clrand.Rand(rng, 0.5, 2)                       // any variant
//	b := clrand.RandVariant(rng, cliffor.BV, 1, 1)      // unit bivector
//
// Determinism: the *rand.Rand argument is the entire generator state —
// the same seed yields the same sequence of values, which is exactly the
// (value, next_state) contract property tests rely on. There is no other
// state, so distinct generators may be used freely across goroutines.
package clrand
