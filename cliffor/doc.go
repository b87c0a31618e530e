// Package cliffor implements the Cl(3,0) Geometric Algebra of physical
// space over IEEE-754 double precision: one immutable value type, Cliffor,
// closed over eleven grade-combination variants, with graded arithmetic,
// norms, and a spectral engine for transcendental functions.
//
// 🚀 What is a Cliffor?
//
//	An element of the 8-dimensional graded algebra spanned by
//	  e0 (scalar), e1,e2,e3 (vectors), i·e1,i·e2,i·e3 (bivectors
//	  e23,e31,e12) and i·e0 (the trivector e123),
//	stored as the sparsest variant that spans its grades:
//	  R, V3, BV, I, PV, H, C, BPV, ODD, TPV, APS.
//
// ✨ Key features:
//   - Add/Mul close over the variants: results land on the minimal variant
//     spanning the operands' grade union (Add) or the precomputed product
//     support (Mul) — never wider.
//   - Division sub-algebras (R, H, C) and graded reciprocals for every
//     variant; non-invertible inputs degrade to IEEE Inf/NaN, never panic.
//   - SpectralDcmp applies any scalar/complex analytic function to a
//     general element via projectors and eigenvalues, with a Jordan
//     fallback for nilpotent-like elements and a boost transform for
//     non-colinear ones.
//   - Full transcendental family: Exp, Log, Sqrt, Sin..Atan, Sinh..Atanh,
//     with analytic continuation (Sqrt of a negative scalar is a pure
//     trivector, Log of one is complex with imaginary part π).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cl3/cliffor"
//
//	v := cliffor.NewV3(3, 4, 0)        // a vector
//	b := cliffor.NewBV(0, 0, 1)        // the e12 bivector
//	r := b.Scale(math.Pi / 4).Exp()    // a rotor: exp(π/4 · i·e3)
//	w := r.Bar().Mul(v).Mul(r)         // rotate v by π/2 in the e12 plane
//	_ = w.Reduce()
//
// All operations are pure functions over immutable values: no shared
// state, no locks, safely parallelizable by the caller.
//
// Complexity: every operation is a small constant number of float64
// operations; the spectral path performs at most one boost transform
// before a terminal branch.
package cliffor
