// Package format renders Cliffor values as human-readable graded terms.
//
// 🚀 What does the output look like?
//
//	Each coefficient of the value's variant prints as coefficient*label,
//	terms joined by " + ", with the deterministic basis-label mapping
//	consumers depend on:
//
//	  a0   → e0          (scalar)
//	  a1   → e1          a2  → e2          a3  → e3    (vector)
//	  a23  → i*e1        a31 → i*e2        a12 → i*e3  (bivector)
//	  a123 → i*e0        (trivector)
//
//	format.Sprint(cliffor.NewH(1, 0, 0, 2))
//	// "1*e0 + 0*i*e1 + 0*i*e2 + 2*i*e3"
//
// Rendering is display-only: it never alters the value, and coefficients
// use the shortest round-trippable decimal form (strconv 'g', -1).
package format
