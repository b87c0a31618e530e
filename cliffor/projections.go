// Package cliffor: grade projections ("casts") between the eleven
// variants.
//
// Each ToX method maps an arbitrary Cliffor to variant X: grades inside
// X's support are kept verbatim, grades outside it are discarded. The
// projections are idempotent, and lossless whenever the source variant's
// support is a subset of the target's.

package cliffor

// to projects c onto the given variant, keeping only the coefficients
// whose grade lies in the target's support.
func (c Cliffor) to(v Variant) Cliffor {
	return newMasked(v, c.a)
}

// ToR projects c onto its grade-0 (scalar) content.
func (c Cliffor) ToR() Cliffor { return c.to(R) }

// ToV3 projects c onto its grade-1 (vector) content.
func (c Cliffor) ToV3() Cliffor { return c.to(V3) }

// ToBV projects c onto its grade-2 (bivector) content.
func (c Cliffor) ToBV() Cliffor { return c.to(BV) }

// ToI projects c onto its grade-3 (trivector) content.
func (c Cliffor) ToI() Cliffor { return c.to(I) }

// ToPV projects c onto its grade-0,1 (paravector) content.
func (c Cliffor) ToPV() Cliffor { return c.to(PV) }

// ToH projects c onto its grade-0,2 (quaternion-shaped) content.
func (c Cliffor) ToH() Cliffor { return c.to(H) }

// ToC projects c onto its grade-0,3 (complex-shaped) content.
func (c Cliffor) ToC() Cliffor { return c.to(C) }

// ToBPV projects c onto its grade-1,2 (vector-plus-bivector) content.
func (c Cliffor) ToBPV() Cliffor { return c.to(BPV) }

// ToODD projects c onto its grade-1,3 (odd) content.
func (c Cliffor) ToODD() Cliffor { return c.to(ODD) }

// ToTPV projects c onto its grade-2,3 content.
func (c Cliffor) ToTPV() Cliffor { return c.to(TPV) }

// ToAPS embeds c into the full 8-coefficient variant. Always lossless.
func (c Cliffor) ToAPS() Cliffor { return c.to(APS) }
