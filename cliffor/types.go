// Package cliffor: central value types for the Cl(3,0) algebra.
//
// This file declares the Variant enumeration, the Cliffor value type over
// the full 8-coefficient embedding, the per-variant constructors, and the
// grade-mask machinery that drives minimal-variant selection everywhere
// else in the package (addition unions, product supports, reduction).
//
// Canonical-form invariant: a Cliffor's coefficients outside its variant's
// grade support are exactly 0. Every constructor and every operation in
// this package preserves it.

package cliffor

// Variant identifies one of the eleven grade-combination shapes a Cliffor
// can take. Each variant is a faithful embedding of a subset of the full
// 8-coefficient APS space.
type Variant uint8

const (
	// R holds grade 0 only: a real scalar (a0).
	R Variant = iota

	// V3 holds grade 1 only: a vector (a1, a2, a3).
	V3

	// BV holds grade 2 only: a bivector (a23, a31, a12).
	BV

	// I holds grade 3 only: the trivector/pseudoscalar (a123).
	I

	// PV holds grades 0,1: a paravector (a0, a1, a2, a3).
	PV

	// H holds grades 0,2: a quaternion-shaped element (a0, a23, a31, a12).
	H

	// C holds grades 0,3: a complex-shaped element (a0, a123).
	C

	// BPV holds grades 1,2: vector plus bivector (a1..a3, a23..a12).
	BPV

	// ODD holds grades 1,3: vector plus trivector (a1..a3, a123).
	ODD

	// TPV holds grades 2,3: bivector plus trivector (a23..a12, a123).
	TPV

	// APS holds all four grades: the full 8-coefficient element.
	APS
)

// NumVariants is the size of the closed Variant enumeration.
const NumVariants = int(APS) + 1

// String implements fmt.Stringer for Variant.
func (v Variant) String() string {
	switch v {
	case R:
		return "R"
	case V3:
		return "V3"
	case BV:
		return "BV"
	case I:
		return "I"
	case PV:
		return "PV"
	case H:
		return "H"
	case C:
		return "C"
	case BPV:
		return "BPV"
	case ODD:
		return "ODD"
	case TPV:
		return "TPV"
	case APS:
		return "APS"
	default:
		return "Variant(?)"
	}
}

// Grade bits used in grade masks. A grade mask is the OR of the bits for
// the grades a variant supports.
const (
	gradeScalar    uint8 = 1 << 0 // grade 0
	gradeVector    uint8 = 1 << 1 // grade 1
	gradeBivector  uint8 = 1 << 2 // grade 2
	gradeTrivector uint8 = 1 << 3 // grade 3

	gradeAll = gradeScalar | gradeVector | gradeBivector | gradeTrivector
)

// variantMask maps each Variant to its grade support.
var variantMask = [NumVariants]uint8{
	R:   gradeScalar,
	V3:  gradeVector,
	BV:  gradeBivector,
	I:   gradeTrivector,
	PV:  gradeScalar | gradeVector,
	H:   gradeScalar | gradeBivector,
	C:   gradeScalar | gradeTrivector,
	BPV: gradeVector | gradeBivector,
	ODD: gradeVector | gradeTrivector,
	TPV: gradeBivector | gradeTrivector,
	APS: gradeAll,
}

// Mask reports the grade support of the variant as a 4-bit grade mask
// (bit k set means grade k is present).
func (v Variant) Mask() uint8 { return variantMask[v] }

// minimalVariant maps a grade mask to the sparsest Variant whose support
// covers it. The empty mask maps to R (the zero scalar). Three-grade
// masks have no two-grade variant and widen to APS.
var minimalVariant = [16]Variant{
	0b0000: R,
	0b0001: R,
	0b0010: V3,
	0b0011: PV,
	0b0100: BV,
	0b0101: H,
	0b0110: BPV,
	0b0111: APS,
	0b1000: I,
	0b1001: C,
	0b1010: ODD,
	0b1011: APS,
	0b1100: TPV,
	0b1101: APS,
	0b1110: APS,
	0b1111: APS,
}

// MinimalVariant returns the sparsest Variant whose grade support covers
// the given grade mask (only the low four bits are consulted).
func MinimalVariant(gradeMask uint8) Variant {
	return minimalVariant[gradeMask&gradeAll]
}

// Coefficient indices into the full 8-component embedding, fixed order
// [a0, a1, a2, a3, a23, a31, a12, a123].
const (
	ixA0 = iota
	ixA1
	ixA2
	ixA3
	ixA23
	ixA31
	ixA12
	ixA123

	numCoeffs = 8
)

// coeffGrade maps a coefficient index to its grade bit.
var coeffGrade = [numCoeffs]uint8{
	ixA0:   gradeScalar,
	ixA1:   gradeVector,
	ixA2:   gradeVector,
	ixA3:   gradeVector,
	ixA23:  gradeBivector,
	ixA31:  gradeBivector,
	ixA12:  gradeBivector,
	ixA123: gradeTrivector,
}

// Cliffor is an immutable element of Cl(3,0): a variant tag plus the full
// 8-coefficient embedding [a0, a1, a2, a3, a23, a31, a12, a123].
// Coefficients outside the variant's grade support are exactly 0.
//
// Cliffor is a pure value type: operations return new values, never
// mutate, and carry no identity or shared ownership. Use Equal (not ==)
// to compare by algebraic content: == also distinguishes variants, so
// NewR(0) != NewI(0) even though they are algebraically equal.
type Cliffor struct {
	variant Variant
	a       [numCoeffs]float64
}

// newMasked builds a Cliffor of variant v from the full embedding,
// zeroing every coefficient outside v's grade support. This is the single
// canonicalization point for the whole package.
func newMasked(v Variant, a [numCoeffs]float64) Cliffor {
	m := variantMask[v]
	for i := range a {
		if coeffGrade[i]&m == 0 {
			a[i] = 0
		}
	}

	return Cliffor{variant: v, a: a}
}

// New constructs a Cliffor of the given variant from a full 8-coefficient
// embedding in the fixed order [a0, a1, a2, a3, a23, a31, a12, a123].
// Coefficients outside the variant's grade support are discarded.
func New(v Variant, coeffs [8]float64) Cliffor {
	return newMasked(v, coeffs)
}

// Zero returns the zero element, R(0).
func Zero() Cliffor { return Cliffor{variant: R} }

// One returns the multiplicative identity, R(1).
func One() Cliffor { return NewR(1) }

// NewR constructs a grade-0 scalar.
func NewR(a0 float64) Cliffor {
	return Cliffor{variant: R, a: [numCoeffs]float64{ixA0: a0}}
}

// NewV3 constructs a grade-1 vector a1·e1 + a2·e2 + a3·e3.
func NewV3(a1, a2, a3 float64) Cliffor {
	return Cliffor{variant: V3, a: [numCoeffs]float64{ixA1: a1, ixA2: a2, ixA3: a3}}
}

// NewBV constructs a grade-2 bivector a23·e23 + a31·e31 + a12·e12.
func NewBV(a23, a31, a12 float64) Cliffor {
	return Cliffor{variant: BV, a: [numCoeffs]float64{ixA23: a23, ixA31: a31, ixA12: a12}}
}

// NewI constructs the grade-3 trivector a123·e123.
func NewI(a123 float64) Cliffor {
	return Cliffor{variant: I, a: [numCoeffs]float64{ixA123: a123}}
}

// NewPV constructs a paravector (grades 0,1).
func NewPV(a0, a1, a2, a3 float64) Cliffor {
	return Cliffor{variant: PV, a: [numCoeffs]float64{ixA0: a0, ixA1: a1, ixA2: a2, ixA3: a3}}
}

// NewH constructs a quaternion-shaped element (grades 0,2).
func NewH(a0, a23, a31, a12 float64) Cliffor {
	return Cliffor{variant: H, a: [numCoeffs]float64{ixA0: a0, ixA23: a23, ixA31: a31, ixA12: a12}}
}

// NewC constructs a complex-shaped element (grades 0,3).
func NewC(a0, a123 float64) Cliffor {
	return Cliffor{variant: C, a: [numCoeffs]float64{ixA0: a0, ixA123: a123}}
}

// NewBPV constructs a vector-plus-bivector element (grades 1,2).
func NewBPV(a1, a2, a3, a23, a31, a12 float64) Cliffor {
	return Cliffor{variant: BPV, a: [numCoeffs]float64{
		ixA1: a1, ixA2: a2, ixA3: a3, ixA23: a23, ixA31: a31, ixA12: a12,
	}}
}

// NewODD constructs an odd-grade element (grades 1,3).
func NewODD(a1, a2, a3, a123 float64) Cliffor {
	return Cliffor{variant: ODD, a: [numCoeffs]float64{
		ixA1: a1, ixA2: a2, ixA3: a3, ixA123: a123,
	}}
}

// NewTPV constructs a bivector-plus-trivector element (grades 2,3).
func NewTPV(a23, a31, a12, a123 float64) Cliffor {
	return Cliffor{variant: TPV, a: [numCoeffs]float64{
		ixA23: a23, ixA31: a31, ixA12: a12, ixA123: a123,
	}}
}

// NewAPS constructs a full 8-coefficient element (grades 0,1,2,3).
func NewAPS(a0, a1, a2, a3, a23, a31, a12, a123 float64) Cliffor {
	return Cliffor{variant: APS, a: [numCoeffs]float64{
		a0, a1, a2, a3, a23, a31, a12, a123,
	}}
}

// Variant reports the grade-combination shape of c.
func (c Cliffor) Variant() Variant { return c.variant }

// Coeffs returns the full 8-coefficient embedding of c in the fixed order
// [a0, a1, a2, a3, a23, a31, a12, a123]. Coefficients outside c's grade
// support are exactly 0.
func (c Cliffor) Coeffs() [8]float64 { return c.a }

// Equal reports whether c and o are algebraically equal: their full
// 8-coefficient embeddings match field-by-field under IEEE float equality,
// regardless of variant. Any NaN coefficient makes Equal false.
func (c Cliffor) Equal(o Cliffor) bool { return c.a == o.a }
