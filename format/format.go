// Package format: deterministic rendering of graded terms.

package format

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/cl3/cliffor"
)

// labels maps each coefficient index of the full embedding
// [a0, a1, a2, a3, a23, a31, a12, a123] to its basis label. The bivector
// basis prints as the dual imaginary vector basis (e23 = i·e1, e31 = i·e2,
// e12 = i·e3) and the trivector as i·e0.
var labels = [8]string{"e0", "e1", "e2", "e3", "i*e1", "i*e2", "i*e3", "i*e0"}

// termSeparator joins the rendered terms of one value.
const termSeparator = " + "

// Sprint renders every coefficient of c's variant as coefficient*label,
// in the fixed embedding order, joined by " + ". Zero coefficients inside
// the variant's support are rendered too — the variant, not the values,
// decides the shape of the output.
func Sprint(c cliffor.Cliffor) string {
	mask := c.Variant().Mask()
	coeffs := c.Coeffs()

	terms := make([]string, 0, len(coeffs))
	for i, f := range coeffs {
		if coeffGradeBit(i)&mask == 0 {
			continue
		}
		terms = append(terms, strconv.FormatFloat(f, 'g', -1, 64)+"*"+labels[i])
	}

	return strings.Join(terms, termSeparator)
}

// coeffGradeBit mirrors the embedding's coefficient→grade mapping:
// index 0 is grade 0, indices 1-3 grade 1, 4-6 grade 2, 7 grade 3.
func coeffGradeBit(i int) uint8 {
	switch {
	case i == 0:
		return 1 << 0
	case i <= 3:
		return 1 << 1
	case i <= 6:
		return 1 << 2
	default:
		return 1 << 3
	}
}
