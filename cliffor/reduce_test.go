package cliffor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cl3/cliffor"
)

// TestReduce_DropsTinyGrades verifies that grades within Tol·Abs of zero
// are dropped and the value lands on the sparsest spanning variant.
func TestReduce_DropsTinyGrades(t *testing.T) {
	noisy := cliffor.NewAPS(1, 1e-20, 0, 0, 2, 0, 0, 1e-18)

	got := noisy.Reduce()
	assert.Equal(t, cliffor.H, got.Variant(), "tiny grades 1 and 3 vanish")
	assert.True(t, got.Equal(cliffor.NewH(1, 2, 0, 0)))
}

// TestReduce_KeepsSignificantGrades verifies that content above the
// threshold survives untouched.
func TestReduce_KeepsSignificantGrades(t *testing.T) {
	v := cliffor.NewAPS(1, 2, 3, 4, 5, 6, 7, 8)
	assert.True(t, v.Reduce().Equal(v), "nothing to drop")
	assert.Equal(t, cliffor.APS, v.Reduce().Variant())
}

// TestReduce_ExactZeroGrades verifies that exactly-zero grades inside a
// wide variant's support are minimized away.
func TestReduce_ExactZeroGrades(t *testing.T) {
	wide := cliffor.NewAPS(0, 3, 4, 0, 0, 0, 0, 0)

	got := wide.Reduce()
	assert.Equal(t, cliffor.V3, got.Variant(), "APS carrying only a vector reduces to V3")
	assert.True(t, got.Equal(cliffor.NewV3(3, 4, 0)))
}

// TestReduce_Zero verifies the zero element of any variant reduces to R(0).
func TestReduce_Zero(t *testing.T) {
	for _, v := range allVariants {
		z := cliffor.New(v, [8]float64{})
		got := z.Reduce()
		assert.Equal(t, cliffor.R, got.Variant(), "zero %s reduces to R", v)
		assert.True(t, got.Equal(cliffor.Zero()))
	}
}

// TestReduce_Idempotent verifies reduce(reduce(v)) == reduce(v) and that
// reduction never grows grade support, over random values of every
// variant.
func TestReduce_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(SeedPairs))
	for _, variant := range allVariants {
		v := randOf(r, variant)
		once := v.Reduce()
		assert.True(t, once.Equal(once.Reduce()), "idempotence on %s", variant)

		support := once.Variant().Mask() &^ variant.Mask()
		assert.Zero(t, support, "reduce must not grow %s's grade support", variant)
	}
}
