package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qxseries/internal/ir"
)

// AssertComplexInDelta checks that want and got have equal length and that
// the real and imaginary parts of each component differ by at most delta.
func AssertComplexInDelta(t testing.TB, want, got []complex128, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), delta, "real part of component %d", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), delta, "imaginary part of component %d", i)
	}
}

// CoefficientGetter is satisfied by xseries.Polynomial.
type CoefficientGetter interface {
	Get(label ir.Label) (ir.Coefficient, bool)
}

// AssertCoefficient checks that p holds a Complex coefficient for label
// within delta of want.
func AssertCoefficient(t testing.TB, p CoefficientGetter, label ir.Label, want complex128, delta float64) {
	t.Helper()
	c, ok := p.Get(label)
	require.True(t, ok, "label %q missing", label)
	z, ok := c.(ir.Complex)
	require.True(t, ok, "label %q has %T, want ir.Complex", label, c)
	AssertComplexInDelta(t, []complex128{want}, []complex128{complex128(z)}, delta)
}
