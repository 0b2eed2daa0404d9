package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/qxseries/internal/ir"
)

func TestFixedTraceGenerator(t *testing.T) {
	gen := NewFixedTraceGenerator("trace-001")
	assert.Equal(t, "trace-001", gen.Generate())
	assert.Equal(t, "trace-001", gen.Generate())
}

func TestFixedTraceGenerator_Default(t *testing.T) {
	assert.Equal(t, "test-trace-default", NewFixedTraceGenerator("").Generate())
}

type fakePoly map[ir.Label]ir.Coefficient

func (p fakePoly) Get(l ir.Label) (ir.Coefficient, bool) {
	c, ok := p[l]
	return c, ok
}

func TestAssertCoefficient(t *testing.T) {
	p := fakePoly{"Y1": ir.Complex(1 + 1i)}
	AssertCoefficient(t, p, "Y1", 1+1i, 0)
}

func TestAssertComplexInDelta(t *testing.T) {
	AssertComplexInDelta(t, []complex128{1, 1i}, []complex128{1 + 1e-13, 1i}, 1e-12)
}
