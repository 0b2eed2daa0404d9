package xseries

import (
	"github.com/roach88/qxseries/internal/ir"
)

// Build seeds {extremal: 1} and then overlays lower in order.
// A lower term whose label equals extremal overwrites the seed value.
func Build(extremal ir.Label, lower []ir.Term) Polynomial {
	var p Polynomial
	p.Set(extremal, ir.Int(1))
	for _, t := range lower {
		p.Set(t.Label, ir.Int(t.Coeff))
	}
	return p
}

// IsPolynomial reports whether every coefficient of p carries the Int type
// tag. It is a type check, not a numeric one: Float(2.0) fails it.
// It never errors; an empty polynomial is vacuously true.
func IsPolynomial(p Polynomial) bool {
	for _, t := range p.terms {
		if !ir.IsInteger(t.Value) {
			return false
		}
	}
	return true
}

// XSeries is an X-series: an extremal monomial plus lower-order terms.
type XSeries struct {
	Extremal ir.Label
	Lower    []ir.Term
}

// New returns an XSeries over a copy of lower.
func New(extremal ir.Label, lower []ir.Term) XSeries {
	l := make([]ir.Term, len(lower))
	copy(l, lower)
	return XSeries{Extremal: extremal, Lower: l}
}

// AsPolynomial builds the polynomial for x.
func (x XSeries) AsPolynomial() Polynomial {
	return Build(x.Extremal, x.Lower)
}

// IsPolynomial reports whether x's polynomial has integer coefficients only.
func (x XSeries) IsPolynomial() bool {
	return IsPolynomial(x.AsPolynomial())
}
