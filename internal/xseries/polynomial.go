// Package xseries assembles X-series polynomials from an extremal monomial
// and a sequence of lower-order terms.
package xseries

import (
	"encoding/json"
	"strings"

	"github.com/roach88/qxseries/internal/ir"
)

// Polynomial is an ordered mapping from monomial label to coefficient.
// Assigning to an existing label replaces its value in place.
type Polynomial struct {
	terms []ir.CoeffTerm
	index map[ir.Label]int
}

// Set assigns c to label. An existing label keeps its position.
func (p *Polynomial) Set(label ir.Label, c ir.Coefficient) {
	if p.index == nil {
		p.index = make(map[ir.Label]int)
	}
	if i, ok := p.index[label]; ok {
		p.terms[i].Value = c
		return
	}
	p.index[label] = len(p.terms)
	p.terms = append(p.terms, ir.CoeffTerm{Label: label, Value: c})
}

// Get returns the coefficient for label.
func (p Polynomial) Get(label ir.Label) (ir.Coefficient, bool) {
	i, ok := p.index[label]
	if !ok {
		return nil, false
	}
	return p.terms[i].Value, true
}

// Len returns the number of terms.
func (p Polynomial) Len() int {
	return len(p.terms)
}

// Terms returns a copy of the terms in insertion order.
func (p Polynomial) Terms() []ir.CoeffTerm {
	out := make([]ir.CoeffTerm, len(p.terms))
	copy(out, p.terms)
	return out
}

// Labels returns the labels in insertion order.
func (p Polynomial) Labels() []ir.Label {
	out := make([]ir.Label, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Label
	}
	return out
}

// String renders p as {Y1: 1, Y2: 2, Y3: -1}.
func (p Polynomial) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range p.terms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(t.Label))
		b.WriteString(": ")
		b.WriteString(t.Value.String())
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes p as an ordered list of {label, value} objects.
func (p Polynomial) MarshalJSON() ([]byte, error) {
	if p.terms == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.terms)
}
