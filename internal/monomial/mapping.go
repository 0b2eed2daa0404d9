package monomial

import (
	"errors"
	"fmt"

	"github.com/roach88/qxseries/internal/ir"
)

// ErrDuplicateLabel is returned when a mapping is built with a repeated label.
var ErrDuplicateLabel = errors.New("monomial: duplicate label")

// Mapping is an ordered monomial mapping from label to integer coefficient.
// Labels are unique. The zero value is an empty mapping.
type Mapping struct {
	terms []ir.Term
	index map[ir.Label]int
}

// New builds a Mapping from terms in order.
// Returns ErrDuplicateLabel if a label appears twice.
func New(terms ...ir.Term) (Mapping, error) {
	m := Mapping{
		terms: make([]ir.Term, 0, len(terms)),
		index: make(map[ir.Label]int, len(terms)),
	}
	for _, t := range terms {
		if _, ok := m.index[t.Label]; ok {
			return Mapping{}, fmt.Errorf("%w: %q", ErrDuplicateLabel, t.Label)
		}
		m.index[t.Label] = len(m.terms)
		m.terms = append(m.terms, t)
	}
	return m, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(terms ...ir.Term) Mapping {
	m, err := New(terms...)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of terms.
func (m Mapping) Len() int {
	return len(m.terms)
}

// Terms returns a copy of the terms in insertion order.
func (m Mapping) Terms() []ir.Term {
	out := make([]ir.Term, len(m.terms))
	copy(out, m.terms)
	return out
}

// Lookup returns the coefficient stored for label.
func (m Mapping) Lookup(label ir.Label) (int64, bool) {
	i, ok := m.index[label]
	if !ok {
		return 0, false
	}
	return m.terms[i].Coeff, true
}

// Labels returns the labels in insertion order.
func (m Mapping) Labels() []ir.Label {
	out := make([]ir.Label, len(m.terms))
	for i, t := range m.terms {
		out[i] = t.Label
	}
	return out
}

// set assigns coeff to label. An existing label keeps its position.
func (m *Mapping) set(label ir.Label, coeff int64) {
	if m.index == nil {
		m.index = make(map[ir.Label]int)
	}
	if i, ok := m.index[label]; ok {
		m.terms[i].Coeff = coeff
		return
	}
	m.index[label] = len(m.terms)
	m.terms = append(m.terms, ir.Term{Label: label, Coeff: coeff})
}
