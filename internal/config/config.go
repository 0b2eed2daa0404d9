// Package config defines the qxs run configuration and loads it from YAML
// or CUE files.
//
// A RunConfig starts from Defaults, is overlaid by a run file, and is then
// overlaid again by explicitly set command-line flags. Ordered data
// (monomials, lower terms, actions) is always a list so insertion order is
// structural.
package config

import (
	"fmt"

	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/monomial"
	"github.com/roach88/qxseries/internal/smoothing"
	"github.com/roach88/qxseries/internal/spectral"
)

// RunConfig holds every input a qxs computation can take.
type RunConfig struct {
	// Eigenvalues is the diagonal spectrum. Ignored when Operator is set.
	Eigenvalues []float64 `yaml:"eigenvalues" json:"eigenvalues"`

	// Operator is an optional real symmetric matrix whose eigenvalues
	// replace Eigenvalues.
	Operator [][]float64 `yaml:"operator,omitempty" json:"operator,omitempty"`

	// Time is the target evolution time.
	Time float64 `yaml:"time" json:"time"`

	// Extremal is the extremal monomial of the X-series.
	Extremal ir.Label `yaml:"extremal" json:"extremal"`

	// Lower lists the X-series lower-order terms in overlay order.
	Lower []ir.Term `yaml:"lower" json:"lower"`

	// Monomials is the q-character mapping. The first term is the highest
	// monomial.
	Monomials []ir.Term `yaml:"monomials" json:"monomials"`

	// Actions lists Weyl actions as relabelling tables.
	Actions []ActionSpec `yaml:"actions" json:"actions"`

	// Smoothing configures the Gaussian window.
	Smoothing smoothing.Options `yaml:"smoothing" json:"smoothing"`
}

// ActionSpec defines a Weyl action by a finite relabelling table.
// Labels missing from Map are fixed by the action.
type ActionSpec struct {
	Name string            `yaml:"name" json:"name"`
	Map  map[string]string `yaml:"map" json:"map"`
}

// Defaults returns the configuration of the reference demonstration:
// spectrum [1, 2, 3] at t=1, X-series Y1 + 2·Y2 - Y3, and a five-sample
// window with unit sigma.
func Defaults() *RunConfig {
	return &RunConfig{
		Eigenvalues: []float64{1, 2, 3},
		Time:        1,
		Extremal:    "Y1",
		Lower:       []ir.Term{ir.T("Y2", 2), ir.T("Y3", -1)},
		Monomials: []ir.Term{
			ir.T("Y1", 1),
			ir.T("Y1^-1 Y2", 1),
			ir.T("Y2^-1", 1),
		},
		Actions: []ActionSpec{
			{Name: "s1", Map: map[string]string{"Y1": "Y1^-1 Y2"}},
			{Name: "s2s1", Map: map[string]string{"Y1": "Y2^-1"}},
		},
		Smoothing: smoothing.Options{Window: 5, Sigma: 1},
	}
}

// Normalize rewrites every label in c to NFC form.
func (c *RunConfig) Normalize() {
	c.Extremal = ir.NormalizeLabel(string(c.Extremal))
	for i := range c.Lower {
		c.Lower[i].Label = ir.NormalizeLabel(string(c.Lower[i].Label))
	}
	for i := range c.Monomials {
		c.Monomials[i].Label = ir.NormalizeLabel(string(c.Monomials[i].Label))
	}
	for i, a := range c.Actions {
		m := make(map[string]string, len(a.Map))
		for k, v := range a.Map {
			m[string(ir.NormalizeLabel(k))] = string(ir.NormalizeLabel(v))
		}
		c.Actions[i].Map = m
	}
}

// Validate checks c for values no computation can accept.
// Empty spectra and mappings are left to the computations, which report
// them as EMPTY_INPUT.
func (c *RunConfig) Validate() error {
	if c.Extremal == "" {
		return fmt.Errorf("extremal: label is required")
	}
	for i, t := range c.Lower {
		if t.Label == "" {
			return fmt.Errorf("lower[%d]: label is required", i)
		}
	}
	for i, a := range c.Actions {
		if a.Name == "" {
			return fmt.Errorf("actions[%d]: name is required", i)
		}
	}
	if _, err := monomial.New(c.Monomials...); err != nil {
		return fmt.Errorf("monomials: %w", err)
	}
	if err := c.Smoothing.Validate(); err != nil {
		return fmt.Errorf("smoothing: %w", err)
	}
	return nil
}

// Spectrum returns the eigenvalues of Operator when set, else a copy of
// Eigenvalues.
func (c *RunConfig) Spectrum() (spectral.Spectrum, error) {
	if len(c.Operator) > 0 {
		return spectral.FromOperator(c.Operator)
	}
	ev := make(spectral.Spectrum, len(c.Eigenvalues))
	copy(ev, c.Eigenvalues)
	return ev, nil
}

// Mapping returns Monomials as a monomial.Mapping.
func (c *RunConfig) Mapping() (monomial.Mapping, error) {
	return monomial.New(c.Monomials...)
}

// WeylActions returns Actions as substitution actions in list order.
func (c *RunConfig) WeylActions() monomial.Actions {
	out := make(monomial.Actions, 0, len(c.Actions))
	for _, a := range c.Actions {
		table := make(map[ir.Label]ir.Label, len(a.Map))
		for k, v := range a.Map {
			table[ir.Label(k)] = ir.Label(v)
		}
		out = append(out, monomial.NamedAction{Name: a.Name, Apply: monomial.SubstitutionAction(table)})
	}
	return out
}
