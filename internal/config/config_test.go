package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/monomial"
	"github.com/roach88/qxseries/internal/smoothing"
	"github.com/roach88/qxseries/internal/spectral"
)

func TestDefaults_Valid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []float64{1, 2, 3}, cfg.Eigenvalues)
	assert.Equal(t, 1.0, cfg.Time)
	assert.Equal(t, ir.Label("Y1"), cfg.Extremal)
	assert.Equal(t, []ir.Term{ir.T("Y2", 2), ir.T("Y3", -1)}, cfg.Lower)
	assert.Equal(t, smoothing.Options{Window: 5, Sigma: 1}, cfg.Smoothing)
}

func TestDefaults_Extremal(t *testing.T) {
	cfg := Defaults()
	m, err := cfg.Mapping()
	require.NoError(t, err)

	got, err := monomial.ExtremalMonomials(m, cfg.WeylActions())
	require.NoError(t, err)
	assert.Equal(t, []ir.Label{"Y1^-1 Y2", "Y2^-1"}, got.Labels())
}

func TestSpectrum_CopiesEigenvalues(t *testing.T) {
	cfg := Defaults()
	ev, err := cfg.Spectrum()
	require.NoError(t, err)
	ev[0] = 42

	assert.Equal(t, 1.0, cfg.Eigenvalues[0])
}

func TestSpectrum_FromOperator(t *testing.T) {
	cfg := Defaults()
	cfg.Operator = [][]float64{{2, 1}, {1, 2}}

	ev, err := cfg.Spectrum()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3}, []float64(ev), 1e-12)
}

func TestSpectrum_BadOperator(t *testing.T) {
	cfg := Defaults()
	cfg.Operator = [][]float64{{1, 2}, {3, 4}}

	_, err := cfg.Spectrum()
	assert.ErrorIs(t, err, spectral.ErrAsymmetric)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunConfig)
		errMsg string
	}{
		{"missing extremal", func(c *RunConfig) { c.Extremal = "" }, "extremal"},
		{"empty lower label", func(c *RunConfig) { c.Lower = []ir.Term{ir.T("", 1)} }, "lower[0]"},
		{"unnamed action", func(c *RunConfig) { c.Actions = []ActionSpec{{}} }, "actions[0]"},
		{"duplicate monomial", func(c *RunConfig) { c.Monomials = []ir.Term{ir.T("Y1", 1), ir.T("Y1", 1)} }, "duplicate label"},
		{"bad window", func(c *RunConfig) { c.Smoothing.Window = 0 }, "window"},
		{"bad sigma", func(c *RunConfig) { c.Smoothing.Sigma = -1 }, "sigma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_EmptyInputsAllowed(t *testing.T) {
	cfg := Defaults()
	cfg.Eigenvalues = nil
	cfg.Monomials = nil
	assert.NoError(t, cfg.Validate())
}

func TestNormalize(t *testing.T) {
	decomposed, composed := "Ye\u0301", "Y\u00e9"

	cfg := Defaults()
	cfg.Extremal = ir.Label(decomposed)
	cfg.Lower = []ir.Term{ir.T(ir.Label(decomposed), 1)}
	cfg.Monomials = []ir.Term{ir.T(ir.Label(decomposed), 1)}
	cfg.Actions = []ActionSpec{{Name: "a", Map: map[string]string{decomposed: decomposed + "^-1"}}}

	cfg.Normalize()

	assert.Equal(t, ir.Label(composed), cfg.Extremal)
	assert.Equal(t, ir.Label(composed), cfg.Lower[0].Label)
	assert.Equal(t, ir.Label(composed), cfg.Monomials[0].Label)
	assert.Equal(t, map[string]string{composed: composed + "^-1"}, cfg.Actions[0].Map)
}
