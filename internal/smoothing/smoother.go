package smoothing

import (
	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/spectral"
	"github.com/roach88/qxseries/internal/xseries"
)

// Result is a smoothed evolution together with the window that produced it.
type Result struct {
	Samples   []float64          `json:"samples"`
	Weights   []float64          `json:"weights"`
	Evolution spectral.Evolution `json:"-"`
}

// Smooth computes the Gaussian-weighted average of TimeEvolution(ev, s)
// over the window samples s around t:
//
//	result[j] = Σ_i weight[i] · evolution(sample[i])[j]
//
// The output has len(ev) components regardless of the window size. An
// empty spectrum yields an empty evolution.
func Smooth(ev spectral.Spectrum, t float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	samples, err := Samples(t, opts.Window)
	if err != nil {
		return nil, err
	}
	weights, err := GaussianWeights(samples, t, opts.Sigma)
	if err != nil {
		return nil, err
	}

	acc := make(spectral.Evolution, len(ev))
	for i, s := range samples {
		w := weights[i]
		for j, z := range spectral.TimeEvolution(ev, s) {
			acc[j] += complex(w*real(z), w*imag(z))
		}
	}
	return &Result{Samples: samples, Weights: weights, Evolution: acc}, nil
}

// SmoothedEvolution is Smooth without the window diagnostics.
// With Window 1 it equals spectral.TimeEvolution(ev, t) exactly.
func SmoothedEvolution(ev spectral.Spectrum, t float64, opts Options) (spectral.Evolution, error) {
	r, err := Smooth(ev, t, opts)
	if err != nil {
		return nil, err
	}
	return r.Evolution, nil
}

// PredictivePolynomial smooths the evolution of ev around t and maps it
// onto an X-series with Result.Polynomial.
//
// Returns an EMPTY_INPUT ComputeError when ev is empty.
func PredictivePolynomial(ev spectral.Spectrum, t float64, extremal ir.Label, lower []ir.Term, opts Options) (xseries.Polynomial, error) {
	if len(ev) == 0 {
		return xseries.Polynomial{}, ir.NewEmptyInputError("eigenvalue sequence")
	}
	r, err := Smooth(ev, t, opts)
	if err != nil {
		return xseries.Polynomial{}, err
	}
	return r.Polynomial(extremal, lower)
}

// Polynomial maps the smoothed evolution w onto an X-series: the extremal
// label gets w[0] and the i-th lower term (1-based) gets coeff · w[i mod N].
// Indices wrap when there are more than N-1 lower terms. Lower terms
// overwrite the extremal entry on a shared label.
//
// Returns an EMPTY_INPUT ComputeError when the evolution is empty.
func (r *Result) Polynomial(extremal ir.Label, lower []ir.Term) (xseries.Polynomial, error) {
	w := r.Evolution
	n := len(w)
	if n == 0 {
		return xseries.Polynomial{}, ir.NewEmptyInputError("eigenvalue sequence")
	}

	var p xseries.Polynomial
	p.Set(extremal, ir.Complex(w[0]))
	i := 1
	for _, term := range lower {
		c := float64(term.Coeff)
		z := w[i%n]
		p.Set(term.Label, ir.Complex(complex(c*real(z), c*imag(z))))
		i++
	}
	return p, nil
}
