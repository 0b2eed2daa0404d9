package smoothing

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/roach88/qxseries/internal/ir"
)

// Options configures a smoothing window.
type Options struct {
	// Window is the number of sample times. Must be >= 1.
	Window int `json:"window" yaml:"window"`

	// Sigma is the Gaussian width in time units. Must be > 0.
	Sigma float64 `json:"sigma" yaml:"sigma"`
}

// DefaultOptions returns a three-sample window with unit sigma.
func DefaultOptions() Options {
	return Options{Window: 3, Sigma: 1.0}
}

// Validate checks o for out-of-range values.
func (o Options) Validate() error {
	if o.Window < 1 {
		return ir.NewInvalidArgumentError("window", "must be >= 1, got %d", o.Window)
	}
	if math.IsNaN(o.Sigma) || o.Sigma <= 0 {
		return ir.NewInvalidArgumentError("sigma", "must be > 0, got %g", o.Sigma)
	}
	return nil
}

// Samples returns window times evenly spaced over
// [t - window/2, t + window/2] inclusive, using integer division.
// A single-sample window is exactly [t].
func Samples(t float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ir.NewInvalidArgumentError("window", "must be >= 1, got %d", window)
	}
	half := float64(window / 2)
	if window == 1 {
		return []float64{t - half}, nil
	}
	return floats.Span(make([]float64, window), t-half, t+half), nil
}

// GaussianWeights returns exp(-0.5·((s-t)/sigma)²) for each sample,
// normalised to sum to 1.
//
// Returns a DEGENERATE_WEIGHT ComputeError when the raw weights sum to zero
// or to a non-finite value, e.g. when sigma is tiny relative to the sample
// spacing and every weight underflows.
func GaussianWeights(samples []float64, t, sigma float64) ([]float64, error) {
	if math.IsNaN(sigma) || sigma <= 0 {
		return nil, ir.NewInvalidArgumentError("sigma", "must be > 0, got %g", sigma)
	}
	w := make([]float64, len(samples))
	for i, s := range samples {
		z := (s - t) / sigma
		w[i] = math.Exp(-0.5 * z * z)
	}

	sum := floats.Sum(w)
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, ir.NewDegenerateWeightError(sum, sigma)
	}
	for i := range w {
		w[i] /= sum
	}
	return w, nil
}
