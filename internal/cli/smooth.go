package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/smoothing"
	"github.com/roach88/qxseries/internal/xseries"
)

// SmoothOptions holds flags for the smooth command.
type SmoothOptions struct {
	*RootOptions
	Inputs InputOptions
}

// SmoothResult is the payload of the smooth command.
type SmoothResult struct {
	Time       float64            `json:"time"`
	Window     int                `json:"window"`
	Sigma      float64            `json:"sigma"`
	Samples    []float64          `json:"samples"`
	Weights    []float64          `json:"weights"`
	Polynomial xseries.Polynomial `json:"polynomial"`
}

// NewSmoothCommand creates the smooth command.
func NewSmoothCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SmoothOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Gaussian-smoothed predictive X-series polynomial",
		Long: `Average the time evolution over --window samples around --time with
normalised Gaussian weights of width --sigma, then inject the result into
the X-series: the extremal term gets component 0 and the i-th lower term
gets its coefficient times component (i mod N).

Exit code 1 when the spectrum is empty or every weight underflows.

Example:
  qxs smooth --window 5 --sigma 1
  qxs smooth --eigenvalues 2 --lower A=1,B=2,C=3 -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmooth(opts, cmd)
		},
	}

	addSpectrumFlags(cmd, &opts.Inputs)
	addSeriesFlags(cmd, &opts.Inputs)
	addSmoothingFlags(cmd, &opts.Inputs)

	return cmd
}

func runSmooth(opts *SmoothOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}
	result, err := computeSmooth(cfg)
	if err != nil {
		return outputFailure(formatter, err)
	}

	formatter.VerboseLog("samples: %v", result.Samples)
	formatter.VerboseLog("weights: %v", result.Weights)
	return formatter.Success(result)
}

func computeSmooth(cfg *config.RunConfig) (*SmoothResult, error) {
	ev, err := resolveSpectrum(cfg)
	if err != nil {
		return nil, err
	}
	opts := cfg.Smoothing
	slog.Debug("smoothing evolution", "eigenvalues", len(ev), "time", cfg.Time,
		"window", opts.Window, "sigma", opts.Sigma)

	r, err := smoothing.Smooth(ev, cfg.Time, opts)
	if err != nil {
		return nil, err
	}
	p, err := r.Polynomial(cfg.Extremal, cfg.Lower)
	if err != nil {
		return nil, err
	}
	return &SmoothResult{
		Time:       cfg.Time,
		Window:     opts.Window,
		Sigma:      opts.Sigma,
		Samples:    r.Samples,
		Weights:    r.Weights,
		Polynomial: p,
	}, nil
}

func (r *SmoothResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "Smoothed predictive polynomial at t=%s (window=%d, sigma=%s)\n",
		formatTime(r.Time), r.Window, formatTime(r.Sigma))
	renderPolynomial(w, r.Polynomial)
}
