package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Inputs InputOptions
}

// DemoResult is the payload of the demo command.
type DemoResult struct {
	Evolution  *EvolutionResult `json:"evolution"`
	XSeries    *XSeriesResult   `json:"xseries"`
	Prediction *EvolutionResult `json:"prediction"`
	Smoothed   *SmoothResult    `json:"smoothed"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the four reference computations in order",
		Long: `Run, in order: the time evolution of the spectrum, the X-series
polynomial with its polynomiality flag, the future state prediction,
and the Gaussian-smoothed predictive polynomial.

With no flags this uses spectrum [1, 2, 3] at t=1, X-series
Y1 + 2·Y2 - Y3, window 5 and sigma 1.

Example:
  qxs demo
  qxs demo --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	addSpectrumFlags(cmd, &opts.Inputs)
	addSeriesFlags(cmd, &opts.Inputs)
	addSmoothingFlags(cmd, &opts.Inputs)

	return cmd
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}

	result := &DemoResult{XSeries: computeXSeries(cfg)}
	if result.Evolution, err = computeEvolution(cfg); err != nil {
		return outputFailure(formatter, err)
	}
	if result.Prediction, err = computePrediction(cfg); err != nil {
		return outputFailure(formatter, err)
	}
	if result.Smoothed, err = computeSmooth(cfg); err != nil {
		return outputFailure(formatter, err)
	}

	return formatter.Success(result)
}

func (r *DemoResult) renderText(w io.Writer) {
	r.Evolution.renderText(w)
	fmt.Fprintln(w)
	r.XSeries.renderText(w)
	fmt.Fprintln(w)
	r.Prediction.renderText(w)
	fmt.Fprintln(w)
	r.Smoothed.renderText(w)
}
