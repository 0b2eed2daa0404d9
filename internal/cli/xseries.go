package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/xseries"
)

// XSeriesOptions holds flags for the xseries command.
type XSeriesOptions struct {
	*RootOptions
	Inputs InputOptions
}

// XSeriesResult is the payload of the xseries command.
type XSeriesResult struct {
	Extremal     ir.Label           `json:"extremal"`
	Polynomial   xseries.Polynomial `json:"polynomial"`
	IsPolynomial bool               `json:"is_polynomial"`
}

// NewXSeriesCommand creates the xseries command.
func NewXSeriesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &XSeriesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "xseries",
		Short: "Build an X-series polynomial",
		Long: `Build an X-series polynomial from an extremal monomial and lower-order terms.

The extremal monomial is seeded with coefficient 1, then each lower term
is assigned in order. A lower term on the extremal label overwrites it.

Example:
  qxs xseries --extremal Y1 --lower Y2=2,Y3=-1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXSeries(opts, cmd)
		},
	}

	addSeriesFlags(cmd, &opts.Inputs)

	return cmd
}

func runXSeries(opts *XSeriesOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}
	result := computeXSeries(cfg)

	return formatter.Success(result)
}

func computeXSeries(cfg *config.RunConfig) *XSeriesResult {
	slog.Debug("building x-series", "extremal", cfg.Extremal, "lower_terms", len(cfg.Lower))

	x := xseries.New(cfg.Extremal, cfg.Lower)
	p := x.AsPolynomial()
	return &XSeriesResult{
		Extremal:     cfg.Extremal,
		Polynomial:   p,
		IsPolynomial: xseries.IsPolynomial(p),
	}
}

func (r *XSeriesResult) renderText(w io.Writer) {
	fmt.Fprintln(w, "X-series polynomial")
	renderPolynomial(w, r.Polynomial)
	fmt.Fprintf(w, "Polynomial: %t\n", r.IsPolynomial)
}
