package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/spectral"
)

// SpectrumOptions holds flags for the spectrum command.
type SpectrumOptions struct {
	*RootOptions
	Inputs InputOptions
}

// SpectrumResult is the payload of the spectrum command.
type SpectrumResult struct {
	FromOperator bool      `json:"from_operator"`
	Eigenvalues  []float64 `json:"eigenvalues"`
	Hamiltonian  []float64 `json:"hamiltonian"`
}

// NewSpectrumCommand creates the spectrum command.
func NewSpectrumCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SpectrumOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Eigenvalues and Hamiltonian of the operator",
		Long: `Print the spectrum and its Hamiltonian (elementwise square).

When the run file defines an operator matrix, the spectrum is its
eigenvalues in ascending order. The matrix must be real and symmetric.

Example:
  qxs spectrum --config operator.cue
  qxs spectrum --eigenvalues 1,2,3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpectrum(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Inputs.Eigenvalues, "eigenvalues", formatFloats(config.Defaults().Eigenvalues), "comma-separated eigenvalues")

	return cmd
}

func runSpectrum(opts *SpectrumOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}
	ev, err := resolveSpectrum(cfg)
	if err != nil {
		return outputFailure(formatter, err)
	}
	slog.Debug("spectrum resolved", "eigenvalues", len(ev), "from_operator", len(cfg.Operator) > 0)

	result := &SpectrumResult{
		FromOperator: len(cfg.Operator) > 0,
		Eigenvalues:  ev,
		Hamiltonian:  spectral.Hamiltonian(ev),
	}

	return formatter.Success(result)
}

func (r *SpectrumResult) renderText(w io.Writer) {
	source := "eigenvalues"
	if r.FromOperator {
		source = "operator"
	}
	fmt.Fprintf(w, "Spectrum from %s (%d eigenvalues)\n", source, len(r.Eigenvalues))
	if len(r.Eigenvalues) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for i, l := range r.Eigenvalues {
		fmt.Fprintf(w, "  [%d] λ=%s λ²=%s\n", i, formatReal(l), formatReal(r.Hamiltonian[i]))
	}
}
