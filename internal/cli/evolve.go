package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/spectral"
)

// EvolveOptions holds flags for the evolve command.
type EvolveOptions struct {
	*RootOptions
	Inputs InputOptions
}

// EvolutionResult is the payload of the evolve and predict commands.
type EvolutionResult struct {
	Time        float64           `json:"time"`
	Eigenvalues []float64         `json:"eigenvalues"`
	Evolution   []ir.ComplexValue `json:"evolution"`

	title  string
	vector []complex128
}

// NewEvolveCommand creates the evolve command.
func NewEvolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Time evolution exp(-i·t·λ²) of a spectrum",
		Long: `Compute the diagonal time evolution exp(-i·t·λ²) for every eigenvalue λ.

Every component has modulus 1. An empty spectrum yields an empty vector.

Example:
  qxs evolve --eigenvalues 1,2,3 --time 1
  qxs evolve --config run.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolve(opts, cmd)
		},
	}

	addSpectrumFlags(cmd, &opts.Inputs)

	return cmd
}

func runEvolve(opts *EvolveOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}
	result, err := computeEvolution(cfg)
	if err != nil {
		return outputFailure(formatter, err)
	}

	return formatter.Success(result)
}

func computeEvolution(cfg *config.RunConfig) (*EvolutionResult, error) {
	ev, err := resolveSpectrum(cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("evolving spectrum", "eigenvalues", len(ev), "time", cfg.Time)

	e := spectral.TimeEvolution(ev, cfg.Time)
	return &EvolutionResult{
		Time:        cfg.Time,
		Eigenvalues: ev,
		Evolution:   ir.ComplexValues(e),
		title:       "Time evolution",
		vector:      e,
	}, nil
}

func (r *EvolutionResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "%s at t=%s (%d eigenvalues)\n", r.title, formatTime(r.Time), len(r.Eigenvalues))
	renderVector(w, r.vector)
}
