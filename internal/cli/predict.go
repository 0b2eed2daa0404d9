package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/spectral"
)

// PredictOptions holds flags for the predict command.
type PredictOptions struct {
	*RootOptions
	Inputs InputOptions
}

// NewPredictCommand creates the predict command.
func NewPredictCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PredictOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the future state of a spectrum",
		Long: `Predict the future state exp(-i·t·λ²) of a spectrum at --time.

Unlike evolve, an empty spectrum is rejected (exit code 1).

Example:
  qxs predict --eigenvalues 1,2,3 --time 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(opts, cmd)
		},
	}

	addSpectrumFlags(cmd, &opts.Inputs)

	return cmd
}

func runPredict(opts *PredictOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}
	result, err := computePrediction(cfg)
	if err != nil {
		return outputFailure(formatter, err)
	}

	return formatter.Success(result)
}

func computePrediction(cfg *config.RunConfig) (*EvolutionResult, error) {
	ev, err := resolveSpectrum(cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("predicting future state", "eigenvalues", len(ev), "time", cfg.Time)

	e, err := spectral.FuturePrediction(ev, cfg.Time)
	if err != nil {
		return nil, err
	}
	return &EvolutionResult{
		Time:        cfg.Time,
		Eigenvalues: ev,
		Evolution:   ir.ComplexValues(e),
		title:       "Future state",
		vector:      e,
	}, nil
}
