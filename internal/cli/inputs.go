package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/spectral"
)

// InputOptions holds the computation flags shared by several commands.
// Only flags the user explicitly set override the run file and defaults.
type InputOptions struct {
	Eigenvalues string
	Time        float64
	Extremal    string
	Lower       string
	Monomials   string
	Actions     []string
	Window      int
	Sigma       float64
}

func addSpectrumFlags(cmd *cobra.Command, in *InputOptions) {
	d := config.Defaults()
	cmd.Flags().StringVar(&in.Eigenvalues, "eigenvalues", formatFloats(d.Eigenvalues), "comma-separated eigenvalues")
	cmd.Flags().Float64VarP(&in.Time, "time", "t", d.Time, "evolution time")
}

func addSeriesFlags(cmd *cobra.Command, in *InputOptions) {
	d := config.Defaults()
	cmd.Flags().StringVar(&in.Extremal, "extremal", string(d.Extremal), "extremal monomial label")
	cmd.Flags().StringVar(&in.Lower, "lower", formatTerms(d.Lower), "lower-order terms as label=coeff,...")
}

func addSmoothingFlags(cmd *cobra.Command, in *InputOptions) {
	d := config.Defaults()
	cmd.Flags().IntVarP(&in.Window, "window", "w", d.Smoothing.Window, "number of sample times")
	cmd.Flags().Float64Var(&in.Sigma, "sigma", d.Smoothing.Sigma, "gaussian width")
}

func addMonomialFlags(cmd *cobra.Command, in *InputOptions) {
	d := config.Defaults()
	actions := make([]string, len(d.Actions))
	for i, a := range d.Actions {
		actions[i] = formatAction(a)
	}
	cmd.Flags().StringVar(&in.Monomials, "monomials", formatTerms(d.Monomials), "q-character terms as label=coeff,... (first is highest)")
	cmd.Flags().StringArrayVar(&in.Actions, "action", actions, "weyl action as name=from->to;... (repeatable)")
}

// inputError carries the CLI error code for a rejected input.
type inputError struct {
	code string
	err  error
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// resolveConfig builds the run configuration: defaults, then the run file
// named by --config, then every explicitly set flag.
func resolveConfig(cmd *cobra.Command, opts *RootOptions, in *InputOptions) (*config.RunConfig, error) {
	cfg := config.Defaults()
	if opts.Config != "" {
		if err := config.LoadInto(opts.Config, cfg); err != nil {
			return nil, &inputError{code: ErrCodeConfig, err: err}
		}
	}

	flags := cmd.Flags()
	flagErr := func(name string, err error) error {
		return &inputError{code: ErrCodeInvalidFlag, err: fmt.Errorf("--%s: %w", name, err)}
	}

	if flags.Changed("eigenvalues") {
		ev, err := config.ParseFloats(in.Eigenvalues)
		if err != nil {
			return nil, flagErr("eigenvalues", err)
		}
		cfg.Eigenvalues = ev
		cfg.Operator = nil
	}
	if flags.Changed("time") {
		cfg.Time = in.Time
	}
	if flags.Changed("extremal") {
		cfg.Extremal = ir.NormalizeLabel(in.Extremal)
	}
	if flags.Changed("lower") {
		lower, err := config.ParseTerms(in.Lower)
		if err != nil {
			return nil, flagErr("lower", err)
		}
		cfg.Lower = lower
	}
	if flags.Changed("monomials") {
		terms, err := config.ParseTerms(in.Monomials)
		if err != nil {
			return nil, flagErr("monomials", err)
		}
		cfg.Monomials = terms
	}
	if flags.Changed("action") {
		cfg.Actions = cfg.Actions[:0:0]
		for _, s := range in.Actions {
			a, err := config.ParseAction(s)
			if err != nil {
				return nil, flagErr("action", err)
			}
			cfg.Actions = append(cfg.Actions, a)
		}
	}
	if flags.Changed("window") {
		cfg.Smoothing.Window = in.Window
	}
	if flags.Changed("sigma") {
		cfg.Smoothing.Sigma = in.Sigma
	}

	if err := cfg.Validate(); err != nil {
		code := ErrCodeInvalidFlag
		if errors.Is(err, ir.ErrInvalidArgument) {
			code = ErrCodeInvalidArg
		}
		return nil, &inputError{code: code, err: err}
	}
	return cfg, nil
}

// resolveSpectrum returns the spectrum of cfg. Operator failures other
// than an empty matrix are reported under ErrCodeOperator.
func resolveSpectrum(cfg *config.RunConfig) (spectral.Spectrum, error) {
	ev, err := cfg.Spectrum()
	if err != nil && !ir.IsEmptyInput(err) {
		return nil, &inputError{code: ErrCodeOperator, err: err}
	}
	return ev, err
}

// outputFailure reports any error returned while resolving inputs or
// computing, choosing the code and exit status from its kind.
func outputFailure(formatter *OutputFormatter, err error) error {
	var ie *inputError
	if errors.As(err, &ie) {
		return outputError(formatter, ie.code, ExitCommandError, ie.err)
	}
	return outputComputeError(formatter, err)
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func formatTerms(ts []ir.Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = fmt.Sprintf("%s=%d", t.Label, t.Coeff)
	}
	return strings.Join(parts, ",")
}

func formatAction(a config.ActionSpec) string {
	froms := make([]string, 0, len(a.Map))
	for from := range a.Map {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	subs := make([]string, len(froms))
	for i, from := range froms {
		subs[i] = from + "->" + a.Map[from]
	}
	return a.Name + "=" + strings.Join(subs, ";")
}
