package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qxseries/internal/config"
	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/monomial"
)

// ExtremalOptions holds flags for the extremal command.
type ExtremalOptions struct {
	*RootOptions
	Inputs InputOptions
}

// ExtremalResult is the payload of the extremal command.
type ExtremalResult struct {
	Highest  ir.Label  `json:"highest"`
	Actions  []string  `json:"actions"`
	Extremal []ir.Term `json:"extremal"`

	mapping monomial.Mapping
}

// NewExtremalCommand creates the extremal command.
func NewExtremalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtremalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "extremal",
		Short: "Extremal monomials of a q-character",
		Long: `Apply each Weyl action to the highest monomial (the first term of
--monomials) and keep the images present with coefficient exactly 1.

Actions are relabelling tables; labels not listed are fixed.
Exit code 1 when the monomial mapping is empty.

Example:
  qxs extremal --monomials 'Y1=1,Y1^-1 Y2=1,Y2^-1=1' \
    --action 's1=Y1->Y1^-1 Y2' --action 's2s1=Y1->Y2^-1'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtremal(opts, cmd)
		},
	}

	addMonomialFlags(cmd, &opts.Inputs)

	return cmd
}

func runExtremal(opts *ExtremalOptions, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := resolveConfig(cmd, opts.RootOptions, &opts.Inputs)
	if err != nil {
		return outputFailure(formatter, err)
	}
	result, err := computeExtremal(cfg)
	if err != nil {
		return outputFailure(formatter, err)
	}

	return formatter.Success(result)
}

func computeExtremal(cfg *config.RunConfig) (*ExtremalResult, error) {
	m, err := cfg.Mapping()
	if err != nil {
		return nil, &inputError{code: ErrCodeInvalidFlag, err: err}
	}
	highest, err := monomial.HighestMonomial(m)
	if err != nil {
		return nil, err
	}

	actions := cfg.WeylActions()
	slog.Debug("extracting extremal monomials", "highest", highest, "actions", len(actions))

	ext, err := monomial.ExtremalMonomials(m, actions)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Name
	}
	return &ExtremalResult{
		Highest:  highest,
		Actions:  names,
		Extremal: ext.Terms(),
		mapping:  ext,
	}, nil
}

func (r *ExtremalResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "Extremal monomials (highest %s, %d actions)\n", r.Highest, len(r.Actions))
	renderMapping(w, r.mapping)
}
