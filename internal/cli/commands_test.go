package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/testutil"
)

func testRootOptions(format string) *RootOptions {
	return &RootOptions{
		Format:   format,
		TraceIDs: testutil.NewFixedTraceGenerator("trace-1"),
	}
}

// runCommand executes a freshly built command and returns stdout, stderr
// and the returned error.
func runCommand(t *testing.T, format string, build func(*RootOptions) *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	return runWithOptions(t, testRootOptions(format), build, args...)
}

// runWithConfig is runCommand with the persistent --config value set.
func runWithConfig(t *testing.T, format, configPath string, build func(*RootOptions) *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	rootOpts := testRootOptions(format)
	rootOpts.Config = configPath
	return runWithOptions(t, rootOpts, build, args...)
}

func runWithOptions(t *testing.T, rootOpts *RootOptions, build func(*RootOptions) *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := build(rootOpts)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeResponse unmarshals a JSON CLI response with its data left raw.
func decodeResponse(t *testing.T, s string) (CLIResponse, json.RawMessage) {
	t.Helper()

	var raw struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(s), &raw), "output: %s", s)
	return raw.CLIResponse, raw.Data
}

func TestDemoCommand_TextGolden(t *testing.T) {
	out, _, err := runCommand(t, "text", NewDemoCommand)
	require.NoError(t, err)
	testutil.AssertGolden(t, "demo_text", []byte(out))
}

func TestExtremalCommand_TextGolden(t *testing.T) {
	out, _, err := runCommand(t, "text", NewExtremalCommand)
	require.NoError(t, err)
	testutil.AssertGolden(t, "extremal_text", []byte(out))
}

func TestEvolveCommand_JSON(t *testing.T) {
	out, _, err := runCommand(t, "json", NewEvolveCommand, "--eigenvalues", "1,2", "--time", "0")
	require.NoError(t, err)

	resp, data := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-1", resp.TraceID)

	var result struct {
		Time        float64           `json:"time"`
		Eigenvalues []float64         `json:"eigenvalues"`
		Evolution   []ir.ComplexValue `json:"evolution"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 0.0, result.Time)
	assert.Equal(t, []float64{1, 2}, result.Eigenvalues)
	require.Len(t, result.Evolution, 2)
	for _, z := range result.Evolution {
		assert.InDelta(t, 1.0, z.Re, 1e-15)
		assert.InDelta(t, 0.0, z.Im, 1e-15)
	}
}

func TestEvolveCommand_EmptySpectrum(t *testing.T) {
	out, _, err := runCommand(t, "text", NewEvolveCommand, "--eigenvalues", "")
	require.NoError(t, err)
	assert.Equal(t, "Time evolution at t=1 (0 eigenvalues)\n  (empty)\n", out)
}

func TestPredictCommand_EmptySpectrum(t *testing.T) {
	out, _, err := runCommand(t, "json", NewPredictCommand, "--eigenvalues", "")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, ir.IsEmptyInput(err))

	resp, _ := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeEmptyInput, resp.Error.Code)
	assert.Equal(t, "trace-1", resp.TraceID)
}

func TestXSeriesCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, _, err := runCommand(t, "text", NewXSeriesCommand, "--extremal", "A", "--lower", "B=2,A=5")
		require.NoError(t, err)
		assert.Equal(t, "X-series polynomial\n  A → 5\n  B → 2\nPolynomial: true\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := runCommand(t, "json", NewXSeriesCommand, "--extremal", "Y1", "--lower", "")
		require.NoError(t, err)

		_, data := decodeResponse(t, out)
		var result struct {
			Extremal     string `json:"extremal"`
			IsPolynomial bool   `json:"is_polynomial"`
			Polynomial   []struct {
				Label string `json:"label"`
				Value int64  `json:"value"`
			} `json:"polynomial"`
		}
		require.NoError(t, json.Unmarshal(data, &result))
		assert.Equal(t, "Y1", result.Extremal)
		assert.True(t, result.IsPolynomial)
		require.Len(t, result.Polynomial, 1)
		assert.Equal(t, "Y1", result.Polynomial[0].Label)
		assert.Equal(t, int64(1), result.Polynomial[0].Value)
	})
}

func TestSmoothCommand_JSON(t *testing.T) {
	out, _, err := runCommand(t, "json", NewSmoothCommand,
		"--eigenvalues", "0", "--time", "3", "--extremal", "A", "--lower", "B=2",
		"--window", "3", "--sigma", "2")
	require.NoError(t, err)

	_, data := decodeResponse(t, out)
	var result struct {
		Window     int       `json:"window"`
		Sigma      float64   `json:"sigma"`
		Samples    []float64 `json:"samples"`
		Weights    []float64 `json:"weights"`
		Polynomial []struct {
			Label string          `json:"label"`
			Value ir.ComplexValue `json:"value"`
		} `json:"polynomial"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 3, result.Window)
	assert.Equal(t, 2.0, result.Sigma)
	assert.InDeltaSlice(t, []float64{2, 3, 4}, result.Samples, 1e-12)
	require.Len(t, result.Weights, 3)
	assert.InDelta(t, result.Weights[0], result.Weights[2], 1e-15)

	require.Len(t, result.Polynomial, 2)
	assert.Equal(t, "A", result.Polynomial[0].Label)
	assert.InDelta(t, 1.0, result.Polynomial[0].Value.Re, 1e-12)
	assert.Equal(t, "B", result.Polynomial[1].Label)
	assert.InDelta(t, 2.0, result.Polynomial[1].Value.Re, 1e-12)
}

func TestSmoothCommand_VerboseToStderr(t *testing.T) {
	rootOpts := testRootOptions("json")
	rootOpts.Verbose = true

	out, errOut, err := runWithOptions(t, rootOpts, NewSmoothCommand, "--window", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "samples: [1]")
	assert.Contains(t, errOut, "weights: [1]")

	resp, _ := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
}

func TestSpectrumCommand_FromOperator(t *testing.T) {
	out, _, err := runWithConfig(t, "json", "testdata/operator.cue", NewSpectrumCommand)
	require.NoError(t, err)

	_, data := decodeResponse(t, out)
	var result SpectrumResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.FromOperator)
	assert.InDeltaSlice(t, []float64{1, 3}, result.Eigenvalues, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 9}, result.Hamiltonian, 1e-12)
}

func TestSpectrumCommand_EigenvaluesFlagOverridesOperator(t *testing.T) {
	out, _, err := runWithConfig(t, "text", "testdata/operator.cue", NewSpectrumCommand, "--eigenvalues=-2")
	require.NoError(t, err)
	assert.Equal(t, "Spectrum from eigenvalues (1 eigenvalues)\n  [0] λ=-2.000000 λ²=4.000000\n", out)
}

func TestCommand_ConfigPrecedence(t *testing.T) {
	out, _, err := runWithConfig(t, "json", "testdata/flat.yaml", NewEvolveCommand, "--time", "0.5")
	require.NoError(t, err)

	_, data := decodeResponse(t, out)
	var result EvolutionResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 0.5, result.Time, "flag overrides run file")
	assert.Equal(t, []float64{0}, result.Eigenvalues, "run file overrides defaults")
}

func TestCommand_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		build    func(*RootOptions) *cobra.Command
		args     []string
		config   string
		exitCode int
		code     string
	}{
		{
			name:     "smooth empty spectrum",
			build:    NewSmoothCommand,
			args:     []string{"--eigenvalues", ""},
			exitCode: ExitFailure,
			code:     ErrCodeEmptyInput,
		},
		{
			name:     "degenerate weights",
			build:    NewSmoothCommand,
			args:     []string{"--window", "2", "--sigma", "1e-300"},
			exitCode: ExitFailure,
			code:     ErrCodeDegenerate,
		},
		{
			name:     "window zero",
			build:    NewSmoothCommand,
			args:     []string{"--window", "0"},
			exitCode: ExitCommandError,
			code:     ErrCodeInvalidArg,
		},
		{
			name:     "negative sigma",
			build:    NewDemoCommand,
			args:     []string{"--sigma", "-1"},
			exitCode: ExitCommandError,
			code:     ErrCodeInvalidArg,
		},
		{
			name:     "malformed lower terms",
			build:    NewXSeriesCommand,
			args:     []string{"--lower", "Y2"},
			exitCode: ExitCommandError,
			code:     ErrCodeInvalidFlag,
		},
		{
			name:     "malformed eigenvalues",
			build:    NewEvolveCommand,
			args:     []string{"--eigenvalues", "1,x"},
			exitCode: ExitCommandError,
			code:     ErrCodeInvalidFlag,
		},
		{
			name:     "malformed action",
			build:    NewExtremalCommand,
			args:     []string{"--action", "s1"},
			exitCode: ExitCommandError,
			code:     ErrCodeInvalidFlag,
		},
		{
			name:     "empty monomial mapping",
			build:    NewExtremalCommand,
			args:     []string{"--monomials", ""},
			exitCode: ExitFailure,
			code:     ErrCodeEmptyInput,
		},
		{
			name:     "missing run file",
			build:    NewEvolveCommand,
			config:   "testdata/does-not-exist.yaml",
			exitCode: ExitCommandError,
			code:     ErrCodeConfig,
		},
		{
			name:     "asymmetric operator",
			build:    NewSpectrumCommand,
			config:   "testdata/asymmetric.yaml",
			exitCode: ExitCommandError,
			code:     ErrCodeOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runWithConfig(t, "json", tt.config, tt.build, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			assert.True(t, IsReported(err))

			resp, _ := decodeResponse(t, out)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code, "message: %s", resp.Error.Message)
		})
	}
}

func TestExtremalCommand_RunFileActionsReplaceDefaults(t *testing.T) {
	for _, path := range []string{"testdata/actions.cue", "testdata/actions.yaml"} {
		t.Run(path, func(t *testing.T) {
			out, _, err := runWithConfig(t, "text", path, NewExtremalCommand)
			require.NoError(t, err)
			assert.Equal(t, "Extremal monomials (highest Y1, 1 actions)\n  Y1 → 1\n", out)
		})
	}
}
