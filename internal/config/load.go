package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// ErrUnsupportedFormat is returned for run files that are neither YAML nor CUE.
var ErrUnsupportedFormat = errors.New("config: unsupported run file format")

// LoadError reports a run file that could not be read, parsed or validated.
type LoadError struct {
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a run file and overlays it onto Defaults.
// The format is chosen by extension: .yaml/.yml or .cue.
func Load(path string) (*RunConfig, error) {
	cfg := Defaults()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the run file at path onto cfg. Fields absent from the
// file keep their current values. Labels are NFC-normalised and the result
// is validated.
func LoadInto(path string, cfg *RunConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Message: "failed to read run file", Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, data, cfg)
	case ".cue":
		err = decodeCUE(path, data, cfg)
	default:
		return &LoadError{Path: path, Message: fmt.Sprintf("unknown extension %q", filepath.Ext(path)), Err: ErrUnsupportedFormat}
	}
	if err != nil {
		return err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return &LoadError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}

// decodeYAML parses YAML with strict field validation (catches typos like
// "monomial:" vs "monomials:").
func decodeYAML(path string, data []byte, cfg *RunConfig) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(cfg); err != nil {
		return &LoadError{Path: path, Message: fmt.Sprintf("failed to parse YAML: %v", err), Err: err}
	}
	return nil
}

// cueFields lists the run file paths decodeCUE overlays, each with the
// assignment that copies it from the decoded file into the target config.
var cueFields = []struct {
	path  string
	apply func(dst, src *RunConfig)
}{
	{"eigenvalues", func(dst, src *RunConfig) { dst.Eigenvalues = src.Eigenvalues }},
	{"operator", func(dst, src *RunConfig) { dst.Operator = src.Operator }},
	{"time", func(dst, src *RunConfig) { dst.Time = src.Time }},
	{"extremal", func(dst, src *RunConfig) { dst.Extremal = src.Extremal }},
	{"lower", func(dst, src *RunConfig) { dst.Lower = src.Lower }},
	{"monomials", func(dst, src *RunConfig) { dst.Monomials = src.Monomials }},
	{"actions", func(dst, src *RunConfig) { dst.Actions = src.Actions }},
	{"smoothing.window", func(dst, src *RunConfig) { dst.Smoothing.Window = src.Smoothing.Window }},
	{"smoothing.sigma", func(dst, src *RunConfig) { dst.Smoothing.Sigma = src.Smoothing.Sigma }},
}

// decodeCUE unifies the file with the closed #File schema, requires a
// concrete `run` value and overlays the fields the file sets onto cfg.
// Lists and maps in the file replace the values in cfg, as in YAML.
func decodeCUE(path string, data []byte, cfg *RunConfig) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return &LoadError{Path: path, Message: fmt.Sprintf("building schema: %v", err), Err: err}
	}

	file := ctx.CompileBytes(data, cue.Filename(path))
	if err := file.Err(); err != nil {
		return cueLoadError(path, "compiling CUE", err)
	}
	fileRun := file.LookupPath(cue.ParsePath("run"))
	if !fileRun.Exists() {
		return &LoadError{Path: path, Message: "no `run` struct defined"}
	}

	value := schema.LookupPath(cue.ParsePath("#File")).Unify(file)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return cueLoadError(path, "validating run", err)
	}

	var parsed RunConfig
	if err := value.LookupPath(cue.ParsePath("run")).Decode(&parsed); err != nil {
		return cueLoadError(path, "decoding run", err)
	}
	for _, f := range cueFields {
		if fileRun.LookupPath(cue.ParsePath(f.path)).Exists() {
			f.apply(cfg, &parsed)
		}
	}
	return nil
}

// cueLoadError extracts position info from CUE errors.
func cueLoadError(path, stage string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Path: path, Message: fmt.Sprintf("%s: %v", stage, err), Err: err}
	}

	// Report first error with position info
	first := errs[0]
	le := &LoadError{Path: path, Message: fmt.Sprintf("%s: %v", stage, first), Err: err}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
