package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/qxseries/internal/ir"
)

// ParseFloats parses a comma-separated list such as "1,2,3".
// An empty string yields an empty list.
func ParseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i, p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseTerms parses an ordered term list such as "Y2=2,Y3=-1".
// The last '=' separates label from coefficient so labels may contain '='.
func ParseTerms(s string) ([]ir.Term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []ir.Term{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]ir.Term, 0, len(parts))
	for i, p := range parts {
		eq := strings.LastIndex(p, "=")
		if eq <= 0 {
			return nil, fmt.Errorf("term %d (%q): want label=coeff", i, p)
		}
		label := strings.TrimSpace(p[:eq])
		coeff, err := strconv.ParseInt(strings.TrimSpace(p[eq+1:]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("term %d (%q): %w", i, p, err)
		}
		if label == "" {
			return nil, fmt.Errorf("term %d (%q): empty label", i, p)
		}
		out = append(out, ir.Term{Label: ir.NormalizeLabel(label), Coeff: coeff})
	}
	return out, nil
}

// ParseAction parses "name=from->to;from->to" into an ActionSpec.
func ParseAction(s string) (ActionSpec, error) {
	name, body, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return ActionSpec{}, fmt.Errorf("action %q: want name=from->to;...", s)
	}
	spec := ActionSpec{Name: name, Map: map[string]string{}}
	for _, pair := range strings.Split(body, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		from, to, ok := strings.Cut(pair, "->")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return ActionSpec{}, fmt.Errorf("action %q: bad substitution %q, want from->to", name, pair)
		}
		spec.Map[string(ir.NormalizeLabel(from))] = string(ir.NormalizeLabel(to))
	}
	return spec, nil
}
