package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/roach88/qxseries/internal/ir"
	"github.com/roach88/qxseries/internal/monomial"
	"github.com/roach88/qxseries/internal/xseries"
)

// textPrecision is the number of decimals printed for real and imaginary
// parts in text output. JSON output carries full precision.
const textPrecision = 6

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', textPrecision, 64)
}

func formatComplexText(z complex128) string {
	return fmt.Sprintf("%.*f%+.*fi", textPrecision, real(z), textPrecision, imag(z))
}

func formatCoefficientText(c ir.Coefficient) string {
	switch v := c.(type) {
	case ir.Complex:
		return formatComplexText(complex128(v))
	case ir.Float:
		return formatReal(float64(v))
	default:
		return c.String()
	}
}

func formatTime(t float64) string {
	return strconv.FormatFloat(t, 'g', -1, 64)
}

// renderVector prints one "[i] value" line per component.
func renderVector(w io.Writer, zs []complex128) {
	if len(zs) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for i, z := range zs {
		fmt.Fprintf(w, "  [%d] %s\n", i, formatComplexText(z))
	}
}

// renderPolynomial prints one "label → value" line per term.
func renderPolynomial(w io.Writer, p xseries.Polynomial) {
	for _, t := range p.Terms() {
		fmt.Fprintf(w, "  %s → %s\n", t.Label, formatCoefficientText(t.Value))
	}
}

// renderMapping prints one "label → coeff" line per term.
func renderMapping(w io.Writer, m monomial.Mapping) {
	if m.Len() == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, t := range m.Terms() {
		fmt.Fprintf(w, "  %s → %d\n", t.Label, t.Coeff)
	}
}
