package spectral

import (
	"math"
	"math/cmplx"

	"github.com/roach88/qxseries/internal/ir"
)

// UnitarityTolerance bounds ||z|-1| for every component of a time evolution.
const UnitarityTolerance = 1e-9

// Spectrum is an ordered sequence of real eigenvalues.
type Spectrum []float64

// Evolution is an ordered sequence of complex amplitudes, one per eigenvalue.
type Evolution []complex128

// Hamiltonian returns the elementwise square of ev, in order.
func Hamiltonian(ev Spectrum) Spectrum {
	h := make(Spectrum, len(ev))
	for i, l := range ev {
		h[i] = l * l
	}
	return h
}

// TimeEvolution returns exp(-i·t·λ²) for every eigenvalue λ in ev.
//
// Each component is renormalised to modulus 1 so rounding never pushes it
// outside UnitarityTolerance. An empty spectrum yields an empty evolution.
func TimeEvolution(ev Spectrum, t float64) Evolution {
	h := Hamiltonian(ev)
	out := make(Evolution, len(h))
	for i, e := range h {
		out[i] = unitPhase(-t * e)
	}
	return out
}

// FuturePrediction is TimeEvolution for callers that require a state to
// predict: an empty spectrum is rejected with an EMPTY_INPUT error.
func FuturePrediction(ev Spectrum, t float64) (Evolution, error) {
	if len(ev) == 0 {
		return nil, ir.NewEmptyInputError("eigenvalue sequence")
	}
	return TimeEvolution(ev, t), nil
}

// unitPhase returns exp(i·phi) with modulus 1.
func unitPhase(phi float64) complex128 {
	s, c := math.Sincos(phi)
	z := complex(c, s)
	if r := cmplx.Abs(z); r != 1 && r != 0 && !math.IsNaN(r) {
		z = complex(c/r, s/r)
	}
	return z
}

// IsUnitary reports whether every component of e has modulus 1 within tol.
// NaN components are never unitary.
func IsUnitary(e Evolution, tol float64) bool {
	for _, z := range e {
		if !(math.Abs(cmplx.Abs(z)-1) <= tol) {
			return false
		}
	}
	return true
}
