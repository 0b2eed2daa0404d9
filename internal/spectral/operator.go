package spectral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/roach88/qxseries/internal/ir"
)

// SymmetryTolerance is the largest |a[i][j]-a[j][i]| FromOperator accepts.
const SymmetryTolerance = 1e-12

var (
	// ErrNonSquare signals that an operator matrix is not square.
	ErrNonSquare = errors.New("spectral: operator matrix is not square")

	// ErrAsymmetric signals that an operator matrix is not symmetric within
	// SymmetryTolerance.
	ErrAsymmetric = errors.New("spectral: operator matrix is not symmetric")

	// ErrNonFinite signals a NaN or Inf entry.
	ErrNonFinite = errors.New("spectral: NaN or Inf in operator matrix")

	// ErrEigenFailed signals that the symmetric eigen decomposition failed.
	ErrEigenFailed = errors.New("spectral: eigen decomposition failed")
)

// FromOperator returns the eigenvalues of a real symmetric operator matrix
// in ascending order. rows is read row-major and never mutated.
func FromOperator(rows [][]float64) (Spectrum, error) {
	n := len(rows)
	if n == 0 {
		return nil, ir.NewEmptyInputError("operator matrix")
	}

	data := make([]float64, 0, n*n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(r), n)
		}
		for j, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: at (%d,%d)", ErrNonFinite, i, j)
			}
		}
		data = append(data, r...)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > SymmetryTolerance {
				return nil, fmt.Errorf("%w: (%d,%d)=%g vs (%d,%d)=%g",
					ErrAsymmetric, i, j, rows[i][j], j, i, rows[j][i])
			}
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), false); !ok {
		return nil, ErrEigenFailed
	}
	return Spectrum(es.Values(nil)), nil
}
