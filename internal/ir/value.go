package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Label is an opaque monomial token such as "Y1" or "Y2^-1".
// No internal structure is parsed; labels are compared for equality only.
type Label string

// NormalizeLabel returns the NFC form of s as a Label.
// Config loaders call this at the input boundary so visually equal labels
// written with different code point sequences compare equal.
func NormalizeLabel(s string) Label {
	return Label(norm.NFC.String(s))
}

// Term is one entry of an integer monomial mapping.
type Term struct {
	Label Label `json:"label" yaml:"label"`
	Coeff int64 `json:"coeff" yaml:"coeff"`
}

// T is a shorthand for Term for ergonomic construction.
// Example: monomial.New(ir.T("Y1", 1), ir.T("Y2^-1", 1))
func T(label Label, coeff int64) Term {
	return Term{Label: label, Coeff: coeff}
}

// Coefficient is a sealed interface representing polynomial coefficients.
// Only Int, Float, and Complex implement this. The concrete type is the
// type tag inspected by polynomiality checks: Float(2) is not an Int.
type Coefficient interface {
	coefficient() // Sealed - only these types implement it
	String() string
}

// Int is an integer coefficient.
type Int int64

func (Int) coefficient() {}

func (c Int) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// Float is a real, non-integer-typed coefficient.
type Float float64

func (Float) coefficient() {}

func (c Float) String() string {
	return strconv.FormatFloat(float64(c), 'g', -1, 64)
}

// Complex is a complex coefficient produced by spectral computations.
type Complex complex128

func (Complex) coefficient() {}

func (c Complex) String() string {
	return FormatComplex(complex128(c))
}

// MarshalJSON encodes a Complex as {"re": ..., "im": ...}.
func (c Complex) MarshalJSON() ([]byte, error) {
	return marshalComplex(complex128(c))
}

// ComplexValue is the JSON shape of a complex number.
type ComplexValue struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func marshalComplex(z complex128) ([]byte, error) {
	re, im := real(z), imag(z)
	if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
		return nil, fmt.Errorf("non-finite complex value %v", z)
	}
	return json.Marshal(ComplexValue{Re: re, Im: im})
}

// FormatComplex renders z as "(a+bi)" with the shortest exact decimals.
func FormatComplex(z complex128) string {
	return strconv.FormatComplex(z, 'g', -1, 128)
}

// CoeffTerm is one entry of a polynomial: a label with any coefficient kind.
type CoeffTerm struct {
	Label Label       `json:"label"`
	Value Coefficient `json:"value"`
}

// IsInteger reports whether c carries the Int type tag.
func IsInteger(c Coefficient) bool {
	_, ok := c.(Int)
	return ok
}

// ComplexValues converts zs to their JSON shape, in order.
func ComplexValues(zs []complex128) []ComplexValue {
	out := make([]ComplexValue, len(zs))
	for i, z := range zs {
		out[i] = ComplexValue{Re: real(z), Im: imag(z)}
	}
	return out
}
