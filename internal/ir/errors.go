package ir

import (
	"errors"
	"fmt"
)

// ComputeError represents a rejected input detected by a computation.
//
// Compute errors include:
//   - Empty input: an empty monomial mapping or eigenvalue sequence where a
//     non-empty one is required
//   - Degenerate weight: Gaussian weights that cannot be normalised
//   - Invalid argument: a window, sigma or matrix outside its domain
//
// ComputeError includes structured fields for diagnostics.
type ComputeError struct {
	// Code identifies the error category.
	Code ComputeErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context.
	Details map[string]string
}

// ComputeErrorCode categorizes compute errors.
type ComputeErrorCode string

const (
	// ErrCodeEmptyInput indicates a required non-empty input was empty.
	ErrCodeEmptyInput ComputeErrorCode = "EMPTY_INPUT"

	// ErrCodeDegenerateWeight indicates weight normalisation would divide by zero.
	ErrCodeDegenerateWeight ComputeErrorCode = "DEGENERATE_WEIGHT"

	// ErrCodeInvalidArgument indicates a parameter outside its valid domain.
	ErrCodeInvalidArgument ComputeErrorCode = "INVALID_ARGUMENT"
)

// Sentinels for errors.Is matching. Any *ComputeError with the same Code
// matches, regardless of Message or Details.
var (
	ErrEmptyInput       = &ComputeError{Code: ErrCodeEmptyInput, Message: "input is empty"}
	ErrDegenerateWeight = &ComputeError{Code: ErrCodeDegenerateWeight, Message: "weights sum to zero"}
	ErrInvalidArgument  = &ComputeError{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
)

// Error implements the error interface.
func (e *ComputeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches another *ComputeError by Code.
func (e *ComputeError) Is(target error) bool {
	var ce *ComputeError
	if errors.As(target, &ce) {
		return ce.Code == e.Code
	}
	return false
}

// IsEmptyInput returns true if the error is an empty input error.
// Uses errors.Is to handle wrapped errors.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsDegenerateWeight returns true if the error is a degenerate weight error.
func IsDegenerateWeight(err error) bool {
	return errors.Is(err, ErrDegenerateWeight)
}

// NewEmptyInputError creates a ComputeError for an empty input.
// what names the input, e.g. "monomial mapping" or "eigenvalue sequence".
func NewEmptyInputError(what string) *ComputeError {
	return &ComputeError{
		Code:    ErrCodeEmptyInput,
		Message: fmt.Sprintf("%s is empty", what),
		Details: map[string]string{"input": what},
	}
}

// NewDegenerateWeightError creates a ComputeError for weights that cannot be
// normalised.
func NewDegenerateWeightError(sum float64, sigma float64) *ComputeError {
	return &ComputeError{
		Code:    ErrCodeDegenerateWeight,
		Message: fmt.Sprintf("gaussian weights cannot be normalised (sum=%g, sigma=%g)", sum, sigma),
		Details: map[string]string{
			"sum":   fmt.Sprintf("%g", sum),
			"sigma": fmt.Sprintf("%g", sigma),
		},
	}
}

// NewInvalidArgumentError creates a ComputeError for a parameter out of range.
func NewInvalidArgumentError(name string, format string, args ...any) *ComputeError {
	return &ComputeError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...)),
		Details: map[string]string{"argument": name},
	}
}
