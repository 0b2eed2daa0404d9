package ir

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeError_IsMatchesByCode(t *testing.T) {
	err := NewEmptyInputError("eigenvalue sequence")

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotErrorIs(t, err, ErrDegenerateWeight)
	assert.True(t, IsEmptyInput(err))
	assert.False(t, IsDegenerateWeight(err))
}

func TestComputeError_Wrapped(t *testing.T) {
	err := fmt.Errorf("smoothing: %w", NewDegenerateWeightError(0, 1e-300))

	assert.True(t, IsDegenerateWeight(err))
	var ce *ComputeError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrCodeDegenerateWeight, ce.Code)
	assert.Equal(t, "1e-300", ce.Details["sigma"])
}

func TestComputeError_Message(t *testing.T) {
	err := NewEmptyInputError("monomial mapping")
	assert.Equal(t, "EMPTY_INPUT: monomial mapping is empty", err.Error())

	err = NewInvalidArgumentError("window", "must be >= 1, got %d", 0)
	assert.Equal(t, "INVALID_ARGUMENT: window: must be >= 1, got 0", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIsHelpers_NonComputeError(t *testing.T) {
	err := errors.New("boom")
	assert.False(t, IsEmptyInput(err))
	assert.False(t, IsDegenerateWeight(err))
	assert.False(t, IsEmptyInput(nil))
}
