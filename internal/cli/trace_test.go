package cli

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}

	a := gen.Generate()
	b := gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewFormatter_DefaultTraceID(t *testing.T) {
	cmd := NewEvolveCommand(&RootOptions{Format: "json"})
	formatter := newFormatter(&RootOptions{Format: "json"}, cmd)

	_, err := uuid.Parse(formatter.TraceID)
	require.NoError(t, err)
	assert.Equal(t, "json", formatter.Format)
}
