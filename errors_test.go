package plotter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendError(t *testing.T) {
	cause := errors.New("disk full")
	err := backendError("flush", cause)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "flush", be.Op)
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, backendError("draw", nil))
}

func TestBackendErrorNoDoubleWrap(t *testing.T) {
	var (
		cause = errors.New("broken pipe")
		inner = backendError("draw", cause)
		outer = backendError("flush", inner)
	)
	assert.Same(t, inner, outer)

	var be *BackendError
	require.ErrorAs(t, outer, &be)
	assert.Equal(t, "draw", be.Op)
}
