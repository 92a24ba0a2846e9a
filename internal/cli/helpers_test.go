package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(fmt.Errorf("export: %w", context.Canceled)))

	boom := errors.New("boom")
	assert.Equal(t, boom, handleExecutionError(boom))
}

func TestSignalContextCancel(t *testing.T) {
	sc := NewSignalContext(context.Background())

	require.NoError(t, sc.Err())
	assert.Nil(t, sc.Signal())

	sc.Cancel()
	<-sc.Done()
	assert.ErrorIs(t, sc.Err(), context.Canceled)
	// Cancelled locally, not by a signal.
	assert.Nil(t, sc.Signal())
}

func TestOpenMuseumWithDefaults(t *testing.T) {
	m, err := openMuseum(Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, m.Wings())
}
