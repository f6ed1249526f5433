package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStopWatching(t *testing.T) {
	engine, err := NewEngine(nil)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, engine.StartWatching([]string{dir}))
	assert.Error(t, engine.StartWatching([]string{dir}), "second start must be rejected while watching")

	require.NoError(t, engine.StopWatching())
	assert.NoError(t, engine.StopWatching(), "stop is idempotent")

	// The flag is released, so watching can start again.
	require.NoError(t, engine.StartWatching([]string{dir}))
	require.NoError(t, engine.StopWatching())
}
