package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogIsUsableBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Log.Infow("before init", "phase", "not_started")
	})
}

func TestInit(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	require.NoError(t, Init("debug"))
	assert.True(t, Log.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init("warn"))
	assert.False(t, Log.Desugar().Core().Enabled(zap.InfoLevel))

	assert.Error(t, Init("chatty"))
}
