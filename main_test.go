package main

import (
	"os"
	"path/filepath"
	"testing"

	"snake-minigame/game/types"
	"snake-minigame/logger"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup_ReportsErrorsThroughLiveLogger(t *testing.T) {
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })

	tests := []struct {
		name     string
		yaml     string
		logLevel string
		target   error
	}{
		{name: "invalid config", yaml: "snake:\n  initial_length: 0\n", target: types.ErrConfiguration},
		{name: "invalid log level", logLevel: "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger.Log = zap.NewNop().Sugar()
			dir := t.TempDir()
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.yaml), 0o644))
			}

			cfg, err := setup(dir, tt.logLevel)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "got %v", err)
			}
			assert.True(t, logger.Log.Desugar().Core().Enabled(zapcore.ErrorLevel), "startup errors must reach a real logger")
		})
	}
}

func TestSetup_AppliesLogLevelOverride(t *testing.T) {
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })

	cfg, err := setup(t.TempDir(), "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, logger.Log.Desugar().Core().Enabled(zapcore.DebugLevel))
}
