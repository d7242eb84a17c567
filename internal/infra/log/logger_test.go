package logs

import (
	"log/slog"
	"testing"

	"webshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogConfig(level string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "webshop"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = level

	return cfg
}

func TestNew_BuildsTaggedLogger(t *testing.T) {
	logger, err := New(Params{Config: testLogConfig("info")})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Params{Config: testLogConfig("loud")})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
