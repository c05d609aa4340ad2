package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, errors.As(err, &ErrNoToken{}))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, "planning-bot.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 60, cfg.BreakThreshold)
	assert.Equal(t, 10, cfg.PollTimeout)
	assert.Equal(t, 32, cfg.WorkerQueue)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("PLANNING_DB_PATH", "/tmp/p.db")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("BREAK_THRESHOLD_MINUTES", "90")
	t.Setenv("WORKER_QUEUE", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 90, cfg.BreakThreshold)
	assert.Equal(t, 1, cfg.WorkerQueue)
}

func TestLoadConfigRejectsBadThreshold(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("BREAK_THRESHOLD_MINUTES", "-5")

	_, err := LoadConfig()
	assert.Error(t, err)
}
