package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.ServerMode)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "trivia", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TRIVIA_SERVER_PORT", "9999")
	t.Setenv("TRIVIA_DB_NAME", "trivia_test")
	t.Setenv("TRIVIA_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, "trivia_test", cfg.DBName)
	assert.Equal(t, "debug", cfg.LogLevel)
}
