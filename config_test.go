package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kylycht/hoststats/service/ratesync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8885", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, filepath.Join("data", "hoststats.db"), cfg.DBDSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ratesync.DefaultSchedule, cfg.RateSyncSchedule)
	assert.Zero(t, cfg.RequestRate)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoststats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \":9000\"\ndb_driver: memory\nrequest_rate: 2.5\n"), 0600))

	t.Setenv("HOSTSTATS_LOG_LEVEL", "debug")
	t.Setenv("HOSTSTATS_HTTP_PORT", ":9100")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2.5, cfg.RequestRate)
}
