package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kylycht/hoststats/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig stores a sqlite backed config in a temp dir
func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("db_driver: sqlite\ndata_path: %q\ndb_dsn: %q\nlog_level: error\n", dir, filepath.Join(dir, "prefs.db"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCurrencyCommand_SetAndPersist(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "--config", cfg, "currency")
	require.NoError(t, err)
	assert.Equal(t, "usd\n", out)

	out, err = execute(t, "--config", cfg, "currency", "GBP")
	require.NoError(t, err)
	assert.Equal(t, "gbp\n", out)

	out, err = execute(t, "--config", cfg, "currency")
	require.NoError(t, err)
	assert.Equal(t, "gbp\n", out)
}

func TestCurrencyCommand_RejectsUnknownCode(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "--config", cfg, "currency", "doge")
	assert.ErrorIs(t, err, service.ErrUnsupportedCurrency)

	out, err := execute(t, "--config", cfg, "currency")
	require.NoError(t, err)
	assert.Equal(t, "usd\n", out)
}

func TestCurrencyCommand_TooManyArgs(t *testing.T) {
	_, err := execute(t, "--config", writeConfig(t), "currency", "eur", "gbp")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "--config", writeConfig(t), "config")
	require.NoError(t, err)
	assert.Contains(t, out, "db_driver: sqlite")
	assert.Contains(t, out, "@every 5m")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "--config", writeConfig(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "devel")
}

func TestUnixFlag(t *testing.T) {
	assert.True(t, unixFlag(0).IsZero())
	assert.True(t, unixFlag(-5).IsZero())
	assert.Equal(t, time.Unix(1600000000, 0), unixFlag(1600000000))
}
