package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()

	p, err := Open(ctx, Config{Driver: "memory"})
	require.NoError(t, err)
	defer p.Close()

	_, ok, err := p.Get(ctx, "displayCurrency")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Set(ctx, "displayCurrency", "aud"))

	v, ok, err := p.Get(ctx, "displayCurrency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "aud", v)
}

func TestOpen_DefaultsToSQLite(t *testing.T) {
	ctx := context.Background()

	p, err := Open(ctx, Config{DSN: filepath.Join(t.TempDir(), "hoststats.db")})
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Set(ctx, "displayCurrency", "rub"))

	v, _, err := p.Get(ctx, "displayCurrency")
	require.NoError(t, err)
	assert.Equal(t, "rub", v)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "redis"})
	assert.ErrorContains(t, err, `unsupported storage driver "redis"`)
}
