package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GRIDPATH_HOST", "GRIDPATH_PORT", "GIN_MODE", "GRIDPATH_ROWS", "GRIDPATH_COLS", "GRIDPATH_MAX_RUNS", "GRIDPATH_MAX_CELLS", "GRIDPATH_CORS_ORIGIN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 25, cfg.Rows)
	assert.Equal(t, 25, cfg.Cols)
	assert.Equal(t, 128, cfg.MaxRuns)
	assert.Equal(t, 250_000, cfg.MaxCells)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GRIDPATH_HOST", "127.0.0.1")
	t.Setenv("GRIDPATH_PORT", "9000")
	t.Setenv("GRIDPATH_ROWS", "10")
	t.Setenv("GIN_MODE", "test")
	t.Setenv("GRIDPATH_MAX_CELLS", "400")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, "test", cfg.GinMode)
	assert.Equal(t, 400, cfg.MaxCells)
}

// TestLoad_DotEnv reads a file; variables already set win over the file.
func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("GRIDPATH_PORT", "7000")
	require.NoError(t, os.Unsetenv("GRIDPATH_COLS"))
	t.Cleanup(func() { _ = os.Unsetenv("GRIDPATH_COLS") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_COLS=40\nGRIDPATH_PORT=1\n"), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Cols)
	assert.Equal(t, 7000, cfg.RESTPort)
}

func TestLoad_BadInt(t *testing.T) {
	cases := map[string]string{
		"GRIDPATH_PORT":      "eighty",
		"GRIDPATH_ROWS":      "0",
		"GRIDPATH_MAX_RUNS":  "-3",
		"GRIDPATH_MAX_CELLS": "many",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorIs(t, err, ErrBadEnv)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLogger(t *testing.T) {
	_, err := NewLogger("", ColorCyan, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyLoggerName)

	var buf bytes.Buffer
	l, err := NewLogger("APP", ColorGreen, &buf)
	require.NoError(t, err)
	l.Info("ready")
	l.Error("boom")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[APP]")
	assert.Contains(t, lines[0], "[INFO]"+LogColorReset+" ready")
	assert.Contains(t, lines[1], "[ERROR]"+LogColorReset+" boom")
}
