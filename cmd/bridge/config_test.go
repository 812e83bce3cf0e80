package main

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexgraph/graph-bridge/boundary"
	"github.com/plexgraph/graph-bridge/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.Positive(t, cfg.MaxElements)
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
color = "never"
max_elements = 100
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 100, cfg.MaxElements)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", `color = "sometimes"`},
		{"bad limit", `max_elements = -1`},
		{"unknown key", `verbosity = 3`},
		{"not toml", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := loadConfig(path)
			require.Error(t, err)

			// Config mistakes surface as value errors at the boundary.
			assert.True(t, stderrors.Is(boundary.Translate(err), boundary.ErrValue),
				"expected value category, got %v", boundary.Translate(err))
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindIO, e.Kind)
}
