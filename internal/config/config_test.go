package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_WritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slate", "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultStoreFileName, cfg.StorePath)
	assert.Equal(t, "list", cfg.DefaultView)
	assert.NotEmpty(t, cfg.Palette)

	_, err = os.Stat(path)
	assert.NoError(t, err, "config file should have been created")

	// Second load reads the created file and agrees.
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreate_PartialFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_view = \"calendar\"\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "calendar", cfg.DefaultView)
	assert.Equal(t, DefaultStoreFileName, cfg.StorePath)
	assert.NotEmpty(t, cfg.Palette)
}

func TestLoadOrCreate_UnknownViewNormalizesToList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_view = \"kanban\"\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "list", cfg.DefaultView)
}
