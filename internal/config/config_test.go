package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazette-extractor/internal/types"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, types.DefaultMargins(), cfg.Margins)
	assert.Equal(t, DefaultEngine, cfg.Engine)
	assert.Equal(t, DefaultProgressInterval, cfg.ProgressInterval)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_InvalidJSONFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultEngine, mgr.Get().Engine)
}

func TestLoad_ReadsConfiguredValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"margins": {"top": 40, "bottom": 45, "side": 25, "gutter_half": 15},
		"engine": "ledongthuc",
		"progress_interval": 25,
		"log_level": "debug"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, types.LayoutMargins{Top: 40, Bottom: 45, Side: 25, GutterHalf: 15}, cfg.Margins)
	assert.Equal(t, "ledongthuc", cfg.Engine)
	assert.Equal(t, 25, cfg.ProgressInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// Empty fields are back-filled so a sparse config file still works
func TestLoad_BackFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"engine": "ledongthuc"}`), 0644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "ledongthuc", cfg.Engine)
	assert.Equal(t, types.DefaultMargins(), cfg.Margins)
	assert.Equal(t, DefaultProgressInterval, cfg.ProgressInterval)
}

func TestLoad_EnvOverridesWorkDirectory(t *testing.T) {
	t.Setenv(EnvWorkDir, "/tmp/gazette-work")

	mgr, err := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "/tmp/gazette-work", mgr.Get().WorkDirectory)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Engine = "ledongthuc"
	cfg.ProgressInterval = 10
	cfg.Margins.GutterHalf = 25
	require.NoError(t, mgr.Save())

	reloaded, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, "ledongthuc", reloaded.Get().Engine)
	assert.Equal(t, 10, reloaded.Get().ProgressInterval)
	assert.Equal(t, 25.0, reloaded.Get().Margins.GutterHalf)
}
