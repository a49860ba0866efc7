package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trop3n/scopemidi/internal/midi"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scopemidi", "config.json")

	cfg := Default()
	cfg.InPort = "Test Port 1"
	cfg.Gain = 2.5
	cfg.Mappings = []midi.MappingRecord{
		{CC: 1, Param: "Gain"},
		{CC: 7, Param: "Volume"},
		{CC: 74, Param: "Zoom"},
	}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
	assert.Empty(t, loaded.Mappings)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	// Older config files won't have every field; absent ones keep
	// their defaults instead of collapsing to zero.
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"in_port":"X"}`), 0644))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "X", loaded.InPort)
	assert.Equal(t, float32(1.5), loaded.LineWidth)
	assert.Equal(t, float32(0.85), loaded.Persistence)
	assert.NotNil(t, loaded.Mappings)
}
