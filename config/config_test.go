package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.EqualValues(t, 0, cfg.Memory.TextBase)
	assert.EqualValues(t, 0x800, cfg.Memory.DataBase)
	assert.EqualValues(t, 0x00100000, cfg.Memory.Size)
	assert.EqualValues(t, 1, cfg.Assembler.AtRegister)
	assert.Equal(t, 2, cfg.Assembler.MaxPseudoExpansionRounds)
	assert.Equal(t, 1000, cfg.Datapath.MaxTickIterations)
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	assert.NotEmpty(t, path)
	assert.Equal(t, "config.toml", filepath.Base(path))

	switch runtime.GOOS {
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if path != "config.toml" {
			assert.Equal(t, "mipsasm", filepath.Base(dir))
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Memory.DataBase = 0x1000
	cfg.Assembler.MaxPseudoExpansionRounds = 3
	cfg.Datapath.MaxTickIterations = 50

	require.NoError(t, cfg.SaveTo(configPath))
	_, err := os.Stat(configPath)
	require.NoError(t, err)

	loaded, err := LoadFrom(configPath)
	require.NoError(t, err)
	assert.EqualValues(t, 0x1000, loaded.Memory.DataBase)
	assert.Equal(t, 3, loaded.Assembler.MaxPseudoExpansionRounds)
	assert.Equal(t, 50, loaded.Datapath.MaxTickIterations)
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)
	assert.EqualValues(t, 0x800, cfg.Memory.DataBase)
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[memory]
text_base = "not a number"
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidTOML), 0644))

	_, err := LoadFrom(configPath)
	assert.Error(t, err)
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.SaveTo(configPath))

	_, err := os.Stat(configPath)
	require.NoError(t, err)
}
