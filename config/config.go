// Package config loads the assembler and datapath's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the assembler pipeline and the datapath.
type Config struct {
	Memory struct {
		TextBase uint32 `toml:"text_base"`
		DataBase uint32 `toml:"data_base"`
		Size     uint32 `toml:"size"`
		StackTop uint32 `toml:"stack_top"`
	} `toml:"memory"`

	Assembler struct {
		AtRegister               uint32 `toml:"at_register"`
		MaxPseudoExpansionRounds int    `toml:"max_pseudo_expansion_rounds"`
	} `toml:"assembler"`

	Datapath struct {
		MaxTickIterations int `toml:"max_tick_iterations"`
	} `toml:"datapath"`
}

// DefaultConfig returns the documented defaults (SPEC_FULL.md §5.1), used
// as-is when no TOML file is present and as the base that LoadFrom
// overlays a file on top of.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Memory.TextBase = 0x00000000
	cfg.Memory.DataBase = 0x00000800
	cfg.Memory.Size = 0x00100000 // 1 MiB
	cfg.Memory.StackTop = 0x000FFFFC

	cfg.Assembler.AtRegister = 1
	cfg.Assembler.MaxPseudoExpansionRounds = 2

	cfg.Datapath.MaxTickIterations = 1000

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mipsasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mipsasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path, overlaying it on the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
