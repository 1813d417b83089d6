// Package config loads and saves CLI defaults for the risc16 tool as
// TOML. RISC16 has no debugger protocol or statistics exporter to
// configure, so the only sections are Execution and Display.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the risc16 CLI's persisted defaults.
type Config struct {
	Execution struct {
		MaxCycles   uint64 `toml:"max_cycles"`
		EnableTrace bool   `toml:"enable_trace"`
	} `toml:"execution"`

	Display struct {
		ColorOutput   bool   `toml:"color_output"`
		BytesPerLine  int    `toml:"bytes_per_line"`
		NumberFormat  string `toml:"number_format"` // hex, dec, bin
		ShowRegisters bool   `toml:"show_registers"`
		ShowFlags     bool   `toml:"show_flags"`
		MemoryStart   uint16 `toml:"memory_start"`
		MemoryWindow  int    `toml:"memory_window"`
	} `toml:"display"`
}

// DefaultConfig returns the configuration a fresh install starts with.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.MaxCycles = 10_000_000
	cfg.Execution.EnableTrace = false

	cfg.Display.ColorOutput = true
	cfg.Display.BytesPerLine = 16
	cfg.Display.NumberFormat = "hex"
	cfg.Display.ShowRegisters = true
	cfg.Display.ShowFlags = true
	cfg.Display.MemoryStart = 0
	cfg.Display.MemoryWindow = 64

	return cfg
}

// ConfigPath returns the platform-specific config file path, following
// the usual XDG/AppData convention.
func ConfigPath() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "risc16")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config", "risc16")
	default:
		return "config.toml"
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads configuration from the default config file, falling back
// to DefaultConfig if no file exists yet.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads configuration from path.
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

// Save writes configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes configuration to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
