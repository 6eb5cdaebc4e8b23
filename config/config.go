// Package config is the TOML-backed configuration the CLI, API, and GUI
// front ends share: a nested-section-plus-DefaultConfig-plus-per-OS-path
// shape covering lexer and diagnostic settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/lookbusy1344/weave/lexer"
)

// Config is the toolchain's persisted configuration.
type Config struct {
	// Lexer settings.
	Lexer struct {
		TriviaMode string `toml:"trivia_mode"` // none, documentation, all
	} `toml:"lexer"`

	// Diagnostics settings.
	Diagnostics struct {
		RenderLimit int  `toml:"render_limit"`
		ColorOutput bool `toml:"color_output"`
	} `toml:"diagnostics"`

	// Formatter settings.
	Formatter struct {
		ColumnWidth    int  `toml:"column_width"`
		IndentWidth    int  `toml:"indent_width"`
		TrailingCommas bool `toml:"trailing_commas"`
	} `toml:"formatter"`

	// API server settings.
	API struct {
		Port            int  `toml:"port"`
		EnableWebSocket bool `toml:"enable_websocket"`
	} `toml:"api"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Lexer.TriviaMode = "documentation"

	cfg.Diagnostics.RenderLimit = 20
	cfg.Diagnostics.ColorOutput = true

	cfg.Formatter.ColumnWidth = 100
	cfg.Formatter.IndentWidth = 4
	cfg.Formatter.TrailingCommas = true

	cfg.API.Port = 8765
	cfg.API.EnableWebSocket = true

	return cfg
}

// TriviaMode resolves the configured trivia mode spelling to a
// lexer.TriviaMode, defaulting to TriviaDocumentation for an
// unrecognized or empty value.
func (c *Config) TriviaMode() lexer.TriviaMode {
	switch c.Lexer.TriviaMode {
	case "none":
		return lexer.TriviaNone
	case "all":
		return lexer.TriviaAll
	default:
		return lexer.TriviaDocumentation
	}
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
		configDir = filepath.Join(configDir, "weave")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "weave")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "weave", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "weave", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, returning
// defaults unmodified if it doesn't exist.
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
