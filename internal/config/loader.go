package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "~/.config/timelog/config.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, when present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load(path string) (*Config, error) {
	if err := l.loadFile(path); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFile merges the TOML config file into the current config.
// A missing file is not an error; defaults stand.
func (l *Loader) loadFile(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	// Booleans are pointers so an explicit false in the file is
	// distinguishable from an absent key.
	var raw struct {
		Storage StorageConfig `toml:"storage"`
		Engine  EngineConfig  `toml:"engine"`
		Export  struct {
			BaseName   string `toml:"base_name"`
			DateSuffix *bool  `toml:"date_suffix"`
		} `toml:"export"`
		Application struct {
			Timeout time.Duration `toml:"timeout"`
			Verbose *bool         `toml:"verbose"`
		} `toml:"application"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if raw.Storage.Backend != "" {
		l.config.Storage.Backend = raw.Storage.Backend
	}
	if raw.Storage.Dir != "" {
		l.config.Storage.Dir = mustExpand(raw.Storage.Dir)
	}
	if raw.Storage.DBFilename != "" {
		l.config.Storage.DBFilename = raw.Storage.DBFilename
	}
	if raw.Storage.LogFilename != "" {
		l.config.Storage.LogFilename = raw.Storage.LogFilename
	}
	if raw.Engine.Scope != "" {
		l.config.Engine.Scope = raw.Engine.Scope
	}
	if raw.Engine.Refresh != "" {
		l.config.Engine.Refresh = raw.Engine.Refresh
	}
	if raw.Export.BaseName != "" {
		l.config.Export.BaseName = raw.Export.BaseName
	}
	if raw.Export.DateSuffix != nil {
		l.config.Export.DateSuffix = *raw.Export.DateSuffix
	}
	if raw.Application.Timeout > 0 {
		l.config.Application.Timeout = raw.Application.Timeout
	}
	if raw.Application.Verbose != nil {
		l.config.Application.Verbose = *raw.Application.Verbose
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
