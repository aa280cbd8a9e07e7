package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Backend identifiers for the activity record store.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds all configuration options for the time logger application
type Config struct {
	Storage     StorageConfig
	Engine      EngineConfig
	Export      ExportConfig
	Application ApplicationConfig
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Backend     string `toml:"backend" env:"TIMELOG_BACKEND"`
	Dir         string `toml:"dir" env:"TIMELOG_DIR"`
	DBFilename  string `toml:"db_filename" env:"TIMELOG_DB_FILENAME"`
	LogFilename string `toml:"log_filename" env:"TIMELOG_LOG_FILENAME"`
}

// EngineConfig holds log engine behavior configuration
type EngineConfig struct {
	Scope   string `toml:"scope" env:"TIMELOG_SCOPE"`
	Refresh string `toml:"refresh" env:"TIMELOG_REFRESH"`
}

// ExportConfig holds CSV export configuration
type ExportConfig struct {
	BaseName   string `toml:"base_name" env:"TIMELOG_EXPORT_BASE"`
	DateSuffix bool   `toml:"date_suffix" env:"TIMELOG_EXPORT_DATE_SUFFIX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TIMELOG_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TIMELOG_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".timelog")

	return &Config{
		Storage: StorageConfig{
			Backend:     BackendSQLite,
			Dir:         defaultDir,
			DBFilename:  "timelog.db",
			LogFilename: "timelog.json",
		},
		Engine: EngineConfig{
			Scope:   "all",
			Refresh: "reload",
		},
		Export: ExportConfig{
			BaseName:   "time-log",
			DateSuffix: true,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.DBFilename)
}

// GetLogFilePath returns the full path to the JSON log blob
func (c *Config) GetLogFilePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.LogFilename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TIMELOG_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("TIMELOG_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TIMELOG_DB_FILENAME"); filename != "" {
		c.Storage.DBFilename = filename
	}
	if filename := os.Getenv("TIMELOG_LOG_FILENAME"); filename != "" {
		c.Storage.LogFilename = filename
	}

	// Engine configuration
	if scope := os.Getenv("TIMELOG_SCOPE"); scope != "" {
		c.Engine.Scope = scope
	}
	if refresh := os.Getenv("TIMELOG_REFRESH"); refresh != "" {
		c.Engine.Refresh = refresh
	}

	// Export configuration
	if base := os.Getenv("TIMELOG_EXPORT_BASE"); base != "" {
		c.Export.BaseName = base
	}
	if suffix := os.Getenv("TIMELOG_EXPORT_DATE_SUFFIX"); suffix != "" {
		if b, err := strconv.ParseBool(suffix); err == nil {
			c.Export.DateSuffix = b
		}
	}

	// Application configuration
	if timeout := os.Getenv("TIMELOG_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TIMELOG_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Backend != BackendSQLite && c.Storage.Backend != BackendFile {
		return &ConfigError{Field: "storage.backend", Message: "backend must be 'sqlite' or 'file'"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.DBFilename == "" {
		return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.LogFilename == "" {
		return &ConfigError{Field: "storage.log_filename", Message: "log filename cannot be empty"}
	}

	// Validate engine configuration
	if c.Engine.Scope != "all" && c.Engine.Scope != "today" {
		return &ConfigError{Field: "engine.scope", Message: "scope must be 'all' or 'today'"}
	}
	if c.Engine.Refresh != "reload" && c.Engine.Refresh != "optimistic" {
		return &ConfigError{Field: "engine.refresh", Message: "refresh must be 'reload' or 'optimistic'"}
	}

	// Validate export configuration
	if c.Export.BaseName == "" {
		return &ConfigError{Field: "export.base_name", Message: "export base name cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
