package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds all configuration options for the to-do application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Application ApplicationConfig
	Logging     LoggingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TD_DB_DIR"`
	Filename       string        `env:"TD_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TD_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration. A zero
// ContentMaxLength accepts content of any length.
type ValidationConfig struct {
	ContentMaxLength int `env:"TD_CONTENT_MAX_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TD_APP_TIMEOUT"`
	Verbose bool          `env:"TD_APP_VERBOSE"`
}

// LoggingConfig holds log level and log file configuration. An empty File
// logs to stderr.
type LoggingConfig struct {
	Level      string `env:"TD_LOG_LEVEL"`
	File       string `env:"TD_LOG_FILE"`
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultDir returns ~/.td, where the database and config file live.
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".td")
}

// DefaultConfigPath returns the config file read when TD_CONFIG is unset.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            DefaultDir(),
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			ContentMaxLength: 0,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values keep the current setting.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TD_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TD_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TD_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Validation configuration
	if maxLen := os.Getenv("TD_CONTENT_MAX_LENGTH"); maxLen != "" {
		c.Validation.ContentMaxLength = ParseIntWithFallback(maxLen, c.Validation.ContentMaxLength)
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TD_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Logging configuration
	if level := os.Getenv("TD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("TD_LOG_FILE"); file != "" {
		c.Logging.File = file
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.ContentMaxLength < 0 {
		return &ConfigError{Field: "validation.content_max_length", Message: "content maximum length cannot be negative (0 means no limit)"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	// Validate logging configuration
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: "unknown log level " + c.Logging.Level}
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
