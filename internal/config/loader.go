package config

import (
	"os"
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configPath string
	explicit   bool
}

// NewLoader creates a new configuration loader. The config file is taken
// from TD_CONFIG, else ~/.td/config.yaml.
func NewLoader() *Loader {
	l := &Loader{
		config:     NewConfig(),
		configPath: DefaultConfigPath(),
	}
	if path := os.Getenv("TD_CONFIG"); path != "" {
		l.configPath = path
		l.explicit = true
	}
	return l
}

// WithConfigFile reads path instead of the default config file. A missing
// explicit file is an error.
func (l *Loader) WithConfigFile(path string) *Loader {
	if path != "" {
		l.configPath = path
		l.explicit = true
	}
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	found, err := l.config.LoadFromFile(l.configPath)
	if err != nil {
		return nil, err
	}
	if !found && l.explicit {
		return nil, &ConfigError{Field: "file", Message: "config file not found: " + l.configPath}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir      *string
	DBFilename *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Logging overrides
	LogFile *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.LogFile != nil {
		config.Logging.File = *overrides.LogFile
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
