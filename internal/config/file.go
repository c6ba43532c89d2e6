package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout of the config file. Absent keys keep the
// current value.
type fileConfig struct {
	Database struct {
		Dir            *string        `yaml:"dir"`
		Filename       *string        `yaml:"filename"`
		QueryTimeout   *time.Duration `yaml:"query_timeout"`
		WriteTimeout   *time.Duration `yaml:"write_timeout"`
		DirPermissions *string        `yaml:"dir_permissions"`
	} `yaml:"database"`
	Validation struct {
		ContentMaxLength *int `yaml:"content_max_length"`
	} `yaml:"validation"`
	Application struct {
		Timeout *time.Duration `yaml:"timeout"`
		Verbose *bool          `yaml:"verbose"`
	} `yaml:"application"`
	Logging struct {
		Level      *string `yaml:"level"`
		File       *string `yaml:"file"`
		MaxSizeMB  *int    `yaml:"max_size_mb"`
		MaxBackups *int    `yaml:"max_backups"`
		MaxAgeDays *int    `yaml:"max_age_days"`
	} `yaml:"logging"`
}

// LoadFromFile merges the YAML file at path into the configuration.
// It reports false without error when the file does not exist.
func (c *Config) LoadFromFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return true, c.LoadFromYAML(data)
}

// LoadFromYAML merges YAML-encoded settings into the configuration.
func (c *Config) LoadFromYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{Field: "file", Message: err.Error()}
	}

	if fc.Database.Dir != nil {
		c.Database.Dir = *fc.Database.Dir
	}
	if fc.Database.Filename != nil {
		c.Database.Filename = *fc.Database.Filename
	}
	if fc.Database.QueryTimeout != nil {
		c.Database.QueryTimeout = *fc.Database.QueryTimeout
	}
	if fc.Database.WriteTimeout != nil {
		c.Database.WriteTimeout = *fc.Database.WriteTimeout
	}
	if fc.Database.DirPermissions != nil {
		c.Database.DirPermissions = ParseUint32WithFallback(*fc.Database.DirPermissions, 8, c.Database.DirPermissions)
	}

	if fc.Validation.ContentMaxLength != nil {
		c.Validation.ContentMaxLength = *fc.Validation.ContentMaxLength
	}

	if fc.Application.Timeout != nil {
		c.Application.Timeout = *fc.Application.Timeout
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}

	if fc.Logging.Level != nil {
		c.Logging.Level = *fc.Logging.Level
	}
	if fc.Logging.File != nil {
		c.Logging.File = *fc.Logging.File
	}
	if fc.Logging.MaxSizeMB != nil {
		c.Logging.MaxSizeMB = *fc.Logging.MaxSizeMB
	}
	if fc.Logging.MaxBackups != nil {
		c.Logging.MaxBackups = *fc.Logging.MaxBackups
	}
	if fc.Logging.MaxAgeDays != nil {
		c.Logging.MaxAgeDays = *fc.Logging.MaxAgeDays
	}

	return nil
}
