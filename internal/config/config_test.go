package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "todo.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, uint32(0755), cfg.Database.DirPermissions)
	assert.Equal(t, 0, cfg.Validation.ContentMaxLength, "no content limit unless configured")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/var/lib/td"
	cfg.Database.Filename = "todos.db"

	assert.Equal(t, "/var/lib/td/todos.db", cfg.GetDatabasePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TD_DB_DIR", "/tmp/td")
	t.Setenv("TD_DB_FILENAME", "other.db")
	t.Setenv("TD_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TD_DB_WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("TD_DB_DIR_PERMISSIONS", "700")
	t.Setenv("TD_CONTENT_MAX_LENGTH", "80")
	t.Setenv("TD_APP_TIMEOUT", "2m")
	t.Setenv("TD_APP_VERBOSE", "true")
	t.Setenv("TD_LOG_LEVEL", "debug")
	t.Setenv("TD_LOG_FILE", "/tmp/td.log")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/td", cfg.Database.Dir)
	assert.Equal(t, "other.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout, "bad value keeps the default")
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, 80, cfg.Validation.ContentMaxLength)
	assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/td.log", cfg.Logging.File)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"negative write timeout", func(c *Config) { c.Database.WriteTimeout = -time.Second }, "database.write_timeout"},
		{"negative content length", func(c *Config) { c.Validation.ContentMaxLength = -1 }, "validation.content_max_length"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()

			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestConfig_LoadFromYAML(t *testing.T) {
	data := []byte(`
database:
  dir: /data/td
  query_timeout: 2s
  dir_permissions: "0700"
validation:
  content_max_length: 120
application:
  verbose: true
logging:
  level: info
  file: /var/log/td.log
  max_backups: 5
`)

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromYAML(data))

	assert.Equal(t, "/data/td", cfg.Database.Dir)
	assert.Equal(t, "todo.db", cfg.Database.Filename, "absent keys keep defaults")
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, 120, cfg.Validation.ContentMaxLength)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/var/log/td.log", cfg.Logging.File)
	assert.Equal(t, 5, cfg.Logging.MaxBackups)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
}

func TestConfig_LoadFromYAML_Invalid(t *testing.T) {
	cfg := NewConfig()

	err := cfg.LoadFromYAML([]byte("database: [not, a, map]"))

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "file", configErr.Field)
}
