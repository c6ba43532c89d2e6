package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_Levels(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		debugEnv string
		expected log.Level
	}{
		{"default is warn", Options{}, "", log.WarnLevel},
		{"explicit level", Options{Level: "info"}, "", log.InfoLevel},
		{"verbose forces debug", Options{Level: "error", Verbose: true}, "", log.DebugLevel},
		{"TD_DEBUG forces debug", Options{Level: "error"}, "1", log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TD_DEBUG", tt.debugEnv)
			logger := log.New()

			closer, err := Configure(logger, tt.opts, &bytes.Buffer{})

			require.NoError(t, err)
			defer closer.Close()
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestConfigure_UnknownLevel(t *testing.T) {
	t.Setenv("TD_DEBUG", "")

	_, err := Configure(log.New(), Options{Level: "chatty"}, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestConfigure_Stderr(t *testing.T) {
	t.Setenv("TD_DEBUG", "")
	logger := log.New()
	var stderr bytes.Buffer

	closer, err := Configure(logger, Options{Level: "info"}, &stderr)
	require.NoError(t, err)
	defer closer.Close()

	logger.WithField("date", "2024-06-01").Info("todo added")
	logger.Debug("not shown")

	assert.Contains(t, stderr.String(), "todo added")
	assert.Contains(t, stderr.String(), "date=2024-06-01")
	assert.NotContains(t, stderr.String(), "not shown")
}

func TestConfigure_File(t *testing.T) {
	t.Setenv("TD_DEBUG", "")
	logger := log.New()
	path := filepath.Join(t.TempDir(), "td.log")
	var stderr bytes.Buffer

	closer, err := Configure(logger, Options{Level: "info", File: path, MaxSizeMB: 1}, &stderr)
	require.NoError(t, err)

	logger.WithField("id", 7).Info("todo deleted")
	require.NoError(t, closer.Close())

	assert.Empty(t, stderr.String(), "file logging leaves stderr alone")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "todo deleted", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["id"])
}
