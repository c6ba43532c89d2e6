package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "daily-todo/internal/errors"
)

// captureLogs routes the standard logger into a buffer as JSON at debug
// level for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	logger := log.StandardLogger()
	out, formatter, level := logger.Out, logger.Formatter, logger.Level
	t.Cleanup(func() {
		logger.SetOutput(out)
		logger.SetFormatter(formatter)
		logger.SetLevel(level)
	})

	var logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetLevel(log.DebugLevel)
	return &logs
}

func newReportingApp(warnings io.Writer) *App {
	return NewApp(nil, NewTerminalPrompter(strings.NewReader(""), io.Discard, warnings, false), io.Discard, 0)
}

func TestApp_Report_StorageFailureLogsRecord(t *testing.T) {
	logs := captureLogs(t)
	var warnings bytes.Buffer
	app := newReportingApp(&warnings)

	err := apperrors.NewDatabaseError("update todo", errors.New("disk I/O error")).ForTodo(4).OnDate("2024-06-01")
	app.Report(err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "storage operation failed", entry["msg"])
	assert.Equal(t, "update todo", entry["operation"])
	assert.Equal(t, float64(4), entry["todo_id"])
	assert.Equal(t, "2024-06-01", entry["date"])
	assert.Equal(t, "DATABASE_ERROR", entry["code"])
	assert.Equal(t, "Warning: Could not save to the database:\ndisk I/O error\n", warnings.String())
}

func TestApp_Report_RejectedInputLogsAtDebug(t *testing.T) {
	logs := captureLogs(t)
	var warnings bytes.Buffer
	app := newReportingApp(&warnings)

	app.Report(apperrors.NewValidationError("Enter a to-do first.", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "input rejected", entry["msg"])
	assert.Equal(t, "Warning: Enter a to-do first.\n", warnings.String())
}

func TestApp_Report_InvalidInputIsNotLogged(t *testing.T) {
	logs := captureLogs(t)
	var warnings bytes.Buffer
	app := newReportingApp(&warnings)

	app.Report(apperrors.NewInvalidInputError("item", "x", `"x" is not an item number`))
	app.Report(nil)

	assert.Empty(t, logs.String())
	assert.Equal(t, "Warning: invalid input for item: \"x\" is not an item number\n", warnings.String())
}
