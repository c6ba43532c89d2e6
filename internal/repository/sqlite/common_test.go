package sqlite

import (
	"context"
	"errors"
	"testing"

	apperrors "daily-todo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeDatabase))
}

func TestExecuteWithRowsAffected(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	insertTodo(t, repo, "2024-06-01", "a")
	insertTodo(t, repo, "2024-06-01", "b")

	n, err := ExecuteWithRowsAffected(ctx, repo.db, "check all", `UPDATE todos SET checked = 1 WHERE date = ?`, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = ExecuteWithRowsAffected(ctx, repo.db, "check none", `UPDATE todos SET checked = 1 WHERE date = ?`, "1999-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = ExecuteWithRowsAffected(ctx, repo.db, "bad statement", `UPDATE nowhere SET x = 1`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad statement")
}

func TestQueryMultiple_CanceledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := QueryMultiple(ctx, repo.db, `SELECT id, date, content, checked FROM todos`, ScanTodos, "todos")
	assert.Error(t, err)
}
