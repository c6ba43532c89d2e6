package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		}
	}
	return nil
}

// TestRows replays a fixed set of rows.
type TestRows struct {
	rows    [][]interface{}
	current int
	scanErr error
	iterErr error
}

func (tr *TestRows) Next() bool {
	tr.current++
	return tr.current <= len(tr.rows)
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	if tr.scanErr != nil {
		return tr.scanErr
	}
	return (&TestScanner{data: tr.rows[tr.current-1]}).Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.iterErr
}

func TestScanTodo(t *testing.T) {
	tests := []struct {
		name     string
		scanner  *TestScanner
		expected *Todo
		wantErr  bool
	}{
		{
			name:     "unchecked",
			scanner:  &TestScanner{data: []interface{}{int64(1), "2024-06-01", "Buy milk", int64(0)}},
			expected: &Todo{ID: 1, Date: "2024-06-01", Content: "Buy milk", Checked: false},
		},
		{
			name:     "checked",
			scanner:  &TestScanner{data: []interface{}{int64(2), "2024-06-01", "Walk dog", int64(1)}},
			expected: &Todo{ID: 2, Date: "2024-06-01", Content: "Walk dog", Checked: true},
		},
		{
			name:    "scan error",
			scanner: &TestScanner{err: errors.New("scan failed")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo, err := ScanTodo(tt.scanner)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, todo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, todo)
		})
	}
}

func TestScanTodos(t *testing.T) {
	rows := &TestRows{rows: [][]interface{}{
		{int64(1), "2024-06-01", "A", int64(0)},
		{int64(2), "2024-06-01", "B", int64(1)},
	}}

	todos, err := ScanTodos(rows)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "A", todos[0].Content)
	assert.True(t, todos[1].Checked)

	t.Run("no rows gives an empty slice", func(t *testing.T) {
		todos, err := ScanTodos(&TestRows{})
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	t.Run("iteration error", func(t *testing.T) {
		_, err := ScanTodos(&TestRows{iterErr: errors.New("interrupted")})
		assert.EqualError(t, err, "interrupted")
	})

	t.Run("scan error", func(t *testing.T) {
		_, err := ScanTodos(&TestRows{rows: [][]interface{}{{int64(1)}}, scanErr: errors.New("bad row")})
		assert.EqualError(t, err, "bad row")
	})
}

func TestScanDateCounts(t *testing.T) {
	rows := &TestRows{rows: [][]interface{}{
		{"2024-06-01", int64(3), int64(1)},
	}}

	counts, err := ScanDateCounts(rows)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, DateCount{Date: "2024-06-01", Total: 3, Done: 1}, *counts[0])
}
