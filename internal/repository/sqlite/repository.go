package sqlite

import (
	"context"
	"database/sql"
	"time"

	"daily-todo/internal/errors"
	"daily-todo/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Initialize makes sure the schema exists. Safe to call on every startup.
	Initialize(ctx context.Context) error

	// Create operations
	Insert(ctx context.Context, todo *Todo) error

	// Read operations
	QueryByDate(ctx context.Context, date string) ([]*Todo, error)
	ListAll(ctx context.Context) ([]*Todo, error)
	CountByDateRange(ctx context.Context, from, to string) ([]*DateCount, error)

	// Update operations
	UpdateChecked(ctx context.Context, id int64, checked bool) error

	// Delete operations
	Delete(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// Options tunes a repository. Zero timeouts mean the caller's context alone bounds each call.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens dbPath, pins the pool to a single connection and
// initializes the schema.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One connection: the store is used from a single goroutine, and an
	// in-memory database only exists on the connection that created it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	repo := &SQLiteRepository{db: db, opts: opts}
	if err := repo.Initialize(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

// Initialize applies pragmas and pending migrations.
func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return errors.NewDatabaseError("configure database", err)
	}
	if err := migrations.RunMigrations(ctx, r.db); err != nil {
		return errors.NewDatabaseError("run migrations", err)
	}
	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.WriteTimeout)
	}
	return context.WithCancel(ctx)
}

// Insert creates a new unchecked todo and stores the assigned id on todo.
func (r *SQLiteRepository) Insert(ctx context.Context, todo *Todo) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `INSERT INTO todos (date, content, checked) VALUES (?, ?, 0)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, "insert todo", query, todo.Date, todo.Content)
	if err != nil {
		return err
	}

	todo.ID = id
	todo.Checked = false
	return nil
}

// QueryByDate returns the todos of one date in insertion order.
func (r *SQLiteRepository) QueryByDate(ctx context.Context, date string) ([]*Todo, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
	SELECT id, date, content, checked
	FROM todos
	WHERE date = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTodos, "todos", date)
}

// ListAll returns every todo grouped by date.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]*Todo, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
	SELECT id, date, content, checked
	FROM todos
	ORDER BY date ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTodos, "todos")
}

// CountByDateRange returns per-date totals for dates in [from, to].
// Dates without todos are absent from the result.
func (r *SQLiteRepository) CountByDateRange(ctx context.Context, from, to string) ([]*DateCount, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
	SELECT date, COUNT(*), COALESCE(SUM(checked), 0)
	FROM todos
	WHERE date >= ? AND date <= ?
	GROUP BY date
	ORDER BY date ASC`

	return QueryMultiple(ctx, r.db, query, ScanDateCounts, "todo counts", from, to)
}

// UpdateChecked sets the checked flag of one todo. A missing id is a no-op.
func (r *SQLiteRepository) UpdateChecked(ctx context.Context, id int64, checked bool) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	value := 0
	if checked {
		value = 1
	}

	query := `UPDATE todos SET checked = ? WHERE id = ?`
	_, err := ExecuteWithRowsAffected(ctx, r.db, "update todo", query, value, id)
	return err
}

// Delete removes one todo. A missing id is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM todos WHERE id = ?`
	_, err := ExecuteWithRowsAffected(ctx, r.db, "delete todo", query, id)
	return err
}
