package services

import (
	"context"
	"time"

	"daily-todo/internal/domain"
)

// Clock returns the current time. Tests pin it to a fixed instant.
type Clock func() time.Time

// TodoService handles the todo lifecycle against the store.
type TodoService interface {
	// Create operations
	Add(ctx context.Context, date domain.Date, content string) (*domain.Todo, error)

	// Read operations
	ListForDate(ctx context.Context, date domain.Date) ([]*domain.Todo, error)
	ListAll(ctx context.Context) ([]*domain.Todo, error)
	MonthSummary(ctx context.Context, month domain.Date) ([]domain.DaySummary, error)

	// Update operations
	SetChecked(ctx context.Context, id int64, checked bool) error

	// Delete operations
	Delete(ctx context.Context, id int64) error
}
