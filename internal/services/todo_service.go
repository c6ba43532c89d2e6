package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"daily-todo/internal/domain"
	"daily-todo/internal/errors"
	"daily-todo/internal/repository/sqlite"
	"daily-todo/internal/validation"
)

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.TodoMapper
	todoValidator *validation.TodoValidator
}

// NewTodoService creates a TodoService that accepts content of any length.
func NewTodoService(repo sqlite.Repository) TodoService {
	return NewTodoServiceWithMaxLength(repo, 0)
}

// NewTodoServiceWithMaxLength creates a TodoService that rejects content
// longer than maxLength characters. Zero means no limit.
func NewTodoServiceWithMaxLength(repo sqlite.Repository, maxLength int) TodoService {
	return &todoServiceImpl{
		repo:          repo,
		mapper:        domain.NewTodoMapper(),
		todoValidator: validation.NewTodoValidatorWithMaxLength(maxLength),
	}
}

// validateContent returns the trimmed content or a validation AppError
// carrying the user-facing message.
func (s *todoServiceImpl) validateContent(content string) (string, error) {
	trimmed, err := s.todoValidator.GetValidContent(content)
	if err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return "", errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
		}
		return "", errors.NewValidationError("invalid todo", err)
	}
	return trimmed, nil
}

func (s *todoServiceImpl) validateID(id int64) error {
	if err := s.todoValidator.ValidateTodoID(id); err != nil {
		return errors.NewInvalidInputError("id", id, "must be a positive integer")
	}
	return nil
}

// Add stores a new unchecked todo under date. Nothing is written when the
// content is empty after trimming.
func (s *todoServiceImpl) Add(ctx context.Context, date domain.Date, content string) (*domain.Todo, error) {
	if date.IsZero() {
		return nil, errors.NewInvalidInputError("date", date.String(), "no date selected")
	}

	trimmed, err := s.validateContent(content)
	if err != nil {
		log.WithField("date", date.String()).Debug("rejected empty or invalid todo")
		return nil, err
	}

	dbTodo := s.mapper.ToDatabase(domain.Todo{Date: date, Content: trimmed})
	if err := s.repo.Insert(ctx, &dbTodo); err != nil {
		log.WithError(err).WithField("date", date.String()).Error("failed to add todo")
		return nil, errors.WithDate(err, date.String())
	}

	log.WithFields(log.Fields{
		"date": date.String(),
		"id":   dbTodo.ID,
	}).Info("todo added")

	todo, err := s.mapper.FromDatabase(dbTodo)
	if err != nil {
		return nil, errors.NewDatabaseError("decode todo", err)
	}
	return &todo, nil
}

// ListForDate returns the todos of one date in insertion order.
func (s *todoServiceImpl) ListForDate(ctx context.Context, date domain.Date) ([]*domain.Todo, error) {
	dbTodos, err := s.repo.QueryByDate(ctx, date.String())
	if err != nil {
		log.WithError(err).WithField("date", date.String()).Error("failed to load todos")
		return nil, errors.WithDate(err, date.String())
	}

	todos, err := s.mapper.FromDatabaseSlice(dbTodos)
	if err != nil {
		return nil, errors.NewDatabaseError("decode todos", err)
	}
	return todos, nil
}

// ListAll returns every stored todo ordered by date, then insertion.
func (s *todoServiceImpl) ListAll(ctx context.Context) ([]*domain.Todo, error) {
	dbTodos, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("failed to load todos")
		return nil, err
	}

	todos, err := s.mapper.FromDatabaseSlice(dbTodos)
	if err != nil {
		return nil, errors.NewDatabaseError("decode todos", err)
	}
	return todos, nil
}

// MonthSummary returns one summary per day of month that holds todos.
func (s *todoServiceImpl) MonthSummary(ctx context.Context, month domain.Date) ([]domain.DaySummary, error) {
	from := month.FirstOfMonth()
	to := month.LastOfMonth()

	counts, err := s.repo.CountByDateRange(ctx, from.String(), to.String())
	if err != nil {
		log.WithError(err).WithField("month", from.String()).Error("failed to count todos")
		return nil, err
	}

	summaries := make([]domain.DaySummary, 0, len(counts))
	for _, count := range counts {
		summary, err := s.mapper.SummaryFromDatabase(*count)
		if err != nil {
			return nil, errors.NewDatabaseError("decode todo counts", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// SetChecked writes the checked flag of one todo.
func (s *todoServiceImpl) SetChecked(ctx context.Context, id int64, checked bool) error {
	if err := s.validateID(id); err != nil {
		return err
	}

	if err := s.repo.UpdateChecked(ctx, id, checked); err != nil {
		log.WithError(err).WithField("id", id).Error("failed to update todo")
		return errors.WithTodo(err, id)
	}

	log.WithFields(log.Fields{
		"id":      id,
		"checked": checked,
	}).Debug("todo updated")
	return nil
}

// Delete removes one todo. Deleting a missing id succeeds.
func (s *todoServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.validateID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).WithField("id", id).Error("failed to delete todo")
		return errors.WithTodo(err, id)
	}

	log.WithField("id", id).Info("todo deleted")
	return nil
}
