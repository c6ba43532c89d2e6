package domain

import (
	"fmt"

	"daily-todo/internal/repository/sqlite"
)

// TodoMapper handles conversion between domain and database Todo models.
type TodoMapper struct{}

// NewTodoMapper creates a new TodoMapper instance.
func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

// ToDatabase converts a domain Todo to a database Todo.
func (m *TodoMapper) ToDatabase(todo Todo) sqlite.Todo {
	return sqlite.Todo{
		ID:      todo.ID,
		Date:    todo.Date.String(),
		Content: todo.Content,
		Checked: todo.Checked,
	}
}

// FromDatabase converts a database Todo to a domain Todo.
// Rows whose date column is not YYYY-MM-DD are rejected.
func (m *TodoMapper) FromDatabase(dbTodo sqlite.Todo) (Todo, error) {
	date, err := ParseDate(dbTodo.Date)
	if err != nil {
		return Todo{}, fmt.Errorf("todo %d: %w", dbTodo.ID, err)
	}
	return Todo{
		ID:      dbTodo.ID,
		Date:    date,
		Content: dbTodo.Content,
		Checked: dbTodo.Checked,
	}, nil
}

// FromDatabaseSlice converts database Todos to domain Todos, keeping order.
func (m *TodoMapper) FromDatabaseSlice(dbTodos []*sqlite.Todo) ([]*Todo, error) {
	todos := make([]*Todo, 0, len(dbTodos))
	for _, dbTodo := range dbTodos {
		todo, err := m.FromDatabase(*dbTodo)
		if err != nil {
			return nil, err
		}
		todos = append(todos, &todo)
	}
	return todos, nil
}

// SummaryFromDatabase converts a per-date aggregate.
func (m *TodoMapper) SummaryFromDatabase(count sqlite.DateCount) (DaySummary, error) {
	date, err := ParseDate(count.Date)
	if err != nil {
		return DaySummary{}, err
	}
	return DaySummary{Date: date, Total: count.Total, Done: count.Done}, nil
}
