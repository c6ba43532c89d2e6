package services

import (
	"context"
	"fmt"

	"daily-todo/internal/domain"
	"daily-todo/internal/errors"
)

// Row is one displayed todo.
type Row struct {
	ID      int64
	Content string
	Checked bool
}

// ListView mirrors the todos of the selected date as ordered rows.
type ListView struct {
	rows          []Row
	populating    bool
	onItemChanged func(context.Context, Row) error
}

// NewListView creates an empty list view.
func NewListView() *ListView {
	return &ListView{rows: make([]Row, 0)}
}

// OnItemChanged registers the handler for user-driven check state changes.
func (lv *ListView) OnItemChanged(fn func(context.Context, Row) error) {
	lv.onItemChanged = fn
}

// Rebuild discards every row and repopulates from todos in order.
// Check states loaded here never reach the item changed handler.
func (lv *ListView) Rebuild(todos []*domain.Todo) {
	lv.populating = true
	defer func() { lv.populating = false }()

	lv.rows = lv.rows[:0]
	for _, todo := range todos {
		lv.rows = append(lv.rows, Row{ID: todo.ID, Content: todo.Content, Checked: todo.Checked})
	}
}

// Populating reports whether a rebuild is in progress.
func (lv *ListView) Populating() bool {
	return lv.populating
}

// Len returns the number of rows.
func (lv *ListView) Len() int {
	return len(lv.rows)
}

// Rows returns a copy of the rows in display order.
func (lv *ListView) Rows() []Row {
	rows := make([]Row, len(lv.rows))
	copy(rows, lv.rows)
	return rows
}

// Row returns the row at a zero-based index.
func (lv *ListView) Row(index int) (Row, error) {
	if index < 0 || index >= len(lv.rows) {
		return Row{}, errors.NewInvalidInputError("row", index+1, fmt.Sprintf("no item %d in the list", index+1))
	}
	return lv.rows[index], nil
}

// SetChecked applies a user check or uncheck to the row at index. The
// handler fires only when the state changes; if it fails the row reverts.
func (lv *ListView) SetChecked(ctx context.Context, index int, checked bool) error {
	row, err := lv.Row(index)
	if err != nil {
		return err
	}
	if row.Checked == checked {
		return nil
	}

	lv.rows[index].Checked = checked
	if err := lv.itemChanged(ctx, index); err != nil {
		lv.rows[index].Checked = row.Checked
		return err
	}
	return nil
}

func (lv *ListView) itemChanged(ctx context.Context, index int) error {
	if lv.populating || lv.onItemChanged == nil {
		return nil
	}
	return lv.onItemChanged(ctx, lv.rows[index])
}
