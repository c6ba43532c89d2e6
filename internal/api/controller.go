package api

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"daily-todo/internal/domain"
	"daily-todo/internal/errors"
	"daily-todo/internal/export"
	"daily-todo/internal/services"
)

// Controller drives the to-do screen: one selected date, its list of rows
// and the text input.
type Controller interface {
	// Lifecycle
	Start(ctx context.Context) error
	Refresh(ctx context.Context) error

	// Date selection
	SelectDate(ctx context.Context, date domain.Date) error
	SelectedDate() domain.Date
	Today() domain.Date

	// Input field
	SetInput(text string)
	Input() string

	// Mutations. Row numbers are 1-based positions in Rows.
	Add(ctx context.Context) error
	Toggle(ctx context.Context, numbers []int, checked bool) error
	Delete(ctx context.Context, numbers []int) error

	// Views
	Rows() []services.Row
	Month(ctx context.Context, month domain.Date) ([]domain.DaySummary, error)
	Export(ctx context.Context, path string, all bool) error
}

type controllerImpl struct {
	todos     services.TodoService
	selection *services.Selection
	list      *services.ListView
	prompter  Prompter
	input     string
}

// NewController wires a controller around todos. The selection starts at
// today according to clock.
func NewController(todos services.TodoService, prompter Prompter, clock services.Clock) Controller {
	c := &controllerImpl{
		todos:     todos,
		selection: services.NewSelection(clock),
		list:      services.NewListView(),
		prompter:  prompter,
	}
	c.selection.OnChange(c.dateChanged)
	c.list.OnItemChanged(c.itemChanged)
	return c
}

// Start loads the list for the initial selection.
func (c *controllerImpl) Start(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh rebuilds the rows from the store for the selected date.
func (c *controllerImpl) Refresh(ctx context.Context) error {
	todos, err := c.todos.ListForDate(ctx, c.selection.Date())
	if err != nil {
		return err
	}
	c.list.Rebuild(todos)
	return nil
}

func (c *controllerImpl) dateChanged(ctx context.Context, date domain.Date) error {
	log.WithField("date", date.String()).Debug("selected date changed")
	return c.Refresh(ctx)
}

func (c *controllerImpl) itemChanged(ctx context.Context, row services.Row) error {
	return c.todos.SetChecked(ctx, row.ID, row.Checked)
}

func (c *controllerImpl) SelectDate(ctx context.Context, date domain.Date) error {
	if date.IsZero() {
		return errors.NewInvalidInputError("date", "", "no date given")
	}
	_, err := c.selection.Select(ctx, date)
	return err
}

func (c *controllerImpl) SelectedDate() domain.Date {
	return c.selection.Date()
}

func (c *controllerImpl) Today() domain.Date {
	return c.selection.Today()
}

func (c *controllerImpl) SetInput(text string) {
	c.input = text
}

func (c *controllerImpl) Input() string {
	return c.input
}

// Add stores the input field as a todo of the selected date, clears the
// input and reloads the list. Invalid input leaves everything untouched.
func (c *controllerImpl) Add(ctx context.Context) error {
	if _, err := c.todos.Add(ctx, c.selection.Date(), c.input); err != nil {
		return err
	}
	c.input = ""
	return c.Refresh(ctx)
}

// Toggle checks or unchecks rows. Each change is written as it happens and
// the list is not reloaded.
func (c *controllerImpl) Toggle(ctx context.Context, numbers []int, checked bool) error {
	if len(numbers) == 0 {
		return errors.NewInvalidInputError("row", "", "no items given")
	}
	if err := c.checkNumbers(numbers); err != nil {
		return err
	}
	for _, n := range numbers {
		if err := c.list.SetChecked(ctx, n-1, checked); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the given rows after the user confirms. Without rows it
// only tells the user to select some. A store failure stops at that row.
func (c *controllerImpl) Delete(ctx context.Context, numbers []int) error {
	if len(numbers) == 0 {
		c.prompter.Inform("Select the items to delete first.")
		return nil
	}
	if err := c.checkNumbers(numbers); err != nil {
		return err
	}

	selected := uniqueSorted(numbers)
	ok, err := c.prompter.Confirm(fmt.Sprintf("Delete %d selected item(s)?", len(selected)))
	if err != nil {
		return err
	}
	if !ok {
		log.Debug("delete cancelled")
		return nil
	}

	rows := c.list.Rows()
	for _, n := range selected {
		if err := c.todos.Delete(ctx, rows[n-1].ID); err != nil {
			// Rows deleted before the failure must not stay on screen.
			if refreshErr := c.Refresh(ctx); refreshErr != nil {
				log.WithError(refreshErr).Warn("reload after failed delete")
			}
			return err
		}
	}
	return c.Refresh(ctx)
}

func (c *controllerImpl) Rows() []services.Row {
	return c.list.Rows()
}

func (c *controllerImpl) Month(ctx context.Context, month domain.Date) ([]domain.DaySummary, error) {
	return c.todos.MonthSummary(ctx, month)
}

// Export writes the selected date's todos, or every todo when all is set,
// to an HTML file and informs the user where it went.
func (c *controllerImpl) Export(ctx context.Context, path string, all bool) error {
	if path == "" {
		return errors.NewInvalidInputError("path", path, "no file given")
	}

	var (
		todos []*domain.Todo
		title string
		err   error
	)
	if all {
		todos, err = c.todos.ListAll(ctx)
		title = export.Title(domain.Date{})
	} else {
		todos, err = c.todos.ListForDate(ctx, c.selection.Date())
		title = export.Title(c.selection.Date())
	}
	if err != nil {
		return err
	}

	if err := export.WriteHTMLFile(path, title, todos); err != nil {
		return err
	}
	c.prompter.Inform(fmt.Sprintf("Saved HTML file:\n%s", path))
	return nil
}

func (c *controllerImpl) checkNumbers(numbers []int) error {
	for _, n := range numbers {
		if _, err := c.list.Row(n - 1); err != nil {
			return err
		}
	}
	return nil
}

func uniqueSorted(numbers []int) []int {
	seen := make(map[int]bool, len(numbers))
	result := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	sort.Ints(result)
	return result
}
