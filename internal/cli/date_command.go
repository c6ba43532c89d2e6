package cli

import (
	"context"

	"daily-todo/internal/domain"
	"daily-todo/internal/errors"
	"daily-todo/internal/validation"
)

// DateCommand changes the selected date.
type DateCommand struct {
	app       *App
	validator *validation.TodoValidator
}

// NewDateCommand creates a new date command handler
func NewDateCommand(app *App) *DateCommand {
	return &DateCommand{app: app, validator: validation.NewTodoValidator()}
}

// Execute selects the date named by args[0] and prints its list.
func (c *DateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("date", "", "give one of YYYY-MM-DD, today, next or prev")
	}

	date, err := c.resolve(args[0])
	if err != nil {
		return err
	}
	if err := c.app.controller.SelectDate(ctx, date); err != nil {
		return err
	}
	c.app.printList()
	return nil
}

func (c *DateCommand) resolve(arg string) (domain.Date, error) {
	selected := c.app.controller.SelectedDate()
	switch arg {
	case "today":
		return c.app.controller.Today(), nil
	case "next":
		return selected.AddDays(1), nil
	case "prev":
		return selected.AddDays(-1), nil
	}

	date, err := c.validator.GetValidDate(arg)
	if err != nil {
		return domain.Date{}, errors.NewValidationError("use YYYY-MM-DD, today, next or prev", err)
	}
	return date, nil
}
