package cli

import (
	"context"
	"fmt"

	"daily-todo/internal/domain"
	"daily-todo/internal/errors"
)

// CalendarCommand shows a month and marks the days holding to-dos.
type CalendarCommand struct {
	app *App
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{app: app}
}

// Execute renders the month given as YYYY-MM, or the selected date's month.
func (c *CalendarCommand) Execute(ctx context.Context, args []string) error {
	month := c.app.controller.SelectedDate()
	switch len(args) {
	case 0:
	case 1:
		parsed, err := domain.ParseMonth(args[0])
		if err != nil {
			return errors.NewInvalidInputError("month", args[0], "use YYYY-MM")
		}
		month = parsed
	default:
		return errors.NewInvalidInputError("month", args[1], "calendar takes at most one month")
	}

	summaries, err := c.app.controller.Month(ctx, month)
	if err != nil {
		return err
	}
	fmt.Fprint(c.app.out, renderCalendar(month, c.app.controller.SelectedDate(), summaries))
	return nil
}
