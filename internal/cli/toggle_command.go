package cli

import (
	"context"
)

// ToggleCommand checks or unchecks items by number.
type ToggleCommand struct {
	app     *App
	checked bool
}

// NewToggleCommand creates a handler that sets items to checked.
func NewToggleCommand(app *App, checked bool) *ToggleCommand {
	return &ToggleCommand{app: app, checked: checked}
}

// Execute applies the new state to every numbered item and prints the list.
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	if err := c.app.controller.Toggle(ctx, numbers, c.checked); err != nil {
		return err
	}
	c.app.printList()
	return nil
}
