package cli

import (
	"context"

	"daily-todo/internal/errors"
)

// ListCommand prints the to-dos of the selected date.
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute reloads the list from the store and prints it.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("list", args[0], "list takes no arguments")
	}
	if err := c.app.controller.Refresh(ctx); err != nil {
		return err
	}
	c.app.printList()
	return nil
}
