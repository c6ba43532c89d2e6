package cli

import (
	"context"
	"strings"
)

// AddCommand adds a to-do to the selected date.
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute joins args into the input text, adds it and prints the list.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	c.app.controller.SetInput(strings.Join(args, " "))
	if err := c.app.controller.Add(ctx); err != nil {
		return err
	}
	c.app.printList()
	return nil
}
