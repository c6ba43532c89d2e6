package cli

import (
	"context"
)

// DeleteCommand deletes items by number after confirmation.
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes the numbered items. Without numbers the user is told to
// select some and nothing else happens.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}

	before := len(c.app.controller.Rows())
	if err := c.app.controller.Delete(ctx, numbers); err != nil {
		return err
	}
	if len(numbers) == 0 {
		return nil
	}

	if len(c.app.controller.Rows()) == before {
		c.app.prompter.Inform("Nothing deleted.")
	}
	c.app.printList()
	return nil
}
