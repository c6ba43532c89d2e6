package cli

import (
	"context"

	"daily-todo/internal/errors"
)

// ExportCommand saves to-dos as an HTML page.
type ExportCommand struct {
	app *App
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute exports the selected date, or every date with --all, to the file
// named in args.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	all := false
	path := ""
	for _, arg := range args {
		switch {
		case arg == "--all" || arg == "-a":
			all = true
		case path == "":
			path = arg
		default:
			return errors.NewInvalidInputError("export", arg, "give a single file name")
		}
	}
	if path == "" {
		return errors.NewInvalidInputError("export", "", "give the HTML file to write")
	}

	return c.app.controller.Export(ctx, path, all)
}
