package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"daily-todo/internal/api"
	"daily-todo/internal/errors"
)

// App represents the main CLI application
type App struct {
	controller   api.Controller
	prompter     *TerminalPrompter
	out          io.Writer
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	timeout      time.Duration
}

// NewApp creates a new CLI application around controller. Each command run
// is bounded by timeout; zero means no limit.
func NewApp(controller api.Controller, prompter *TerminalPrompter, out io.Writer, timeout time.Duration) *App {
	app := &App{
		controller:   controller,
		prompter:     prompter,
		out:          out,
		errorHandler: NewErrorHandler(),
		timeout:      timeout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", "no command given\n"+a.registry.GetUsage())
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

// Report shows err to the user as a warning. Storage failures are logged
// with the operation and record they hit; rejected input only at debug.
func (a *App) Report(err error) {
	if err == nil {
		return
	}

	entry := log.WithFields(errors.LogFields(err)).WithError(err)
	switch {
	case a.errorHandler.IsStorageError(err):
		entry.Error("storage operation failed")
	case a.errorHandler.IsValidationError(err):
		entry.Debug("input rejected")
	case errors.ShouldLogError(err):
		entry.Error("command failed")
	}
	a.prompter.Warn(a.errorHandler.Message(err))
}

// printList writes the selected date and its rows.
func (a *App) printList() {
	date := a.controller.SelectedDate()
	fmt.Fprintf(a.out, "%s %s\n", date.String(), date.Weekday())
	fmt.Fprint(a.out, renderRows(a.controller.Rows()))
}

// parseNumbers converts 1-based item numbers.
func parseNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, errors.NewInvalidInputError("item", arg, fmt.Sprintf("%q is not an item number", arg))
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
