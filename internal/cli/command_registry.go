package cli

import (
	"context"
	"fmt"
	"strings"

	"daily-todo/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

type registeredCommand struct {
	usage   string
	command Command
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]registeredCommand
	names    []string
}

// NewCommandRegistry creates a registry holding every command of app.
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]registeredCommand),
	}

	registry.Register("add", "add <text>            add a to-do to the selected date", NewAddCommand(app))
	registry.Register("list", "list                  show the to-dos of the selected date", NewListCommand(app))
	registry.Register("check", "check <n...>          mark items as done", NewToggleCommand(app, true))
	registry.Register("uncheck", "uncheck <n...>        mark items as not done", NewToggleCommand(app, false))
	registry.Register("delete", "delete <n...>         delete items after confirmation", NewDeleteCommand(app))
	registry.Register("date", "date <day>            select YYYY-MM-DD, today, next or prev", NewDateCommand(app))
	registry.Register("calendar", "calendar [YYYY-MM]    show a month with its to-do days", NewCalendarCommand(app))
	registry.Register("export", "export [--all] <file>  save to-dos as an HTML page", NewExportCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name, usage string, command Command) {
	if _, exists := r.commands[name]; !exists {
		r.names = append(r.names, name)
	}
	r.commands[name] = registeredCommand{usage: usage, command: command}
}

// Has reports whether name is registered.
func (r *CommandRegistry) Has(name string) bool {
	_, exists := r.commands[name]
	return exists
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	registered, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, fmt.Sprintf("unknown command %q", commandName))
	}
	return registered.command.Execute(ctx, args)
}

// GetUsage returns one usage line per command in registration order.
func (r *CommandRegistry) GetUsage() string {
	lines := make([]string, 0, len(r.names))
	for _, name := range r.names {
		lines = append(lines, "  "+r.commands[name].usage)
	}
	return strings.Join(lines, "\n")
}
