package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ShellCommand runs an interactive loop that keeps the selected date
// between commands.
type ShellCommand struct {
	app *App
}

// NewShellCommand creates a new shell command handler
func NewShellCommand(app *App) *ShellCommand {
	return &ShellCommand{app: app}
}

// Execute reads commands until quit or end of input. Command errors are
// shown as warnings and the loop continues.
func (c *ShellCommand) Execute(ctx context.Context, args []string) error {
	c.app.printList()

	for {
		fmt.Fprintf(c.app.out, "td %s> ", c.app.controller.SelectedDate())
		line, err := c.app.prompter.ReadLine()
		if err == io.EOF {
			fmt.Fprintln(c.app.out)
			return nil
		}
		if err != nil {
			return err
		}

		name, rest := splitCommand(line)
		switch name {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			c.printHelp()
			continue
		}

		args := strings.Fields(rest)
		if name == "add" {
			args = []string{rest}
		}

		if err := c.app.Run(ctx, append([]string{name}, args...)); err != nil {
			c.app.Report(err)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *ShellCommand) printHelp() {
	fmt.Fprintln(c.app.out, "Commands:")
	fmt.Fprintln(c.app.out, c.app.registry.GetUsage())
	fmt.Fprintln(c.app.out, "  help                  show this help")
	fmt.Fprintln(c.app.out, "  quit                  leave the shell")
}

// splitCommand separates the first word of line from the rest.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}
