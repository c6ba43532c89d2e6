package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalPrompter asks questions on the terminal. With autoYes set every
// confirmation is accepted without reading input.
type TerminalPrompter struct {
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	autoYes bool
}

// NewTerminalPrompter creates a prompter reading answers from in.
func NewTerminalPrompter(in io.Reader, out, errOut io.Writer, autoYes bool) *TerminalPrompter {
	return &TerminalPrompter{
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		autoYes: autoYes,
	}
}

// Confirm asks a yes/no question. Anything but y or yes, including end of
// input, is a no.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	if p.autoYes {
		return true, nil
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.ReadLine()
	if err == io.EOF {
		fmt.Fprintln(p.out)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Inform prints an informational message.
func (p *TerminalPrompter) Inform(message string) {
	fmt.Fprintln(p.out, message)
}

// Warn prints a warning to the error stream.
func (p *TerminalPrompter) Warn(message string) {
	fmt.Fprintf(p.errOut, "Warning: %s\n", message)
}

// ReadLine reads one line without its line ending. A final line without a
// newline is returned with a nil error.
func (p *TerminalPrompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}
