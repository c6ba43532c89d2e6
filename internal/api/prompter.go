package api

// Prompter shows the dialogs the controller needs. Confirm blocks until the
// user answers.
type Prompter interface {
	Confirm(question string) (bool, error)
	Inform(message string)
	Warn(message string)
}
