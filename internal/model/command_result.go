package model

// CommandResult captures one command execution. Immutable once captured; the
// classifier reads it, never edits it.
type CommandResult struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}
