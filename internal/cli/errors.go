package cli

import (
	"errors"
	"fmt"
)

// exitCodeCancelled matches the shell convention for SIGINT.
const exitCodeCancelled = 130

var (
	// ErrNoTerminal is returned when pick cannot reach a terminal.
	ErrNoTerminal = errors.New("an interactive terminal is required")

	// ErrNoOptions is returned when the inputs contain no options.
	ErrNoOptions = errors.New("no options to choose from")
)

// ExitError carries a process exit code for conditions that are not failures.
type ExitError struct {
	ExitCode int
	Reason   string
}

// Error implements error.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.Reason, e.ExitCode)
}

// ExitCode maps err to a process exit code: 0 for nil, the carried code
// for an ExitError and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
