package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/roach88/rovers/internal/parse"
)

// Exit codes for the rovers command.
const (
	ExitSuccess      = 0 // All robots driven
	ExitFailure      = 1 // Input rejected (parse errors, empty input)
	ExitCommandError = 2 // I/O failure reading stdin or writing stdout
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for errors that are not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Report writes a human-readable error line, tagged with the parse code
// when there is one:
//
//	Error [E203]: input rejected: robot 2: line 4, column 5: unknown bearing: ...
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if code := parse.Code(err); code != "" {
		fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
