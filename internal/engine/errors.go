package engine

import "fmt"

// ScriptError wraps a failure confined to one robot's (position, script)
// pair. The underlying error is normally a *parse.Error, so parse.IsCode
// and parse.Code see through it.
type ScriptError struct {
	// Robot is the 1-based index of the pair in the input.
	Robot int

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("robot %d: %v", e.Robot, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
