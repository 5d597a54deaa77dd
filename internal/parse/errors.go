package parse

import (
	"errors"
	"fmt"
)

// Parse error codes.
const (
	ErrEmptyInput             = "E200" // no non-blank lines at all
	ErrMalformedGridLine      = "E201" // wrong field count, non-integer or negative bound
	ErrMalformedPositionLine  = "E202" // wrong field count, or non-integer coordinate
	ErrUnknownBearing         = "E203" // bearing token not in {N, E, S, W}
	ErrUnknownInstructionChar = "E204" // script character not in {F, L, R}
)

var codeTitles = map[string]string{
	ErrEmptyInput:             "empty input",
	ErrMalformedGridLine:      "malformed grid line",
	ErrMalformedPositionLine:  "malformed position line",
	ErrUnknownBearing:         "unknown bearing",
	ErrUnknownInstructionChar: "unknown instruction character",
}

// Error is a recoverable input error.
// Line is the 1-based input line number, or 0 when unknown.
// Column is the 1-based column of the offending field, or 0.
type Error struct {
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	title := codeTitles[e.Code]
	if title == "" {
		title = "parse error"
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %s: %s", e.Line, e.Column, title, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s: %s", e.Line, title, e.Message)
	default:
		return fmt.Sprintf("%s: %s", title, e.Message)
	}
}

// NewEmptyInputError reports that the input held no lines.
func NewEmptyInputError() *Error {
	return &Error{
		Code:    ErrEmptyInput,
		Message: "input contains no grid line",
	}
}

func newError(code, field string, column int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Column:  column,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// AtLine stamps err with an input line number when it is a *Error.
// Other errors are returned unchanged.
func AtLine(err error, line int) error {
	var perr *Error
	if errors.As(err, &perr) {
		perr.Line = line
	}
	return err
}

// Code returns the E2xx code of err, or "" if err is not a *Error.
func Code(err error) string {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}

// IsCode reports whether err is a *Error with the given code.
// Uses errors.As to handle wrapped errors.
func IsCode(err error, code string) bool {
	return err != nil && Code(err) == code
}

// IsKnownCode reports whether code is one of the E2xx codes above.
func IsKnownCode(code string) bool {
	_, ok := codeTitles[code]
	return ok
}

// IsFatal reports whether err must abort the whole run regardless of the
// skip policy: the grid could not be built.
func IsFatal(err error) bool {
	switch Code(err) {
	case ErrEmptyInput, ErrMalformedGridLine:
		return true
	}
	return false
}
