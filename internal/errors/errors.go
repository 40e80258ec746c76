// Package errors provides structured error types for tasker.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes for tasker.
const (
	// Command errors, reported at the prompt
	CodeInvalidIndex Code = "INVALID_INDEX"
	CodeParseError   Code = "PARSE_ERROR"

	// Storage errors
	CodeCorruptStore Code = "CORRUPT_STORE"
	CodeWriteFailure Code = "WRITE_FAILURE"

	// Config errors
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// Error is the structured error type for tasker.
type Error struct {
	Code  Code
	What  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// IsStorage reports whether the error concerns the backing file.
func (e *Error) IsStorage() bool {
	return e.Code == CodeCorruptStore || e.Code == CodeWriteFailure
}

// Sentinels for errors.Is matching by code.
var (
	ErrInvalidIndex  = &Error{Code: CodeInvalidIndex, What: "invalid task index"}
	ErrParse         = &Error{Code: CodeParseError, What: "invalid task number"}
	ErrCorruptStore  = &Error{Code: CodeCorruptStore, What: "corrupt task file"}
	ErrWriteFailure  = &Error{Code: CodeWriteFailure, What: "task file write failed"}
	ErrConfigInvalid = &Error{Code: CodeConfigInvalid, What: "invalid configuration"}
)

// --- Error constructors ---

// InvalidIndex returns an error for a position that does not exist in a
// list of n tasks.
func InvalidIndex(pos, n int) *Error {
	what := fmt.Sprintf("invalid task index: %d", pos)
	switch n {
	case 0:
		what += " (no tasks)"
	case 1:
		what += " (1 task)"
	default:
		what += fmt.Sprintf(" (%d tasks)", n)
	}
	return &Error{Code: CodeInvalidIndex, What: what}
}

// ParseError returns an error for a task number argument that is not numeric.
func ParseError(arg string) *Error {
	if strings.TrimSpace(arg) == "" {
		return &Error{Code: CodeParseError, What: "task number required"}
	}
	return &Error{Code: CodeParseError, What: fmt.Sprintf("invalid task number: %s", arg)}
}

// CorruptStore returns an error for a task file that exists but cannot be
// read as task data.
func CorruptStore(path string, cause error) *Error {
	return &Error{
		Code:  CodeCorruptStore,
		What:  fmt.Sprintf("failed to read tasks from %s", path),
		Cause: cause,
	}
}

// WriteFailure returns an error for a task file that could not be written.
func WriteFailure(path string, cause error) *Error {
	return &Error{
		Code:  CodeWriteFailure,
		What:  fmt.Sprintf("failed to write tasks to %s", path),
		Cause: cause,
	}
}

// ConfigInvalid returns an error for a configuration source that could not
// be used.
func ConfigInvalid(what string, cause error) *Error {
	return &Error{
		Code:  CodeConfigInvalid,
		What:  fmt.Sprintf("invalid configuration: %s", what),
		Cause: cause,
	}
}

// AsError returns the first *Error in err's chain, or nil.
func AsError(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}
