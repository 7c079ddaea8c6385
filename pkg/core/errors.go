package core

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure so callers (the CLI, the bridge) can
// discriminate programmatically instead of matching message strings.
type Code int

const (
	// CodeValidation marks a missing/empty required field or a malformed
	// identifier. Raised before any store access.
	CodeValidation Code = 400
	// CodeNotFound marks an operation targeting a note or tag id that
	// does not exist.
	CodeNotFound Code = 404
	// CodeStoreInit marks a backing file or directory that cannot be
	// created.
	CodeStoreInit Code = 500
	// CodeStoreRead marks a backing file that is unreadable or corrupt
	// beyond recovery on a targeted lookup.
	CodeStoreRead Code = 500
)

// Error is the single error type crossing the service boundary.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation builds a 400 error.
func NewValidation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound builds a 404 error.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewStoreInit wraps an initialization failure as a 500 error.
func NewStoreInit(err error, format string, args ...any) *Error {
	return &Error{Code: CodeStoreInit, Message: fmt.Sprintf(format, args...), Err: err}
}

// NewStoreRead wraps an unrecoverable read failure as a 500 error.
func NewStoreRead(err error, format string, args ...any) *Error {
	return &Error{Code: CodeStoreRead, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsValidation reports whether err carries a 400 classification.
func IsValidation(err error) bool { return CodeOf(err) == CodeValidation }

// IsNotFound reports whether err carries a 404 classification.
func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

// CodeOf extracts the numeric class of err. Unclassified errors are
// treated as internal failures (500).
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 500
}
