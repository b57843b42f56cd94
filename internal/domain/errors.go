package domain

import (
	"errors"
	"fmt"
)

// Domain status codes carried in the API envelope.
const (
	CodeOK           = 200
	CodeInvalid      = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeInternal     = 500
)

// Error is a recoverable, caller-visible failure. Every precondition a
// state machine rejects surfaces as one of these; anything else is treated
// as an internal error.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Invalid(format string, args ...any) error {
	return &Error{Code: CodeInvalid, Msg: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) error {
	return &Error{Code: CodeUnauthorized, Msg: fmt.Sprintf(format, args...)}
}

func PermissionDenied(format string, args ...any) error {
	return &Error{Code: CodeForbidden, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Code: CodeConflict, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf maps any error to its envelope code, defaulting to 500 for
// errors that carry no domain code.
func CodeOf(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
