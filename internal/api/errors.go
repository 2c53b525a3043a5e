package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Error is an error that knows which HTTP status it maps to.
// Message is safe to show to clients; cause is only logged.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Message, e.cause)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Format prints the cause's stack trace with %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.cause != nil {
		_, _ = fmt.Fprintf(s, "%d %s: %+v", e.Status, e.Message, e.cause)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(status int, message string, cause error) *Error {
	return &Error{
		Status:  status,
		Message: message,
		cause:   cause,
	}
}

func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message, nil)
}

func BadRequestf(format string, args ...any) *Error {
	return BadRequest(fmt.Sprintf(format, args...))
}

func Unauthorized(message string) *Error {
	return NewError(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *Error {
	return NewError(http.StatusForbidden, message, nil)
}

func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message, nil)
}

func Conflict(message string) *Error {
	return NewError(http.StatusConflict, message, nil)
}

// Internal hides the cause behind a generic message and records a stack trace.
func Internal(cause error) *Error {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return NewError(http.StatusInternalServerError, "internal server error", cause)
}
