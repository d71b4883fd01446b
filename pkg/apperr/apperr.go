package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error carrying an HTTP-style status and a stable code
// tag. Handlers translate it to the {error, code} response envelope.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string { return fmt.Sprintf("[%s] %s", e.Code, e.Message) }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

func Internal(code, message string) *Error {
	return New(http.StatusInternalServerError, code, message)
}

func (e *Error) WithDetails(d any) *Error {
	c := *e
	c.Details = d
	return &c
}

// From unwraps err down to an *Error if one is in the chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Wrap passes domain errors through unchanged and wraps anything else into
// a 500 tagged with code.
func Wrap(err error, code string) *Error {
	if e, ok := From(err); ok {
		return e
	}
	return Internal(code, err.Error())
}
