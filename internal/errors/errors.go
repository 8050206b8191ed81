package errors

import (
	stderrors "errors"
	"net/http"
)

// Error is an application error with an HTTP status classification.
// Services return these; the handler layer translates Status into the
// response code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a 404-classified error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal builds a 500-classified error.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// ErrValidation reports an invalid input field.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// StatusOf returns the HTTP status carried by err. Validation errors map to
// 400; anything untyped maps to 500.
func StatusOf(err error) int {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Status
	}
	var validationErr *ErrValidation
	if stderrors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is classified as a 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
