// Package apperr defines the errors the API layer knows how to report. Services return
// these; the response package maps them to HTTP status codes.
package apperr

import (
	"errors"
	"net/http"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a write that would break a uniqueness constraint.
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string { return joinMessage(e.Message, e.Err) }
func (e *ConflictError) Unwrap() error { return e.Err }

// NotFoundError reports a missing resource or route.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InternalError hides a failure from the client behind Message while keeping the cause
// for the logs.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string { return joinMessage(e.Message, e.Err) }
func (e *InternalError) Unwrap() error { return e.Err }

func Validation(msg string) error { return &ValidationError{Message: msg} }

func Conflict(msg string, err error) error { return &ConflictError{Message: msg, Err: err} }

func NotFound(msg string) error { return &NotFoundError{Message: msg} }

func Internal(msg string, err error) error { return &InternalError{Message: msg, Err: err} }

func joinMessage(msg string, err error) string {
	if err == nil {
		return msg
	}
	return msg + ": " + err.Error()
}

// DefaultInternalMessage is what clients see for any unclassified failure.
const DefaultInternalMessage = "Internal Server Error"

// Status returns the HTTP status code and the client-safe message for err.
// Anything outside the taxonomy is treated as an internal error.
func Status(err error) (int, string) {
	var (
		validation *ValidationError
		conflict   *ConflictError
		notFound   *NotFoundError
		internal   *InternalError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Message
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Message
	case errors.As(err, &internal) && internal.Message != "":
		return http.StatusInternalServerError, internal.Message
	}
	return http.StatusInternalServerError, DefaultInternalMessage
}
