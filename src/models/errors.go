package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the boundary error taxonomy. Controllers map kinds to status codes.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindInvalidIdentifier ErrorKind = "invalid_identifier"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindForbidden         ErrorKind = "forbidden"
	KindConflict          ErrorKind = "conflict"
	KindInternal          ErrorKind = "internal"
)

const internalMessage = "internal server error"

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewInvalidIdentifierError(message string) *AppError {
	return &AppError{Kind: KindInvalidIdentifier, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewInternalError hides err from callers; op names the failing operation for the log.
func NewInternalError(op string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: internalMessage, Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf reports the taxonomy kind of err. Anything that is not an *AppError is internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// PublicMessage is the text that may cross the boundary for err.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return internalMessage
}
