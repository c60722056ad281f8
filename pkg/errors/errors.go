package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrValidation ErrorCode = iota + 1000
	ErrNotFound
	ErrConflict
	ErrPastDate
	ErrSlotUnavailable
	ErrTransaction
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to an HTTP status, consumed by the
// error-handling middleware.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrValidation, ErrPastDate:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict, ErrSlotUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func NewValidation(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewConflict(message string, err error) *AppError {
	return &AppError{Code: ErrConflict, Message: message, Err: err}
}

func NewPastDate() *AppError {
	return &AppError{Code: ErrPastDate, Message: "reservation date is in the past"}
}

func NewSlotUnavailable(slot string) *AppError {
	return &AppError{
		Code:    ErrSlotUnavailable,
		Message: fmt.Sprintf("slot %s is not available", slot),
	}
}

func NewTransaction(err error) *AppError {
	return &AppError{Code: ErrTransaction, Message: "storage operation failed", Err: err}
}

// IsCode reports whether err carries the given application error code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Wrap returns err unchanged if it is already an AppError; anything else
// is treated as a storage-level failure.
func Wrap(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewTransaction(err)
}
