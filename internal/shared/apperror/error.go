package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code       string   // Error code (e.g., INVALID_INPUT)
	Message    string   // User-friendly message
	HTTPStatus int      // HTTP status code
	Details    []string // Field-level violations, in rule order
	Err        error    // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Validation reports one or more rule violations back to the caller.
func Validation(violations []string) *AppError {
	details := make([]string, len(violations))
	copy(details, violations)
	return &AppError{
		Code:       CodeValidationFailed,
		Message:    "Validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
