package balanceerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrInsufficientBalance = &apperror.AppError{
		Code:       apperror.CodeValidationFailed,
		Message:    "Insufficient leave balance",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    []string{"Insufficient leave balance"},
	}
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"days to consume must be positive",
		http.StatusBadRequest,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeInvalidState,
		"leave balance changed concurrently",
		http.StatusConflict,
	)
	ErrTransactionRequired = apperror.New(
		apperror.CodeInternalError,
		"leave balance consumption requires a transaction",
		http.StatusInternalServerError,
	)
)
