package attendanceerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

var (
	ErrAlreadyProjected = apperror.New(
		apperror.CodeConflict,
		"attendance already projected for request",
		http.StatusConflict,
	)
	ErrInvalidCorrection = apperror.New(
		apperror.CodeInvalidInput,
		"correction clock out must be after clock in",
		http.StatusBadRequest,
	)
	ErrTransactionRequired = apperror.New(
		apperror.CodeInternalError,
		"attendance projection requires a transaction",
		http.StatusInternalServerError,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid Employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must be a YYYY-MM-DD date on or before to",
		http.StatusBadRequest,
	)
)
