package approvalerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

const (
	MsgInvalidStatus     = "Invalid Status"
	MsgInvalidApproverID = "Invalid Approver ID"
)

var (
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"request is not pending",
		http.StatusConflict,
	)
	ErrNotRequester = apperror.New(
		apperror.CodeInvalidState,
		"requester does not own this request",
		http.StatusConflict,
	)
	ErrApproverRequired = apperror.Validation([]string{MsgInvalidApproverID})
)
