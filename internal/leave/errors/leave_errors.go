package leaveerrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

// Validation messages, reported in this order.
const (
	MsgInvalidEmployeeID     = "Invalid Employee ID"
	MsgEmployeeNotFound      = "Employee not found"
	MsgInvalidLeaveTypeID    = "Invalid Leave Type ID"
	MsgLeaveTypeUnavailable  = "Leave type not found or inactive"
	MsgReasonRequired        = "Reason is required"
	MsgStartDateRequired     = "StartDate is required"
	MsgEndDateRequired       = "EndDate is required"
	MsgStartAfterEnd         = "StartDate must be before or equal to EndDate"
	MsgStartDateInPast       = "StartDate cannot be in the past"
	MsgEndDateInPast         = "EndDate cannot be in the past"
	MsgCrossYear             = "Leave must start and end within the same year"
	MsgInvalidLeaveRequestID = "Invalid Leave Request ID"
	MsgNotPending            = "Only pending leave requests can be modified"
	MsgOverlap               = "Leave request overlaps an existing request"
	MsgNoWorkingDays         = "Leave range contains no working days"
	MsgInsufficientBalance   = "Insufficient leave balance"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		MsgInvalidLeaveRequestID,
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid actor id",
		http.StatusUnauthorized,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		MsgInvalidEmployeeID,
		http.StatusBadRequest,
	)
)
