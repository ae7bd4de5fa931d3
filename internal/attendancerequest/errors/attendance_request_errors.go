package attendancerequesterrors

import (
	"net/http"

	"hr-backoffice/internal/shared/apperror"
)

// Validation messages, reported in this order.
const (
	MsgInvalidEmployeeID    = "Invalid Employee ID"
	MsgEmployeeNotFound     = "Employee not found"
	MsgFromDateRequired     = "FromDate is required"
	MsgToDateRequired       = "ToDate is required"
	MsgFromAfterTo          = "FromDate must be before or equal to ToDate"
	MsgFromDateNotPast      = "Future or current FromDate not allowed"
	MsgToDateNotPast        = "Future or current ToDate not allowed"
	MsgClockInRequired      = "ClockIn is required"
	MsgClockOutRequired     = "ClockOut is required"
	MsgClockOutBeforeIn     = "ClockOut must be greater than ClockIn"
	MsgLocationRequired     = "Location is required"
	MsgInvalidLocation      = "Invalid Location"
	MsgReasonTypeRequired   = "ReasonType is required"
	MsgInvalidReasonType    = "Invalid ReasonType"
	MsgBreakRequired        = "BreakDuration is required"
	MsgBreakNegative        = "BreakDuration cannot be negative"
	MsgBreakExceedsTotal    = "BreakDuration cannot exceed TotalHours"
	MsgClockInOutsideRange  = "ClockIn must fall within FromDate and ToDate"
	MsgClockOutOutsideRange = "ClockOut must fall within FromDate and ToDate"
	MsgDescriptionTooLong   = "Description cannot exceed 500 characters"
	MsgInvalidRequestID     = "Invalid Attendance Request ID"
	MsgNotPending           = "Only pending attendance requests can be modified"
)

var (
	ErrAttendanceRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance request not found",
		http.StatusNotFound,
	)
	ErrInvalidAttendanceRequestID = apperror.New(
		apperror.CodeInvalidInput,
		MsgInvalidRequestID,
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
