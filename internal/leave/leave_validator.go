package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr-backoffice/internal/domain"
	leaveerrors "hr-backoffice/internal/leave/errors"
	"hr-backoffice/internal/leavetype"
	leavetypeerrors "hr-backoffice/internal/leavetype/errors"
	"hr-backoffice/internal/lookup"
	"hr-backoffice/internal/shared/apperror"
	"hr-backoffice/internal/workday"

	"github.com/google/uuid"
)

type OverlapChecker interface {
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error)
}

// ValidationInput carries parsed request fields. Nil dates are missing or
// malformed. Update is set when an existing request is being modified;
// Existing is nil when that request could not be found.
type ValidationInput struct {
	EmployeeID  uuid.UUID
	LeaveTypeID uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Reason      string
	Update      bool
	Existing    *LeaveRequest
}

type ValidationResult struct {
	Violations     []string
	ChargeableDays int
	LeaveType      *leavetype.LeaveType
}

func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// Err returns the violations as a single VALIDATION_FAILED error.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return apperror.Validation(r.Violations)
}

type Validator struct {
	lookup   lookup.Lookup
	days     *workday.Calculator
	overlaps OverlapChecker
	now      func() time.Time
}

func NewValidator(lk lookup.Lookup, overlaps OverlapChecker, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{
		lookup:   lk,
		days:     workday.NewCalculator(lk),
		overlaps: overlaps,
		now:      now,
	}
}

// Validate collects every violation in rule order. The error return is
// reserved for collaborator failures.
func (v *Validator) Validate(ctx context.Context, in ValidationInput) (ValidationResult, error) {
	var res ValidationResult
	add := func(msg string) { res.Violations = append(res.Violations, msg) }

	employeeOK := false
	if in.EmployeeID == uuid.Nil {
		add(leaveerrors.MsgInvalidEmployeeID)
	} else {
		exists, err := v.lookup.EmployeeExists(ctx, in.EmployeeID)
		if err != nil {
			return ValidationResult{}, err
		}
		if !exists {
			add(leaveerrors.MsgEmployeeNotFound)
		}
		employeeOK = exists
	}

	if in.LeaveTypeID == uuid.Nil {
		add(leaveerrors.MsgInvalidLeaveTypeID)
	} else {
		lt, err := v.lookup.LeaveTypeByID(ctx, in.LeaveTypeID)
		switch {
		case errors.Is(err, leavetypeerrors.ErrLeaveTypeNotFound):
			add(leaveerrors.MsgLeaveTypeUnavailable)
		case err != nil:
			return ValidationResult{}, err
		case !lt.IsActive:
			add(leaveerrors.MsgLeaveTypeUnavailable)
		default:
			res.LeaveType = lt
		}
	}

	if strings.TrimSpace(in.Reason) == "" {
		add(leaveerrors.MsgReasonRequired)
	}

	datesOK := v.checkDates(in.StartDate, in.EndDate, add)

	if in.Update {
		switch {
		case in.Existing == nil:
			add(leaveerrors.MsgInvalidLeaveRequestID)
		case in.Existing.Status != domain.StatusPending:
			add(leaveerrors.MsgNotPending)
		}
	}

	if !employeeOK || !datesOK {
		return res, nil
	}
	start, end := workday.DateOf(*in.StartDate), workday.DateOf(*in.EndDate)

	var excludeID *uuid.UUID
	if in.Existing != nil {
		excludeID = &in.Existing.ID
	}
	overlap, err := v.overlaps.HasOverlappingPeriod(ctx, in.EmployeeID, start, end, excludeID)
	if err != nil {
		return ValidationResult{}, err
	}
	if overlap {
		add(leaveerrors.MsgOverlap)
	}

	if res.LeaveType == nil {
		return res, nil
	}
	days, err := v.days.ChargeableDays(ctx, start, end)
	if err != nil {
		return ValidationResult{}, err
	}
	res.ChargeableDays = days
	if days == 0 {
		add(leaveerrors.MsgNoWorkingDays)
		return res, nil
	}

	snap, err := v.lookup.CurrentBalance(ctx, in.EmployeeID, in.LeaveTypeID, start.Year())
	if err != nil {
		return ValidationResult{}, err
	}
	if days > snap.Remaining {
		add(leaveerrors.MsgInsufficientBalance)
	}
	return res, nil
}

// checkDates reports whether both dates are usable for the range rules.
func (v *Validator) checkDates(startDate, endDate *time.Time, add func(string)) bool {
	if startDate == nil {
		add(leaveerrors.MsgStartDateRequired)
	}
	if endDate == nil {
		add(leaveerrors.MsgEndDateRequired)
	}
	if startDate == nil || endDate == nil {
		return false
	}

	ok := true
	start, end := workday.DateOf(*startDate), workday.DateOf(*endDate)
	today := workday.DateOf(v.now())
	if start.After(end) {
		add(leaveerrors.MsgStartAfterEnd)
		ok = false
	}
	if start.Before(today) {
		add(leaveerrors.MsgStartDateInPast)
		ok = false
	}
	if end.Before(today) {
		add(leaveerrors.MsgEndDateInPast)
		ok = false
	}
	if !start.After(end) && start.Year() != end.Year() {
		add(leaveerrors.MsgCrossYear)
		ok = false
	}
	return ok
}
