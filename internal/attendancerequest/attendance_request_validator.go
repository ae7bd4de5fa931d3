package attendancerequest

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	reqerrors "hr-backoffice/internal/attendancerequest/errors"
	"hr-backoffice/internal/domain"
	"hr-backoffice/internal/shared/apperror"
	"hr-backoffice/internal/workday"

	"github.com/google/uuid"
)

const maxDescriptionLength = 500

type EmployeeChecker interface {
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

// ValidationInput carries parsed request fields. Nil pointers are missing or
// malformed values.
type ValidationInput struct {
	EmployeeID   uuid.UUID
	FromDate     *time.Time
	ToDate       *time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	BreakMinutes *int
	Location     string
	ReasonType   string
	Description  string
	Update       bool
	Existing     *AttendanceRequest
}

type ValidationResult struct {
	Violations []string
	TotalHours float64
}

func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return apperror.Validation(r.Violations)
}

type Validator struct {
	employees EmployeeChecker
	now       func() time.Time
}

func NewValidator(employees EmployeeChecker, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{employees: employees, now: now}
}

// Validate collects every violation. Correction dates must be strictly
// before today.
func (v *Validator) Validate(ctx context.Context, in ValidationInput) (ValidationResult, error) {
	var res ValidationResult
	add := func(msg string) { res.Violations = append(res.Violations, msg) }

	if in.EmployeeID == uuid.Nil {
		add(reqerrors.MsgInvalidEmployeeID)
	} else {
		exists, err := v.employees.EmployeeExists(ctx, in.EmployeeID)
		if err != nil {
			return ValidationResult{}, err
		}
		if !exists {
			add(reqerrors.MsgEmployeeNotFound)
		}
	}

	rangeOK := v.checkDates(in.FromDate, in.ToDate, add)

	clocksOK := true
	if in.ClockIn == nil {
		add(reqerrors.MsgClockInRequired)
		clocksOK = false
	}
	if in.ClockOut == nil {
		add(reqerrors.MsgClockOutRequired)
		clocksOK = false
	}
	if clocksOK && !in.ClockOut.After(*in.ClockIn) {
		add(reqerrors.MsgClockOutBeforeIn)
		clocksOK = false
	}
	if clocksOK {
		res.TotalHours = TotalHours(*in.ClockIn, *in.ClockOut)
	}

	switch loc := strings.TrimSpace(in.Location); {
	case loc == "":
		add(reqerrors.MsgLocationRequired)
	case !validLocations[loc]:
		add(reqerrors.MsgInvalidLocation)
	}

	switch reason := strings.TrimSpace(in.ReasonType); {
	case reason == "":
		add(reqerrors.MsgReasonTypeRequired)
	case !validReasonTypes[reason]:
		add(reqerrors.MsgInvalidReasonType)
	}

	switch {
	case in.BreakMinutes == nil:
		add(reqerrors.MsgBreakRequired)
	case *in.BreakMinutes < 0:
		add(reqerrors.MsgBreakNegative)
	case clocksOK && float64(*in.BreakMinutes)/60 > res.TotalHours:
		add(reqerrors.MsgBreakExceedsTotal)
	}

	if rangeOK {
		from, to := workday.DateOf(*in.FromDate), workday.DateOf(*in.ToDate)
		within := func(t time.Time) bool {
			d := workday.DateOf(t)
			return !d.Before(from) && !d.After(to)
		}
		if in.ClockIn != nil && !within(*in.ClockIn) {
			add(reqerrors.MsgClockInOutsideRange)
		}
		if in.ClockOut != nil && !within(*in.ClockOut) {
			add(reqerrors.MsgClockOutOutsideRange)
		}
	}

	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		add(reqerrors.MsgDescriptionTooLong)
	}

	if in.Update {
		switch {
		case in.Existing == nil:
			add(reqerrors.MsgInvalidRequestID)
		case in.Existing.Status != domain.StatusPending:
			add(reqerrors.MsgNotPending)
		}
	}

	return res, nil
}

// checkDates reports whether both dates are present and ordered.
func (v *Validator) checkDates(fromDate, toDate *time.Time, add func(string)) bool {
	if fromDate == nil {
		add(reqerrors.MsgFromDateRequired)
	}
	if toDate == nil {
		add(reqerrors.MsgToDateRequired)
	}
	if fromDate == nil || toDate == nil {
		return false
	}

	from, to := workday.DateOf(*fromDate), workday.DateOf(*toDate)
	today := workday.DateOf(v.now())
	ordered := !from.After(to)
	if !ordered {
		add(reqerrors.MsgFromAfterTo)
	}
	if !from.Before(today) {
		add(reqerrors.MsgFromDateNotPast)
	}
	if !to.Before(today) {
		add(reqerrors.MsgToDateNotPast)
	}
	return ordered
}

// TotalHours is the clock-in to clock-out span in hours, two decimals.
func TotalHours(clockIn, clockOut time.Time) float64 {
	h := clockOut.Sub(clockIn).Hours()
	return math.Round(h*100) / 100
}
