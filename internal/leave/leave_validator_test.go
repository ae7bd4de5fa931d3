package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-backoffice/internal/balance"
	"hr-backoffice/internal/domain"
	"hr-backoffice/internal/leave"
	leaveerrors "hr-backoffice/internal/leave/errors"
	"hr-backoffice/internal/leavetype"
	leavetypeerrors "hr-backoffice/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// 2026-10-15 is a Thursday; 2026-10-19 is the following Monday.
var today = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

type fakeLookup struct {
	employees  map[uuid.UUID]bool
	leaveTypes map[uuid.UUID]*leavetype.LeaveType
	remaining  int
	holidays   []time.Time
	err        error
}

func (f *fakeLookup) EmployeeExists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.employees[id], nil
}

func (f *fakeLookup) LeaveTypeByID(_ context.Context, id uuid.UUID) (*leavetype.LeaveType, error) {
	lt, ok := f.leaveTypes[id]
	if !ok {
		return nil, leavetypeerrors.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLookup) CurrentBalance(_ context.Context, employeeID, leaveTypeID uuid.UUID, year int) (balance.Snapshot, error) {
	return balance.Snapshot{EmployeeID: employeeID, LeaveTypeID: leaveTypeID, Year: year, Total: 10, Used: 10 - f.remaining, Remaining: f.remaining}, nil
}

func (f *fakeLookup) HolidaysInRange(_ context.Context, start, end time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, h := range f.holidays {
		if !h.Before(start) && !h.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeOverlaps struct {
	overlap   bool
	excludeID *uuid.UUID
	called    bool
}

func (f *fakeOverlaps) HasOverlappingPeriod(_ context.Context, _ uuid.UUID, _, _ time.Time, excludeID *uuid.UUID) (bool, error) {
	f.called = true
	f.excludeID = excludeID
	return f.overlap, nil
}

func TestValidator_Validate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	sickID := uuid.New()
	retiredID := uuid.New()

	newLookup := func() *fakeLookup {
		return &fakeLookup{
			employees: map[uuid.UUID]bool{employeeID: true},
			leaveTypes: map[uuid.UUID]*leavetype.LeaveType{
				sickID:    {ID: sickID, Name: "Sick Leave", MaxDaysPerYear: 10, IsActive: true},
				retiredID: {ID: retiredID, Name: "Sabbatical", MaxDaysPerYear: 30, IsActive: false},
			},
			remaining: 10,
		}
	}
	valid := func() leave.ValidationInput {
		return leave.ValidationInput{
			EmployeeID:  employeeID,
			LeaveTypeID: sickID,
			StartDate:   day("2026-10-19"),
			EndDate:     day("2026-10-21"),
			Reason:      "flu",
		}
	}

	tests := []struct {
		name       string
		mutate     func(in *leave.ValidationInput, lk *fakeLookup, ov *fakeOverlaps)
		violations []string
		days       int
	}{
		{
			name:   "valid request",
			mutate: func(*leave.ValidationInput, *fakeLookup, *fakeOverlaps) {},
			days:   3,
		},
		{
			name: "today is allowed",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.StartDate, in.EndDate = day("2026-10-15"), day("2026-10-15")
			},
			days: 1,
		},
		{
			name: "everything missing",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				*in = leave.ValidationInput{}
			},
			violations: []string{
				leaveerrors.MsgInvalidEmployeeID,
				leaveerrors.MsgInvalidLeaveTypeID,
				leaveerrors.MsgReasonRequired,
				leaveerrors.MsgStartDateRequired,
				leaveerrors.MsgEndDateRequired,
			},
		},
		{
			name: "unknown employee and inactive type",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.EmployeeID = uuid.New()
				in.LeaveTypeID = retiredID
			},
			violations: []string{leaveerrors.MsgEmployeeNotFound, leaveerrors.MsgLeaveTypeUnavailable},
		},
		{
			name: "unknown leave type",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.LeaveTypeID = uuid.New()
			},
			violations: []string{leaveerrors.MsgLeaveTypeUnavailable},
		},
		{
			name: "blank reason",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.Reason = "   "
			},
			violations: []string{leaveerrors.MsgReasonRequired},
			days:       3,
		},
		{
			name: "inverted range",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.StartDate, in.EndDate = day("2026-10-21"), day("2026-10-19")
			},
			violations: []string{leaveerrors.MsgStartAfterEnd},
		},
		{
			name: "both dates in the past",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.StartDate, in.EndDate = day("2026-10-12"), day("2026-10-14")
			},
			violations: []string{leaveerrors.MsgStartDateInPast, leaveerrors.MsgEndDateInPast},
		},
		{
			name: "crosses the year boundary",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.StartDate, in.EndDate = day("2026-12-30"), day("2027-01-04")
			},
			violations: []string{leaveerrors.MsgCrossYear},
		},
		{
			name: "overlaps another request",
			mutate: func(_ *leave.ValidationInput, _ *fakeLookup, ov *fakeOverlaps) {
				ov.overlap = true
			},
			violations: []string{leaveerrors.MsgOverlap},
			days:       3,
		},
		{
			name: "weekend only",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.StartDate, in.EndDate = day("2026-10-17"), day("2026-10-18")
			},
			violations: []string{leaveerrors.MsgNoWorkingDays},
		},
		{
			name: "holiday is not charged",
			mutate: func(_ *leave.ValidationInput, lk *fakeLookup, _ *fakeOverlaps) {
				lk.holidays = []time.Time{*day("2026-10-20")}
				lk.remaining = 2
			},
			days: 2,
		},
		{
			name: "insufficient balance",
			mutate: func(_ *leave.ValidationInput, lk *fakeLookup, _ *fakeOverlaps) {
				lk.remaining = 2
			},
			violations: []string{leaveerrors.MsgInsufficientBalance},
			days:       3,
		},
		{
			name: "update of a missing request",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.Update = true
			},
			violations: []string{leaveerrors.MsgInvalidLeaveRequestID},
			days:       3,
		},
		{
			name: "update of a decided request",
			mutate: func(in *leave.ValidationInput, _ *fakeLookup, _ *fakeOverlaps) {
				in.Update = true
				in.Existing = &leave.LeaveRequest{ID: uuid.New(), Status: domain.StatusApproved}
			},
			violations: []string{leaveerrors.MsgNotPending},
			days:       3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, lk, ov := valid(), newLookup(), &fakeOverlaps{}
			tt.mutate(&in, lk, ov)

			res, err := leave.NewValidator(lk, ov, fixedClock).Validate(ctx, in)

			assert.NoError(t, err)
			assert.Equal(t, tt.violations, res.Violations)
			assert.Equal(t, tt.days, res.ChargeableDays)
			if tt.violations == nil {
				assert.NoError(t, res.Err())
			} else {
				assert.Error(t, res.Err())
			}
		})
	}
}

func TestValidator_SkipsDependentRulesOnInvalidFields(t *testing.T) {
	lk := &fakeLookup{employees: map[uuid.UUID]bool{}, leaveTypes: map[uuid.UUID]*leavetype.LeaveType{}}
	ov := &fakeOverlaps{}

	res, err := leave.NewValidator(lk, ov, fixedClock).Validate(context.Background(), leave.ValidationInput{
		EmployeeID:  uuid.New(),
		LeaveTypeID: uuid.New(),
		StartDate:   day("2026-10-19"),
		EndDate:     day("2026-10-20"),
		Reason:      "trip",
	})

	assert.NoError(t, err)
	assert.False(t, ov.called)
	assert.Equal(t, []string{leaveerrors.MsgEmployeeNotFound, leaveerrors.MsgLeaveTypeUnavailable}, res.Violations)
}

func TestValidator_UpdateExcludesItself(t *testing.T) {
	employeeID, typeID := uuid.New(), uuid.New()
	lk := &fakeLookup{
		employees:  map[uuid.UUID]bool{employeeID: true},
		leaveTypes: map[uuid.UUID]*leavetype.LeaveType{typeID: {ID: typeID, MaxDaysPerYear: 10, IsActive: true}},
		remaining:  10,
	}
	ov := &fakeOverlaps{}
	existing := &leave.LeaveRequest{ID: uuid.New(), EmployeeID: employeeID, Status: domain.StatusPending}

	res, err := leave.NewValidator(lk, ov, fixedClock).Validate(context.Background(), leave.ValidationInput{
		EmployeeID:  employeeID,
		LeaveTypeID: typeID,
		StartDate:   day("2026-10-19"),
		EndDate:     day("2026-10-19"),
		Reason:      "dentist",
		Update:      true,
		Existing:    existing,
	})

	assert.NoError(t, err)
	assert.True(t, res.Valid())
	assert.Equal(t, existing.ID, *ov.excludeID)
}

func TestValidator_CollaboratorFailure(t *testing.T) {
	boom := errors.New("employee directory unavailable")
	lk := &fakeLookup{err: boom}

	_, err := leave.NewValidator(lk, &fakeOverlaps{}, fixedClock).Validate(context.Background(), leave.ValidationInput{
		EmployeeID: uuid.New(),
	})

	assert.ErrorIs(t, err, boom)
}
