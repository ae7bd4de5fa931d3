// Package lookup bundles the read-only collaborators the request
// validators consult: employees, leave types, balances and holidays.
package lookup

import (
	"context"
	"time"

	"hr-backoffice/internal/balance"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/leavetype"

	"github.com/google/uuid"
)

type HolidaySource interface {
	HolidaysInRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

//go:generate mockgen -source=lookup.go -destination=mock/lookup_mock.go -package=mock
type Lookup interface {
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
	LeaveTypeByID(ctx context.Context, leaveTypeID uuid.UUID) (*leavetype.LeaveType, error)
	CurrentBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (balance.Snapshot, error)
	HolidaysInRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type lookup struct {
	employees  employee.Repository
	leaveTypes leavetype.Repository
	ledger     balance.Ledger
	holidays   HolidaySource
}

func New(employees employee.Repository, leaveTypes leavetype.Repository, ledger balance.Ledger, holidays HolidaySource) Lookup {
	return &lookup{
		employees:  employees,
		leaveTypes: leaveTypes,
		ledger:     ledger,
		holidays:   holidays,
	}
}

func (l *lookup) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	return l.employees.Exists(ctx, employeeID)
}

func (l *lookup) LeaveTypeByID(ctx context.Context, leaveTypeID uuid.UUID) (*leavetype.LeaveType, error) {
	return l.leaveTypes.FindByID(ctx, leaveTypeID)
}

func (l *lookup) CurrentBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (balance.Snapshot, error) {
	return l.ledger.CurrentBalance(ctx, employeeID, leaveTypeID, year)
}

func (l *lookup) HolidaysInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	return l.holidays.HolidaysInRange(ctx, start, end)
}
