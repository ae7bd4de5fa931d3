package balance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeLeaveBalance is one immutable ledger row. Rows for the same
// (employee, leave type, year) are numbered by Sequence; the highest active
// sequence is the current balance. Rows are only ever inserted.
type EmployeeLeaveBalance struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_sequence,priority:1"`
	LeaveTypeID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_sequence,priority:2"`
	Year            int            `gorm:"type:int;not null;uniqueIndex:uq_leave_balance_sequence,priority:3"`
	Sequence        int            `gorm:"type:int;not null;uniqueIndex:uq_leave_balance_sequence,priority:4"`
	Total           int            `gorm:"type:int;not null"`
	Used            int            `gorm:"type:int;not null"`
	Remaining       int            `gorm:"type:int;not null"`
	SourceRequestID *uuid.UUID     `gorm:"type:uuid"`
	IsActive        bool           `gorm:"not null;default:true"`
	CreatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (EmployeeLeaveBalance) TableName() string {
	return "employee_leave_balances"
}

// Snapshot is the balance as seen by callers. Fresh marks a balance derived
// from the leave type's yearly allowance because no ledger row exists yet.
type Snapshot struct {
	EmployeeID  uuid.UUID
	LeaveTypeID uuid.UUID
	Year        int
	Sequence    int
	Total       int
	Used        int
	Remaining   int
	Fresh       bool
}

func snapshotOf(row EmployeeLeaveBalance) Snapshot {
	return Snapshot{
		EmployeeID:  row.EmployeeID,
		LeaveTypeID: row.LeaveTypeID,
		Year:        row.Year,
		Sequence:    row.Sequence,
		Total:       row.Total,
		Used:        row.Used,
		Remaining:   row.Total - row.Used,
	}
}
