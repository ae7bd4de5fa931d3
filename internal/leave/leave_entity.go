package leave

import (
	"time"

	"hr-backoffice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:0"`
	Reason    string    `gorm:"type:text;not null"`

	Status       domain.RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApprovedBy   *uuid.UUID           `gorm:"type:uuid"`
	DecidedAt    *time.Time
	DecisionNote *string   `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	IsActive     bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee  *EmployeeRef  `gorm:"foreignKey:EmployeeID;references:ID"`
	LeaveType *LeaveTypeRef `gorm:"foreignKey:LeaveTypeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l *LeaveRequest) SubjectID() uuid.UUID { return l.ID }
func (l *LeaveRequest) RequesterID() uuid.UUID { return l.EmployeeID }
func (l *LeaveRequest) RequestStatus() domain.RequestStatus { return l.Status }

func (l *LeaveRequest) ApplyDecision(status domain.RequestStatus, approverID *uuid.UUID, decidedAt time.Time) {
	l.Status = status
	l.ApprovedBy = approverID
	l.DecidedAt = &decidedAt
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type LeaveTypeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (LeaveTypeRef) TableName() string {
	return "leave_types"
}
