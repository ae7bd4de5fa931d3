package leavetype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveType is referenced by leave requests and balance rows. Once a
// balance row with usage points at it, it must not be edited.
type LeaveType struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string         `gorm:"type:varchar(100);not null"`
	Description    string         `gorm:"type:text"`
	MaxDaysPerYear int            `gorm:"type:int;not null;default:0"`
	IsPaid         bool           `gorm:"not null;default:true"`
	IsActive       bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}
