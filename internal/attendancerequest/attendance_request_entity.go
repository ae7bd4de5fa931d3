package attendancerequest

import (
	"time"

	"hr-backoffice/internal/attendance"
	"hr-backoffice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LocationOffice     = "OFFICE"
	LocationHome       = "HOME"
	LocationClientSite = "CLIENT_SITE"
	LocationField      = "FIELD"
)

const (
	ReasonForgotClockIn  = "FORGOT_CLOCK_IN"
	ReasonForgotClockOut = "FORGOT_CLOCK_OUT"
	ReasonSystemError    = "SYSTEM_ERROR"
	ReasonOnDuty         = "ON_DUTY"
	ReasonOther          = "OTHER"
)

var validLocations = map[string]bool{
	LocationOffice:     true,
	LocationHome:       true,
	LocationClientSite: true,
	LocationField:      true,
}

var validReasonTypes = map[string]bool{
	ReasonForgotClockIn:  true,
	ReasonForgotClockOut: true,
	ReasonSystemError:    true,
	ReasonOnDuty:         true,
	ReasonOther:          true,
}

type AttendanceRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	FromDate     time.Time `gorm:"type:date;not null"`
	ToDate       time.Time `gorm:"type:date;not null"`
	ReasonType   string    `gorm:"type:varchar(30);not null"`
	Location     string    `gorm:"type:varchar(30);not null"`
	ClockIn      time.Time `gorm:"type:timestamptz;not null"`
	ClockOut     time.Time `gorm:"type:timestamptz;not null"`
	BreakMinutes int       `gorm:"not null;default:0"`
	TotalHours   float64   `gorm:"type:numeric(5,2);not null"`
	Description  string    `gorm:"type:varchar(500)"`

	Status       domain.RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApprovedBy   *uuid.UUID           `gorm:"type:uuid"`
	DecidedAt    *time.Time
	DecisionNote *string   `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	IsActive     bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *attendance.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (AttendanceRequest) TableName() string {
	return "attendance_requests"
}

func (r *AttendanceRequest) SubjectID() uuid.UUID { return r.ID }
func (r *AttendanceRequest) RequesterID() uuid.UUID { return r.EmployeeID }
func (r *AttendanceRequest) RequestStatus() domain.RequestStatus { return r.Status }

func (r *AttendanceRequest) ApplyDecision(status domain.RequestStatus, approverID *uuid.UUID, decidedAt time.Time) {
	r.Status = status
	r.ApprovedBy = approverID
	r.DecidedAt = &decidedAt
}

// Correction reduces the request to what the attendance projection needs.
func (r *AttendanceRequest) Correction() attendance.Correction {
	return attendance.Correction{
		RequestID:    r.ID,
		EmployeeID:   r.EmployeeID,
		FromDate:     r.FromDate,
		ToDate:       r.ToDate,
		ClockIn:      r.ClockIn,
		ClockOut:     r.ClockOut,
		BreakMinutes: r.BreakMinutes,
		TotalHours:   r.TotalHours,
		Location:     r.Location,
		Description:  r.Description,
	}
}
