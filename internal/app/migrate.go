package app

import (
	"hr-backoffice/internal/attendance"
	"hr-backoffice/internal/attendancerequest"
	"hr-backoffice/internal/balance"
	"hr-backoffice/internal/leave"
	"hr-backoffice/internal/messaging/kafka"

	"gorm.io/gorm"
)

// AutoMigrate creates the tables this service owns. Employees, leave types
// and holidays belong to other services, so foreign keys to them are not
// created and their tables are left alone.
func AutoMigrate(db *gorm.DB) error {
	db.Config.DisableForeignKeyConstraintWhenMigrating = true

	return db.AutoMigrate(
		&leave.LeaveRequest{},
		&balance.EmployeeLeaveBalance{},
		&attendancerequest.AttendanceRequest{},
		&attendance.Attendance{},
		&kafka.OutboxEventModel{},
	)
}
