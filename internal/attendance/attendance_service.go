package attendance

import (
	"context"
	"time"

	attendanceerrors "hr-backoffice/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil || empID == uuid.Nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	from, err := parseOptionalDate(filter.From)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	to, err := parseOptionalDate(filter.To)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindAllByEmployee(ctx, empID, from, to)
	if err != nil {
		s.logger.Error("failed to list attendance", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                a.ID.String(),
		EmployeeID:        a.EmployeeID.String(),
		AttendanceDate:    a.AttendanceDate.Format(dateLayout),
		AttendanceEndDate: a.AttendanceEndDate.Format(dateLayout),
		ClockIn:           a.ClockIn.Format(time.RFC3339),
		BreakMinutes:      a.BreakMinutes,
		WorkingHours:      a.WorkingHours,
		Latitude:          a.Latitude,
		Longitude:         a.Longitude,
		Location:          a.Location,
		Status:            a.Status,
		Source:            a.Source,
		ExternalRef:       a.ExternalRef,
		Notes:             a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
