package attendance

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	attendanceerrors "hr-backoffice/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Correction is an approved attendance-correction request, reduced to what
// the attendance record needs.
type Correction struct {
	RequestID    uuid.UUID
	EmployeeID   uuid.UUID
	FromDate     time.Time
	ToDate       time.Time
	ClockIn      time.Time
	ClockOut     time.Time
	BreakMinutes int
	TotalHours   float64
	Location     string
	Description  string
}

//go:generate mockgen -source=attendance_projector.go -destination=mock/attendance_projector_mock.go -package=mock
type Projector interface {
	WithTx(tx *sql.Tx) Projector
	Project(ctx context.Context, c Correction) (*Attendance, error)
}

type projector struct {
	repo   Repository
	tx     *sql.Tx
	logger *zap.Logger
}

func NewProjector(repo Repository, logger ...*zap.Logger) Projector {
	l := zap.L().Named("attendance.projector")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.projector")
	}
	return &projector{repo: repo, logger: l}
}

func (p *projector) WithTx(tx *sql.Tx) Projector {
	return &projector{repo: p.repo.WithTx(tx), tx: tx, logger: p.logger}
}

// Project writes exactly one attendance record per request. The request id
// is stored as external_ref and is unique.
func (p *projector) Project(ctx context.Context, c Correction) (*Attendance, error) {
	if p.tx == nil {
		return nil, attendanceerrors.ErrTransactionRequired
	}
	if !c.ClockOut.After(c.ClockIn) {
		return nil, attendanceerrors.ErrInvalidCorrection
	}

	ref := c.RequestID.String()
	log := p.logger.With(
		zap.String("request_id", ref),
		zap.String("employee_id", c.EmployeeID.String()),
	)

	if _, err := p.repo.FindByExternalRef(ctx, ref); err == nil {
		log.Warn("attendance already projected")
		return nil, attendanceerrors.ErrAlreadyProjected
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("failed to check existing projection", zap.Error(err))
		return nil, err
	}

	clockOut := c.ClockOut.UTC()
	row := &Attendance{
		ID:                uuid.New(),
		EmployeeID:        c.EmployeeID,
		AttendanceDate:    dateOnly(c.FromDate),
		AttendanceEndDate: dateOnly(c.ToDate),
		ClockIn:           c.ClockIn.UTC(),
		ClockOut:          &clockOut,
		BreakMinutes:      c.BreakMinutes,
		WorkingHours:      WorkingHours(c.TotalHours, c.BreakMinutes),
		Status:            StatusCorrected,
		Source:            SourceCorrectionRequest,
		ExternalRef:       &ref,
	}
	if c.Location != "" {
		loc := c.Location
		row.Location = &loc
	}
	if c.Description != "" {
		notes := c.Description
		row.Notes = &notes
	}

	if err := p.repo.Create(ctx, row); err != nil {
		if isDuplicateRef(err) {
			log.Warn("attendance projected concurrently")
			return nil, attendanceerrors.ErrAlreadyProjected
		}
		log.Error("failed to create attendance record", zap.Error(err))
		return nil, err
	}

	log.Info("attendance projected",
		zap.String("attendance_id", row.ID.String()),
		zap.Float64("working_hours", row.WorkingHours),
	)
	return row, nil
}

// WorkingHours is total hours minus the break, rounded to two decimals and
// never negative.
func WorkingHours(totalHours float64, breakMinutes int) float64 {
	h := totalHours - float64(breakMinutes)/60
	if h < 0 {
		return 0
	}
	return math.Round(h*100) / 100
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isDuplicateRef(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
