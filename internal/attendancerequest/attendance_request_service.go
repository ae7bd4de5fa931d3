package attendancerequest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hr-backoffice/internal/approval"
	approvalerrors "hr-backoffice/internal/approval/errors"
	"hr-backoffice/internal/attendance"
	reqerrors "hr-backoffice/internal/attendancerequest/errors"
	"hr-backoffice/internal/domain"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, actorID string, req CreateAttendanceRequest) (AttendanceRequestResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateAttendanceRequest) (AttendanceRequestResponse, error)
	Decide(ctx context.Context, approverID, id string, req DecisionRequest) (AttendanceRequestResponse, error)
	Cancel(ctx context.Context, actorID, id string) (AttendanceRequestResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceRequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceRequestResponse, error)
}

type Option func(*service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("attendancerequest.service")
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithOutbox(outbox kafka.OutboxRepository) Option {
	return func(s *service) {
		s.outbox = outbox
	}
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeChecker
	projector attendance.Projector
	outbox    kafka.OutboxRepository
	machine   *approval.Machine[*AttendanceRequest]
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeChecker, projector attendance.Projector, opts ...Option) Service {
	s := &service{
		db:        db,
		repo:      repo,
		employees: employees,
		projector: projector,
		now:       time.Now,
		logger:    zap.L().Named("attendancerequest.service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.machine = approval.NewMachine[*AttendanceRequest](approval.KindAttendance, s.logger).
		OnEnter(domain.StatusApproved, s.projectAttendance)
	if s.outbox != nil {
		s.machine.OnTerminal(approval.PublishDecision[*AttendanceRequest](s.outbox))
	}
	return s
}

func (s *service) projectAttendance(ctx context.Context, tx *sql.Tx, r *AttendanceRequest, _ approval.Decision) error {
	_, err := s.projector.WithTx(tx).Project(ctx, r.Correction())
	return err
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAttendanceRequest) (AttendanceRequestResponse, error) {
	s.logger.Debug("create attendance request requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AttendanceRequestResponse{}, reqerrors.ErrInvalidActorID
	}

	in := ValidationInput{
		EmployeeID:   parseID(req.EmployeeID),
		FromDate:     parseDate(req.FromDate),
		ToDate:       parseDate(req.ToDate),
		ClockIn:      parseClock(req.ClockIn),
		ClockOut:     parseClock(req.ClockOut),
		BreakMinutes: req.BreakMinutes,
		Location:     req.Location,
		ReasonType:   req.ReasonType,
		Description:  req.Description,
	}
	res, err := NewValidator(s.employees, s.now).Validate(ctx, in)
	if err != nil {
		s.logger.Error("create attendance request validation lookup failed", zap.Error(err))
		return AttendanceRequestResponse{}, err
	}
	if !res.Valid() {
		s.logger.Warn("create attendance request validation failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Strings("violations", res.Violations),
		)
		return AttendanceRequestResponse{}, res.Err()
	}

	r := &AttendanceRequest{
		ID:         uuid.New(),
		EmployeeID: in.EmployeeID,
		CreatedBy:  actorUUID,
		Status:     domain.StatusPending,
		IsActive:   true,
	}
	applyInput(r, in, res)

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.Error("create attendance request persist failed", zap.Error(err))
		return AttendanceRequestResponse{}, err
	}

	s.logger.Info("create attendance request success",
		zap.String("attendance_request_id", r.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("total_hours", r.TotalHours),
	)
	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateAttendanceRequest) (AttendanceRequestResponse, error) {
	s.logger.Debug("update attendance request requested",
		zap.String("attendance_request_id", id),
		zap.String("actor_id", actorID),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AttendanceRequestResponse{}, reqerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update attendance request begin tx failed", zap.Error(err))
		return AttendanceRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := s.lockRequest(ctx, qtx, id)
	if errors.Is(err, reqerrors.ErrAttendanceRequestNotFound) {
		s.logger.Warn("update attendance request target missing", zap.String("attendance_request_id", id))
		return AttendanceRequestResponse{}, apperror.Validation([]string{reqerrors.MsgInvalidRequestID})
	}
	if err != nil {
		return AttendanceRequestResponse{}, err
	}

	// Only the requester may edit the content of a pending request.
	if existing.EmployeeID != actorUUID {
		s.logger.Warn("update attendance request rejected: not requester",
			zap.String("attendance_request_id", id),
			zap.String("actor_id", actorID),
		)
		return AttendanceRequestResponse{}, approvalerrors.ErrNotRequester
	}

	in := ValidationInput{
		EmployeeID:   existing.EmployeeID,
		FromDate:     parseDate(req.FromDate),
		ToDate:       parseDate(req.ToDate),
		ClockIn:      parseClock(req.ClockIn),
		ClockOut:     parseClock(req.ClockOut),
		BreakMinutes: req.BreakMinutes,
		Location:     req.Location,
		ReasonType:   req.ReasonType,
		Description:  req.Description,
		Update:       true,
		Existing:     existing,
	}
	res, err := NewValidator(s.employees, s.now).Validate(ctx, in)
	if err != nil {
		s.logger.Error("update attendance request validation lookup failed", zap.Error(err))
		return AttendanceRequestResponse{}, err
	}
	if !res.Valid() {
		s.logger.Warn("update attendance request validation failed",
			zap.String("attendance_request_id", id),
			zap.Strings("violations", res.Violations),
		)
		return AttendanceRequestResponse{}, res.Err()
	}

	applyInput(existing, in, res)

	if err := qtx.Update(ctx, existing); err != nil {
		s.logger.Error("update attendance request persist failed", zap.String("attendance_request_id", id), zap.Error(err))
		return AttendanceRequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update attendance request commit failed", zap.String("attendance_request_id", id), zap.Error(err))
		return AttendanceRequestResponse{}, err
	}

	s.logger.Info("update attendance request success", zap.String("attendance_request_id", id))
	return mapToResponse(*existing), nil
}

func (s *service) Decide(ctx context.Context, approverID, id string, req DecisionRequest) (AttendanceRequestResponse, error) {
	status := domain.RequestStatus(req.Status)
	if err := approval.ValidateDecision(status, parseID(approverID)); err != nil {
		s.logger.Warn("decide attendance request validation failed", zap.String("attendance_request_id", id), zap.Error(err))
		return AttendanceRequestResponse{}, err
	}
	return s.transition(ctx, id, status, parseID(approverID), req.Note)
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (AttendanceRequestResponse, error) {
	actorUUID := parseID(actorID)
	if actorUUID == uuid.Nil {
		return AttendanceRequestResponse{}, reqerrors.ErrInvalidActorID
	}
	return s.transition(ctx, id, domain.StatusCancelled, actorUUID, nil)
}

// transition commits the request row together with the projected attendance
// and the outbox event, or none of them.
func (s *service) transition(ctx context.Context, id string, target domain.RequestStatus, actorID uuid.UUID, note *string) (AttendanceRequestResponse, error) {
	s.logger.Debug("transition attendance request requested",
		zap.String("attendance_request_id", id),
		zap.String("actor_id", actorID.String()),
		zap.String("target_status", target.String()),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition attendance request begin tx failed", zap.Error(err))
		return AttendanceRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := s.lockRequest(ctx, qtx, id)
	if err != nil {
		return AttendanceRequestResponse{}, err
	}

	if _, err := s.machine.Apply(ctx, tx, r, target, actorID, s.now()); err != nil {
		return AttendanceRequestResponse{}, err
	}
	if note != nil && *note != "" {
		r.DecisionNote = note
	}

	if err := qtx.Update(ctx, r); err != nil {
		s.logger.Error("transition attendance request persist failed",
			zap.String("attendance_request_id", id),
			zap.String("target_status", target.String()),
			zap.Error(err),
		)
		return AttendanceRequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition attendance request commit failed", zap.String("attendance_request_id", id), zap.Error(err))
		return AttendanceRequestResponse{}, err
	}

	s.logger.Info("transition attendance request success",
		zap.String("attendance_request_id", id),
		zap.String("status", r.Status.String()),
	)
	return mapToResponse(*r), nil
}

func (s *service) lockRequest(ctx context.Context, qtx Repository, id string) (*AttendanceRequest, error) {
	reqID := parseID(id)
	if reqID == uuid.Nil {
		return nil, reqerrors.ErrAttendanceRequestNotFound
	}
	r, err := qtx.FindByIDForUpdate(ctx, reqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reqerrors.ErrAttendanceRequestNotFound
		}
		s.logger.Error("load attendance request failed", zap.String("attendance_request_id", id), zap.Error(err))
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceRequestResponse, error) {
	reqID := parseID(id)
	if reqID == uuid.Nil {
		return AttendanceRequestResponse{}, reqerrors.ErrInvalidAttendanceRequestID
	}
	r, err := s.repo.FindByID(ctx, reqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceRequestResponse{}, reqerrors.ErrAttendanceRequestNotFound
		}
		return AttendanceRequestResponse{}, err
	}
	return mapToResponse(*r), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceRequestResponse, error) {
	empID := parseID(employeeID)
	if empID == uuid.Nil {
		return nil, reqerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]AttendanceRequestResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

// applyInput copies validated fields; only call it on a valid result.
func applyInput(r *AttendanceRequest, in ValidationInput, res ValidationResult) {
	r.FromDate = *in.FromDate
	r.ToDate = *in.ToDate
	r.ClockIn = in.ClockIn.UTC()
	r.ClockOut = in.ClockOut.UTC()
	r.BreakMinutes = *in.BreakMinutes
	r.TotalHours = res.TotalHours
	r.Location = strings.TrimSpace(in.Location)
	r.ReasonType = strings.TrimSpace(in.ReasonType)
	r.Description = in.Description
}

func parseID(v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil
	}
	return &t
}

func parseClock(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}

func mapToResponse(r AttendanceRequest) AttendanceRequestResponse {
	resp := AttendanceRequestResponse{
		ID:           r.ID.String(),
		EmployeeID:   r.EmployeeID.String(),
		FromDate:     r.FromDate.Format(dateLayout),
		ToDate:       r.ToDate.Format(dateLayout),
		ClockIn:      r.ClockIn.Format(time.RFC3339),
		ClockOut:     r.ClockOut.Format(time.RFC3339),
		BreakMinutes: r.BreakMinutes,
		TotalHours:   r.TotalHours,
		Location:     r.Location,
		ReasonType:   r.ReasonType,
		Description:  r.Description,
		Status:       r.Status.String(),
		CreatedBy:    r.CreatedBy.String(),
		DecisionNote: r.DecisionNote,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName
	}
	if r.ApprovedBy != nil {
		v := r.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
