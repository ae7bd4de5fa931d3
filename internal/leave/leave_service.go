package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hr-backoffice/internal/approval"
	approvalerrors "hr-backoffice/internal/approval/errors"
	"hr-backoffice/internal/balance"
	"hr-backoffice/internal/domain"
	leaveerrors "hr-backoffice/internal/leave/errors"
	"hr-backoffice/internal/lookup"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, approverID, id string, req DecisionRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	CurrentBalance(ctx context.Context, q BalanceQuery) (BalanceResponse, error)
	BalanceHistory(ctx context.Context, q BalanceQuery) ([]BalanceEntryResponse, error)
}

type Option func(*service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("leave.service")
		}
	}
}

// WithClock overrides the source of "today" and decision timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOutbox queues a decision event for every terminal transition.
func WithOutbox(outbox kafka.OutboxRepository) Option {
	return func(s *service) {
		s.outbox = outbox
	}
}

type service struct {
	db      *sql.DB
	repo    Repository
	lookup  lookup.Lookup
	ledger  balance.Ledger
	outbox  kafka.OutboxRepository
	machine *approval.Machine[*LeaveRequest]
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, lk lookup.Lookup, ledger balance.Ledger, opts ...Option) Service {
	s := &service{
		db:     db,
		repo:   repo,
		lookup: lk,
		ledger: ledger,
		now:    time.Now,
		logger: zap.L().Named("leave.service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.machine = approval.NewMachine[*LeaveRequest](approval.KindLeave, s.logger).
		OnEnter(domain.StatusApproved, s.consumeBalance)
	if s.outbox != nil {
		s.machine.OnTerminal(approval.PublishDecision[*LeaveRequest](s.outbox))
	}
	return s
}

// consumeBalance charges the request's days against the ledger of its
// start year inside the decision transaction.
func (s *service) consumeBalance(ctx context.Context, tx *sql.Tx, l *LeaveRequest, _ approval.Decision) error {
	_, err := s.ledger.WithTx(tx).Consume(ctx, l.EmployeeID, l.LeaveTypeID, l.StartDate.Year(), l.TotalDays, l.ID)
	return err
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	in := ValidationInput{
		EmployeeID:  parseID(req.EmployeeID),
		LeaveTypeID: parseID(req.LeaveTypeID),
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		Reason:      req.Reason,
	}
	res, err := NewValidator(s.lookup, qtx, s.now).Validate(ctx, in)
	if err != nil {
		s.logger.Error("create leave validation lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !res.Valid() {
		s.logger.Warn("create leave validation failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Strings("violations", res.Violations),
		)
		return LeaveResponse{}, res.Err()
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  in.EmployeeID,
		LeaveTypeID: in.LeaveTypeID,
		StartDate:   *in.StartDate,
		EndDate:     *in.EndDate,
		TotalDays:   res.ChargeableDays,
		Reason:      req.Reason,
		Status:      domain.StatusPending,
		CreatedBy:   actorUUID,
		IsActive:    true,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", l.TotalDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := s.lockLeave(ctx, qtx, id)
	if errors.Is(err, leaveerrors.ErrLeaveNotFound) {
		s.logger.Warn("update leave target missing", zap.String("leave_id", id))
		return LeaveResponse{}, apperror.Validation([]string{leaveerrors.MsgInvalidLeaveRequestID})
	}
	if err != nil {
		return LeaveResponse{}, err
	}

	// Only the requester may edit the content of a pending request.
	if existing.EmployeeID != actorUUID {
		s.logger.Warn("update leave rejected: not requester",
			zap.String("leave_id", id),
			zap.String("actor_id", actorID),
		)
		return LeaveResponse{}, approvalerrors.ErrNotRequester
	}

	in := ValidationInput{
		EmployeeID:  existing.EmployeeID,
		LeaveTypeID: parseID(req.LeaveTypeID),
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		Reason:      req.Reason,
		Update:      true,
		Existing:    existing,
	}
	res, err := NewValidator(s.lookup, qtx, s.now).Validate(ctx, in)
	if err != nil {
		s.logger.Error("update leave validation lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !res.Valid() {
		s.logger.Warn("update leave validation failed",
			zap.String("leave_id", id),
			zap.Strings("violations", res.Violations),
		)
		return LeaveResponse{}, res.Err()
	}

	existing.LeaveTypeID = in.LeaveTypeID
	existing.StartDate = *in.StartDate
	existing.EndDate = *in.EndDate
	existing.TotalDays = res.ChargeableDays
	existing.Reason = req.Reason

	if err := qtx.Update(ctx, existing); err != nil {
		s.logger.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("update leave success",
		zap.String("leave_id", id),
		zap.Int("total_days", existing.TotalDays),
	)
	return mapToResponse(*existing), nil
}

func (s *service) Decide(ctx context.Context, approverID, id string, req DecisionRequest) (LeaveResponse, error) {
	status := domain.RequestStatus(req.Status)
	if err := approval.ValidateDecision(status, parseID(approverID)); err != nil {
		s.logger.Warn("decide leave validation failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	return s.transition(ctx, id, status, parseID(approverID), req.Note)
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	actorUUID := parseID(actorID)
	if actorUUID == uuid.Nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	return s.transition(ctx, id, domain.StatusCancelled, actorUUID, nil)
}

// transition applies one state-machine step. The request row, ledger rows and
// outbox event commit together or not at all.
func (s *service) transition(ctx context.Context, id string, target domain.RequestStatus, actorID uuid.UUID, note *string) (LeaveResponse, error) {
	s.logger.Debug("transition leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID.String()),
		zap.String("target_status", target.String()),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.lockLeave(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if _, err := s.machine.Apply(ctx, tx, l, target, actorID, s.now()); err != nil {
		return LeaveResponse{}, err
	}
	if note != nil && *note != "" {
		l.DecisionNote = note
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", target.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("transition leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) lockLeave(ctx context.Context, qtx Repository, id string) (*LeaveRequest, error) {
	leaveID := parseID(id)
	if leaveID == uuid.Nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	l, err := qtx.FindByIDForUpdate(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("load leave failed", zap.String("leave_id", id), zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	leaveID := parseID(id)
	if leaveID == uuid.Nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	empID := parseID(employeeID)
	if empID == uuid.Nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) CurrentBalance(ctx context.Context, q BalanceQuery) (BalanceResponse, error) {
	empID, typeID, year, err := s.balanceKey(q)
	if err != nil {
		return BalanceResponse{}, err
	}
	snap, err := s.lookup.CurrentBalance(ctx, empID, typeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	return BalanceResponse{
		EmployeeID:  snap.EmployeeID.String(),
		LeaveTypeID: snap.LeaveTypeID.String(),
		Year:        snap.Year,
		Sequence:    snap.Sequence,
		Total:       snap.Total,
		Used:        snap.Used,
		Remaining:   snap.Remaining,
		Fresh:       snap.Fresh,
	}, nil
}

func (s *service) BalanceHistory(ctx context.Context, q BalanceQuery) ([]BalanceEntryResponse, error) {
	empID, typeID, year, err := s.balanceKey(q)
	if err != nil {
		return nil, err
	}
	rows, err := s.ledger.History(ctx, empID, typeID, year)
	if err != nil {
		return nil, err
	}
	res := make([]BalanceEntryResponse, len(rows))
	for i, r := range rows {
		res[i] = BalanceEntryResponse{
			ID:        r.ID.String(),
			Sequence:  r.Sequence,
			Total:     r.Total,
			Used:      r.Used,
			Remaining: r.Remaining,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
		if r.SourceRequestID != nil {
			v := r.SourceRequestID.String()
			res[i].SourceRequestID = &v
		}
	}
	return res, nil
}

func (s *service) balanceKey(q BalanceQuery) (uuid.UUID, uuid.UUID, int, error) {
	var violations []string
	empID, typeID := parseID(q.EmployeeID), parseID(q.LeaveTypeID)
	if empID == uuid.Nil {
		violations = append(violations, leaveerrors.MsgInvalidEmployeeID)
	}
	if typeID == uuid.Nil {
		violations = append(violations, leaveerrors.MsgInvalidLeaveTypeID)
	}
	if len(violations) > 0 {
		return uuid.Nil, uuid.Nil, 0, apperror.Validation(violations)
	}
	year := q.Year
	if year == 0 {
		year = s.now().UTC().Year()
	}
	return empID, typeID, year, nil
}

// parseID maps anything that is not a UUID to uuid.Nil, which the
// validators report as an invalid id.
func parseID(v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// parseDate treats a malformed date the same as a missing one.
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

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		TotalDays:   l.TotalDays,
		Reason:      l.Reason,
		Status:      l.Status.String(),
		CreatedBy:   l.CreatedBy.String(),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	resp.DecisionNote = l.DecisionNote
	return resp
}

func mapToListResponse(rows []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		resp[i] = mapToResponse(l)
	}
	return resp
}
