// Package approval drives the PENDING -> APPROVED | REJECTED | CANCELLED
// lifecycle shared by leave and attendance-correction requests.
package approval

import (
	"context"
	"database/sql"
	"time"

	approvalerrors "hr-backoffice/internal/approval/errors"
	"hr-backoffice/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindLeave      Kind = "LEAVE"
	KindAttendance Kind = "ATTENDANCE"
)

func (k Kind) String() string {
	return string(k)
}

// Subject is a request the machine can decide.
type Subject interface {
	SubjectID() uuid.UUID
	RequesterID() uuid.UUID
	RequestStatus() domain.RequestStatus
	ApplyDecision(status domain.RequestStatus, approverID *uuid.UUID, decidedAt time.Time)
}

// Decision describes a transition that has been accepted. ApproverID is
// set for APPROVED and REJECTED only.
type Decision struct {
	Kind        Kind
	SubjectID   uuid.UUID
	RequesterID uuid.UUID
	From        domain.RequestStatus
	To          domain.RequestStatus
	ActorID     uuid.UUID
	ApproverID  *uuid.UUID
	DecidedAt   time.Time
}

// Effect runs inside the decision transaction. A returned error aborts the
// transition before the subject is touched.
type Effect[T Subject] func(ctx context.Context, tx *sql.Tx, subject T, d Decision) error

type Machine[T Subject] struct {
	kind    Kind
	effects map[domain.RequestStatus][]Effect[T]
	logger  *zap.Logger
}

func NewMachine[T Subject](kind Kind, logger ...*zap.Logger) *Machine[T] {
	l := zap.L().Named("approval.machine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.machine")
	}
	return &Machine[T]{
		kind:    kind,
		effects: make(map[domain.RequestStatus][]Effect[T]),
		logger:  l.With(zap.String("kind", kind.String())),
	}
}

func (m *Machine[T]) Kind() Kind {
	return m.kind
}

// OnEnter registers effect for transitions into status. Effects for the same
// status run in registration order.
func (m *Machine[T]) OnEnter(status domain.RequestStatus, effect Effect[T]) *Machine[T] {
	m.effects[status] = append(m.effects[status], effect)
	return m
}

// OnTerminal registers effect for every terminal status.
func (m *Machine[T]) OnTerminal(effect Effect[T]) *Machine[T] {
	for _, s := range []domain.RequestStatus{domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled} {
		m.OnEnter(s, effect)
	}
	return m
}

// Apply moves subject to target on behalf of actorID. The caller owns tx and
// must roll it back when Apply fails.
func (m *Machine[T]) Apply(ctx context.Context, tx *sql.Tx, subject T, target domain.RequestStatus, actorID uuid.UUID, at time.Time) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	from := subject.RequestStatus()
	log := m.logger.With(
		zap.String("request_id", subject.SubjectID().String()),
		zap.String("from", from.String()),
		zap.String("to", target.String()),
	)

	if !domain.CanTransition(from, target) {
		log.Warn("transition rejected: request is not pending")
		return Decision{}, approvalerrors.ErrNotPending
	}

	d := Decision{
		Kind:        m.kind,
		SubjectID:   subject.SubjectID(),
		RequesterID: subject.RequesterID(),
		From:        from,
		To:          target,
		ActorID:     actorID,
		DecidedAt:   at.UTC(),
	}

	switch target {
	case domain.StatusCancelled:
		if actorID != subject.RequesterID() {
			log.Warn("cancellation rejected: actor is not the requester",
				zap.String("actor_id", actorID.String()),
			)
			return Decision{}, approvalerrors.ErrNotRequester
		}
	default:
		if actorID == uuid.Nil {
			log.Warn("decision rejected: approver missing")
			return Decision{}, approvalerrors.ErrApproverRequired
		}
		approver := actorID
		d.ApproverID = &approver
	}

	for i, effect := range m.effects[target] {
		if err := effect(ctx, tx, subject, d); err != nil {
			log.Warn("transition effect failed", zap.Int("effect", i), zap.Error(err))
			return Decision{}, err
		}
	}

	subject.ApplyDecision(target, d.ApproverID, d.DecidedAt)
	log.Info("request transitioned", zap.String("actor_id", actorID.String()))
	return d, nil
}
