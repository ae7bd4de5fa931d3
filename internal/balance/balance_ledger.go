package balance

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	balanceerrors "hr-backoffice/internal/balance/errors"
	"hr-backoffice/internal/leavetype"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sequenceConstraint = "uq_leave_balance_sequence"

type LeaveTypeReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*leavetype.LeaveType, error)
}

//go:generate mockgen -source=balance_ledger.go -destination=mock/balance_ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	CurrentBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (Snapshot, error)
	Consume(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int, sourceRequestID uuid.UUID) (EmployeeLeaveBalance, error)
	History(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) ([]EmployeeLeaveBalance, error)
}

type ledger struct {
	repo       Repository
	leaveTypes LeaveTypeReader
	tx         *sql.Tx
	logger     *zap.Logger
}

func NewLedger(repo Repository, leaveTypes LeaveTypeReader, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("balance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.ledger")
	}
	return &ledger{repo: repo, leaveTypes: leaveTypes, logger: l}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{
		repo:       l.repo.WithTx(tx),
		leaveTypes: l.leaveTypes,
		tx:         tx,
		logger:     l.logger,
	}
}

// CurrentBalance returns the latest active row for the key, or the leave
// type's yearly allowance when nothing has been consumed yet.
func (l *ledger) CurrentBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (Snapshot, error) {
	row, err := l.repo.FindLatest(ctx, employeeID, leaveTypeID, year)
	if err == nil {
		return snapshotOf(*row), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.logger.Error("failed to read latest balance",
			zap.String("employee_id", employeeID.String()),
			zap.String("leave_type_id", leaveTypeID.String()),
			zap.Int("year", year),
			zap.Error(err),
		)
		return Snapshot{}, err
	}
	return l.fresh(ctx, employeeID, leaveTypeID, year)
}

func (l *ledger) fresh(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (Snapshot, error) {
	lt, err := l.leaveTypes.FindByID(ctx, leaveTypeID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        year,
		Total:       lt.MaxDaysPerYear,
		Remaining:   lt.MaxDaysPerYear,
		Fresh:       true,
	}, nil
}

// Consume appends the next ledger row with days charged. It must run on a
// ledger bound to the caller's transaction.
func (l *ledger) Consume(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int, sourceRequestID uuid.UUID) (EmployeeLeaveBalance, error) {
	if l.tx == nil {
		return EmployeeLeaveBalance{}, balanceerrors.ErrTransactionRequired
	}
	if days <= 0 {
		return EmployeeLeaveBalance{}, balanceerrors.ErrInvalidDays
	}

	var current Snapshot
	latest, err := l.repo.FindLatestForUpdate(ctx, employeeID, leaveTypeID, year)
	switch {
	case err == nil:
		current = snapshotOf(*latest)
	case errors.Is(err, gorm.ErrRecordNotFound):
		current, err = l.fresh(ctx, employeeID, leaveTypeID, year)
		if err != nil {
			return EmployeeLeaveBalance{}, err
		}
	default:
		l.logger.Error("failed to lock latest balance", zap.Error(err))
		return EmployeeLeaveBalance{}, err
	}

	if days > current.Remaining {
		l.logger.Warn("insufficient leave balance",
			zap.String("employee_id", employeeID.String()),
			zap.String("leave_type_id", leaveTypeID.String()),
			zap.Int("year", year),
			zap.Int("requested", days),
			zap.Int("remaining", current.Remaining),
		)
		return EmployeeLeaveBalance{}, balanceerrors.ErrInsufficientBalance
	}

	source := sourceRequestID
	used := current.Used + days
	row := EmployeeLeaveBalance{
		EmployeeID:      employeeID,
		LeaveTypeID:     leaveTypeID,
		Year:            year,
		Sequence:        current.Sequence + 1,
		Total:           current.Total,
		Used:            used,
		Remaining:       current.Total - used,
		SourceRequestID: &source,
		IsActive:        true,
	}
	if err := l.repo.Insert(ctx, &row); err != nil {
		if isSequenceConflict(err) {
			l.logger.Warn("concurrent balance update detected",
				zap.String("employee_id", employeeID.String()),
				zap.Int("sequence", row.Sequence),
			)
			return EmployeeLeaveBalance{}, balanceerrors.ErrConcurrentUpdate
		}
		l.logger.Error("failed to append balance row", zap.Error(err))
		return EmployeeLeaveBalance{}, err
	}

	l.logger.Info("leave balance consumed",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.Int("year", year),
		zap.Int("sequence", row.Sequence),
		zap.Int("used", row.Used),
		zap.Int("remaining", row.Remaining),
	)
	return row, nil
}

func (l *ledger) History(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) ([]EmployeeLeaveBalance, error) {
	return l.repo.FindHistory(ctx, employeeID, leaveTypeID, year)
}

func isSequenceConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (pgErr.ConstraintName == "" || pgErr.ConstraintName == sequenceConstraint)
	}
	return strings.Contains(err.Error(), sequenceConstraint)
}
