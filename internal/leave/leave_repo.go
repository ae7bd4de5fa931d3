package leave

import (
	"context"
	"database/sql"
	"time"

	"hr-backoffice/internal/domain"
	"hr-backoffice/internal/shared/dbtx"
	"hr-backoffice/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Preload("LeaveType").
		Scopes(scope.Active).
		First(&l, "id = ?", id).Error
	return &l, err
}

// FindByIDForUpdate locks the row for the rest of the transaction so two
// decisions on the same request serialize.
func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(scope.Active).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Preload("LeaveType").
		Scopes(scope.Employee(employeeID), scope.Active).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(l).Error
}

// HasOverlappingPeriod ignores rejected and cancelled requests.
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error) {
	db := dbtx.Conn(ctx, r.db, r.tx).
		Model(&LeaveRequest{}).
		Scopes(scope.Employee(employeeID), scope.Active).
		Where("status NOT IN ?", []domain.RequestStatus{domain.StatusRejected, domain.StatusCancelled}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != uuid.Nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}
