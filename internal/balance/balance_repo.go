package balance

import (
	"context"
	"database/sql"

	"hr-backoffice/internal/shared/dbtx"
	"hr-backoffice/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindLatest(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*EmployeeLeaveBalance, error)
	FindLatestForUpdate(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*EmployeeLeaveBalance, error)
	FindHistory(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) ([]EmployeeLeaveBalance, error)
	Insert(ctx context.Context, row *EmployeeLeaveBalance) error
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

func (r *repository) ledgerKey(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx).
		Scopes(scope.Employee(employeeID), scope.Active).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year)
}

// FindLatest returns gorm.ErrRecordNotFound when the key has no rows.
func (r *repository) FindLatest(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*EmployeeLeaveBalance, error) {
	var row EmployeeLeaveBalance
	err := r.ledgerKey(ctx, employeeID, leaveTypeID, year).
		Order("sequence DESC").
		First(&row).Error
	return &row, err
}

// FindLatestForUpdate locks the latest row until the surrounding
// transaction ends, so concurrent consumers of the same key queue up.
func (r *repository) FindLatestForUpdate(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*EmployeeLeaveBalance, error) {
	var row EmployeeLeaveBalance
	err := r.ledgerKey(ctx, employeeID, leaveTypeID, year).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("sequence DESC").
		First(&row).Error
	return &row, err
}

func (r *repository) FindHistory(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) ([]EmployeeLeaveBalance, error) {
	var rows []EmployeeLeaveBalance
	err := r.ledgerKey(ctx, employeeID, leaveTypeID, year).
		Order("sequence ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Insert(ctx context.Context, row *EmployeeLeaveBalance) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(row).Error
}
