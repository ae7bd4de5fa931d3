package attendancerequest

import (
	"context"
	"database/sql"

	"hr-backoffice/internal/shared/dbtx"
	"hr-backoffice/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_request_repo.go -destination=mock/attendance_request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *AttendanceRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*AttendanceRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*AttendanceRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AttendanceRequest, error)
	Update(ctx context.Context, r *AttendanceRequest) error
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

func (r *repository) Create(ctx context.Context, req *AttendanceRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*AttendanceRequest, error) {
	var req AttendanceRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Scopes(scope.Active).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*AttendanceRequest, error) {
	var req AttendanceRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(scope.Active).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AttendanceRequest, error) {
	var rows []AttendanceRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Scopes(scope.Employee(employeeID), scope.Active).
		Order("from_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, req *AttendanceRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(req).Error
}
