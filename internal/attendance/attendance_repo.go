package attendance

import (
	"context"
	"database/sql"
	"time"

	"hr-backoffice/internal/shared/dbtx"
	"hr-backoffice/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByExternalRef(ctx context.Context, ref string) (*Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(a).Error
}

func (r *repository) FindByExternalRef(ctx context.Context, ref string) (*Attendance, error) {
	var a Attendance
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("external_ref = ?", ref).
		First(&a).Error
	return &a, err
}

// FindAllByEmployee lists records whose attendance_date falls in [from, to];
// nil bounds are open.
func (r *repository) FindAllByEmployee(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]Attendance, error) {
	var rows []Attendance
	q := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Employee").
		Scopes(scope.Employee(employeeID))
	if from != nil {
		q = q.Where("attendance_date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("attendance_date <= ?", to.Format("2006-01-02"))
	}
	err := q.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}
