package leavetype

import (
	"context"
	"errors"

	leavetypeerrors "hr-backoffice/internal/leavetype/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByID returns leavetypeerrors.ErrLeaveTypeNotFound for missing or
// soft-deleted types. Inactive types are returned; callers decide.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	return &lt, nil
}
