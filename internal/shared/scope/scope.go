package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Active keeps rows whose is_active flag is set. Soft-deleted rows are
// already excluded by gorm.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func Employee(employeeID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}
