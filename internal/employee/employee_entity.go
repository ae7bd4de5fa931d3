package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the read model of the employee directory. Employee CRUD
// lives in the identity service.
type Employee struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeNumber   string         `gorm:"type:varchar(30)"`
	FullName         string         `gorm:"type:varchar(150)"`
	EmploymentStatus string         `gorm:"type:varchar(20)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
