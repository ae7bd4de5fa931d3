package holiday

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FestivalHoliday is owned by the holiday management service; this
// subsystem only reads it.
type FestivalHoliday struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time      `gorm:"column:holiday_date;type:date;not null;index"`
	Name        string         `gorm:"column:name;type:varchar(150);not null"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (FestivalHoliday) TableName() string {
	return "festival_holidays"
}
