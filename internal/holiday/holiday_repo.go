package holiday

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var rows []FestivalHoliday
	err := r.db.WithContext(ctx).
		Select("holiday_date").
		Where("is_active = ?", true).
		Where("holiday_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("holiday_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(rows))
	for i, h := range rows {
		dates[i] = h.HolidayDate
	}
	return dates, nil
}
