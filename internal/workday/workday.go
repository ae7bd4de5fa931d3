// Package workday counts chargeable days: calendar days that are neither
// a weekend nor a holiday.
package workday

import (
	"context"
	"time"
)

const dateKeyLayout = "2006-01-02"

// HolidaySource returns holiday dates falling inside [start, end].
type HolidaySource interface {
	HolidaysInRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type Calculator struct {
	holidays HolidaySource
}

func NewCalculator(holidays HolidaySource) *Calculator {
	return &Calculator{holidays: holidays}
}

// ChargeableDays returns the number of days in [start, end] that are not
// Saturday, Sunday or a holiday. An inverted range yields 0.
func (c *Calculator) ChargeableDays(ctx context.Context, start, end time.Time) (int, error) {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return 0, nil
	}

	var holidays []time.Time
	if c.holidays != nil {
		var err error
		holidays, err = c.holidays.HolidaysInRange(ctx, start, end)
		if err != nil {
			return 0, err
		}
	}
	return Count(start, end, holidays), nil
}

// Count is the pure part of ChargeableDays.
func Count(start, end time.Time, holidays []time.Time) int {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return 0
	}

	skip := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		skip[DateOf(h).Format(dateKeyLayout)] = struct{}{}
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		if _, ok := skip[d.Format(dateKeyLayout)]; ok {
			continue
		}
		days++
	}
	return days
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
