package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CalendarKeyPrefix = "holidays:calendar:"
	dateLayout        = "2006-01-02"
	defaultCacheTTL   = 24 * time.Hour
)

func GetCalendarKey(year int) string {
	return fmt.Sprintf("%s%d", CalendarKeyPrefix, year)
}

// Lookup answers holiday queries a calendar year at a time, caching each
// year in redis. A nil redis client disables caching.
type Lookup struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewLookup(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *Lookup {
	l := zap.L().Named("holiday.lookup")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.lookup")
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Lookup{repo: repo, rdb: rdb, ttl: ttl, sf: &singleflight.Group{}, logger: l}
}

// HolidaysInRange returns holiday dates within [start, end], ascending.
func (l *Lookup) HolidaysInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	start, end = dateOf(start), dateOf(end)
	if end.Before(start) {
		return nil, nil
	}

	var result []time.Time
	for year := start.Year(); year <= end.Year(); year++ {
		dates, err := l.calendar(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, d := range dates {
			if d.Before(start) || d.After(end) {
				continue
			}
			result = append(result, d)
		}
	}
	return result, nil
}

// Invalidate drops the cached calendar of year.
func (l *Lookup) Invalidate(ctx context.Context, year int) error {
	if l.rdb == nil {
		return nil
	}
	key := GetCalendarKey(year)
	if err := l.rdb.Del(ctx, key).Err(); err != nil {
		l.logger.Error("invalidate holiday calendar failed", zap.String("key", key), zap.Error(err))
		return err
	}
	l.logger.Info("holiday calendar invalidated", zap.Int("year", year))
	return nil
}

func (l *Lookup) calendar(ctx context.Context, year int) ([]time.Time, error) {
	key := GetCalendarKey(year)

	if l.rdb != nil {
		cached, err := l.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			if dates, decodeErr := decodeCalendar(cached); decodeErr == nil {
				return dates, nil
			}
			l.logger.Warn("holiday calendar cache corrupt, reloading", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			l.logger.Warn("holiday calendar cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := l.sf.Do(key, func() (interface{}, error) {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		dates, err := l.repo.FindDatesInRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		for i := range dates {
			dates[i] = dateOf(dates[i])
		}

		if l.rdb != nil {
			if payload, err := encodeCalendar(dates); err == nil {
				if err := l.rdb.Set(ctx, key, payload, l.ttl).Err(); err != nil {
					l.logger.Warn("holiday calendar cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return dates, nil
	})
	if err != nil {
		l.logger.Error("load holiday calendar failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return v.([]time.Time), nil
}

func encodeCalendar(dates []time.Time) (string, error) {
	raw := make([]string, len(dates))
	for i, d := range dates {
		raw[i] = d.Format(dateLayout)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeCalendar(payload string) ([]time.Time, error) {
	var raw []string
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
