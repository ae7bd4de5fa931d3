package consumer

import (
	"context"
	"encoding/json"
	"time"

	"hr-backoffice/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type CalendarInvalidator interface {
	Invalidate(ctx context.Context, year int) error
}

// ConsumeHolidayChanged drops the cached holiday calendar for the year of
// every changed holiday. Undecodable messages are committed and skipped;
// failed invalidations are left uncommitted so they are redelivered.
func ConsumeHolidayChanged(
	ctx context.Context,
	reader MessageReader,
	calendars CalendarInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.holiday_changed")
	log.Info("holiday changed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("holiday changed consumer stopped")
				return
			}
			log.Error("fetch holiday changed message failed", zap.Error(err))
			continue
		}

		handleHolidayChanged(ctx, reader, calendars, msg, log)
	}
}

func handleHolidayChanged(
	ctx context.Context,
	reader MessageReader,
	calendars CalendarInvalidator,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.HolidayChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode holiday changed event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	date, err := time.Parse("2006-01-02", event.HolidayDate)
	if err != nil {
		log.Warn("holiday changed event has invalid date, skipping",
			zap.String("holiday_date", event.HolidayDate),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := calendars.Invalidate(ctx, date.Year()); err != nil {
		log.Error("invalidate holiday calendar failed",
			zap.Int("year", date.Year()),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit holiday changed message failed", zap.Error(err))
		return
	}

	log.Info("holiday calendar invalidated",
		zap.String("holiday_date", event.HolidayDate),
		zap.Int("year", date.Year()),
	)
}
