package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hr-backoffice/internal/config"
	"hr-backoffice/internal/events"
	"hr-backoffice/internal/holiday"
	"hr-backoffice/internal/messaging/kafka/consumer"
	"hr-backoffice/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer keeps the cached holiday calendars fresh by listening for
// holiday changes published by the calendar owner.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.PostgresDSN(), cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	calendars := holiday.NewLookup(holiday.NewRepository(gormDB), rdb, cfg.HolidayCacheTTL, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.HolidayChangedTopic,
		GroupID:        cfg.KafkaConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeHolidayChanged(ctx, reader, calendars, logger)

	log.Info("consumer shut down")
	return nil
}
