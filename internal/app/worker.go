package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hr-backoffice/internal/config"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/messaging/kafka/producer"
	"hr-backoffice/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays committed outbox rows to kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)

	log.Info("worker shut down")
	return nil
}
