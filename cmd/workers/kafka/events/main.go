package main

import (
	"context"
	"fmt"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/buffer-service/internal/applier"
	"github.com/s21platform/buffer-service/internal/client/discord"
	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/databus/events"
	"github.com/s21platform/buffer-service/internal/repository/postgres"
)

const messageEventsConsumerGroupID = "buffer-message-events"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	discordClient := discord.New(cfg)
	defer discordClient.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.EventsTopic,
		messageEventsConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
	}

	messageApplier := applier.New(dbRepo, discordClient.BotUserID())
	eventsHandler := events.New(messageApplier)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		eventsHandler.Handler(ctx, in)
		return nil
	})

	<-ctx.Done()
}
