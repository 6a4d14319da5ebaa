package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/growshop/internal/notifier"
	"github.com/tair/growshop/kafka"
	"github.com/tair/growshop/pkg/logger"
)

// Config is read from the environment
type Config struct {
	ServiceName  string   `envconfig:"SERVICE_NAME" default:"order-notifier"`
	Environment  string   `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel     string   `envconfig:"LOG_LEVEL" default:"info"`
	MetricsPort  string   `envconfig:"METRICS_PORT" default:"9102"`
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	GroupID      string   `envconfig:"KAFKA_GROUP_ID" default:"order-notifier"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Init("order-notifier", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.Environment == "development")
	logger.SetLevel(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	service := notifier.NewService(notifier.LogSender{}, reg)

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.GroupID, []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, service.HandleOrderPlaced)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Start(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Logger.Info().Str("port", cfg.MetricsPort).Msg("Metrics server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Metrics server shutdown failed")
	}
	if err := consumer.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close Kafka consumer")
	}
}
