package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	_ "github.com/tair/growshop/docs"
	"github.com/tair/growshop/internal/order/repository"
	"github.com/tair/growshop/internal/storefront"
	userrepo "github.com/tair/growshop/internal/user/repository"
	"github.com/tair/growshop/kafka"
	"github.com/tair/growshop/pkg/breaker"
	"github.com/tair/growshop/pkg/database"
	"github.com/tair/growshop/pkg/jsonstore"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger.Init("storefront", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.isDevelopment())
	logger.SetLevel(cfg.LogLevel)

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = jsonstore.ResolveDir("data", "../data")
	}

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("backend", cfg.Backend).
		Str("data_dir", dataDir).
		Msg("Starting storefront")

	// Initialize tracer
	var tp trace.TracerProvider
	if cfg.TracingEnabled {
		tp, err = tracing.InitTracer(cfg.tracing())
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Tracing disabled")
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	infra := storefront.Infrastructure{Registerer: reg, Gatherer: reg}

	if cfg.Backend == storefront.BackendPostgres {
		db, err := database.NewGormConnection(cfg.database())
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()

		if err := repository.NewGormOrderRepository(db).AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to migrate orders")
		}
		if err := userrepo.NewGormUserRepository(db).AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to migrate users")
		}
		logger.Logger.Info().Msg("Database initialized successfully")
		infra.DB = db
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis not reachable yet")
		}
		cancel()
		infra.Redis = rdb
	}

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Strs("brokers", cfg.KafkaBrokers).Msg("Order events disabled")
		} else {
			infra.Publisher = kafka.NewGuardedPublisher(publisher, breaker.DefaultSettings())
		}
	}

	app, err := storefront.InitializeApp(cfg.storefront(dataDir), infra)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storefront")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if problems := app.VerifyCatalog(ctx); problems > 0 {
		logger.Logger.Warn().Int("problems", problems).Msg("Catalog has invalid products")
	}
	app.Start(ctx)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics", "http://localhost:"+cfg.HTTPPort+"/metrics").
			Str("swagger", "http://localhost:"+cfg.HTTPPort+"/swagger/index.html").
			Msg("HTTP server starting")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	stop()
	app.Close()

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka publisher")
		}
	}
	if tp != nil {
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}

	logger.Logger.Info().Msg("Server exited")
}
