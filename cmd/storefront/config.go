package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/tair/growshop/internal/order/usecase/command"
	"github.com/tair/growshop/internal/storefront"
	"github.com/tair/growshop/pkg/database"
	"github.com/tair/growshop/pkg/tracing"
)

// Config is read from the environment
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"storefront"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`

	// DataDir empty means the first of data, ../data that exists.
	DataDir string `envconfig:"DATA_DIR"`
	Backend string `envconfig:"STORE_BACKEND" default:"json"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"growshop"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RateLimit     int           `envconfig:"RATE_LIMIT" default:"100"`
	RateWindow    time.Duration `envconfig:"RATE_WINDOW" default:"1m"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"1m"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`

	SessionSecret   string        `envconfig:"SESSION_SECRET" default:"growshop-dev-secret"`
	SecureCookies   bool          `envconfig:"SECURE_COOKIES"`
	ClientStateIdle time.Duration `envconfig:"CLIENT_STATE_IDLE" default:"10m"`
	AllowOutOfStock bool          `envconfig:"ORDER_ALLOW_OUT_OF_STOCK"`

	TracingEnabled     bool    `envconfig:"TRACING_ENABLED"`
	JaegerEndpoint     string  `envconfig:"JAEGER_ENDPOINT" default:"http://localhost:14268/api/traces"`
	TracingSampleRatio float64 `envconfig:"TRACING_SAMPLE_RATIO" default:"1"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if cfg.Environment == "production" && cfg.SessionSecret == "growshop-dev-secret" {
		return Config{}, fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return cfg, nil
}

func (c Config) isDevelopment() bool {
	return c.Environment == "development"
}

func (c Config) database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

func (c Config) tracing() tracing.Config {
	return tracing.Config{
		ServiceName:    c.ServiceName,
		JaegerEndpoint: c.JaegerEndpoint,
		SampleRatio:    c.TracingSampleRatio,
	}
}

func (c Config) storefront(dataDir string) storefront.Options {
	policy := command.RejectOutOfStock
	if c.AllowOutOfStock {
		policy = command.ClampOutOfStock
	}
	return storefront.Options{
		DataDir:         dataDir,
		Backend:         c.Backend,
		StockPolicy:     policy,
		SessionSecret:   c.SessionSecret,
		SecureCookies:   c.SecureCookies,
		ClientStateIdle: c.ClientStateIdle,
		RateLimit:       c.RateLimit,
		RateWindow:      c.RateWindow,
		CacheTTL:        c.CacheTTL,
		CORSOrigins:     c.CORSOrigins,
	}
}
