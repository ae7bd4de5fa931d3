package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration shared by the api, worker and consumer processes.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	Port            string        `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`

	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD"`
	DBName        string `envconfig:"DB_NAME" default:"hr_backoffice"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBSSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxRetries  int    `envconfig:"DB_MAX_RETRIES" default:"5"`
	DBAutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	RedisAddr       string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	HolidayCacheTTL time.Duration `envconfig:"HOLIDAY_CACHE_TTL" default:"24h"`

	KafkaBroker        string        `envconfig:"KAFKA_BROKER"`
	KafkaConsumerGroup string        `envconfig:"KAFKA_CONSUMER_GROUP" default:"hr-backoffice-holiday-cache"`
	OutboxPollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`

	JWTSecret string `envconfig:"JWT_SECRET"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`

	// ApproverRoles may decide leave and attendance requests.
	ApproverRoles  []string      `envconfig:"APPROVER_ROLES" default:"MANAGER,HR_ADMIN"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// RequireHTTP checks the settings only the api process needs.
func (c *Config) RequireHTTP() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// RequireKafka checks the settings the worker and consumer need.
func (c *Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
