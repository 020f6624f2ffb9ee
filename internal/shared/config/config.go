package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds every runtime setting of the invoice marketplace, read from the environment
type Config struct {
	AppEnv         string        `envconfig:"APP_ENV" default:"development"`
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":9000"`
	SweepInterval  time.Duration `envconfig:"SWEEP_INTERVAL" default:"2s"`
	BidSpread      string        `envconfig:"BID_SPREAD" default:"20"`
	EventBuffer    int           `envconfig:"EVENT_BUFFER" default:"256"` // pending events before the dispatcher warns
	JournalEnabled bool          `envconfig:"JOURNAL_ENABLED" default:"false"`
	MigrationsPath string        `envconfig:"MIGRATIONS_PATH" default:"file://internal/shared/db/migrations/sql"`
	DB             DBConfig
}

// DBConfig keeps the same variables the postgres DSN was always built from
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" default:"invoice_auction"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// DSN builds the postgres connection url
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Load reads .env if present and then the process environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: failed to process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Spread returns BID_SPREAD parsed as a decimal
func (c *Config) Spread() decimal.Decimal {
	// validate already rejected unparsable values
	d, _ := decimal.NewFromString(c.BidSpread)
	return d
}

func (c *Config) validate() error {
	if c.SweepInterval <= 0 {
		return fmt.Errorf("config: SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	spread, err := decimal.NewFromString(c.BidSpread)
	if err != nil {
		return fmt.Errorf("config: BID_SPREAD is not a number: %w", err)
	}
	if spread.IsNegative() {
		return fmt.Errorf("config: BID_SPREAD cannot be negative, got %s", c.BidSpread)
	}
	if c.EventBuffer <= 0 {
		return fmt.Errorf("config: EVENT_BUFFER must be positive, got %d", c.EventBuffer)
	}
	return nil
}
