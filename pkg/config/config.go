package config

import (
	"fmt"
	"time"

	"github.com/azkar-labs/azkar-bot/internal/provider"
	redisclient "github.com/azkar-labs/azkar-bot/pkg/redis"
)

// Config holds the full runtime configuration for the azkar bot.
type Config struct {
	AppEnv string

	Log       LogConfig          `mapstructure:"log"`
	Bot       BotConfig          `mapstructure:"bot"`
	HTTP      HTTPConfig         `mapstructure:"http"`
	Storage   StorageConfig      `mapstructure:"storage"`
	Redis     redisclient.Config `mapstructure:"redis"`
	Postgres  PostgresConfig     `mapstructure:"postgres"`
	Scheduler SchedulerConfig    `mapstructure:"scheduler"`
	Provider  ProviderConfig     `mapstructure:"provider"`
	Sentry    SentryConfig       `mapstructure:"sentry"`
}

// LogConfig controls log level, format and the optional rotating file sink.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`

	// File enables a rotating log file next to stdout when non-empty.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// BotConfig carries the bot token and polling settings.
type BotConfig struct {
	Token           string        `mapstructure:"token" validate:"required"`
	LongPollTimeout time.Duration `mapstructure:"long_poll_timeout"`
}

// HTTPConfig configures the metrics/health HTTP server.
type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

// StorageConfig selects the settings store backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory redis postgres"`
}

// PostgresConfig configures the Postgres settings repository.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// SchedulerConfig carries sweep tuning knobs.
type SchedulerConfig struct {
	// SendTimeout bounds the work done for one group within a tick.
	SendTimeout time.Duration `mapstructure:"send_timeout"`
}

// ProviderConfig configures the reminder content source.
type ProviderConfig struct {
	Timeout time.Duration    `mapstructure:"timeout"`
	Sources provider.Sources `mapstructure:"sources"`
}

// SentryConfig enables error reporting when a DSN is set.
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

// Enabled reports whether Sentry reporting is configured.
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}
