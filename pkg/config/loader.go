// Package config provides configuration loading and validation utilities.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/azkar-labs/azkar-bot/internal/provider"
)

// Load reads configuration from YAML files and environment variables,
// validates it, and returns the resulting Config. Environment variables
// override file values (e.g. BOT_TOKEN overrides bot.token).
func Load() (*Config, *viper.Viper, error) {
	// Missing local env files are fine in containerized deployments.
	_ = godotenv.Load(".env.local", ".env")

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	v := viper.New()
	v.SetConfigFile(fmt.Sprintf("./configs/%s.yaml", env))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.AppEnv = env

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, v, nil
}

// Watch re-reads the config file on change and invokes onChange with the
// fresh snapshot. Invalid snapshots are logged and dropped; the previous
// configuration stays in effect.
func Watch(v *viper.Viper, log *slog.Logger, onChange func(Config)) {
	if log == nil {
		log = slog.Default()
	}

	v.OnConfigChange(func(event fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			log.Error("config reload failed", "file", event.Name, "error", err)
			return
		}

		validate := validator.New(validator.WithRequiredStructEnabled())
		if err := validate.Struct(cfg); err != nil {
			log.Error("config reload rejected", "file", event.Name, "error", err)
			return
		}

		log.Info("config reloaded", "file", event.Name)
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)

	v.SetDefault("bot.long_poll_timeout", "10s")
	v.SetDefault("http.port", ":8080")
	v.SetDefault("storage.driver", "memory")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("scheduler.send_timeout", "30s")
	v.SetDefault("provider.timeout", "10s")

	sources := provider.DefaultSources()
	v.SetDefault("provider.sources.morning", sources.Morning)
	v.SetDefault("provider.sources.evening", sources.Evening)
	v.SetDefault("provider.sources.post_prayer", sources.PostPrayer)
	v.SetDefault("provider.sources.general", sources.General)
}
