package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azkar-labs/azkar-bot/internal/ai"
	"github.com/azkar-labs/azkar-bot/internal/bot"
	"github.com/azkar-labs/azkar-bot/internal/database"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/health"
	"github.com/azkar-labs/azkar-bot/internal/menu"
	"github.com/azkar-labs/azkar-bot/internal/provider"
	"github.com/azkar-labs/azkar-bot/internal/ratelimit"
	"github.com/azkar-labs/azkar-bot/internal/repository"
	"github.com/azkar-labs/azkar-bot/internal/scheduler"
	"github.com/azkar-labs/azkar-bot/internal/settings"
	"github.com/azkar-labs/azkar-bot/internal/state"
	"github.com/azkar-labs/azkar-bot/pkg/config"
	"github.com/azkar-labs/azkar-bot/pkg/graceful"
	"github.com/azkar-labs/azkar-bot/pkg/logger"
	"github.com/azkar-labs/azkar-bot/pkg/metrics"
	redisclient "github.com/azkar-labs/azkar-bot/pkg/redis"
)

const (
	migrationsDir       = "migrations"
	dialogTTL           = time.Hour
	dialogSweepInterval = 10 * time.Minute
	shutdownTimeout     = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, v, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Sentry.Enabled() {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			slog.Error("failed to initialize sentry", slog.Any("error", err))
			os.Exit(1)
		}
		defer sentry.Flush(2 * time.Second)
	}

	log := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		Format:        cfg.Log.Format,
		File:          cfg.Log.File,
		MaxSizeMB:     cfg.Log.MaxSizeMB,
		MaxBackups:    cfg.Log.MaxBackups,
		MaxAgeDays:    cfg.Log.MaxAgeDays,
		SentryEnabled: cfg.Sentry.Enabled(),
	})
	slog.SetDefault(log)

	log.Info("starting azkar bot",
		slog.String("env", cfg.AppEnv),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("http_port", cfg.HTTP.Port),
	)

	config.Watch(v, log, func(next config.Config) {
		log.Info("configuration reloaded", slog.String("log_level", next.Log.Level))
	})

	checker := health.NewChecker(log)

	var (
		store       settings.Store
		redisClient *redisclient.Client
		db          *sql.DB
	)

	switch cfg.Storage.Driver {
	case "redis":
		redisClient, err = redisclient.New(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() { _ = redisClient.Close() }()

		store = settings.NewRedisStore(redisClient.Client)
		checker.AddCheck("redis", health.NewRedisChecker(redisClient.Client))

	case "postgres":
		db, err = database.Connect(ctx, cfg.Postgres.DSN())
		if err != nil {
			log.Error("failed to connect to postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()

		if err := database.NewMigrator(db, log).ApplyDir(ctx, migrationsDir); err != nil {
			log.Error("failed to apply migrations", slog.Any("error", err))
			os.Exit(1)
		}

		store = repository.NewSettingsRepository(db, log)
		checker.AddCheck("postgres", health.NewDBChecker(db))

	default:
		store = settings.NewMemoryStore()
	}

	fsm := newStateMachine(ctx, redisClient, log)

	prov := provider.NewHTTPProvider(cfg.Provider.Sources, cfg.Provider.Timeout)
	protocol := menu.NewProtocol(store, log)
	responder := ai.NewResponder()

	var limiter ratelimit.Limiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisLimiter(redisClient.Client, log)
	} else {
		limiter = ratelimit.NewMemoryLimiter()
	}

	b, err := bot.New(*cfg, log, store, fsm, protocol, responder, limiter)
	if err != nil {
		log.Error("failed to initialize bot", slog.Any("error", err))
		os.Exit(1)
	}

	errHandler := apperrors.NewHandler(log, cfg.Sentry.Enabled())
	sched := scheduler.New(store, prov, nil, b.Sender(), errHandler, log, scheduler.Config{
		SendTimeout: cfg.Scheduler.SendTimeout,
	})
	if err := sched.Run(); err != nil {
		log.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	checker.AddCheck("telegram", health.NewTelegramChecker(b.Telebot()))
	checker.AddCheck("content_source", health.NewProviderChecker(cfg.Provider.Sources.Morning, cfg.Provider.Timeout))

	go metrics.NewGroupCollector(store).Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", checker.Handler())

	srv := graceful.NewServer(log, &http.Server{
		Addr:              cfg.HTTP.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}, shutdownTimeout)

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil {
			log.Error("http server stopped with error", slog.Any("error", err))
		}
	}()

	go b.Start()

	<-ctx.Done()

	log.Info("shutting down azkar bot")
	b.Stop()
	sched.Shutdown()
}

// newStateMachine wires the dialog FSM over Redis when available, falling
// back to process-local storage.
func newStateMachine(ctx context.Context, redisClient *redisclient.Client, log *slog.Logger) state.StateMachine {
	if redisClient == nil {
		return state.NewStateMachine(state.NewMemoryStorage(), log, nil)
	}

	storage := state.NewRedisStorage(redisClient.Client, log)
	cleaner := state.NewCleaner(redisClient.Client, storage, log, dialogTTL, dialogSweepInterval)
	go cleaner.Run(ctx)

	return state.NewStateMachine(storage, log, redisClient.Client)
}
