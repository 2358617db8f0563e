package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"github.com/prior-it/customers/config"
	"github.com/prior-it/customers/handlers"
	"github.com/prior-it/customers/metrics"
	"github.com/prior-it/customers/postgres"
	"github.com/prior-it/customers/seed"
	"github.com/prior-it/customers/server"
	"github.com/prior-it/customers/state"
)

// Full creates a new server and initializes all default systems: logging, Sentry (if enabled in
// config), the store, metrics and all routes.
//
// Without a configured database URL the server runs on an in-memory store.
//
// Note that this function will add routes before returning, which means it is not possible to add
// additional global middleware after calling this function.
func Full(ctx context.Context, cfg *config.Config) (*server.Server[*state.State], error) {
	if cfg == nil {
		panic("You need to supply a config.Config value to bootstrap a new server")
	}

	logger := createLogger(cfg, os.Stdout)

	// Initialize Sentry
	if cfg.Sentry.Enabled {
		initSentry(logger, cfg)
	}

	stt, err := createState(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Seed.Enabled {
		added, err := seed.Load(ctx, stt.Repository())
		if err != nil {
			stt.Close(ctx)
			return nil, fmt.Errorf("cannot seed the store: %w", err)
		}
		logger.Info("Seed data loaded", "customers", added)
	}

	s := server.New(stt, cfg).
		WithLogger(logger)
	s.AttachDefaultMiddleware()
	s.UseStd(stt.Metrics.Middleware)

	// Enable sentry middleware
	if cfg.Sentry.Enabled {
		sentryHandler := sentryhttp.New(sentryhttp.Options{
			Repanic:         true,
			WaitForDelivery: true,
			Timeout:         5 * time.Second, //nolint:mnd
		})
		s.UseStd(sentryHandler.Handle)
	}

	// Fully disable caching in debug mode
	if cfg.App.Debug {
		s.UseStd(middleware.NoCache)
	}

	handlers.RegisterOperational(s, stt)
	handlers.Register(s)

	return s, nil
}

func createState(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*state.State, error) {
	m := metrics.New()
	if !cfg.UsesDatabase() {
		logger.Warn("No DATABASE_URL configured, customers are kept in memory and lost on shutdown")
		return state.NewInMemory(m, logger), nil
	}

	// Connect to the database
	db, err := postgres.NewDB(ctx, postgres.Options{
		URL:      cfg.Database.URL,
		Schema:   cfg.Database.Schema,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not migrate database: %w", err)
	}
	return state.New(db, m, logger), nil
}

func createLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var logger *slog.Logger
	addSource := cfg.Log.Verbose && cfg.App.Debug
	switch cfg.Log.Format {
	case config.LogFormatPlaintext:
		logger = slog.New(tint.NewHandler(w, &tint.Options{
			Level:      cfg.Log.Level.ToSlog(),
			AddSource:  addSource,
			TimeFormat: time.TimeOnly,
		}))
	default:
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     cfg.Log.Level.ToSlog(),
			AddSource: addSource,
		}))
	}
	slog.SetDefault(logger)
	return logger
}

func initSentry(logger *slog.Logger, cfg *config.Config) {
	logger.Debug("Trying to initialise Sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Debug:            cfg.App.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.Sentry.SampleRate,
		EnableTracing:    cfg.Sentry.TracesRate > 0,
		TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
			if ctx.Span.Name == "GET /ping" || ctx.Span.Name == "GET /metrics" {
				return 0.0
			}
			return cfg.Sentry.TracesRate
		}),
		ServerName:  cfg.App.Name,
		Release:     cfg.App.Version,
		Environment: string(cfg.App.Env),
	}); err != nil {
		logger.Error("Sentry initialization failed", "error", err)
	} else {
		logger.Debug("Sentry initialised")
	}
}
