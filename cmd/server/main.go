// Package main is the entry point for attrd. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/attrd/internal/adapters/http"
	"github.com/jsamuelsen11/attrd/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/attrd/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/attrd/internal/adapters/store/memory"

	"github.com/jsamuelsen11/attrd/internal/app"
	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/platform/config"
	"github.com/jsamuelsen11/attrd/internal/platform/health"
	"github.com/jsamuelsen11/attrd/internal/platform/logging"
	"github.com/jsamuelsen11/attrd/internal/platform/telemetry"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, cfg.Log.RedactFields...)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memory.Store](injector))
	registry.Register(do.MustInvoke[*app.ZoneReadiness](injector))

	catalog := do.MustInvoke[*attr.Catalog](injector)
	engine := do.MustInvoke[*coerce.Engine](injector)
	logger.Info("coercion engine ready",
		slog.Int("schemas", len(catalog.Schemas())),
		slog.String("currency", engine.Currency()),
		slog.Bool("time_zone", engine.HasZone()),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// newEngine builds the coercion engine from the coercion section. The zone
// is only set when one is configured.
func newEngine(cfg config.CoercionConfig) (*coerce.Engine, error) {
	opts := []coerce.Option{coerce.WithCurrency(cfg.Currency)}
	if cfg.TimeZone != "" {
		zone, err := coerce.LoadZone(cfg.TimeZone)
		if err != nil {
			return nil, err
		}
		opts = append(opts, coerce.WithZone(zone))
	}
	return coerce.NewEngine(opts...)
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*coerce.Engine, error) {
		return newEngine(cfg.Coercion)
	})

	do.Provide(injector, func(i do.Injector) (*attr.Catalog, error) {
		engine := do.MustInvoke[*coerce.Engine](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		binder := attr.NewBinder(engine,
			attr.WithLogger(logger),
			attr.WithRecorder(metrics),
		)
		return attr.NewCatalog(binder, cfg.Schemas)
	})

	do.Provide(injector, func(_ do.Injector) (*memory.Store, error) {
		return memory.New(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SchemaService, error) {
		catalog := do.MustInvoke[*attr.Catalog](i)
		return app.NewSchemaService(catalog, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RecordService, error) {
		catalog := do.MustInvoke[*attr.Catalog](i)
		store := do.MustInvoke[*memory.Store](i)
		return app.NewRecordService(catalog, store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CoercionService, error) {
		engine := do.MustInvoke[*coerce.Engine](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCoercionService(engine, logger,
			app.WithWorkers(cfg.Coercion.Workers),
			app.WithMaxBatch(cfg.Coercion.MaxBatch),
			app.WithCoercionRecorder(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ZoneReadiness, error) {
		catalog := do.MustInvoke[*attr.Catalog](i)
		engine := do.MustInvoke[*coerce.Engine](i)
		return app.NewZoneReadiness(catalog, engine), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Schema: handlers.NewSchemaHandler(do.MustInvoke[ports.SchemaService](i)),
			Record: handlers.NewRecordHandler(do.MustInvoke[ports.RecordService](i)),
			Coerce: handlers.NewCoerceHandler(do.MustInvoke[ports.CoercionService](i)),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
