package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/dwh/internal/adapter/http"
	"github.com/iho/dwh/internal/adapter/http/handler"
	"github.com/iho/dwh/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/dwh/internal/adapter/repository/postgres"
	"github.com/iho/dwh/internal/adapter/repository/primary"
	redisRepo "github.com/iho/dwh/internal/adapter/repository/redis"
	"github.com/iho/dwh/internal/adapter/repository/secondary"
	"github.com/iho/dwh/internal/infrastructure/config"
	"github.com/iho/dwh/internal/infrastructure/logger"
	"github.com/iho/dwh/internal/infrastructure/metrics"
	"github.com/iho/dwh/internal/infrastructure/postgres"
	"github.com/iho/dwh/internal/infrastructure/redis"
	"github.com/iho/dwh/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Primary ledger storage
	var readerOpts []primary.Option
	if cfg.AssumeDenseEvents {
		readerOpts = append(readerOpts, primary.WithDenseEventIDs())
	}
	reader := primary.NewReader(cfg.PrimaryStoragePath, readerOpts...)
	if err := reader.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("path", cfg.PrimaryStoragePath).Msg("primary storage not reachable yet")
	}

	// Secondary materialized view
	store := secondary.NewStore(cfg.SecondaryStoragePath)
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load secondary storage")
	}

	// Optional Postgres balance mirror
	var exporter usecase.BalanceExporter
	if cfg.PostgresURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(cfg.PostgresURL, log); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		exporter = postgresRepo.NewBalanceExporter(pool)
		log.Info().Msg("balance mirror enabled")
	}

	// Optional Redis run lock
	var lock *redisRepo.RunLock
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		lock = redisRepo.NewRunLock(redisClient, 2*cfg.SyncInterval)
		log.Info().Msg("run lock enabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	var pusher *metrics.Pusher
	if cfg.MetricsURL != "" {
		pusher = metrics.NewPusher(cfg.MetricsURL, registry)
	}

	syncUC := usecase.NewSyncUseCase(reader, store, exporter, log)
	queryUC := usecase.NewQueryUseCase(store)

	runner := &syncRunner{
		sync:    syncUC,
		lock:    lock,
		metrics: m,
		pusher:  pusher,
		log:     log,
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		HealthHandler:     handler.NewHealthHandler(reader),
		QueryHandler:      handler.NewQueryHandler(queryUC),
		SyncHandler:       handler.NewSyncHandler(runner),
		Metrics:           m,
		Gatherer:          registry,
		LoggingMiddleware: middleware.NewLoggingMiddleware(log),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Periodic sync
	stopSync := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()

		if _, err := runner.Run(ctx); err != nil {
			log.Error().Err(err).Msg("sync run failed")
		}
		for {
			select {
			case <-ticker.C:
				if _, err := runner.Run(ctx); err != nil {
					log.Error().Err(err).Msg("sync run failed")
				}
			case <-stopSync:
				return
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	close(stopSync)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// syncRunner wraps the sync use case with cross-process locking and metric
// recording. It satisfies handler.SyncService.
type syncRunner struct {
	sync    *usecase.SyncUseCase
	lock    *redisRepo.RunLock
	metrics *metrics.Metrics
	pusher  *metrics.Pusher
	log     zerolog.Logger
}

func (r *syncRunner) Run(ctx context.Context) (*usecase.RunReport, error) {
	if r.lock != nil {
		holder := ulid.Make().String()
		ok, err := r.lock.Acquire(ctx, holder)
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		if !ok {
			return nil, errors.New("another sync run is in progress")
		}
		defer func() {
			if err := r.lock.Release(ctx, holder); err != nil {
				r.log.Warn().Err(err).Msg("failed to release run lock")
			}
		}()
	}

	report, err := r.sync.Run(ctx)
	r.metrics.RecordRun(runStats(report), err)

	if r.pusher != nil {
		if pushErr := r.pusher.Push(ctx); pushErr != nil {
			r.log.Warn().Err(pushErr).Msg("failed to push metrics")
		}
	}

	return report, err
}

// runStats flattens a run report into the plain counts the metrics package
// accepts.
func runStats(report *usecase.RunReport) *metrics.RunStats {
	if report == nil {
		return nil
	}
	return &metrics.RunStats{
		Tenants:        report.Tenants,
		Accounts:       report.Accounts,
		FailedAccounts: report.FailedAccounts,
		Events:         report.Events,
		StartedAt:      report.StartedAt,
		Duration:       report.Duration,
	}
}
