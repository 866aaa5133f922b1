package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/ledgerkeep/ledgerkeep/internal/adapter/http"
	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/handler"
	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/middleware"
	postgresRepo "github.com/ledgerkeep/ledgerkeep/internal/adapter/repository/postgres"
	redisRepo "github.com/ledgerkeep/ledgerkeep/internal/adapter/repository/redis"
	"github.com/ledgerkeep/ledgerkeep/internal/backup"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/config"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/eventpublisher"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/logger"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/metrics"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/postgres"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/redis"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

const outboxRetention = 7 * 24 * time.Hour

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	bookRepo := postgresRepo.NewBookRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	recordRepo := postgresRepo.NewRecordRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	debtRepo := postgresRepo.NewDebtRepository(pool)
	goalRepo := postgresRepo.NewGoalRepository(pool)
	ruleRepo := postgresRepo.NewRuleRepository(pool)
	templateRepo := postgresRepo.NewTemplateRepository(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	snapshotRepo := postgresRepo.NewSnapshotRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Use cases
	recordUC := usecase.NewRecordUseCase(
		txManager, recordRepo, entryRepo, accountRepo,
		goalRepo, bookRepo, categoryRepo, outboxRepo,
		idGen, m,
	)
	bookUC := usecase.NewBookUseCase(bookRepo, idGen)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, entryRepo, idGen)
	debtUC := usecase.NewDebtUseCase(txManager, debtRepo, bookRepo, outboxRepo, recordUC, idGen)
	goalUC := usecase.NewGoalUseCase(txManager, goalRepo, outboxRepo, idGen)
	recurringUC := usecase.NewRecurringUseCase(txManager, ruleRepo, recordUC, idGen)
	templateUC := usecase.NewTemplateUseCase(templateRepo, recordUC, idGen)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	archiveUC := usecase.NewArchiveUseCase(txManager, recordRepo, bookRepo, outboxRepo, idGen, m)
	insightUC := usecase.NewInsightUseCase(recordRepo, categoryRepo, settingsRepo, bookRepo, cache)
	snapshotUC := usecase.NewSnapshotUseCase(txManager, snapshotRepo, outboxRepo, idGen)
	importUC := usecase.NewBillImportUseCase(txManager, recordUC, usecase.NewKeywordMatcher(categoryRepo))

	transport, err := newBackupTransport(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid backup configuration")
	}
	backupUC := usecase.NewBackupUseCase(snapshotUC, transport)

	// Outbox publisher
	sink, closeSink, err := newEventSink(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to event broker")
	}
	defer closeSink()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  sink,
		BatchSize:  cfg.OutboxBatch,
		Interval:   cfg.OutboxInterval,
	})

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		RecordHandler:    handler.NewRecordHandler(recordUC),
		BookHandler:      handler.NewBookHandler(bookUC),
		CategoryHandler:  handler.NewCategoryHandler(categoryUC),
		AccountHandler:   handler.NewAccountHandler(accountUC),
		DebtHandler:      handler.NewDebtHandler(debtUC),
		GoalHandler:      handler.NewGoalHandler(goalUC),
		RuleHandler:      handler.NewRuleHandler(recurringUC),
		TemplateHandler:  handler.NewTemplateHandler(templateUC),
		SettingsHandler:  handler.NewSettingsHandler(settingsUC),
		ArchiveHandler:   handler.NewArchiveHandler(archiveUC),
		InsightHandler:   handler.NewInsightHandler(insightUC),
		SnapshotHandler:  handler.NewSnapshotHandler(snapshotUC, backupUC),
		ImportHandler:    handler.NewImportHandler(importUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Logging:          middleware.NewLoggingMiddleware(log.Logger),
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		IdempotencyStore: idempotencyStore,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info().Msg("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := publisher.Start(gctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	})

	// Fire any recurring rules that came due while the process was down,
	// then keep checking once a day.
	g.Go(func() error {
		fire := func() {
			n, err := recurringUC.CheckAndTrigger(gctx, time.Now().UTC())
			if err != nil {
				log.Error().Err(err).Msg("recurring trigger failed")
			}
			if n > 0 {
				log.Info().Int("count", n).Msg("recurring rules fired")
			}
		}

		fire()
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				fire()
			}
		}
	})

	// Prune delivered outbox rows so the table stays small.
	g.Go(func() error {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := outboxRepo.DeletePublished(gctx, time.Now().Add(-outboxRetention)); err != nil {
					log.Error().Err(err).Msg("outbox cleanup failed")
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}

	log.Info().Msg("server stopped")
}

// newBackupTransport builds the WebDAV transport, or a disabled stand-in
// when no remote is configured.
func newBackupTransport(cfg *config.Config) (usecase.BackupTransport, error) {
	if cfg.BackupURL == "" {
		return backup.NewDisabledTransport(), nil
	}

	return backup.NewClient(backup.Config{
		URL:      cfg.BackupURL,
		Username: cfg.BackupUsername,
		Password: cfg.BackupPassword,
		Timeout:  cfg.BackupTimeout,
	})
}

// newEventSink picks the outbox destination: RabbitMQ when a broker URL is
// configured, the log otherwise.
func newEventSink(cfg *config.Config) (eventpublisher.Publisher, func(), error) {
	if cfg.AMQPURL == "" {
		return eventpublisher.NewLogPublisher(nil), func() {}, nil
	}

	pub, err := eventpublisher.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, err
	}
	return pub, func() { pub.Close() }, nil
}
