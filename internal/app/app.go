// Package app assembles the application: configuration, logging, database,
// adapters, services, and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/internhub/intake-backend/internal/adapter/notifier"
	"github.com/internhub/intake-backend/internal/adapter/postgres"
	assignmentrepo "github.com/internhub/intake-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/internhub/intake-backend/internal/adapter/postgres/audit"
	batchrepo "github.com/internhub/intake-backend/internal/adapter/postgres/batch"
	candidaterepo "github.com/internhub/intake-backend/internal/adapter/postgres/candidate"
	reportrepo "github.com/internhub/intake-backend/internal/adapter/postgres/report"
	requestrepo "github.com/internhub/intake-backend/internal/adapter/postgres/request"
	staffrepo "github.com/internhub/intake-backend/internal/adapter/postgres/staff"
	"github.com/internhub/intake-backend/internal/config"
	"github.com/internhub/intake-backend/internal/service/allocation"
	"github.com/internhub/intake-backend/internal/service/approval"
	"github.com/internhub/intake-backend/internal/service/forwarding"
	"github.com/internhub/intake-backend/internal/service/report"
	"github.com/internhub/intake-backend/internal/transport/middleware"
	"github.com/internhub/intake-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	candidates := candidaterepo.New(pool)
	requests := requestrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	batches := batchrepo.New(pool)
	staff := staffrepo.New(pool)
	audit := auditrepo.New(pool)
	reports := reportrepo.New(pool)

	senders := []notifier.Sender{notifier.NewLogSender(logger)}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		senders = append(senders, notifier.NewRedisSender(rdb))
		logger.Info("redis notification channel enabled", slog.String("addr", cfg.Redis.Addr))
	}
	dispatcher := notifier.NewDispatcher(logger, cfg.Workflow.NotifyTimeout, senders...)
	defer dispatcher.Close()

	allocationSvc := allocation.NewService(
		logger, staff, assignments, requests, audit, dispatcher, txm,
		allocation.Capacities{
			Senior:  cfg.Workflow.SeniorMentorCapacity,
			Regular: cfg.Workflow.RegularMentorCapacity,
		},
	)
	approvalSvc := approval.NewService(
		logger, candidates, requests, assignments, staff, allocationSvc,
		audit, dispatcher, txm,
	)
	forwardingSvc := forwarding.NewService(
		logger, batches, requests, staff, audit, dispatcher, txm,
		cfg.Workflow.MaxBatchSize,
	)
	reportSvc := report.NewService(
		logger, reports, assignments, requests, audit, dispatcher, txm,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := rest.NewRouter(rest.RouterDeps{
		Log:        logger,
		CORS:       cfg.CORS,
		RateLimit:  cfg.RateLimit,
		Limiter:    limiter,
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Approval:   rest.NewApprovalHandler(approvalSvc, logger),
		Forwarding: rest.NewForwardingHandler(forwardingSvc, logger),
		Allocation: rest.NewAllocationHandler(allocationSvc, logger),
		Reports:    rest.NewReportHandler(reportSvc, logger),
		Audit:      rest.NewAuditHandler(audit, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
