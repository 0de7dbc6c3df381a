package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/blockset"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/commitment"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/exclusion"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/plangroup"
	reschedulerepo "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/reschedule"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/studyplan-backend/internal/auth"
	"github.com/heartmarshall/studyplan-backend/internal/config"
	"github.com/heartmarshall/studyplan-backend/internal/service/calendar"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/delay"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/inputs"
	"github.com/heartmarshall/studyplan-backend/internal/service/reschedule"
	"github.com/heartmarshall/studyplan-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyplan-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, recovers jobs orphaned by a previous process and serves HTTP
// until ctx is cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	server := NewServer(*cfg, logger, pool)

	if _, err := server.Reschedule.RecoverStale(ctx); err != nil {
		return fmt.Errorf("recover stale reschedule jobs: %w", err)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      server.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	if err := server.Close(shutdownCtx); err != nil {
		logger.Error("reschedule jobs did not finish", slog.String("error", err.Error()))
	}

	logger.Info("stopped")
	return nil
}

// Server is the wired application: the HTTP handler and the background
// reschedule runner behind it.
type Server struct {
	Handler    http.Handler
	Reschedule *reschedule.Service

	limiter *middleware.RateLimiter
}

// NewServer builds repositories, services and handlers on top of pool.
func NewServer(cfg config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Server {
	txm := postgres.NewTxManager(pool)

	groupRepo := plangroup.New(pool)
	contentRepo := content.New(pool)
	sessionRepo := session.New(pool)
	blockSetRepo := blockset.New(pool)
	exclusionRepo := exclusion.New(pool)
	commitmentRepo := commitment.New(pool)
	settingsRepo := settings.New(pool)
	jobRepo := reschedulerepo.New(pool)
	auditRepo := audit.New(pool)

	loader := inputs.NewLoader(contentRepo, settingsRepo, exclusionRepo, commitmentRepo, blockSetRepo, inputs.Options{
		ReviewPercent:    cfg.Scheduler.ReviewMinutesPercent,
		MinReviewMinutes: cfg.Scheduler.MinReviewMinutes,
	})

	planSvc := plan.NewService(logger, groupRepo, contentRepo, sessionRepo, blockSetRepo, jobRepo, loader, auditRepo, txm,
		delay.Thresholds{
			Low:    cfg.Delay.LowThreshold,
			Medium: cfg.Delay.MediumThreshold,
			High:   cfg.Delay.HighThreshold,
		})
	calendarSvc := calendar.NewService(logger, exclusionRepo, commitmentRepo, blockSetRepo, txm)
	rescheduleSvc := reschedule.NewService(logger, groupRepo, sessionRepo, jobRepo, loader, auditRepo, txm, reschedule.Options{
		MaxConcurrentJobs: cfg.Reschedule.MaxConcurrentJobs,
		JobTimeout:        cfg.Reschedule.JobTimeout,
		StaleJobAfter:     cfg.Reschedule.StaleJobAfter,
	})

	limiter := middleware.NewRateLimiter(time.Minute)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	handler := NewRouter(logger, Handlers{
		Health:     rest.NewHealthHandler(pool, rescheduleSvc, BuildVersion()),
		Calendar:   rest.NewCalendarHandler(calendarSvc, logger),
		Plan:       rest.NewPlanHandler(planSvc, logger),
		Reschedule: rest.NewRescheduleHandler(rescheduleSvc, logger),
	}, middleware.Auth(verifier), limiter.Limit(cfg.Reschedule.SubmitsPerMinute))

	return &Server{Handler: handler, Reschedule: rescheduleSvc, limiter: limiter}
}

// Close stops accepting reschedule jobs and waits for running ones until ctx
// ends.
func (s *Server) Close(ctx context.Context) error {
	s.limiter.Stop()
	return s.Reschedule.Shutdown(ctx)
}
