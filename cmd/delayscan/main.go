// Command delayscan checks every active plan group for delay and logs the
// ones at medium severity or worse. It is intended to be invoked by an
// external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/plangroup"
	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studyplan-backend/internal/app"
	"github.com/heartmarshall/studyplan-backend/internal/config"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/delay"
)

const (
	pageSize    = 200
	concurrency = 8
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	th := delay.Thresholds{
		Low:    cfg.Delay.LowThreshold,
		Medium: cfg.Delay.MediumThreshold,
		High:   cfg.Delay.HighThreshold,
	}

	sc := scanner{
		log:      logger,
		groups:   plangroup.New(pool),
		sessions: session.New(pool),
		th:       th,
		pageSize: pageSize,
	}
	scanned, flagged, err := sc.run(ctx, domain.DateOf(time.Now().UTC()))
	if err != nil {
		logger.Error("delay scan failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("delay scan completed",
		slog.Int("scanned", scanned),
		slog.Int("flagged", flagged),
	)
}

type groupLister interface {
	List(ctx context.Context, filter domain.PlanGroupFilter) ([]domain.PlanGroup, int, error)
}

type sessionLister interface {
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error)
}

type scanner struct {
	log      *slog.Logger
	groups   groupLister
	sessions sessionLister
	th       delay.Thresholds
	pageSize int
}

// run pages through active plan groups and returns how many were checked
// and how many were at medium severity or worse.
func (s scanner) run(ctx context.Context, today domain.Date) (int, int, error) {
	var (
		scanned int
		flagged atomic.Int64
	)

	for offset := 0; ; offset += s.pageSize {
		page, total, err := s.groups.List(ctx, domain.PlanGroupFilter{
			Statuses: []domain.PlanStatus{domain.PlanStatusActive},
			Limit:    s.pageSize,
			Offset:   offset,
		})
		if err != nil {
			return scanned, int(flagged.Load()), fmt.Errorf("list active plan groups: %w", err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i := range page {
			group := &page[i]
			g.Go(func() error {
				delayed, err := s.check(gctx, group, today)
				if err != nil {
					return err
				}
				if delayed {
					flagged.Add(1)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return scanned, int(flagged.Load()), err
		}

		scanned += len(page)
		if len(page) < s.pageSize || offset+s.pageSize >= total {
			return scanned, int(flagged.Load()), nil
		}
	}
}

func (s scanner) check(ctx context.Context, group *domain.PlanGroup, today domain.Date) (bool, error) {
	list, err := s.sessions.List(ctx, domain.SessionFilter{PlanGroupID: group.ID})
	if err != nil {
		return false, fmt.Errorf("list sessions of %s: %w", group.ID, err)
	}

	report := delay.Detect(group.ID, list, delay.TrackedPeriod(group, list, today), today, s.th)
	if !report.Severity.AtLeast(domain.DelaySeverityMedium) {
		return false, nil
	}
	s.log.WarnContext(ctx, "plan group delayed",
		slog.String("plan_group_id", group.ID.String()),
		slog.String("student_id", group.StudentID.String()),
		slog.String("severity", report.Severity.String()),
		slog.Float64("completion_rate", report.CompletionRate),
		slog.Int("delayed_days", report.DelayedDays),
	)
	return true, nil
}
