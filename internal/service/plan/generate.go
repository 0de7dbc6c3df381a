package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/allocator"
)

// GenerateResult summarizes a plan generation.
type GenerateResult struct {
	Period        domain.DateRange `json:"period"`
	AvailableDays int              `json:"available_days"`
	SessionCount  int              `json:"session_count"`
	ReplacedCount int              `json:"replaced_count"`
	Warnings      []string         `json:"warnings"`
}

// GeneratePlan allocates the group's contents over its available dates and
// replaces all existing sessions in one transaction. The transaction holds
// the group row lock, the same lock a reschedule job takes, and refuses to
// run while a job for the group is pending or processing. A group planned
// toward a target date records the first planned day as its period start.
func (s *Service) GeneratePlan(ctx context.Context, planGroupID uuid.UUID) (*GenerateResult, error) {
	g, studentID, err := s.owned(ctx, planGroupID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireCapability(g.Status, domain.ActionEdit); err != nil {
		return nil, err
	}
	if err := domain.RequireCapability(g.Status, domain.ActionModifyExclusion); err != nil {
		return nil, err
	}

	period := g.PlanningPeriod(s.today())
	if period.End.Before(period.Start) {
		return nil, domain.NewValidationError("period", "target date is in the past")
	}

	bundle, err := s.loader.Load(ctx, g, period)
	if err != nil {
		return nil, fmt.Errorf("load plan inputs: %w", err)
	}
	if len(bundle.Items) == 0 {
		return nil, domain.NewValidationError("contents", "at least one content item is required")
	}

	dates := bundle.Dates()
	if len(dates) == 0 {
		return nil, domain.NewValidationError("period", "no available dates in period")
	}

	res, err := allocator.Allocate(bundle.Request(bundle.Items, dates, bundle.Settings))
	if err != nil {
		return nil, err
	}

	var replaced int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.groups.GetForUpdate(txCtx, g.ID)
		if err != nil {
			return fmt.Errorf("lock plan group: %w", err)
		}
		if err := domain.RequireCapability(locked.Status, domain.ActionEdit); err != nil {
			return err
		}
		busy, err := s.jobs.HasInFlight(txCtx, g.ID)
		if err != nil {
			return fmt.Errorf("check reschedule jobs: %w", err)
		}
		if busy {
			return &domain.ConcurrencyError{Reason: "a reschedule job is in flight for this plan group", Retryable: true}
		}

		replaced, err = s.sessions.DeleteByPlanGroup(txCtx, g.ID)
		if err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if err := s.sessions.InsertBatch(txCtx, res.Sessions); err != nil {
			return fmt.Errorf("insert sessions: %w", err)
		}
		if !locked.HasFullPeriod() {
			if err := s.groups.UpdatePeriodStart(txCtx, g.ID, period.Start); err != nil {
				return fmt.Errorf("record period start: %w", err)
			}
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionGenerate, map[string]any{
			"sessions": len(res.Sessions),
			"replaced": replaced,
			"period":   period.Start.String() + ".." + period.End.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan generated",
		slog.String("plan_group_id", g.ID.String()),
		slog.Int("sessions", len(res.Sessions)),
		slog.Int("replaced", replaced),
		slog.Int("warnings", len(res.Warnings)),
	)

	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &GenerateResult{
		Period:        period,
		AvailableDays: len(dates),
		SessionCount:  len(res.Sessions),
		ReplacedCount: replaced,
		Warnings:      warnings,
	}, nil
}
