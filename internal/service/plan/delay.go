package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/delay"
)

// DetectDelay classifies how far a plan group has slipped as of today.
func (s *Service) DetectDelay(ctx context.Context, planGroupID uuid.UUID) (*domain.DelayReport, error) {
	g, _, err := s.owned(ctx, planGroupID)
	if err != nil {
		return nil, err
	}
	report, err := s.detect(ctx, g)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// SuggestReschedule proposes remediations for a delayed plan group, most
// urgent first. An on-track group gets an empty list.
func (s *Service) SuggestReschedule(ctx context.Context, planGroupID uuid.UUID) ([]domain.Suggestion, error) {
	g, _, err := s.owned(ctx, planGroupID)
	if err != nil {
		return nil, err
	}

	report, err := s.detect(ctx, g)
	if err != nil {
		return nil, err
	}

	items, err := s.contents.ListByPlanGroup(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	return delay.Suggest(report, items, s.today()), nil
}

func (s *Service) detect(ctx context.Context, g *domain.PlanGroup) (domain.DelayReport, error) {
	sessions, err := s.sessions.List(ctx, domain.SessionFilter{PlanGroupID: g.ID})
	if err != nil {
		return domain.DelayReport{}, fmt.Errorf("list sessions: %w", err)
	}
	today := s.today()
	return delay.Detect(g.ID, sessions, delay.TrackedPeriod(g, sessions, today), today, s.thresholds), nil
}
