package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/availability"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/timeline"
)

// ReorderOutcome is the recomputed timeline and whether it was written.
// A timeline that overflows its slot is only applied when the caller
// accepts the overflow.
type ReorderOutcome struct {
	*domain.ReorderResult
	Date    domain.Date         `json:"date"`
	Slot    domain.SlotBoundary `json:"slot"`
	Applied bool                `json:"applied"`
}

// ReorderDay moves one item of a day's timeline and rewrites session times.
func (s *Service) ReorderDay(ctx context.Context, input ReorderDayInput) (*ReorderOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, studentID, err := s.owned(ctx, input.PlanGroupID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireCapability(g.Status, domain.ActionEdit); err != nil {
		return nil, err
	}

	bundle, err := s.loader.Load(ctx, g, domain.DateRange{Start: input.Date, End: input.Date})
	if err != nil {
		return nil, fmt.Errorf("load plan inputs: %w", err)
	}

	sessions, err := s.sessions.List(ctx, domain.SessionFilter{
		PlanGroupID: g.ID,
		From:        &input.Date,
		To:          &input.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	active := sessions[:0:0]
	for _, sess := range sessions {
		if sess.Status != domain.ItemStatusCancelled {
			active = append(active, sess)
		}
	}

	items := timeline.Build(input.Date, active, bundle.Commitments, bundle.Titles())
	slot := availability.DayWindow(input.Date, bundle.Blocks, bundle.Settings)

	res, err := timeline.Reorder(items, input.MovedID, input.InsertIndex, slot, input.Mode)
	if err != nil {
		return nil, err
	}

	out := &ReorderOutcome{ReorderResult: res, Date: input.Date, Slot: slot}
	if res.HasOverflow() && !input.AcceptOverflow {
		return out, nil
	}

	updates := make([]domain.SessionTimes, 0, len(res.Items))
	for _, it := range res.Items {
		if it.Kind != domain.TimelineItemPlan || it.SessionID == nil {
			continue
		}
		updates = append(updates, domain.SessionTimes{
			ID:       *it.SessionID,
			Start:    it.Start,
			End:      it.End,
			Sequence: len(updates),
		})
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sessions.UpdateTimes(txCtx, updates); err != nil {
			return fmt.Errorf("update session times: %w", err)
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionReorder, map[string]any{
			"date":     input.Date.String(),
			"moved_id": input.MovedID,
			"mode":     string(input.Mode),
			"changed":  len(res.Changed),
			"overflow": res.OverflowMinutes,
		})
	})
	if err != nil {
		return nil, err
	}
	out.Applied = true

	s.log.InfoContext(ctx, "timeline reordered",
		slog.String("plan_group_id", g.ID.String()),
		slog.String("date", input.Date.String()),
		slog.String("mode", string(input.Mode)),
		slog.Int("overflow_minutes", res.OverflowMinutes),
	)

	return out, nil
}
