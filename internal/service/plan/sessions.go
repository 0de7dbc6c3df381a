package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// ListSessions returns a plan group's sessions, optionally within a date range.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) ([]domain.ScheduledSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, _, err := s.owned(ctx, input.PlanGroupID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.List(ctx, domain.SessionFilter{
		PlanGroupID: g.ID,
		From:        input.From,
		To:          input.To,
		Statuses:    input.Statuses,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// UpdateSessionStatus moves a session along the item lane or, for a session
// in progress, records progress. Completing sets progress to 100.
func (s *Service) UpdateSessionStatus(ctx context.Context, input UpdateSessionStatusInput) (*domain.ScheduledSession, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.StudentID != studentID {
		return nil, fmt.Errorf("session %s: %w", sess.ID, domain.ErrForbidden)
	}

	from := sess.Status
	progressOnly := from == input.Status && from == domain.ItemStatusInProgress
	if !progressOnly && !domain.CanTransitionItem(from, input.Status) {
		return nil, fmt.Errorf("session %s cannot move from %s to %s: %w", sess.ID, from, input.Status, domain.ErrConflict)
	}

	progress := sess.Progress
	if input.Progress != nil {
		progress = *input.Progress
	}
	if input.Status == domain.ItemStatusCompleted {
		progress = 100
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sessions.UpdateStatus(txCtx, sess.ID, input.Status, progress); err != nil {
			return fmt.Errorf("update session status: %w", err)
		}
		if progressOnly {
			return nil
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypeSession, sess.ID, domain.AuditActionStatusChange, map[string]any{
			"from":     string(from),
			"to":       string(input.Status),
			"progress": progress,
		})
	})
	if err != nil {
		return nil, err
	}

	sess.Status = input.Status
	sess.Progress = progress

	s.log.InfoContext(ctx, "session status changed",
		slog.String("session_id", sess.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(input.Status)),
		slog.Int("progress", progress),
	)

	return sess, nil
}
