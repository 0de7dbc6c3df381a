package reschedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// Reasons a rollback is refused. Each one is permanent: sessions never return
// to pending, ids are never reused and logs are insert-only.
const (
	reasonRolledBack = "this reschedule has already been rolled back"
	reasonSuperseded = "a newer reschedule has been applied to this plan group"
	reasonMissing    = "some rescheduled sessions no longer exist"
	reasonConsumed   = "some rescheduled sessions have been started or completed"
)

// ValidateRollback reports whether a reschedule can still be rolled back.
func (s *Service) ValidateRollback(ctx context.Context, logID uuid.UUID) (*domain.RollbackCheck, error) {
	entry, err := s.ownedLog(ctx, logID)
	if err != nil {
		return nil, err
	}

	g, err := s.groups.GetByID(ctx, entry.PlanGroupID)
	if err != nil {
		return nil, fmt.Errorf("get plan group: %w", err)
	}

	reason, err := s.rollbackBlocker(ctx, entry, g)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return &domain.RollbackCheck{CanRollback: false, Reason: reason}, nil
	}
	return &domain.RollbackCheck{CanRollback: true}, nil
}

// ExecuteRollback deletes the sessions a reschedule created and restores the
// ones it replaced, with their original ids. Eligibility is checked again
// after locking the plan group row.
func (s *Service) ExecuteRollback(ctx context.Context, logID uuid.UUID) (*domain.RollbackResult, error) {
	entry, err := s.ownedLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	if s.busy(entry.PlanGroupID) {
		return nil, &domain.ConcurrencyError{Reason: "a reschedule job is in flight for this plan group", Retryable: true}
	}

	result := &domain.RollbackResult{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.groups.GetForUpdate(txCtx, entry.PlanGroupID)
		if err != nil {
			return fmt.Errorf("lock plan group: %w", err)
		}

		reason, err := s.rollbackBlocker(txCtx, entry, g)
		if err != nil {
			return err
		}
		switch reason {
		case "":
		case reasonSuperseded:
			return &domain.ConcurrencyError{Reason: reason, Retryable: false}
		default:
			return fmt.Errorf("%s: %w", reason, domain.ErrConflict)
		}

		canceled, err := s.sessions.DeleteByIDs(txCtx, entry.AfterSessionIDs)
		if err != nil {
			return fmt.Errorf("delete rescheduled sessions: %w", err)
		}
		if err := s.sessions.InsertBatch(txCtx, entry.BeforeSessions); err != nil {
			return fmt.Errorf("restore sessions: %w", err)
		}
		if entry.PrevPeriodEnd != nil && entry.NewPeriodEnd != nil && *entry.PrevPeriodEnd != *entry.NewPeriodEnd {
			if err := s.groups.UpdateEndDate(txCtx, g.ID, *entry.PrevPeriodEnd); err != nil {
				return fmt.Errorf("restore end date: %w", err)
			}
		}

		result.RestoredCount = len(entry.BeforeSessions)
		result.CanceledCount = canceled

		if err := s.jobs.CreateRollback(txCtx, &domain.RescheduleRollback{
			ID:            uuid.New(),
			LogID:         entry.ID,
			RestoredCount: result.RestoredCount,
			CanceledCount: result.CanceledCount,
		}); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("%s: %w", reasonRolledBack, domain.ErrConflict)
			}
			return fmt.Errorf("record rollback: %w", err)
		}

		return s.logAudit(txCtx, entry.StudentID, g.ID, domain.AuditActionRollback, map[string]any{
			"log_id":   entry.ID.String(),
			"restored": result.RestoredCount,
			"canceled": result.CanceledCount,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reschedule rolled back",
		slog.String("log_id", entry.ID.String()),
		slog.String("plan_group_id", entry.PlanGroupID.String()),
		slog.Int("restored", result.RestoredCount),
		slog.Int("canceled", result.CanceledCount),
	)

	return result, nil
}

// rollbackBlocker returns the reason a rollback is refused, or "" when it is
// allowed.
func (s *Service) rollbackBlocker(ctx context.Context, entry *domain.RescheduleLog, g *domain.PlanGroup) (string, error) {
	done, err := s.jobs.RollbackExists(ctx, entry.ID)
	if err != nil {
		return "", fmt.Errorf("check rollback: %w", err)
	}
	if done {
		return reasonRolledBack, nil
	}

	latest, err := s.jobs.LatestLogID(ctx, entry.PlanGroupID)
	if err != nil {
		return "", fmt.Errorf("latest log: %w", err)
	}
	if latest != entry.ID {
		return reasonSuperseded, nil
	}

	after, err := s.sessions.ListByIDs(ctx, entry.AfterSessionIDs)
	if err != nil {
		return "", fmt.Errorf("list rescheduled sessions: %w", err)
	}
	if len(after) != len(entry.AfterSessionIDs) {
		return reasonMissing, nil
	}
	for i := range after {
		if after[i].IsConsumed() {
			return reasonConsumed, nil
		}
	}

	if !domain.GetConstraints(g.Status).Editable {
		return fmt.Sprintf("plan group is %s", g.Status), nil
	}
	return "", nil
}

func (s *Service) ownedLog(ctx context.Context, id uuid.UUID) (*domain.RescheduleLog, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.jobs.GetLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reschedule log: %w", err)
	}
	if entry.StudentID != studentID {
		return nil, fmt.Errorf("reschedule log %s: %w", id, domain.ErrForbidden)
	}
	return entry, nil
}
