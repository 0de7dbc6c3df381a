package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// Constraints describes what the current status of a plan group allows.
type Constraints struct {
	Status             domain.PlanStatus   `json:"status"`
	Capabilities       domain.Capabilities `json:"capabilities"`
	AllowedTransitions []domain.PlanStatus `json:"allowed_transitions"`
}

// CreatePlanGroup creates a draft plan group for the authenticated student.
func (s *Service) CreatePlanGroup(ctx context.Context, input CreatePlanGroupInput) (*domain.PlanGroup, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.BlockSetID != nil {
		if err := s.checkBlockSet(ctx, studentID, *input.BlockSetID); err != nil {
			return nil, err
		}
	}

	schedulerType := strings.TrimSpace(input.SchedulerType)
	if schedulerType == "" {
		schedulerType = "default"
	}

	g := &domain.PlanGroup{
		ID:             uuid.New(),
		StudentID:      studentID,
		OrganizationID: input.OrganizationID,
		TemplateID:     input.TemplateID,
		BlockSetID:     input.BlockSetID,
		Name:           strings.TrimSpace(input.Name),
		Purpose:        strings.TrimSpace(input.Purpose),
		SchedulerType:  schedulerType,
		PeriodStart:    input.PeriodStart,
		PeriodEnd:      input.PeriodEnd,
		TargetDate:     input.TargetDate,
		Status:         domain.PlanStatusDraft,
	}
	if input.Settings != nil {
		g.Settings = *input.Settings
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.Create(txCtx, g); err != nil {
			return fmt.Errorf("create plan group: %w", err)
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionCreate, map[string]any{
			"name": g.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan group created",
		slog.String("student_id", studentID.String()),
		slog.String("plan_group_id", g.ID.String()),
	)

	return g, nil
}

// GetPlanGroup returns one of the student's plan groups.
func (s *Service) GetPlanGroup(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
	g, _, err := s.owned(ctx, id)
	return g, err
}

// ListPlanGroups returns the student's plan groups, newest first, and the total count.
func (s *Service) ListPlanGroups(ctx context.Context, input ListPlanGroupsInput) ([]domain.PlanGroup, int, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	groups, total, err := s.groups.List(ctx, domain.PlanGroupFilter{
		StudentID: studentID,
		Statuses:  input.Statuses,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list plan groups: %w", err)
	}
	return groups, total, nil
}

// UpdatePlanGroup changes the editable fields of a plan group.
func (s *Service) UpdatePlanGroup(ctx context.Context, input UpdatePlanGroupInput) (*domain.PlanGroup, error) {
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

	changes := map[string]any{}
	if input.Name != nil {
		g.Name = strings.TrimSpace(*input.Name)
		changes["name"] = g.Name
	}
	if input.Purpose != nil {
		g.Purpose = strings.TrimSpace(*input.Purpose)
		changes["purpose"] = g.Purpose
	}
	if input.PeriodStart != nil {
		g.PeriodStart = input.PeriodStart
		changes["period_start"] = input.PeriodStart.String()
	}
	if input.PeriodEnd != nil {
		g.PeriodEnd = input.PeriodEnd
		changes["period_end"] = input.PeriodEnd.String()
	}
	if input.TargetDate != nil {
		g.TargetDate = input.TargetDate
		changes["target_date"] = input.TargetDate.String()
	}
	if input.BlockSetID != nil {
		if err := s.checkBlockSet(ctx, studentID, *input.BlockSetID); err != nil {
			return nil, err
		}
		g.BlockSetID = input.BlockSetID
		changes["block_set_id"] = input.BlockSetID.String()
	}
	if input.Settings != nil {
		g.Settings = *input.Settings
		changes["settings"] = "replaced"
	}

	if errs := validatePeriod(g.PeriodStart, g.PeriodEnd, g.TargetDate); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.Update(txCtx, g); err != nil {
			return fmt.Errorf("update plan group: %w", err)
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan group updated",
		slog.String("student_id", studentID.String()),
		slog.String("plan_group_id", g.ID.String()),
	)

	return g, nil
}

// DeletePlanGroup deletes a plan group with its contents and sessions.
// Exclusion days and commitments belong to the student and are kept.
func (s *Service) DeletePlanGroup(ctx context.Context, id uuid.UUID) error {
	g, studentID, err := s.owned(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.RequireCapability(g.Status, domain.ActionDelete); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete plan group: %w", err)
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, id, domain.AuditActionDelete, map[string]any{
			"name":   g.Name,
			"status": string(g.Status),
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "plan group deleted",
		slog.String("student_id", studentID.String()),
		slog.String("plan_group_id", id.String()),
	)
	return nil
}

// TransitionStatus moves a plan group along the lifecycle.
func (s *Service) TransitionStatus(ctx context.Context, input TransitionStatusInput) (*domain.PlanGroup, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, studentID, err := s.owned(ctx, input.PlanGroupID)
	if err != nil {
		return nil, err
	}

	var (
		g    *domain.PlanGroup
		from domain.PlanStatus
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		g, err = s.groups.GetForUpdate(txCtx, input.PlanGroupID)
		if err != nil {
			return fmt.Errorf("lock plan group: %w", err)
		}
		from = g.Status
		if !domain.CanTransition(from, input.Status) {
			return domain.NewStateConflict(from, "move to "+string(input.Status))
		}

		if err := s.groups.UpdateStatus(txCtx, g.ID, input.Status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		g.Status = input.Status

		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionStatusChange, map[string]any{
			"from": string(from),
			"to":   string(input.Status),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan group status changed",
		slog.String("plan_group_id", g.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(g.Status)),
	)

	return g, nil
}

// GetConstraints reports what the plan group's current status allows.
func (s *Service) GetConstraints(ctx context.Context, id uuid.UUID) (*Constraints, error) {
	g, _, err := s.owned(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Constraints{
		Status:             g.Status,
		Capabilities:       domain.GetConstraints(g.Status),
		AllowedTransitions: domain.AllowedTransitions(g.Status),
	}, nil
}

// History returns the audit trail of a plan group, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	g, studentID, err := s.owned(ctx, id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultHistoryLimit
	}

	records, err := s.audit.ListByEntity(ctx, studentID, domain.EntityTypePlanGroup, g.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// owned loads a plan group and checks it belongs to the authenticated student.
func (s *Service) owned(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, uuid.UUID, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, uuid.Nil, domain.ErrUnauthorized
	}

	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("get plan group: %w", err)
	}
	if g.StudentID != studentID {
		return nil, uuid.Nil, fmt.Errorf("plan group %s: %w", id, domain.ErrForbidden)
	}
	return g, studentID, nil
}

func (s *Service) checkBlockSet(ctx context.Context, studentID, blockSetID uuid.UUID) error {
	owner, err := s.blockSets.Owner(ctx, blockSetID)
	if err != nil {
		return fmt.Errorf("get block set: %w", err)
	}
	if owner != studentID {
		return fmt.Errorf("block set %s: %w", blockSetID, domain.ErrForbidden)
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, studentID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.NewAuditRecord(studentID, entityType, entityID, action, changes)); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
