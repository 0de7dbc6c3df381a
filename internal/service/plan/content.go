package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// AddContent appends a content range to a plan group. Catalog ranges must
// lie within the catalog extent.
func (s *Service) AddContent(ctx context.Context, input AddContentInput) (*domain.ContentItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, studentID, err := s.owned(ctx, input.PlanGroupID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireCapability(g.Status, domain.ActionModifyContent); err != nil {
		return nil, err
	}

	item := &domain.ContentItem{
		ID:            uuid.New(),
		PlanGroupID:   g.ID,
		ContentID:     input.ContentID,
		ContentType:   input.ContentType,
		Title:         strings.TrimSpace(input.Title),
		Subject:       strings.TrimSpace(input.Subject),
		IsWeakSubject: input.IsWeakSubject,
		StartRange:    input.StartRange,
		EndRange:      input.EndRange,
		UnitMinutes:   input.UnitMinutes,
	}

	if input.ContentID != nil {
		catalog, err := s.contents.GetCatalog(ctx, *input.ContentID)
		if err != nil {
			return nil, fmt.Errorf("get catalog content: %w", err)
		}
		if item.ContentType == "" {
			item.ContentType = catalog.ContentType
		}
		if item.ContentType != catalog.ContentType {
			return nil, domain.NewValidationError("content_type", "does not match catalog content type "+string(catalog.ContentType))
		}
		if item.Title == "" {
			item.Title = catalog.Title
		}
		if item.Subject == "" {
			item.Subject = catalog.Subject
		}
		if item.EndRange > catalog.TotalUnits {
			return nil, domain.NewValidationError("end_range", fmt.Sprintf("exceeds catalog extent of %d units", catalog.TotalUnits))
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contents.Create(txCtx, item); err != nil {
			return fmt.Errorf("create content item: %w", err)
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionUpdate, map[string]any{
			"content_added": item.ID.String(),
			"title":         item.Title,
			"range":         fmt.Sprintf("%d-%d", item.StartRange, item.EndRange),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "content added",
		slog.String("plan_group_id", g.ID.String()),
		slog.String("content_item_id", item.ID.String()),
	)

	return item, nil
}

// RemoveContent removes a content item from a plan group.
func (s *Service) RemoveContent(ctx context.Context, planGroupID, itemID uuid.UUID) error {
	g, studentID, err := s.owned(ctx, planGroupID)
	if err != nil {
		return err
	}
	if err := domain.RequireCapability(g.Status, domain.ActionModifyContent); err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contents.Delete(txCtx, g.ID, itemID); err != nil {
			return fmt.Errorf("delete content item: %w", err)
		}
		return s.logAudit(txCtx, studentID, domain.EntityTypePlanGroup, g.ID, domain.AuditActionUpdate, map[string]any{
			"content_removed": itemID.String(),
		})
	})
}

// ListContents returns the content items of a plan group in display order.
func (s *Service) ListContents(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error) {
	g, _, err := s.owned(ctx, planGroupID)
	if err != nil {
		return nil, err
	}
	items, err := s.contents.ListByPlanGroup(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return items, nil
}
