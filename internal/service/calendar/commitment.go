package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// ListCommitments returns the student's fixed commitments.
func (s *Service) ListCommitments(ctx context.Context) ([]domain.FixedCommitment, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	out, err := s.commitments.List(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list commitments: %w", err)
	}
	return out, nil
}

// CreateCommitment adds a recurring weekly commitment. Generated plans cut
// its window, widened by the travel time, out of the study slots.
func (s *Service) CreateCommitment(ctx context.Context, input CreateCommitmentInput) (*domain.FixedCommitment, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.FixedCommitment{
		ID:            uuid.New(),
		StudentID:     studentID,
		Title:         strings.TrimSpace(input.Title),
		DayOfWeek:     time.Weekday(input.DayOfWeek),
		Start:         input.Start,
		End:           input.End,
		TravelMinutes: input.TravelMinutes,
	}
	if err := s.commitments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create commitment: %w", err)
	}

	s.log.InfoContext(ctx, "commitment created",
		slog.String("student_id", studentID.String()),
		slog.String("commitment_id", c.ID.String()),
		slog.String("day", c.DayOfWeek.String()),
	)

	return c, nil
}

// DeleteCommitment removes one of the student's commitments.
func (s *Service) DeleteCommitment(ctx context.Context, id uuid.UUID) error {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.commitments.Delete(ctx, studentID, id); err != nil {
		return fmt.Errorf("delete commitment: %w", err)
	}
	return nil
}
