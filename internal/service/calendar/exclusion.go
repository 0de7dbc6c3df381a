package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// ListExclusions returns the student's exclusion days in date order.
func (s *Service) ListExclusions(ctx context.Context, input ListExclusionsInput) ([]domain.ExclusionDay, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	days, err := s.exclusions.List(ctx, studentID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list exclusions: %w", err)
	}
	return days, nil
}

// CreateExclusion marks a date unavailable for every plan group of the student.
// A second exclusion on the same date fails with ErrAlreadyExists.
func (s *Service) CreateExclusion(ctx context.Context, input CreateExclusionInput) (*domain.ExclusionDay, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = domain.ExclusionReasonOther
	}

	day := &domain.ExclusionDay{
		ID:        uuid.New(),
		StudentID: studentID,
		Date:      input.Date,
		Reason:    reason,
	}
	if err := s.exclusions.Create(ctx, day); err != nil {
		return nil, fmt.Errorf("create exclusion: %w", err)
	}

	s.log.InfoContext(ctx, "exclusion day created",
		slog.String("student_id", studentID.String()),
		slog.String("date", day.Date.String()),
	)

	return day, nil
}

// DeleteExclusion removes one of the student's exclusion days.
func (s *Service) DeleteExclusion(ctx context.Context, id uuid.UUID) error {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.exclusions.Delete(ctx, studentID, id); err != nil {
		return fmt.Errorf("delete exclusion: %w", err)
	}
	return nil
}
