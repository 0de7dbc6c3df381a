// Package calendar manages the student-scoped calendar records the planner
// reads: exclusion days, fixed commitments and weekly block sets.
package calendar

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

type exclusionRepo interface {
	List(ctx context.Context, studentID uuid.UUID, from, to *domain.Date) ([]domain.ExclusionDay, error)
	Create(ctx context.Context, day *domain.ExclusionDay) error
	Delete(ctx context.Context, studentID, id uuid.UUID) error
}

type commitmentRepo interface {
	List(ctx context.Context, studentID uuid.UUID) ([]domain.FixedCommitment, error)
	Create(ctx context.Context, c *domain.FixedCommitment) error
	Delete(ctx context.Context, studentID, id uuid.UUID) error
}

type blockSetRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.BlockSet, error)
	Create(ctx context.Context, id, studentID uuid.UUID, name string, blocks []domain.TimeBlock) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides calendar operations.
type Service struct {
	exclusions  exclusionRepo
	commitments commitmentRepo
	blockSets   blockSetRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new calendar service.
func NewService(
	log *slog.Logger,
	exclusions exclusionRepo,
	commitments commitmentRepo,
	blockSets blockSetRepo,
	tx txManager,
) *Service {
	return &Service{
		exclusions:  exclusions,
		commitments: commitments,
		blockSets:   blockSets,
		tx:          tx,
		log:         log.With("service", "calendar"),
	}
}
