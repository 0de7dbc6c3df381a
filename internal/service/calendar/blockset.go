package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// CreateBlockSet stores a weekly time-block template for the student.
func (s *Service) CreateBlockSet(ctx context.Context, input CreateBlockSetInput) (*domain.BlockSet, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	set := &domain.BlockSet{
		ID:        uuid.New(),
		StudentID: studentID,
		Name:      strings.TrimSpace(input.Name),
		Blocks:    make([]domain.TimeBlock, len(input.Blocks)),
	}
	for i, b := range input.Blocks {
		set.Blocks[i] = domain.TimeBlock{
			BlockSetID: set.ID,
			DayOfWeek:  time.Weekday(b.DayOfWeek),
			BlockIndex: b.BlockIndex,
			Start:      b.Start,
			End:        b.End,
		}
	}
	sort.Slice(set.Blocks, func(i, j int) bool {
		if set.Blocks[i].DayOfWeek != set.Blocks[j].DayOfWeek {
			return set.Blocks[i].DayOfWeek < set.Blocks[j].DayOfWeek
		}
		return set.Blocks[i].BlockIndex < set.Blocks[j].BlockIndex
	})

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.blockSets.Create(txCtx, set.ID, studentID, set.Name, set.Blocks)
	})
	if err != nil {
		return nil, fmt.Errorf("create block set: %w", err)
	}

	s.log.InfoContext(ctx, "block set created",
		slog.String("student_id", studentID.String()),
		slog.String("block_set_id", set.ID.String()),
		slog.Int("blocks", len(set.Blocks)),
	)

	return set, nil
}

// GetBlockSet returns one of the student's block sets.
func (s *Service) GetBlockSet(ctx context.Context, id uuid.UUID) (*domain.BlockSet, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	set, err := s.blockSets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get block set: %w", err)
	}
	if set.StudentID != studentID {
		return nil, fmt.Errorf("block set %s: %w", id, domain.ErrForbidden)
	}
	return set, nil
}
