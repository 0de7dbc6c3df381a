package allocator

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// SplitByEpisode expands a multi-episode lecture session into one session per
// episode, in ascending episode order. Each piece keeps the original fields
// except range, duration and clock times: the duration comes from the table
// (an even share of the original when an episode is missing) and the
// start/end times are cleared. The first piece keeps the original id; the
// others get fresh ids.
//
// The session is returned unchanged (as a singleton) when the content type
// has no sub-units, the table is empty, or the range is a single unit.
func SplitByEpisode(s domain.ScheduledSession, table domain.DurationTable) []domain.ScheduledSession {
	if !s.ContentType.SupportsSubUnits() || len(table) == 0 || s.StartRange >= s.EndRange {
		return []domain.ScheduledSession{s}
	}

	count := s.EndRange - s.StartRange + 1
	fallback := ceilDiv(s.DurationMinutes, count)

	out := make([]domain.ScheduledSession, 0, count)
	for ep := s.StartRange; ep <= s.EndRange; ep++ {
		piece := s
		if ep != s.StartRange {
			piece.ID = uuid.New()
		}
		piece.StartRange = ep
		piece.EndRange = ep
		piece.StartTime = nil
		piece.EndTime = nil
		if minutes, ok := table[ep]; ok && minutes > 0 {
			piece.DurationMinutes = minutes
		} else {
			piece.DurationMinutes = fallback
		}
		out = append(out, piece)
	}
	return out
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
