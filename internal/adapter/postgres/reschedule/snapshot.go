package reschedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// sessionSnapshotJSON is the JSONB shape of one session in before_sessions.
// Domain sessions carry no json tags, so the repo layer owns the format.
type sessionSnapshotJSON struct {
	ID              uuid.UUID     `json:"id"`
	PlanGroupID     uuid.UUID     `json:"plan_group_id"`
	StudentID       uuid.UUID     `json:"student_id"`
	ContentItemID   uuid.UUID     `json:"content_item_id"`
	ContentType     string        `json:"content_type"`
	Date            domain.Date   `json:"date"`
	BlockIndex      int           `json:"block_index"`
	Kind            string        `json:"kind"`
	StartRange      int           `json:"start_range"`
	EndRange        int           `json:"end_range"`
	StartTime       *domain.Clock `json:"start_time,omitempty"`
	EndTime         *domain.Clock `json:"end_time,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	Sequence        int           `json:"sequence"`
	Status          string        `json:"status"`
	Progress        int           `json:"progress"`
	IsReschedulable bool          `json:"is_reschedulable"`
	CreatedAt       time.Time     `json:"created_at"`
}

func marshalSnapshot(sessions []domain.ScheduledSession) ([]byte, error) {
	out := make([]sessionSnapshotJSON, len(sessions))
	for i, s := range sessions {
		out[i] = sessionSnapshotJSON{
			ID:              s.ID,
			PlanGroupID:     s.PlanGroupID,
			StudentID:       s.StudentID,
			ContentItemID:   s.ContentItemID,
			ContentType:     string(s.ContentType),
			Date:            s.Date,
			BlockIndex:      s.BlockIndex,
			Kind:            string(s.Kind),
			StartRange:      s.StartRange,
			EndRange:        s.EndRange,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
			Sequence:        s.Sequence,
			Status:          string(s.Status),
			Progress:        s.Progress,
			IsReschedulable: s.IsReschedulable,
			CreatedAt:       s.CreatedAt,
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal session snapshot: %w", err)
	}
	return data, nil
}

func unmarshalSnapshot(data []byte) ([]domain.ScheduledSession, error) {
	if len(data) == 0 {
		return []domain.ScheduledSession{}, nil
	}

	var in []sessionSnapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal session snapshot: %w", err)
	}

	out := make([]domain.ScheduledSession, len(in))
	for i, s := range in {
		out[i] = domain.ScheduledSession{
			ID:              s.ID,
			PlanGroupID:     s.PlanGroupID,
			StudentID:       s.StudentID,
			ContentItemID:   s.ContentItemID,
			ContentType:     domain.ContentType(s.ContentType),
			Date:            s.Date,
			BlockIndex:      s.BlockIndex,
			Kind:            domain.SessionKind(s.Kind),
			StartRange:      s.StartRange,
			EndRange:        s.EndRange,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
			Sequence:        s.Sequence,
			Status:          domain.ItemStatus(s.Status),
			Progress:        s.Progress,
			IsReschedulable: s.IsReschedulable,
			CreatedAt:       s.CreatedAt,
		}
	}
	return out, nil
}
