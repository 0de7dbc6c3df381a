package timeline

import (
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

const commitmentPrefix = "commitment:"

// Build merges a day's timed sessions and the fixed commitments of that
// weekday into one timeline ordered by start time. A commitment spans its
// blocked range, travel buffer included. Sessions without clock times are
// left out. titles maps content item ids to display titles.
func Build(date domain.Date, sessions []domain.ScheduledSession, commitments []domain.FixedCommitment, titles map[uuid.UUID]string) []domain.TimelineItem {
	items := make([]domain.TimelineItem, 0, len(sessions)+len(commitments))

	for _, s := range sessions {
		if s.Date != date || s.StartTime == nil || s.EndTime == nil {
			continue
		}
		id := s.ID
		items = append(items, domain.TimelineItem{
			ID:        id.String(),
			Kind:      domain.TimelineItemPlan,
			SessionID: &id,
			Title:     titles[s.ContentItemID],
			Start:     *s.StartTime,
			End:       *s.EndTime,
		})
	}

	weekday := date.Weekday()
	for _, c := range commitments {
		if c.DayOfWeek != weekday {
			continue
		}
		id := c.ID
		blocked := c.BlockedRange()
		items = append(items, domain.TimelineItem{
			ID:           commitmentPrefix + id.String(),
			Kind:         domain.TimelineItemNonStudy,
			CommitmentID: &id,
			Title:        c.Title,
			Start:        blocked.Start,
			End:          blocked.End,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Start < items[j].Start })
	return items
}
