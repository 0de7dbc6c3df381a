// Package allocator turns content ranges and available dates into scheduled
// sessions. The algorithm is greedy and deterministic: the same input always
// yields the same sessions (ids aside).
package allocator

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/availability"
)

const (
	DefaultReviewPercent    = 50
	DefaultMinReviewMinutes = 15
)

// Request is the input of Allocate.
type Request struct {
	PlanGroupID uuid.UUID
	StudentID   uuid.UUID
	// Items may contain several segments of the same content item (same ID)
	// when re-allocating the remainder of a partially studied range.
	Items    []domain.ContentItem
	Dates    []domain.Date
	Settings domain.SchedulerSettings
	// Durations holds episode duration tables keyed by ContentItem.ID.
	Durations map[uuid.UUID]domain.DurationTable
	// Slots returns the usable slots of a date. Nil means the settings'
	// study window split around lunch.
	Slots func(domain.Date) []availability.Slot

	ReviewPercent    int
	MinReviewMinutes int
}

// Result holds the allocated sessions ordered by date and sequence, and
// human-readable warnings about sessions that could not be timed cleanly.
type Result struct {
	Sessions []domain.ScheduledSession
	Warnings []string
}

type dayPlan struct {
	date   domain.Date
	cycle  int
	review bool
}

type span struct {
	start, end int
	minutes    int
}

// Allocate distributes every item's range over the study days, adds review
// sessions on review days, splits lecture ranges per episode and assigns
// clock times from each day's slots.
func Allocate(req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	res := &Result{Sessions: []domain.ScheduledSession{}}
	if len(req.Items) == 0 {
		return res, nil
	}

	days := classify(normalizeDates(req.Dates), req.Settings.StudyReviewRatio)
	var studyDays, reviewDays []int
	for i, day := range days {
		if day.review {
			reviewDays = append(reviewDays, i)
		} else {
			studyDays = append(studyDays, i)
		}
	}

	perDay := make([][]domain.ScheduledSession, len(days))
	// studied[cycle][item index] is the span of the item covered in that cycle.
	studied := map[int]map[int]*span{}

	for idx, item := range req.Items {
		table := req.Durations[item.ID]
		for _, part := range spread(item.StartRange, item.EndRange, len(studyDays)) {
			pos := studyDays[part.day]
			day := days[pos]

			s := newSession(req, item, day.date, domain.SessionKindStudy, part.start, part.end)
			s.DurationMinutes = rangeMinutes(item, table, req.Settings, part.start, part.end)

			pieces := []domain.ScheduledSession{s}
			if item.UnitMinutes == nil {
				pieces = SplitByEpisode(s, table)
				if len(pieces) > 1 {
					for i := range pieces {
						pieces[i].DurationMinutes = rangeMinutes(item, table, req.Settings, pieces[i].StartRange, pieces[i].EndRange)
					}
				}
			}
			perDay[pos] = append(perDay[pos], pieces...)

			if studied[day.cycle] == nil {
				studied[day.cycle] = map[int]*span{}
			}
			sp, ok := studied[day.cycle][idx]
			if !ok {
				sp = &span{start: part.start, end: part.end}
				studied[day.cycle][idx] = sp
			}
			sp.start = min(sp.start, part.start)
			sp.end = max(sp.end, part.end)
			sp.minutes += s.DurationMinutes
		}
	}

	addReviews(req, days, reviewDays, studied, perDay)

	for pos, day := range days {
		sessions := perDay[pos]
		if len(sessions) == 0 {
			continue
		}
		var slots []availability.Slot
		if req.Slots != nil {
			slots = req.Slots(day.date)
		} else {
			slots = availability.DaySlots(day.date, nil, req.Settings, nil)
		}
		res.Warnings = append(res.Warnings, assignTimes(day.date, sessions, slots, req.Items)...)
		res.Sessions = append(res.Sessions, sessions...)
	}

	return res, nil
}

func validate(req Request) error {
	var errs []domain.FieldError
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d]", i)
		if !item.ContentType.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".content_type", Message: "invalid content type"})
		}
		if item.StartRange < 1 {
			errs = append(errs, domain.FieldError{Field: field + ".start_range", Message: "must be at least 1"})
		}
		if item.EndRange < item.StartRange {
			errs = append(errs, domain.FieldError{Field: field + ".end_range", Message: "must not be before start_range"})
		}
	}
	if len(req.Items) > 0 && len(req.Dates) == 0 {
		errs = append(errs, domain.FieldError{Field: "dates", Message: "no available dates in the plan period"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func normalizeDates(dates []domain.Date) []domain.Date {
	out := make([]domain.Date, 0, len(dates))
	seen := make(map[domain.Date]struct{}, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// classify splits dates into repeating cycles of study days followed by
// review days. The first date is always a study day.
func classify(dates []domain.Date, ratio domain.StudyReviewRatio) []dayPlan {
	study := max(ratio.StudyDays, 1)
	review := max(ratio.ReviewDays, 0)
	cycle := study + review

	out := make([]dayPlan, len(dates))
	for i, d := range dates {
		out[i] = dayPlan{date: d, cycle: i / cycle, review: i%cycle >= study}
	}
	return out
}

type part struct {
	day        int
	start, end int
}

// spread partitions [start, end] into contiguous ascending sub-ranges over
// n study days. With fewer units than days the units are spaced evenly.
func spread(start, end, n int) []part {
	units := end - start + 1
	if n <= 0 || units <= 0 {
		return nil
	}

	if units < n {
		out := make([]part, 0, units)
		for j := 0; j < units; j++ {
			out = append(out, part{day: j * n / units, start: start + j, end: start + j})
		}
		return out
	}

	base, extra := units/n, units%n
	out := make([]part, 0, n)
	cur := start
	for k := 0; k < n; k++ {
		size := base
		if k < extra {
			size++
		}
		out = append(out, part{day: k, start: cur, end: cur + size - 1})
		cur += size
	}
	return out
}

func newSession(req Request, item domain.ContentItem, date domain.Date, kind domain.SessionKind, start, end int) domain.ScheduledSession {
	return domain.ScheduledSession{
		ID:              uuid.New(),
		PlanGroupID:     req.PlanGroupID,
		StudentID:       req.StudentID,
		ContentItemID:   item.ID,
		ContentType:     item.ContentType,
		Date:            date,
		Kind:            kind,
		StartRange:      start,
		EndRange:        end,
		Status:          domain.ItemStatusPending,
		IsReschedulable: true,
	}
}

// rangeMinutes estimates the study time of [start, end]: the item's own
// per-unit minutes, else the episode table, else the settings default, scaled
// by the weak-subject focus.
func rangeMinutes(item domain.ContentItem, table domain.DurationTable, settings domain.SchedulerSettings, start, end int) int {
	fallback := max(settings.DefaultUnitMinutes, 1)

	total := 0
	for u := start; u <= end; u++ {
		switch {
		case item.UnitMinutes != nil && *item.UnitMinutes > 0:
			total += *item.UnitMinutes
		case item.ContentType.SupportsSubUnits() && table[u] > 0:
			total += table[u]
		default:
			total += fallback
		}
	}

	if item.IsWeakSubject {
		return int(math.Ceil(float64(total) * settings.WeakSubjectFocus.Multiplier()))
	}
	return total
}

// addReviews schedules one review session per item studied in a cycle,
// spread round-robin over the cycle's review days.
func addReviews(req Request, days []dayPlan, reviewDays []int, studied map[int]map[int]*span, perDay [][]domain.ScheduledSession) {
	percent := req.ReviewPercent
	if percent <= 0 {
		percent = DefaultReviewPercent
	}
	minMinutes := req.MinReviewMinutes
	if minMinutes <= 0 {
		minMinutes = DefaultMinReviewMinutes
	}

	byCycle := map[int][]int{}
	for _, pos := range reviewDays {
		byCycle[days[pos].cycle] = append(byCycle[days[pos].cycle], pos)
	}

	for cycle, targets := range byCycle {
		items := studied[cycle]
		if len(items) == 0 {
			continue
		}
		indices := make([]int, 0, len(items))
		for idx := range items {
			indices = append(indices, idx)
		}
		sort.Ints(indices)

		for k, idx := range indices {
			sp := items[idx]
			pos := targets[k%len(targets)]
			s := newSession(req, req.Items[idx], days[pos].date, domain.SessionKindReview, sp.start, sp.end)
			s.DurationMinutes = max(minMinutes, int(math.Ceil(float64(sp.minutes)*float64(percent)/100)))
			perDay[pos] = append(perDay[pos], s)
		}
	}
}

// assignTimes fills the day's slots in order. A session that does not fit
// the rest of a slot moves to the next one; a session longer than an empty
// slot is placed there anyway. Sessions that fit nowhere keep no clock time.
func assignTimes(date domain.Date, sessions []domain.ScheduledSession, slots []availability.Slot, items []domain.ContentItem) []string {
	var warnings []string

	si := 0
	var cursor domain.Clock
	if len(slots) > 0 {
		cursor = slots[0].Start
	}

	for i := range sessions {
		s := &sessions[i]
		s.Sequence = i
		placed := false

		for si < len(slots) {
			slot := slots[si]
			if cursor < slot.Start {
				cursor = slot.Start
			}
			empty := cursor == slot.Start
			end := cursor.Add(s.DurationMinutes)
			if end > domain.MinutesPerDay {
				si++
				continue
			}
			if end <= slot.End || empty {
				start := cursor
				s.StartTime = &start
				s.EndTime = &end
				s.BlockIndex = slot.Index
				if end > slot.End {
					warnings = append(warnings, fmt.Sprintf("%s: %s exceeds block %d by %d minutes",
						date, describe(s, items), slot.Index, int(end-slot.End)))
				}
				cursor = end
				if cursor >= slot.End {
					si++
				}
				placed = true
				break
			}
			si++
		}

		if !placed {
			s.StartTime = nil
			s.EndTime = nil
			s.BlockIndex = max(len(slots)-1, 0)
			warnings = append(warnings, fmt.Sprintf("%s: no time left for %s", date, describe(s, items)))
		}
	}

	return warnings
}

func describe(s *domain.ScheduledSession, items []domain.ContentItem) string {
	title := s.ContentItemID.String()
	for _, it := range items {
		if it.ID == s.ContentItemID {
			title = it.Title
			break
		}
	}
	return fmt.Sprintf("%s %s %d-%d (%d min)", s.Kind, title, s.StartRange, s.EndRange, s.DurationMinutes)
}
