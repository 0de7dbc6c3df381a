// Package availability computes the calendar days and daily time slots a
// student can study in. All functions are pure.
package availability

import (
	"sort"
	"time"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// ComputeAvailableDates returns the ascending dates in [start, end] that are
// not excluded. Exclusions are truncated to their calendar date in their own
// location; duplicates and out-of-range values are ignored. When start is
// after end the result is empty.
func ComputeAvailableDates(start, end domain.Date, exclusions []time.Time) []domain.Date {
	excluded := make(map[domain.Date]struct{}, len(exclusions))
	for _, e := range exclusions {
		excluded[domain.DateOf(e)] = struct{}{}
	}
	return collect(start, end, excluded)
}

// ForExclusionDays is ComputeAvailableDates over stored exclusion records.
func ForExclusionDays(period domain.DateRange, days []domain.ExclusionDay) []domain.Date {
	excluded := make(map[domain.Date]struct{}, len(days))
	for _, d := range days {
		excluded[d.Date] = struct{}{}
	}
	return collect(period.Start, period.End, excluded)
}

func collect(start, end domain.Date, excluded map[domain.Date]struct{}) []domain.Date {
	if start.After(end) {
		return []domain.Date{}
	}

	dates := make([]domain.Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		if _, skip := excluded[d]; skip {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// MinSlotMinutes is the shortest fragment kept after cutting out commitments.
const MinSlotMinutes = 10

// Slot is one usable time window of a day. Index is the block index
// sessions placed in the slot carry.
type Slot struct {
	Index int
	Start domain.Clock
	End   domain.Clock
}

// Minutes returns the slot length.
func (s Slot) Minutes() int {
	return int(s.End - s.Start)
}

// DaySlots returns the ordered study slots of a date. The weekly block
// template supplies the slots for the weekday; without blocks for that day
// the settings' study window is used, split around the lunch break. Every
// fixed commitment on the same weekday, widened by its travel buffer, is cut
// out, and fragments shorter than MinSlotMinutes are dropped.
func DaySlots(date domain.Date, blocks []domain.TimeBlock, settings domain.SchedulerSettings, commitments []domain.FixedCommitment) []Slot {
	weekday := date.Weekday()

	var ranges []domain.TimeRange
	for _, b := range blocksFor(weekday, blocks) {
		ranges = append(ranges, domain.TimeRange{Start: b.Start, End: b.End})
	}
	if len(ranges) == 0 {
		ranges = windowRanges(settings)
	}

	for _, c := range commitments {
		if c.DayOfWeek != weekday {
			continue
		}
		ranges = subtract(ranges, c.BlockedRange())
	}

	slots := make([]Slot, 0, len(ranges))
	for _, r := range ranges {
		if r.Minutes() < MinSlotMinutes {
			continue
		}
		slots = append(slots, Slot{Start: r.Start, End: r.End})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	for i := range slots {
		slots[i].Index = i
	}
	return slots
}

func blocksFor(weekday time.Weekday, blocks []domain.TimeBlock) []domain.TimeBlock {
	var out []domain.TimeBlock
	for _, b := range blocks {
		if b.DayOfWeek == weekday && b.End > b.Start {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlockIndex < out[j].BlockIndex })
	return out
}

func windowRanges(s domain.SchedulerSettings) []domain.TimeRange {
	window := s.StudyHours
	if window.Minutes() == 0 {
		return nil
	}
	if s.LunchBreak.Minutes() == 0 || !window.Overlaps(s.LunchBreak) {
		return []domain.TimeRange{window}
	}
	return subtract([]domain.TimeRange{window}, s.LunchBreak)
}

// subtract removes cut from every range, splitting ranges it falls inside.
func subtract(ranges []domain.TimeRange, cut domain.TimeRange) []domain.TimeRange {
	out := make([]domain.TimeRange, 0, len(ranges)+1)
	for _, r := range ranges {
		if !r.Overlaps(cut) {
			out = append(out, r)
			continue
		}
		if cut.Start > r.Start {
			out = append(out, domain.TimeRange{Start: r.Start, End: cut.Start})
		}
		if cut.End < r.End {
			out = append(out, domain.TimeRange{Start: cut.End, End: r.End})
		}
	}
	return out
}

// DayWindow returns the span a day's timeline lives in: from the first to
// the last template block of the weekday, else the settings' study window.
func DayWindow(date domain.Date, blocks []domain.TimeBlock, settings domain.SchedulerSettings) domain.SlotBoundary {
	day := blocksFor(date.Weekday(), blocks)
	if len(day) == 0 {
		return domain.SlotBoundary{Start: settings.StudyHours.Start, End: settings.StudyHours.End}
	}
	out := domain.SlotBoundary{Start: day[0].Start, End: day[0].End}
	for _, b := range day[1:] {
		out.Start = min(out.Start, b.Start)
		out.End = max(out.End, b.End)
	}
	return out
}
