// Package timeline builds a day's unified timeline of study sessions and
// fixed commitments and recomputes it after a manual move.
package timeline

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Reorder moves the item movedID to insertIndex (an index into the list
// after the move) and recomputes start and end times.
//
// Non-study items are anchors: they keep their times, and a session never
// starts before an anchor that precedes it in the list or overlaps one.
// Pull lays sessions out back to back from the slot start. Push keeps the
// items before the insertion point where they were, starts the moved item
// where the item it displaced started and moves every later session by
// exactly the moved item's duration. Durations never change. Time past the
// slot end is reported as overflow, never truncated. Items come back in
// time order.
func Reorder(items []domain.TimelineItem, movedID string, insertIndex int, slot domain.SlotBoundary, mode domain.ReorderMode) (*domain.ReorderResult, error) {
	from, err := validate(items, movedID, insertIndex, slot, mode)
	if err != nil {
		return nil, err
	}

	ordered := move(items, from, insertIndex)
	anchors := anchorsOf(ordered)

	if mode == domain.ReorderModePull {
		pull(ordered, slot, anchors)
	} else {
		push(ordered, insertIndex, slot, anchors)
	}
	slices.SortStableFunc(ordered, func(a, b domain.TimelineItem) int {
		return cmp.Compare(a.Start, b.Start)
	})

	res := &domain.ReorderResult{
		Mode:    mode,
		Items:   ordered,
		Changed: changed(items, ordered),
	}
	var lastEnd domain.Clock
	for _, it := range ordered {
		res.TotalMinutes += it.Duration()
		lastEnd = max(lastEnd, it.End)
	}
	if lastEnd > slot.End {
		res.OverflowMinutes = int(lastEnd - slot.End)
	}
	if mode == domain.ReorderModePush && lastEnd < slot.End {
		res.GapMinutes = int(slot.End - lastEnd)
	}
	return res, nil
}

func validate(items []domain.TimelineItem, movedID string, insertIndex int, slot domain.SlotBoundary, mode domain.ReorderMode) (int, error) {
	var errs []domain.FieldError
	if !mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be push or pull"})
	}
	if slot.End <= slot.Start {
		errs = append(errs, domain.FieldError{Field: "slot", Message: "end must be after start"})
	}
	if insertIndex < 0 || insertIndex >= len(items) {
		errs = append(errs, domain.FieldError{Field: "insert_index", Message: "out of range"})
	}

	from := -1
	for i, it := range items {
		if it.ID == movedID {
			from = i
			break
		}
	}
	switch {
	case from < 0:
		errs = append(errs, domain.FieldError{Field: "moved_id", Message: "not in the timeline"})
	case items[from].Kind != domain.TimelineItemPlan:
		errs = append(errs, domain.FieldError{Field: "moved_id", Message: "fixed commitments cannot be moved"})
	}

	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}
	return from, nil
}

func move(items []domain.TimelineItem, from, to int) []domain.TimelineItem {
	out := make([]domain.TimelineItem, 0, len(items))
	for i, it := range items {
		if i != from {
			out = append(out, it)
		}
	}
	out = append(out, domain.TimelineItem{})
	copy(out[to+1:], out[to:])
	out[to] = items[from]
	return out
}

func pull(items []domain.TimelineItem, slot domain.SlotBoundary, anchors []domain.TimelineItem) {
	cursor := slot.Start
	for i := range items {
		if items[i].Kind != domain.TimelineItemPlan {
			cursor = max(cursor, items[i].End)
			continue
		}
		place(&items[i], cursor, anchors)
		cursor = items[i].End
	}
}

func push(items []domain.TimelineItem, at int, slot domain.SlotBoundary, anchors []domain.TimelineItem) {
	cursor := slot.Start
	for _, it := range items[:at] {
		cursor = max(cursor, it.End)
	}

	moved := items[at].Duration()
	start := cursor
	if at+1 < len(items) && items[at+1].Kind == domain.TimelineItemPlan {
		start = max(start, items[at+1].Start)
	}
	place(&items[at], start, anchors)
	cursor = items[at].End

	for i := at + 1; i < len(items); i++ {
		if items[i].Kind != domain.TimelineItemPlan {
			cursor = max(cursor, items[i].End)
			continue
		}
		place(&items[i], max(items[i].Start.Add(moved), cursor), anchors)
		cursor = items[i].End
	}
}

// place starts it at the first minute from start where it overlaps no anchor.
func place(it *domain.TimelineItem, start domain.Clock, anchors []domain.TimelineItem) {
	d := it.Duration()
	for _, a := range anchors {
		if start < a.End && start.Add(d) > a.Start {
			start = a.End
		}
	}
	it.Start = start
	it.End = start.Add(d)
}

// anchorsOf returns the non-study items sorted by start.
func anchorsOf(items []domain.TimelineItem) []domain.TimelineItem {
	var out []domain.TimelineItem
	for _, it := range items {
		if it.Kind != domain.TimelineItemPlan {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b domain.TimelineItem) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out
}

// changed lists, in timeline order, the ids whose times differ from before.
func changed(before, after []domain.TimelineItem) []string {
	prev := make(map[string]domain.TimelineItem, len(before))
	for _, it := range before {
		prev[it.ID] = it
	}
	out := []string{}
	for _, it := range after {
		if p := prev[it.ID]; p.Start != it.Start || p.End != it.End {
			out = append(out, it.ID)
		}
	}
	return out
}
