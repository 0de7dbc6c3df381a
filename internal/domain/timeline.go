package domain

import "github.com/google/uuid"

// TimelineItem is a transient view of one entry of a day's timeline: either a
// scheduled session or a fixed non-study block.
type TimelineItem struct {
	ID           string           `json:"id"`
	Kind         TimelineItemKind `json:"kind"`
	SessionID    *uuid.UUID       `json:"session_id,omitempty"`
	CommitmentID *uuid.UUID       `json:"commitment_id,omitempty"`
	Title        string           `json:"title"`
	Start        Clock            `json:"start"`
	End          Clock            `json:"end"`
}

// Duration returns the item length in minutes.
func (i TimelineItem) Duration() int {
	return int(i.End - i.Start)
}

// SlotBoundary is the time block a day's timeline must fit into.
type SlotBoundary struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

// Capacity returns the slot length in minutes.
func (s SlotBoundary) Capacity() int {
	return int(s.End - s.Start)
}

// ReorderResult is the recomputed timeline after a move.
type ReorderResult struct {
	Mode            ReorderMode    `json:"mode"`
	Items           []TimelineItem `json:"items"`
	Changed         []string       `json:"changed"`
	OverflowMinutes int            `json:"overflow_minutes"`
	GapMinutes      int            `json:"gap_minutes"`
	TotalMinutes    int            `json:"total_minutes"`
}

// HasOverflow reports whether the timeline runs past the slot end.
func (r *ReorderResult) HasOverflow() bool {
	return r.OverflowMinutes > 0
}
