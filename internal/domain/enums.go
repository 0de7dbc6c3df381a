package domain

// PlanStatus is the lifecycle status of a plan group.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusSaved     PlanStatus = "saved"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusPaused    PlanStatus = "paused"
	PlanStatusCompleted PlanStatus = "completed"
	// PlanStatusCancelled only exists on legacy rows; nothing transitions into it.
	PlanStatusCancelled PlanStatus = "cancelled"
)

func (s PlanStatus) String() string { return string(s) }

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusDraft, PlanStatusSaved, PlanStatusActive, PlanStatusPaused,
		PlanStatusCompleted, PlanStatusCancelled:
		return true
	}
	return false
}

// ItemStatus is the status lane for records that never go through drafting
// (scheduled sessions).
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusPaused     ItemStatus = "paused"
	ItemStatusCancelled  ItemStatus = "cancelled"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted,
		ItemStatusPaused, ItemStatusCancelled:
		return true
	}
	return false
}

// ContentType identifies the kind of learning resource.
type ContentType string

const (
	ContentTypeBook    ContentType = "book"
	ContentTypeLecture ContentType = "lecture"
	ContentTypeCustom  ContentType = "custom"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeBook, ContentTypeLecture, ContentTypeCustom:
		return true
	}
	return false
}

// SupportsSubUnits reports whether the content is split into individually
// timed sub-units (episodes).
func (c ContentType) SupportsSubUnits() bool {
	return c == ContentTypeLecture
}

// SessionKind distinguishes regular study sessions from review sessions.
type SessionKind string

const (
	SessionKindStudy  SessionKind = "study"
	SessionKindReview SessionKind = "review"
)

func (k SessionKind) String() string { return string(k) }

func (k SessionKind) IsValid() bool {
	return k == SessionKindStudy || k == SessionKindReview
}

// WeakSubjectFocus controls how much extra time weak-subject content receives.
type WeakSubjectFocus string

const (
	WeakSubjectFocusLow    WeakSubjectFocus = "low"
	WeakSubjectFocusMedium WeakSubjectFocus = "medium"
	WeakSubjectFocusHigh   WeakSubjectFocus = "high"
)

func (f WeakSubjectFocus) String() string { return string(f) }

func (f WeakSubjectFocus) IsValid() bool {
	switch f {
	case WeakSubjectFocusLow, WeakSubjectFocusMedium, WeakSubjectFocusHigh:
		return true
	}
	return false
}

// Multiplier returns the duration factor applied to weak-subject sessions.
func (f WeakSubjectFocus) Multiplier() float64 {
	switch f {
	case WeakSubjectFocusMedium:
		return 1.25
	case WeakSubjectFocusHigh:
		return 1.5
	default:
		return 1.0
	}
}

// ExclusionReason tags why a day is excluded from scheduling.
type ExclusionReason string

const (
	ExclusionReasonHoliday  ExclusionReason = "holiday"
	ExclusionReasonPersonal ExclusionReason = "personal"
	ExclusionReasonExam     ExclusionReason = "exam"
	ExclusionReasonOther    ExclusionReason = "other"
)

func (r ExclusionReason) String() string { return string(r) }

func (r ExclusionReason) IsValid() bool {
	switch r {
	case ExclusionReasonHoliday, ExclusionReasonPersonal, ExclusionReasonExam, ExclusionReasonOther:
		return true
	}
	return false
}

// DelaySeverity is an ordered classification: none < low < medium < high.
type DelaySeverity string

const (
	DelaySeverityNone   DelaySeverity = "none"
	DelaySeverityLow    DelaySeverity = "low"
	DelaySeverityMedium DelaySeverity = "medium"
	DelaySeverityHigh   DelaySeverity = "high"
)

func (s DelaySeverity) String() string { return string(s) }

func (s DelaySeverity) IsValid() bool {
	switch s {
	case DelaySeverityNone, DelaySeverityLow, DelaySeverityMedium, DelaySeverityHigh:
		return true
	}
	return false
}

// Rank returns the position of the severity on the ordered scale.
func (s DelaySeverity) Rank() int {
	switch s {
	case DelaySeverityLow:
		return 1
	case DelaySeverityMedium:
		return 2
	case DelaySeverityHigh:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as other or more.
func (s DelaySeverity) AtLeast(other DelaySeverity) bool {
	return s.Rank() >= other.Rank()
}

// SuggestionType is the remediation a reschedule suggestion proposes.
type SuggestionType string

const (
	SuggestionCompressRemaining SuggestionType = "compress_remaining"
	SuggestionExtendPeriod      SuggestionType = "extend_period"
	SuggestionRedistribute      SuggestionType = "redistribute"
)

func (t SuggestionType) String() string { return string(t) }

func (t SuggestionType) IsValid() bool {
	switch t {
	case SuggestionCompressRemaining, SuggestionExtendPeriod, SuggestionRedistribute:
		return true
	}
	return false
}

// JobStatus is the status of an async reschedule job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the job can no longer change.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// ReorderMode selects how a timeline is recomputed after a move.
type ReorderMode string

const (
	ReorderModePush ReorderMode = "push"
	ReorderModePull ReorderMode = "pull"
)

func (m ReorderMode) String() string { return string(m) }

func (m ReorderMode) IsValid() bool {
	return m == ReorderModePush || m == ReorderModePull
}

// TimelineItemKind distinguishes study sessions from fixed non-study blocks.
type TimelineItemKind string

const (
	TimelineItemPlan     TimelineItemKind = "plan"
	TimelineItemNonStudy TimelineItemKind = "non_study"
)

func (k TimelineItemKind) String() string { return string(k) }

func (k TimelineItemKind) IsValid() bool {
	return k == TimelineItemPlan || k == TimelineItemNonStudy
}
