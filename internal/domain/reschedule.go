package domain

import (
	"time"

	"github.com/google/uuid"
)

// DelayReport is the outcome of delay detection for one plan group.
type DelayReport struct {
	PlanGroupID       uuid.UUID     `json:"plan_group_id"`
	Severity          DelaySeverity `json:"severity"`
	AsOf              Date          `json:"as_of"`
	ScheduledCount    int           `json:"scheduled_count"`
	CompletedCount    int           `json:"completed_count"`
	IncompleteCount   int           `json:"incomplete_count"`
	CompletionRate    float64       `json:"completion_rate"`
	DelayedDays       int           `json:"delayed_days"`
	RemainingSessions int           `json:"remaining_sessions"`
	RemainingDays     int           `json:"remaining_days"`
	ElapsedDays       int           `json:"elapsed_days"`
	Period            DateRange     `json:"period"`
}

// Suggestion is one proposed remediation for a delayed plan group.
// Lower Priority is more urgent.
type Suggestion struct {
	PlanGroupID   uuid.UUID      `json:"plan_group_id"`
	Type          SuggestionType `json:"type"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Reason        string         `json:"reason"`
	Priority      int            `json:"priority"`
	AffectedRange *DateRange     `json:"affected_range,omitempty"`
	NewEndDate    *Date          `json:"new_end_date,omitempty"`
}

// RescheduleSummary is the result of a completed reschedule job.
type RescheduleSummary struct {
	PlansBeforeCount int `json:"plans_before_count"`
	PlansAfterCount  int `json:"plans_after_count"`
}

// RescheduleJob is an async unit of work executing an accepted suggestion.
// It is terminal once completed or failed and is never resumed.
type RescheduleJob struct {
	ID           uuid.UUID
	PlanGroupID  uuid.UUID
	StudentID    uuid.UUID
	Suggestion   Suggestion
	Status       JobStatus
	Progress     int
	ErrorMessage *string
	Result       *RescheduleSummary
	LogID        *uuid.UUID
	CreatedAt    time.Time
	StartedAt    *time.Time
	FinishedAt   *time.Time
}

// RescheduleLog is the insert-only audit record of one executed reschedule.
type RescheduleLog struct {
	ID              uuid.UUID
	PlanGroupID     uuid.UUID
	JobID           uuid.UUID
	StudentID       uuid.UUID
	SuggestionType  SuggestionType
	BeforeSessions  []ScheduledSession
	AfterSessionIDs []uuid.UUID
	PrevPeriodEnd   *Date
	NewPeriodEnd    *Date
	CreatedAt       time.Time
}

// RescheduleRollback records one executed rollback of a RescheduleLog.
type RescheduleRollback struct {
	ID            uuid.UUID
	LogID         uuid.UUID
	RestoredCount int
	CanceledCount int
	CreatedAt     time.Time
}

// RollbackCheck is the outcome of rollback validation.
type RollbackCheck struct {
	CanRollback bool   `json:"can_rollback"`
	Reason      string `json:"reason,omitempty"`
}

// RollbackResult reports what a rollback changed.
type RollbackResult struct {
	RestoredCount int `json:"restored_count"`
	CanceledCount int `json:"canceled_count"`
}
