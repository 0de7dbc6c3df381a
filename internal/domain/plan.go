package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanGroup is a student's scheduling request and the container of its sessions.
// Either PeriodStart/PeriodEnd or TargetDate is set.
type PlanGroup struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	OrganizationID *uuid.UUID
	TemplateID     *uuid.UUID
	BlockSetID     *uuid.UUID
	Name           string
	Purpose        string
	SchedulerType  string
	PeriodStart    *Date
	PeriodEnd      *Date
	TargetDate     *Date
	Status         PlanStatus
	Settings       PartialSchedulerSettings
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Period resolves the group's tracked window. A group with only a target
// date runs from the start recorded when its plan was generated, or from
// today when it has none.
func (g *PlanGroup) Period(today Date) DateRange {
	if g.PeriodStart != nil && g.PeriodEnd != nil {
		return DateRange{Start: *g.PeriodStart, End: *g.PeriodEnd}
	}
	end := today
	if g.TargetDate != nil {
		end = *g.TargetDate
	}
	start := today
	if g.PeriodStart != nil {
		start = *g.PeriodStart
	}
	return DateRange{Start: start, End: end}
}

// PlanningPeriod is the window a fresh allocation covers. A group with only a
// target date always plans from today.
func (g *PlanGroup) PlanningPeriod(today Date) DateRange {
	period := g.Period(today)
	if !g.HasFullPeriod() {
		period.Start = today
	}
	return period
}

// HasFullPeriod reports whether both period bounds are set.
func (g *PlanGroup) HasFullPeriod() bool {
	return g.PeriodStart != nil && g.PeriodEnd != nil
}

// EndDate is the last planned day as stored: the period end for a group
// with a full period, otherwise the target date.
func (g *PlanGroup) EndDate() *Date {
	if g.PeriodStart != nil && g.PeriodEnd != nil {
		return g.PeriodEnd
	}
	return g.TargetDate
}

// ContentItem is a learning resource range the student wants to cover
// within one plan group.
type ContentItem struct {
	ID            uuid.UUID
	PlanGroupID   uuid.UUID
	ContentID     *uuid.UUID // catalog reference; nil for custom items
	ContentType   ContentType
	Title         string
	Subject       string
	IsWeakSubject bool
	StartRange    int
	EndRange      int
	UnitMinutes   *int
	DisplayOrder  int
	CreatedAt     time.Time
}

// Units returns the number of units in the inclusive range.
func (c *ContentItem) Units() int {
	return c.EndRange - c.StartRange + 1
}

// CatalogContent is the read-only extent of a catalog resource.
type CatalogContent struct {
	ID          uuid.UUID
	ContentType ContentType
	Title       string
	Subject     string
	TotalUnits  int
}

// DurationTable maps a sub-unit (episode) number to its duration in minutes.
type DurationTable map[int]int

// ExclusionDay blocks one calendar date for every plan group of a student.
type ExclusionDay struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	Date      Date
	Reason    ExclusionReason
	CreatedAt time.Time
}

// FixedCommitment is a recurring weekly external window (e.g. an academy class).
// TravelMinutes is applied before and after the window when checking conflicts.
type FixedCommitment struct {
	ID            uuid.UUID
	StudentID     uuid.UUID
	Title         string
	DayOfWeek     time.Weekday
	Start         Clock
	End           Clock
	TravelMinutes int
	CreatedAt     time.Time
}

// BlockedRange returns the commitment window widened by the travel buffer,
// clamped to the day.
func (c *FixedCommitment) BlockedRange() TimeRange {
	start := c.Start.Add(-c.TravelMinutes)
	if start < 0 {
		start = 0
	}
	end := c.End.Add(c.TravelMinutes)
	if end > MinutesPerDay {
		end = MinutesPerDay
	}
	return TimeRange{Start: start, End: end}
}

// BlockSet is a student's weekly time-block template.
type BlockSet struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	Name      string
	Blocks    []TimeBlock
	CreatedAt time.Time
}

// TimeBlock is one entry of a weekly time-block template.
type TimeBlock struct {
	BlockSetID uuid.UUID
	DayOfWeek  time.Weekday
	BlockIndex int
	Start      Clock
	End        Clock
}

// ScheduledSession is one study assignment on one date and block.
type ScheduledSession struct {
	ID              uuid.UUID
	PlanGroupID     uuid.UUID
	StudentID       uuid.UUID
	ContentItemID   uuid.UUID
	ContentType     ContentType
	Date            Date
	BlockIndex      int
	Kind            SessionKind
	StartRange      int
	EndRange        int
	StartTime       *Clock
	EndTime         *Clock
	DurationMinutes int
	Sequence        int
	Status          ItemStatus
	Progress        int
	IsReschedulable bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsConsumed reports whether the student has started working on the session.
func (s *ScheduledSession) IsConsumed() bool {
	return s.Status != ItemStatusPending || s.Progress > 0
}

// IsReplaceable reports whether a reschedule may drop and recreate the session.
func (s *ScheduledSession) IsReplaceable() bool {
	return s.IsReschedulable && !s.IsConsumed()
}

// SessionTimes is a recomputed placement of one session within its day.
type SessionTimes struct {
	ID       uuid.UUID
	Start    Clock
	End      Clock
	Sequence int
}
