// Package delay classifies how far a plan group is behind schedule and
// proposes remediations. All functions are pure over already-fetched data.
package delay

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Thresholds are the delay ratios (1 - completion rate) at which each
// severity starts.
type Thresholds struct {
	Low    float64
	Medium float64
	High   float64
}

// DefaultThresholds returns the thresholds used when none are configured.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.10, Medium: 0.30, High: 0.50}
}

// Validate checks that the thresholds are ascending within (0, 1].
func (t Thresholds) Validate() error {
	if t.Low <= 0 || t.High > 1 {
		return errors.New("thresholds must be within (0, 1]")
	}
	if t.Low >= t.Medium || t.Medium >= t.High {
		return fmt.Errorf("thresholds must be ascending: low=%.2f medium=%.2f high=%.2f", t.Low, t.Medium, t.High)
	}
	return nil
}

// Classify maps a delay ratio to a severity.
func (t Thresholds) Classify(ratio float64) domain.DelaySeverity {
	switch {
	case ratio >= t.High:
		return domain.DelaySeverityHigh
	case ratio >= t.Medium:
		return domain.DelaySeverityMedium
	case ratio >= t.Low:
		return domain.DelaySeverityLow
	default:
		return domain.DelaySeverityNone
	}
}

// Detect measures the completion of the sessions on elapsed days of the
// period: days before today and not after the period end. Cancelled sessions
// are ignored. A group with nothing scheduled yet has severity none.
func Detect(planGroupID uuid.UUID, sessions []domain.ScheduledSession, period domain.DateRange, today domain.Date, th Thresholds) domain.DelayReport {
	report := domain.DelayReport{
		PlanGroupID:    planGroupID,
		Severity:       domain.DelaySeverityNone,
		AsOf:           today,
		CompletionRate: 1,
		Period:         period,
	}

	delayed := map[domain.Date]struct{}{}
	for _, s := range sessions {
		if s.Status == domain.ItemStatusCancelled || !period.Contains(s.Date) {
			continue
		}
		if !s.Date.Before(today) {
			if s.Status != domain.ItemStatusCompleted {
				report.RemainingSessions++
			}
			continue
		}
		report.ScheduledCount++
		if s.Status == domain.ItemStatusCompleted {
			report.CompletedCount++
		} else {
			delayed[s.Date] = struct{}{}
		}
	}

	report.IncompleteCount = report.ScheduledCount - report.CompletedCount
	report.DelayedDays = len(delayed)
	report.ElapsedDays = elapsedDays(period, today)
	report.RemainingDays = remainingDays(period, today)

	if report.ScheduledCount == 0 {
		return report
	}
	report.CompletionRate = float64(report.CompletedCount) / float64(report.ScheduledCount)
	report.Severity = th.Classify(1 - report.CompletionRate)
	return report
}

// TrackedPeriod is the window Detect measures a group against. A group with
// only a target date and no recorded start falls back to its earliest
// non-cancelled session so that past days still count.
func TrackedPeriod(g *domain.PlanGroup, sessions []domain.ScheduledSession, today domain.Date) domain.DateRange {
	period := g.Period(today)
	if g.PeriodStart != nil {
		return period
	}
	for _, s := range sessions {
		if s.Status != domain.ItemStatusCancelled && s.Date.Before(period.Start) {
			period.Start = s.Date
		}
	}
	return period
}

func elapsedDays(period domain.DateRange, today domain.Date) int {
	if !period.Start.Before(today) {
		return 0
	}
	last := today.AddDays(-1)
	if last.After(period.End) {
		last = period.End
	}
	return period.Start.DaysUntil(last) + 1
}

func remainingDays(period domain.DateRange, today domain.Date) int {
	if today.After(period.End) {
		return 0
	}
	first := today
	if first.Before(period.Start) {
		first = period.Start
	}
	return first.DaysUntil(period.End) + 1
}
