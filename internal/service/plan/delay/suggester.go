package delay

import (
	"fmt"
	"math"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Suggest proposes remediations for a delayed plan group, most urgent first.
// Severities none and low yield an empty list. Once the period has ended only
// extending it can help, so that is the single suggestion.
func Suggest(report domain.DelayReport, items []domain.ContentItem, today domain.Date) []domain.Suggestion {
	out := []domain.Suggestion{}
	if !report.Severity.AtLeast(domain.DelaySeverityMedium) {
		return out
	}

	period := report.Period
	from := today
	if from.Before(period.Start) {
		from = period.Start
	}
	rest := &domain.DateRange{Start: from, End: period.End}

	extend := extendSuggestion(report, items, today)
	if today.After(period.End) {
		extend.Priority = 1
		return append(out, extend)
	}

	reason := fmt.Sprintf("%d of %d sessions completed so far (%.0f%%)",
		report.CompletedCount, report.ScheduledCount, report.CompletionRate*100)

	redistribute := domain.Suggestion{
		PlanGroupID:   report.PlanGroupID,
		Type:          domain.SuggestionRedistribute,
		Title:         "Redistribute remaining sessions",
		Description:   fmt.Sprintf("Spread the unfinished work of %d content items evenly over the %d remaining days.", len(items), report.RemainingDays),
		Reason:        reason,
		AffectedRange: rest,
	}
	compress := domain.Suggestion{
		PlanGroupID:   report.PlanGroupID,
		Type:          domain.SuggestionCompressRemaining,
		Title:         "Compress remaining schedule",
		Description:   fmt.Sprintf("Turn review days into study days to finish %d content items by %s.", len(items), period.End),
		Reason:        reason,
		AffectedRange: rest,
	}

	switch report.Severity {
	case domain.DelaySeverityMedium:
		redistribute.Priority = 1
		extend.Priority = 2
		out = append(out, redistribute, extend)
	default:
		extend.Priority = 1
		compress.Priority = 2
		redistribute.Priority = 3
		out = append(out, extend, compress, redistribute)
	}
	return out
}

// ExtensionDays estimates how many extra days the incomplete sessions need
// at the pace the period was planned with.
func ExtensionDays(report domain.DelayReport) int {
	if report.IncompleteCount == 0 {
		return 1
	}
	perDay := 1.0
	if report.ElapsedDays > 0 && report.ScheduledCount > 0 {
		perDay = float64(report.ScheduledCount) / float64(report.ElapsedDays)
	}
	return max(int(math.Ceil(float64(report.IncompleteCount)/perDay)), 1)
}

func extendSuggestion(report domain.DelayReport, items []domain.ContentItem, today domain.Date) domain.Suggestion {
	period := report.Period
	days := ExtensionDays(report)

	base := period.End
	if today.After(base) {
		base = today.AddDays(-1)
	}
	newEnd := base.AddDays(days)

	from := today
	if from.Before(period.Start) {
		from = period.Start
	}

	reason := fmt.Sprintf("%d sessions are behind schedule over %d elapsed days", report.IncompleteCount, report.ElapsedDays)

	return domain.Suggestion{
		PlanGroupID:   report.PlanGroupID,
		Type:          domain.SuggestionExtendPeriod,
		Title:         fmt.Sprintf("Extend the period by %d days", period.End.DaysUntil(newEnd)),
		Description:   fmt.Sprintf("Move the end date from %s to %s and reschedule %d content items.", period.End, newEnd, len(items)),
		Reason:        reason,
		AffectedRange: &domain.DateRange{Start: from, End: newEnd},
		NewEndDate:    &newEnd,
	}
}
