package reschedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/allocator"
)

// execute replaces the replaceable sessions of the job's plan group with a
// fresh allocation of the work they did not cover. Everything from deleting
// the old sessions to completing the job commits in one transaction.
func (s *Service) execute(ctx context.Context, job *domain.RescheduleJob) (domain.RescheduleSummary, error) {
	var summary domain.RescheduleSummary

	if err := s.jobs.MarkProcessing(ctx, job.ID, ProgressStarted); err != nil {
		return summary, fmt.Errorf("mark processing: %w", err)
	}

	g, err := s.groups.GetByID(ctx, job.PlanGroupID)
	if err != nil {
		return summary, fmt.Errorf("get plan group: %w", err)
	}
	if err := domain.RequireCapability(g.Status, domain.ActionReschedule); err != nil {
		return summary, err
	}

	today := s.today()
	period := g.Period(today)
	prevEnd := g.EndDate()
	var newEnd *domain.Date
	if job.Suggestion.Type == domain.SuggestionExtendPeriod {
		newEnd = job.Suggestion.NewEndDate
		period.End = *newEnd
	}

	from := period.Start
	if from.Before(today) {
		from = today
	}
	if period.End.Before(from) {
		return summary, domain.NewValidationError("period", "no days left in the plan period")
	}

	bundle, err := s.loader.Load(ctx, g, domain.DateRange{Start: from, End: period.End})
	if err != nil {
		return summary, fmt.Errorf("load plan inputs: %w", err)
	}

	existing, err := s.sessions.List(ctx, domain.SessionFilter{PlanGroupID: g.ID})
	if err != nil {
		return summary, fmt.Errorf("list sessions: %w", err)
	}
	replaced, kept := partition(existing)
	items := remainingItems(bundle.Items, kept)

	if err := s.jobs.UpdateProgress(ctx, job.ID, ProgressLoaded); err != nil {
		return summary, fmt.Errorf("update progress: %w", err)
	}

	settings := bundle.Settings
	if job.Suggestion.Type == domain.SuggestionCompressRemaining {
		settings.StudyReviewRatio.ReviewDays = 0
	}

	res, err := allocator.Allocate(bundle.Request(items, bundle.Dates(), settings))
	if err != nil {
		return summary, err
	}

	if err := s.jobs.UpdateProgress(ctx, job.ID, ProgressAllocated); err != nil {
		return summary, fmt.Errorf("update progress: %w", err)
	}

	summary = domain.RescheduleSummary{
		PlansBeforeCount: len(replaced),
		PlansAfterCount:  len(res.Sessions),
	}
	entry := &domain.RescheduleLog{
		ID:              uuid.New(),
		PlanGroupID:     g.ID,
		JobID:           job.ID,
		StudentID:       g.StudentID,
		SuggestionType:  job.Suggestion.Type,
		BeforeSessions:  replaced,
		AfterSessionIDs: sessionIDs(res.Sessions),
		PrevPeriodEnd:   prevEnd,
		NewPeriodEnd:    prevEnd,
	}
	if newEnd != nil {
		entry.NewPeriodEnd = newEnd
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.groups.GetForUpdate(txCtx, g.ID)
		if err != nil {
			return fmt.Errorf("lock plan group: %w", err)
		}
		if err := domain.RequireCapability(locked.Status, domain.ActionReschedule); err != nil {
			return err
		}

		if err := s.checkUnchanged(txCtx, replaced); err != nil {
			return err
		}
		if _, err := s.sessions.DeleteByIDs(txCtx, sessionIDs(replaced)); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if err := s.sessions.InsertBatch(txCtx, res.Sessions); err != nil {
			return fmt.Errorf("insert sessions: %w", err)
		}
		if newEnd != nil {
			if err := s.groups.UpdateEndDate(txCtx, g.ID, *newEnd); err != nil {
				return fmt.Errorf("update end date: %w", err)
			}
		}
		if err := s.jobs.CreateLog(txCtx, entry); err != nil {
			return fmt.Errorf("create log: %w", err)
		}
		if err := s.jobs.Complete(txCtx, job.ID, summary, entry.ID); err != nil {
			return fmt.Errorf("complete job: %w", err)
		}

		changes := map[string]any{
			"job_id":   job.ID.String(),
			"log_id":   entry.ID.String(),
			"type":     string(job.Suggestion.Type),
			"replaced": summary.PlansBeforeCount,
			"created":  summary.PlansAfterCount,
		}
		if newEnd != nil {
			changes["new_end_date"] = newEnd.String()
		}
		return s.logAudit(txCtx, g.StudentID, g.ID, domain.AuditActionReschedule, changes)
	})
	if err != nil {
		return domain.RescheduleSummary{}, err
	}
	return summary, nil
}

// checkUnchanged verifies, inside the transaction, that the sessions about to
// be replaced still exist and are still replaceable.
func (s *Service) checkUnchanged(ctx context.Context, sessions []domain.ScheduledSession) error {
	if len(sessions) == 0 {
		return nil
	}
	current, err := s.sessions.ListByIDs(ctx, sessionIDs(sessions))
	if err != nil {
		return fmt.Errorf("reload sessions: %w", err)
	}
	if len(current) != len(sessions) {
		return &domain.ConcurrencyError{Reason: "sessions changed while the reschedule was running", Retryable: true}
	}
	for i := range current {
		if !current[i].IsReplaceable() {
			return &domain.ConcurrencyError{Reason: "sessions changed while the reschedule was running", Retryable: true}
		}
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, studentID, planGroupID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.NewAuditRecord(studentID, domain.EntityTypePlanGroup, planGroupID, action, changes)); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// partition splits sessions into those a reschedule may replace and those it
// must keep.
func partition(sessions []domain.ScheduledSession) (replaced, kept []domain.ScheduledSession) {
	replaced = []domain.ScheduledSession{}
	for _, sess := range sessions {
		if sess.IsReplaceable() {
			replaced = append(replaced, sess)
		} else {
			kept = append(kept, sess)
		}
	}
	return replaced, kept
}

// remainingItems returns, for every item, the contiguous parts of its range
// not covered by a kept, non-cancelled study session. An item with several
// uncovered parts yields one copy per part; fully covered items are dropped.
func remainingItems(items []domain.ContentItem, kept []domain.ScheduledSession) []domain.ContentItem {
	covered := map[uuid.UUID][][2]int{}
	for _, sess := range kept {
		if sess.Kind != domain.SessionKindStudy || sess.Status == domain.ItemStatusCancelled {
			continue
		}
		covered[sess.ContentItemID] = append(covered[sess.ContentItemID], [2]int{sess.StartRange, sess.EndRange})
	}

	out := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		for _, seg := range uncovered(item.StartRange, item.EndRange, covered[item.ID]) {
			part := item
			part.StartRange, part.EndRange = seg[0], seg[1]
			out = append(out, part)
		}
	}
	return out
}

// uncovered returns the sub-ranges of [start, end] outside every span.
func uncovered(start, end int, spans [][2]int) [][2]int {
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })

	var out [][2]int
	next := start
	for _, sp := range spans {
		if sp[1] < next {
			continue
		}
		if sp[0] > end {
			break
		}
		if sp[0] > next {
			out = append(out, [2]int{next, sp[0] - 1})
		}
		next = sp[1] + 1
	}
	if next <= end {
		out = append(out, [2]int{next, end})
	}
	return out
}

func sessionIDs(sessions []domain.ScheduledSession) []uuid.UUID {
	ids := make([]uuid.UUID, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}
	return ids
}
