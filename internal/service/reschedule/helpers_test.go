package reschedule

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/inputs"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

type mocks struct {
	groups   *planGroupRepoMock
	sessions *sessionRepoMock
	jobs     *jobRepoMock
	loader   *inputLoaderMock
	audit    *auditRepoMock
	tx       *txManagerMock
}

var fixedNow = time.Date(2024, time.January, 11, 8, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks) {
	t.Helper()
	m := &mocks{
		groups:   &planGroupRepoMock{},
		sessions: &sessionRepoMock{},
		jobs:     &jobRepoMock{},
		loader:   &inputLoaderMock{},
		audit: &auditRepoMock{
			LogFunc: func(ctx context.Context, record domain.AuditRecord) error { return nil },
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) },
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(log, m.groups, m.sessions, m.jobs, m.loader, m.audit, m.tx, Options{
		MaxConcurrentJobs: 2,
		JobTimeout:        time.Minute,
		StaleJobAfter:     30 * time.Minute,
	})
	svc.now = func() time.Time { return fixedNow }
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return svc, m
}

func studentCtx(id uuid.UUID) context.Context {
	return ctxutil.WithStudentID(context.Background(), id)
}

func d(day int) domain.Date {
	return domain.NewDate(2024, time.January, day)
}

func activeGroup(studentID uuid.UUID) *domain.PlanGroup {
	start, end := d(1), d(31)
	return &domain.PlanGroup{
		ID:          uuid.New(),
		StudentID:   studentID,
		Name:        "January",
		PeriodStart: &start,
		PeriodEnd:   &end,
		Status:      domain.PlanStatusActive,
	}
}

func (m *mocks) returnGroup(g *domain.PlanGroup) {
	m.groups.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
		cp := *g
		return &cp, nil
	}
	m.groups.GetForUpdateFunc = m.groups.GetByIDFunc
}

func (m *mocks) loadItems(items ...domain.ContentItem) {
	m.loader.LoadFunc = func(ctx context.Context, group *domain.PlanGroup, period domain.DateRange) (*inputs.Bundle, error) {
		return &inputs.Bundle{
			Group:    group,
			Period:   period,
			Items:    items,
			Settings: domain.DefaultSchedulerSettings(),
		}, nil
	}
}

// acceptJobWrites makes every job bookkeeping call succeed.
func (m *mocks) acceptJobWrites() {
	m.jobs.MarkProcessingFunc = func(ctx context.Context, id uuid.UUID, progress int) error { return nil }
	m.jobs.UpdateProgressFunc = func(ctx context.Context, id uuid.UUID, progress int) error { return nil }
	m.jobs.CompleteFunc = func(ctx context.Context, id uuid.UUID, summary domain.RescheduleSummary, logID uuid.UUID) error {
		return nil
	}
	m.jobs.FailFunc = func(ctx context.Context, id uuid.UUID, message string) error { return nil }
	m.jobs.CreateLogFunc = func(ctx context.Context, l *domain.RescheduleLog) error { return nil }
	m.jobs.CreateJobFunc = func(ctx context.Context, job *domain.RescheduleJob) error { return nil }
	m.groups.UpdateEndDateFunc = func(ctx context.Context, id uuid.UUID, end domain.Date) error { return nil }
}

// storeSessions backs the session mock with an in-memory list.
func (m *mocks) storeSessions(sessions []domain.ScheduledSession) {
	m.sessions.ListFunc = func(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error) {
		return sessions, nil
	}
	m.sessions.ListByIDsFunc = func(ctx context.Context, ids []uuid.UUID) ([]domain.ScheduledSession, error) {
		byID := make(map[uuid.UUID]domain.ScheduledSession, len(sessions))
		for _, s := range sessions {
			byID[s.ID] = s
		}
		out := []domain.ScheduledSession{}
		for _, id := range ids {
			if s, ok := byID[id]; ok {
				out = append(out, s)
			}
		}
		return out, nil
	}
	m.sessions.DeleteByIDsFunc = func(ctx context.Context, ids []uuid.UUID) (int, error) { return len(ids), nil }
	m.sessions.InsertBatchFunc = func(ctx context.Context, s []domain.ScheduledSession) error { return nil }
}

func study(groupID, itemID uuid.UUID, date domain.Date, start, end int, status domain.ItemStatus, progress int) domain.ScheduledSession {
	return domain.ScheduledSession{
		ID:              uuid.New(),
		PlanGroupID:     groupID,
		ContentItemID:   itemID,
		ContentType:     domain.ContentTypeBook,
		Date:            date,
		Kind:            domain.SessionKindStudy,
		StartRange:      start,
		EndRange:        end,
		Status:          status,
		Progress:        progress,
		IsReschedulable: true,
	}
}
