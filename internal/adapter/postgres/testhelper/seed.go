package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPlanGroup creates a plan group for a fresh student with a January
// 2024 period in the given status.
func SeedPlanGroup(t *testing.T, pool *pgxpool.Pool, status domain.PlanStatus) domain.PlanGroup {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	start, end := domain.NewDate(2024, time.January, 1), domain.NewDate(2024, time.January, 31)
	g := domain.PlanGroup{
		ID:            uuid.New(),
		StudentID:     uuid.New(),
		Name:          "Plan " + uniqueSuffix(),
		SchedulerType: "default",
		PeriodStart:   &start,
		PeriodEnd:     &end,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO plan_groups (id, student_id, name, scheduler_type, period_start, period_end, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		g.ID, g.StudentID, g.Name, g.SchedulerType, start.Time(), end.Time(), string(g.Status), now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlanGroup: %v", err)
	}

	return g
}

// SeedLecture creates a lecture in the catalog with one episode per entry of
// durations (episode n lasts durations[n-1] minutes).
func SeedLecture(t *testing.T, pool *pgxpool.Pool, durations ...int) domain.CatalogContent {
	t.Helper()
	ctx := context.Background()

	c := domain.CatalogContent{
		ID:          uuid.New(),
		ContentType: domain.ContentTypeLecture,
		Title:       "Lecture " + uniqueSuffix(),
		Subject:     "physics",
		TotalUnits:  len(durations),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO content_catalog (id, content_type, title, subject, total_units) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, string(c.ContentType), c.Title, c.Subject, c.TotalUnits,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLecture catalog: %v", err)
	}

	for i, minutes := range durations {
		_, err := pool.Exec(ctx,
			`INSERT INTO lecture_episodes (content_id, episode_number, duration_minutes) VALUES ($1, $2, $3)`,
			c.ID, i+1, minutes,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedLecture episode %d: %v", i+1, err)
		}
	}

	return c
}

// SeedContentItem adds a book range to a plan group.
func SeedContentItem(t *testing.T, pool *pgxpool.Pool, groupID uuid.UUID, start, end int) domain.ContentItem {
	t.Helper()

	item := domain.ContentItem{
		ID:          uuid.New(),
		PlanGroupID: groupID,
		ContentType: domain.ContentTypeBook,
		Title:       "Book " + uniqueSuffix(),
		StartRange:  start,
		EndRange:    end,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO plan_contents (id, plan_group_id, content_type, title, start_range, end_range) VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.PlanGroupID, string(item.ContentType), item.Title, item.StartRange, item.EndRange,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContentItem: %v", err)
	}

	return item
}
