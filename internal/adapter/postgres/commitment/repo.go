// Package commitment implements the student's fixed weekly commitments
// (academy classes) using PostgreSQL.
package commitment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides fixed commitment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new commitment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listSQL = `
SELECT id, student_id, title, day_of_week, start_time, end_time, travel_minutes, created_at
FROM fixed_commitments
WHERE student_id = $1
ORDER BY day_of_week, start_time`

const createSQL = `
INSERT INTO fixed_commitments (id, student_id, title, day_of_week, start_time, end_time, travel_minutes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const deleteSQL = `
DELETE FROM fixed_commitments WHERE id = $1 AND student_id = $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// List returns all of a student's commitments ordered by weekday and start.
func (r *Repo) List(ctx context.Context, studentID uuid.UUID) ([]domain.FixedCommitment, error) {
	var rows []commitmentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, studentID); err != nil {
		return nil, fmt.Errorf("list fixed_commitments: %w", err)
	}

	out := make([]domain.FixedCommitment, len(rows))
	for i, row := range rows {
		out[i] = domain.FixedCommitment{
			ID:            row.ID,
			StudentID:     row.StudentID,
			Title:         row.Title,
			DayOfWeek:     time.Weekday(row.DayOfWeek),
			Start:         postgres.ToClock(row.StartTime),
			End:           postgres.ToClock(row.EndTime),
			TravelMinutes: row.TravelMinutes,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}

// Create inserts a commitment.
func (r *Repo) Create(ctx context.Context, c *domain.FixedCommitment) error {
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		c.ID,
		c.StudentID,
		c.Title,
		int16(c.DayOfWeek),
		postgres.Time(c.Start),
		postgres.Time(c.End),
		c.TravelMinutes,
		now,
	)
	if err != nil {
		return postgres.MapError(err, "fixed_commitment", c.ID)
	}

	c.CreatedAt = now
	return nil
}

// Delete removes one of the student's commitments.
func (r *Repo) Delete(ctx context.Context, studentID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, studentID)
	if err != nil {
		return postgres.MapError(err, "fixed_commitment", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("fixed_commitment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type commitmentRow struct {
	ID            uuid.UUID   `db:"id"`
	StudentID     uuid.UUID   `db:"student_id"`
	Title         string      `db:"title"`
	DayOfWeek     int16       `db:"day_of_week"`
	StartTime     pgtype.Time `db:"start_time"`
	EndTime       pgtype.Time `db:"end_time"`
	TravelMinutes int         `db:"travel_minutes"`
	CreatedAt     time.Time   `db:"created_at"`
}
