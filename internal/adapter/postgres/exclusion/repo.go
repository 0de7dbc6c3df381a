// Package exclusion implements the student's exclusion days using PostgreSQL.
package exclusion

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides exclusion day persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new exclusion repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO exclusion_days (id, student_id, exclusion_date, reason, created_at)
VALUES ($1, $2, $3, $4, $5)`

const deleteSQL = `
DELETE FROM exclusion_days WHERE id = $1 AND student_id = $2`

// List returns a student's exclusion days ordered by date, optionally
// restricted to [from, to].
func (r *Repo) List(ctx context.Context, studentID uuid.UUID, from, to *domain.Date) ([]domain.ExclusionDay, error) {
	q := postgres.Builder().
		Select("id", "student_id", "exclusion_date", "reason", "created_at").
		From("exclusion_days").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("exclusion_date")
	if from != nil {
		q = q.Where(squirrel.GtOrEq{"exclusion_date": postgres.Date(*from)})
	}
	if to != nil {
		q = q.Where(squirrel.LtOrEq{"exclusion_date": postgres.Date(*to)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exclusion_days query: %w", err)
	}

	var rows []struct {
		ID        uuid.UUID   `db:"id"`
		StudentID uuid.UUID   `db:"student_id"`
		Date      pgtype.Date `db:"exclusion_date"`
		Reason    string      `db:"reason"`
		CreatedAt time.Time   `db:"created_at"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list exclusion_days: %w", err)
	}

	days := make([]domain.ExclusionDay, len(rows))
	for i, row := range rows {
		days[i] = domain.ExclusionDay{
			ID:        row.ID,
			StudentID: row.StudentID,
			Date:      postgres.ToDate(row.Date),
			Reason:    domain.ExclusionReason(row.Reason),
			CreatedAt: row.CreatedAt,
		}
	}
	return days, nil
}

// Create inserts an exclusion day.
// Returns domain.ErrAlreadyExists if the student already excluded that date.
func (r *Repo) Create(ctx context.Context, day *domain.ExclusionDay) error {
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		day.ID, day.StudentID, postgres.Date(day.Date), string(day.Reason), now)
	if err != nil {
		return postgres.MapError(err, "exclusion_day", day.ID)
	}

	day.CreatedAt = now
	return nil
}

// Delete removes one of the student's exclusion days.
func (r *Repo) Delete(ctx context.Context, studentID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, studentID)
	if err != nil {
		return postgres.MapError(err, "exclusion_day", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("exclusion_day %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
