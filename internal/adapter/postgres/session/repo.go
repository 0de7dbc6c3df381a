// Package session implements the ScheduledSession repository using PostgreSQL.
// Dynamic filters and multi-row inserts are built with squirrel.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// insertChunkSize bounds the rows of one INSERT statement (19 params each).
const insertChunkSize = 500

// Repo provides scheduled session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var sessionColumns = []string{
	"id", "plan_group_id", "student_id", "content_item_id", "content_type", "session_date", "block_index",
	"kind", "start_range", "end_range", "start_time", "end_time", "duration_minutes", "sequence",
	"status", "progress", "is_reschedulable", "created_at", "updated_at",
}

const updateStatusSQL = `
UPDATE scheduled_sessions
SET status = $2, progress = $3, updated_at = now()
WHERE id = $1`

const updateTimesSQL = `
UPDATE scheduled_sessions
SET start_time = $2, end_time = $3, sequence = $4, updated_at = now()
WHERE id = $1`

const deleteByIDsSQL = `
DELETE FROM scheduled_sessions WHERE id = ANY($1)`

const deleteByPlanGroupSQL = `
DELETE FROM scheduled_sessions WHERE plan_group_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one session.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledSession, error) {
	sessions, err := r.selectWhere(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return &sessions[0], nil
}

// ListByIDs returns the sessions that still exist among ids.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ScheduledSession, error) {
	if len(ids) == 0 {
		return []domain.ScheduledSession{}, nil
	}
	return r.selectWhere(ctx, squirrel.Expr("id = ANY(?)", ids))
}

// List returns a plan group's sessions matching the filter, ordered by
// date, block and sequence.
func (r *Repo) List(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error) {
	where := squirrel.And{squirrel.Eq{"plan_group_id": filter.PlanGroupID}}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"session_date": postgres.Date(*filter.From)})
	}
	if filter.To != nil {
		where = append(where, squirrel.LtOrEq{"session_date": postgres.Date(*filter.To)})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, squirrel.Eq{"status": statuses})
	}
	if filter.Kind != nil {
		where = append(where, squirrel.Eq{"kind": string(*filter.Kind)})
	}
	if filter.BlockIndex != nil {
		where = append(where, squirrel.Eq{"block_index": *filter.BlockIndex})
	}

	return r.selectWhere(ctx, where)
}

func (r *Repo) selectWhere(ctx context.Context, where squirrel.Sqlizer) ([]domain.ScheduledSession, error) {
	sql, args, err := postgres.Builder().
		Select(sessionColumns...).
		From("scheduled_sessions").
		Where(where).
		OrderBy("session_date", "block_index", "sequence", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scheduled_sessions query: %w", err)
	}

	var rows []sessionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list scheduled_sessions: %w", err)
	}

	sessions := make([]domain.ScheduledSession, len(rows))
	for i := range rows {
		sessions[i] = rows[i].toDomain()
	}
	return sessions, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertBatch inserts sessions with multi-row INSERTs, keeping their ids.
// Zero timestamps are set to now.
func (r *Repo) InsertBatch(ctx context.Context, sessions []domain.ScheduledSession) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	for start := 0; start < len(sessions); start += insertChunkSize {
		chunk := sessions[start:min(start+insertChunkSize, len(sessions))]

		q := postgres.Builder().Insert("scheduled_sessions").Columns(sessionColumns...)
		for _, s := range chunk {
			createdAt, updatedAt := s.CreatedAt, s.UpdatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			if updatedAt.IsZero() {
				updatedAt = now
			}
			q = q.Values(
				s.ID, s.PlanGroupID, s.StudentID, s.ContentItemID, string(s.ContentType),
				postgres.Date(s.Date), s.BlockIndex, string(s.Kind), s.StartRange, s.EndRange,
				postgres.NullTime(s.StartTime), postgres.NullTime(s.EndTime), s.DurationMinutes, s.Sequence,
				string(s.Status), s.Progress, s.IsReschedulable, createdAt, updatedAt,
			)
		}

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build scheduled_sessions insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, "session", chunk[0].ID)
		}
	}

	return nil
}

// UpdateStatus sets a session's status and progress. Lane rules are
// enforced by the caller.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus, progress int) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateStatusSQL, id, string(status), progress)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateTimes writes recomputed start/end times and sequences in one batch.
func (r *Repo) UpdateTimes(ctx context.Context, updates []domain.SessionTimes) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(updateTimesSQL, u.ID, postgres.Time(u.Start), postgres.Time(u.End), u.Sequence)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, u := range updates {
		ct, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "session", u.ID)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("session %s: %w", u.ID, domain.ErrNotFound)
		}
	}
	return nil
}

// DeleteByIDs removes the given sessions and returns how many existed.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByIDsSQL, ids)
	if err != nil {
		return 0, fmt.Errorf("delete scheduled_sessions by ids: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

// DeleteByPlanGroup removes every session of a plan group.
func (r *Repo) DeleteByPlanGroup(ctx context.Context, planGroupID uuid.UUID) (int, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByPlanGroupSQL, planGroupID)
	if err != nil {
		return 0, postgres.MapError(err, "plan_group", planGroupID)
	}
	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type sessionRow struct {
	ID              uuid.UUID   `db:"id"`
	PlanGroupID     uuid.UUID   `db:"plan_group_id"`
	StudentID       uuid.UUID   `db:"student_id"`
	ContentItemID   uuid.UUID   `db:"content_item_id"`
	ContentType     string      `db:"content_type"`
	SessionDate     pgtype.Date `db:"session_date"`
	BlockIndex      int16       `db:"block_index"`
	Kind            string      `db:"kind"`
	StartRange      int         `db:"start_range"`
	EndRange        int         `db:"end_range"`
	StartTime       pgtype.Time `db:"start_time"`
	EndTime         pgtype.Time `db:"end_time"`
	DurationMinutes int         `db:"duration_minutes"`
	Sequence        int         `db:"sequence"`
	Status          string      `db:"status"`
	Progress        int16       `db:"progress"`
	IsReschedulable bool        `db:"is_reschedulable"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

func (row *sessionRow) toDomain() domain.ScheduledSession {
	return domain.ScheduledSession{
		ID:              row.ID,
		PlanGroupID:     row.PlanGroupID,
		StudentID:       row.StudentID,
		ContentItemID:   row.ContentItemID,
		ContentType:     domain.ContentType(row.ContentType),
		Date:            postgres.ToDate(row.SessionDate),
		BlockIndex:      int(row.BlockIndex),
		Kind:            domain.SessionKind(row.Kind),
		StartRange:      row.StartRange,
		EndRange:        row.EndRange,
		StartTime:       postgres.ToClockPtr(row.StartTime),
		EndTime:         postgres.ToClockPtr(row.EndTime),
		DurationMinutes: row.DurationMinutes,
		Sequence:        row.Sequence,
		Status:          domain.ItemStatus(row.Status),
		Progress:        int(row.Progress),
		IsReschedulable: row.IsReschedulable,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
