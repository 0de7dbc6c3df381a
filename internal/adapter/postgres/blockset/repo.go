// Package blockset implements weekly time-block templates using PostgreSQL.
package blockset

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides block set persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new block set repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const ownerSQL = `SELECT student_id FROM block_sets WHERE id = $1`

const getSetSQL = `SELECT id, student_id, name, created_at FROM block_sets WHERE id = $1`

const listBlocksSQL = `
SELECT block_set_id, day_of_week, block_index, start_time, end_time
FROM time_blocks
WHERE block_set_id = $1
ORDER BY day_of_week, block_index`

const createSetSQL = `
INSERT INTO block_sets (id, student_id, name, created_at) VALUES ($1, $2, $3, $4)`

const createBlockSQL = `
INSERT INTO time_blocks (block_set_id, day_of_week, block_index, start_time, end_time)
VALUES ($1, $2, $3, $4, $5)`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Owner returns the student owning a block set.
func (r *Repo) Owner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var studentID uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, ownerSQL, id).Scan(&studentID); err != nil {
		return uuid.Nil, postgres.MapError(err, "block_set", id)
	}
	return studentID, nil
}

// Get returns a block set with its blocks.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.BlockSet, error) {
	var row setRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getSetSQL, id); err != nil {
		return nil, postgres.MapError(err, "block_set", id)
	}

	blocks, err := r.ListBlocks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.BlockSet{
		ID:        row.ID,
		StudentID: row.StudentID,
		Name:      row.Name,
		Blocks:    blocks,
		CreatedAt: row.CreatedAt,
	}, nil
}

// ListBlocks returns the template's blocks ordered by weekday and index.
func (r *Repo) ListBlocks(ctx context.Context, id uuid.UUID) ([]domain.TimeBlock, error) {
	var rows []blockRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listBlocksSQL, id); err != nil {
		return nil, fmt.Errorf("list time_blocks: %w", err)
	}

	blocks := make([]domain.TimeBlock, len(rows))
	for i, row := range rows {
		blocks[i] = domain.TimeBlock{
			BlockSetID: row.BlockSetID,
			DayOfWeek:  time.Weekday(row.DayOfWeek),
			BlockIndex: int(row.BlockIndex),
			Start:      postgres.ToClock(row.StartTime),
			End:        postgres.ToClock(row.EndTime),
		}
	}
	return blocks, nil
}

// Create inserts a block set with its blocks in one batch. Must run inside
// RunInTx for the set and its blocks to be stored atomically.
func (r *Repo) Create(ctx context.Context, id, studentID uuid.UUID, name string, blocks []domain.TimeBlock) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	batch.Queue(createSetSQL, id, studentID, name, time.Now().UTC().Truncate(time.Microsecond))
	for _, b := range blocks {
		batch.Queue(createBlockSQL, id, int16(b.DayOfWeek), int16(b.BlockIndex), postgres.Time(b.Start), postgres.Time(b.End))
	}

	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "block_set", id)
		}
	}
	return nil
}

type setRow struct {
	ID        uuid.UUID `db:"id"`
	StudentID uuid.UUID `db:"student_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type blockRow struct {
	BlockSetID uuid.UUID   `db:"block_set_id"`
	DayOfWeek  int16       `db:"day_of_week"`
	BlockIndex int16       `db:"block_index"`
	StartTime  pgtype.Time `db:"start_time"`
	EndTime    pgtype.Time `db:"end_time"`
}
