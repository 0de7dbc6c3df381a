// Package content implements plan content items and the read-only content
// catalog (extents and lecture episode durations) using PostgreSQL.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides content persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new content repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `id, plan_group_id, content_id, content_type, title, subject, is_weak_subject,
	start_range, end_range, unit_minutes, display_order, created_at`

const listByPlanGroupSQL = `
SELECT ` + itemColumns + `
FROM plan_contents
WHERE plan_group_id = $1
ORDER BY display_order, created_at`

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM plan_contents
WHERE id = $1`

// display_order is appended after the group's current last item.
const createSQL = `
INSERT INTO plan_contents (id, plan_group_id, content_id, content_type, title, subject, is_weak_subject,
	start_range, end_range, unit_minutes, display_order, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	(SELECT COALESCE(MAX(display_order) + 1, 0) FROM plan_contents WHERE plan_group_id = $2), $11)
RETURNING display_order`

const deleteSQL = `
DELETE FROM plan_contents WHERE id = $1 AND plan_group_id = $2`

const getCatalogSQL = `
SELECT id, content_type, title, subject, total_units
FROM content_catalog
WHERE id = $1`

const durationsSQL = `
SELECT content_id, episode_number, duration_minutes
FROM lecture_episodes
WHERE content_id = ANY($1)
ORDER BY content_id, episode_number`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByPlanGroup returns a plan group's content items in display order.
func (r *Repo) ListByPlanGroup(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error) {
	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByPlanGroupSQL, planGroupID); err != nil {
		return nil, fmt.Errorf("list plan_contents by plan_group_id: %w", err)
	}

	items := make([]domain.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

// GetByID returns one content item.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "content_item", id)
	}
	item := row.toDomain()
	return &item, nil
}

// GetCatalog returns the extent of a catalog resource.
func (r *Repo) GetCatalog(ctx context.Context, id uuid.UUID) (*domain.CatalogContent, error) {
	var row catalogRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getCatalogSQL, id); err != nil {
		return nil, postgres.MapError(err, "catalog_content", id)
	}
	return &domain.CatalogContent{
		ID:          row.ID,
		ContentType: domain.ContentType(row.ContentType),
		Title:       row.Title,
		Subject:     row.Subject,
		TotalUnits:  row.TotalUnits,
	}, nil
}

// DurationTables returns the episode duration table of each catalog resource
// that has one. Resources without episodes are absent from the map.
func (r *Repo) DurationTables(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]domain.DurationTable, error) {
	tables := make(map[uuid.UUID]domain.DurationTable)
	if len(contentIDs) == 0 {
		return tables, nil
	}

	var rows []episodeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, durationsSQL, contentIDs); err != nil {
		return nil, fmt.Errorf("list lecture_episodes: %w", err)
	}

	for _, row := range rows {
		t, ok := tables[row.ContentID]
		if !ok {
			t = make(domain.DurationTable)
			tables[row.ContentID] = t
		}
		t[row.EpisodeNumber] = row.DurationMinutes
	}
	return tables, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a content item at the end of its group's display order.
// CreatedAt and DisplayOrder are set on item.
func (r *Repo) Create(ctx context.Context, item *domain.ContentItem) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := querier.QueryRow(ctx, createSQL,
		item.ID,
		item.PlanGroupID,
		item.ContentID,
		string(item.ContentType),
		item.Title,
		item.Subject,
		item.IsWeakSubject,
		item.StartRange,
		item.EndRange,
		item.UnitMinutes,
		now,
	).Scan(&item.DisplayOrder)
	if err != nil {
		return postgres.MapError(err, "content_item", item.ID)
	}

	item.CreatedAt = now
	return nil
}

// Delete removes a content item from a plan group.
// Returns domain.ErrNotFound if the item is not part of the group.
func (r *Repo) Delete(ctx context.Context, planGroupID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, planGroupID)
	if err != nil {
		return postgres.MapError(err, "content_item", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("content_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type itemRow struct {
	ID            uuid.UUID  `db:"id"`
	PlanGroupID   uuid.UUID  `db:"plan_group_id"`
	ContentID     *uuid.UUID `db:"content_id"`
	ContentType   string     `db:"content_type"`
	Title         string     `db:"title"`
	Subject       string     `db:"subject"`
	IsWeakSubject bool       `db:"is_weak_subject"`
	StartRange    int        `db:"start_range"`
	EndRange      int        `db:"end_range"`
	UnitMinutes   *int       `db:"unit_minutes"`
	DisplayOrder  int        `db:"display_order"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (row itemRow) toDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:            row.ID,
		PlanGroupID:   row.PlanGroupID,
		ContentID:     row.ContentID,
		ContentType:   domain.ContentType(row.ContentType),
		Title:         row.Title,
		Subject:       row.Subject,
		IsWeakSubject: row.IsWeakSubject,
		StartRange:    row.StartRange,
		EndRange:      row.EndRange,
		UnitMinutes:   row.UnitMinutes,
		DisplayOrder:  row.DisplayOrder,
		CreatedAt:     row.CreatedAt,
	}
}

type catalogRow struct {
	ID          uuid.UUID `db:"id"`
	ContentType string    `db:"content_type"`
	Title       string    `db:"title"`
	Subject     string    `db:"subject"`
	TotalUnits  int       `db:"total_units"`
}

type episodeRow struct {
	ContentID       uuid.UUID `db:"content_id"`
	EpisodeNumber   int       `db:"episode_number"`
	DurationMinutes int       `db:"duration_minutes"`
}
