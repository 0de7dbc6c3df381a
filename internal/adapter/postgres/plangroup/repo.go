// Package plangroup implements the PlanGroup repository using PostgreSQL.
// Scheduler settings overrides are stored as JSONB.
package plangroup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides plan group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const planGroupColumns = `id, student_id, organization_id, template_id, block_set_id, name, purpose,
	scheduler_type, period_start, period_end, target_date, status, scheduler_settings, created_at, updated_at`

const createSQL = `
INSERT INTO plan_groups (id, student_id, organization_id, template_id, block_set_id, name, purpose,
	scheduler_type, period_start, period_end, target_date, status, scheduler_settings, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`

const getByIDSQL = `
SELECT ` + planGroupColumns + `
FROM plan_groups
WHERE id = $1`

const getForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const updateSQL = `
UPDATE plan_groups
SET block_set_id = $2, name = $3, purpose = $4, scheduler_type = $5, period_start = $6,
	period_end = $7, target_date = $8, scheduler_settings = $9, updated_at = now()
WHERE id = $1`

const updateStatusSQL = `
UPDATE plan_groups SET status = $2, updated_at = now() WHERE id = $1`

// A group with a full period moves period_end; a group planned toward a
// target date moves target_date.
const updateEndDateSQL = `
UPDATE plan_groups
SET period_end = CASE WHEN period_start IS NOT NULL AND period_end IS NOT NULL THEN $2 ELSE period_end END,
	target_date = CASE WHEN period_start IS NOT NULL AND period_end IS NOT NULL THEN target_date ELSE $2 END,
	updated_at = now()
WHERE id = $1`

const updatePeriodStartSQL = `
UPDATE plan_groups SET period_start = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `
DELETE FROM plan_groups WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a plan group by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate returns a plan group and locks its row until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, sql string, id uuid.UUID) (*domain.PlanGroup, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var row planGroupRow
	if err := pgxscan.Get(ctx, querier, &row, sql, id); err != nil {
		return nil, postgres.MapError(err, "plan_group", id)
	}

	return row.toDomain()
}

// List returns plan groups matching the filter ordered by created_at DESC,
// together with the total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.PlanGroupFilter) ([]domain.PlanGroup, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.And{}
	if filter.StudentID != uuid.Nil {
		where = append(where, squirrel.Eq{"student_id": filter.StudentID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, squirrel.Eq{"status": statuses})
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("plan_groups").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build plan_groups count: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plan_groups: %w", err)
	}

	q := postgres.Builder().
		Select(planGroupColumns).
		From("plan_groups").
		Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build plan_groups query: %w", err)
	}

	var rows []planGroupRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list plan_groups: %w", err)
	}

	groups := make([]domain.PlanGroup, 0, len(rows))
	for i := range rows {
		g, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, err
		}
		groups = append(groups, *g)
	}

	return groups, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new plan group. CreatedAt and UpdatedAt are set on g.
func (r *Repo) Create(ctx context.Context, g *domain.PlanGroup) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	settings, err := json.Marshal(g.Settings)
	if err != nil {
		return fmt.Errorf("plan_group %s: marshal settings: %w", g.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err = querier.Exec(ctx, createSQL,
		g.ID,
		g.StudentID,
		g.OrganizationID,
		g.TemplateID,
		g.BlockSetID,
		g.Name,
		g.Purpose,
		g.SchedulerType,
		postgres.NullDate(g.PeriodStart),
		postgres.NullDate(g.PeriodEnd),
		postgres.NullDate(g.TargetDate),
		string(g.Status),
		settings,
		now,
	)
	if err != nil {
		return postgres.MapError(err, "plan_group", g.ID)
	}

	g.CreatedAt, g.UpdatedAt = now, now
	return nil
}

// Update writes the editable fields of g.
// Returns domain.ErrNotFound if the plan group does not exist.
func (r *Repo) Update(ctx context.Context, g *domain.PlanGroup) error {
	settings, err := json.Marshal(g.Settings)
	if err != nil {
		return fmt.Errorf("plan_group %s: marshal settings: %w", g.ID, err)
	}

	return r.exec(ctx, g.ID, updateSQL,
		g.ID,
		g.BlockSetID,
		g.Name,
		g.Purpose,
		g.SchedulerType,
		postgres.NullDate(g.PeriodStart),
		postgres.NullDate(g.PeriodEnd),
		postgres.NullDate(g.TargetDate),
		settings,
	)
}

// UpdateStatus sets the status column. Transition rules are enforced by the caller.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PlanStatus) error {
	return r.exec(ctx, id, updateStatusSQL, id, string(status))
}

// UpdateEndDate moves the last planned day of the group (see PlanGroup.EndDate).
func (r *Repo) UpdateEndDate(ctx context.Context, id uuid.UUID, end domain.Date) error {
	return r.exec(ctx, id, updateEndDateSQL, id, postgres.Date(end))
}

// UpdatePeriodStart records the first planned day of a group planned toward a
// target date.
func (r *Repo) UpdatePeriodStart(ctx context.Context, id uuid.UUID, start domain.Date) error {
	return r.exec(ctx, id, updatePeriodStartSQL, id, postgres.Date(start))
}

// Delete removes a plan group. Contents, sessions and reschedule history
// cascade; exclusions and commitments are student-owned and untouched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, deleteSQL, id)
}

func (r *Repo) exec(ctx context.Context, id uuid.UUID, sql string, args ...any) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "plan_group", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("plan_group %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type planGroupRow struct {
	ID             uuid.UUID   `db:"id"`
	StudentID      uuid.UUID   `db:"student_id"`
	OrganizationID *uuid.UUID  `db:"organization_id"`
	TemplateID     *uuid.UUID  `db:"template_id"`
	BlockSetID     *uuid.UUID  `db:"block_set_id"`
	Name           string      `db:"name"`
	Purpose        string      `db:"purpose"`
	SchedulerType  string      `db:"scheduler_type"`
	PeriodStart    pgtype.Date `db:"period_start"`
	PeriodEnd      pgtype.Date `db:"period_end"`
	TargetDate     pgtype.Date `db:"target_date"`
	Status         string      `db:"status"`
	Settings       []byte      `db:"scheduler_settings"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (row *planGroupRow) toDomain() (*domain.PlanGroup, error) {
	g := &domain.PlanGroup{
		ID:             row.ID,
		StudentID:      row.StudentID,
		OrganizationID: row.OrganizationID,
		TemplateID:     row.TemplateID,
		BlockSetID:     row.BlockSetID,
		Name:           row.Name,
		Purpose:        row.Purpose,
		SchedulerType:  row.SchedulerType,
		PeriodStart:    postgres.ToDatePtr(row.PeriodStart),
		PeriodEnd:      postgres.ToDatePtr(row.PeriodEnd),
		TargetDate:     postgres.ToDatePtr(row.TargetDate),
		Status:         domain.PlanStatus(row.Status),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	if len(row.Settings) > 0 {
		if err := json.Unmarshal(row.Settings, &g.Settings); err != nil {
			return nil, fmt.Errorf("plan_group %s: unmarshal settings: %w", row.ID, err)
		}
	}

	return g, nil
}
