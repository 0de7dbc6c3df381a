// Package audit implements the append-only audit trail of plan mutations.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	StudentID  uuid.UUID  `db:"student_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	sql, args, err := postgres.Builder().
		Insert("audit_records").
		Columns("id", "student_id", "entity_type", "entity_id", "action", "changes", "created_at").
		Values(record.ID, record.StudentID, string(record.EntityType), record.EntityID, string(record.Action),
			changesJSON, createdAt.UTC().Truncate(time.Microsecond)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the history of one entity of a student, newest first.
func (r *Repo) ListByEntity(ctx context.Context, studentID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.Builder().
		Select("id", "student_id", "entity_type", "entity_id", "action", "changes", "created_at").
		From("audit_records").
		Where(squirrel.Eq{"student_id": studentID, "entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec := domain.AuditRecord{
			ID:         row.ID,
			StudentID:  row.StudentID,
			EntityType: domain.EntityType(row.EntityType),
			EntityID:   row.EntityID,
			Action:     domain.AuditAction(row.Action),
			CreatedAt:  row.CreatedAt,
		}
		if len(row.Changes) > 0 {
			if err := json.Unmarshal(row.Changes, &rec.Changes); err != nil {
				return nil, fmt.Errorf("audit_record %s unmarshal changes: %w", row.ID, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
