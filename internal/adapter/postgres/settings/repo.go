// Package settings reads the organization and program template levels of
// scheduler settings. Both are maintained outside this service.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides read access to upper settings levels.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const organizationSQL = `SELECT scheduler_settings FROM organizations WHERE id = $1`

const templateSQL = `SELECT scheduler_settings FROM program_templates WHERE id = $1`

// Organization returns the organization-level overrides.
func (r *Repo) Organization(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error) {
	return r.load(ctx, organizationSQL, "organization", id)
}

// Template returns the program-template-level overrides.
func (r *Repo) Template(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error) {
	return r.load(ctx, templateSQL, "program_template", id)
}

func (r *Repo) load(ctx context.Context, sql, entity string, id uuid.UUID) (*domain.PartialSchedulerSettings, error) {
	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, id).Scan(&raw); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	var s domain.PartialSchedulerSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s %s: unmarshal scheduler_settings: %w", entity, id, err)
	}
	return &s, nil
}
