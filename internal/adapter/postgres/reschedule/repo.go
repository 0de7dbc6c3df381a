// Package reschedule implements reschedule jobs, the insert-only reschedule
// log and the rollback trail using PostgreSQL.
package reschedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// inflightIndex guarantees at most one pending or processing job per plan group.
const inflightIndex = "ux_reschedule_jobs_inflight"

// Repo provides reschedule persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reschedule repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const jobColumns = `id, plan_group_id, student_id, suggestion, status, progress, error_message,
	plans_before_count, plans_after_count, log_id, created_at, started_at, finished_at`

const createJobSQL = `
INSERT INTO reschedule_jobs (id, plan_group_id, student_id, suggestion, status, progress, created_at)
VALUES ($1, $2, $3, $4, 'pending', 0, $5)`

const getJobSQL = `
SELECT ` + jobColumns + `
FROM reschedule_jobs
WHERE id = $1`

const markProcessingSQL = `
UPDATE reschedule_jobs
SET status = 'processing', progress = $2, started_at = now()
WHERE id = $1 AND status = 'pending'`

const updateProgressSQL = `
UPDATE reschedule_jobs SET progress = $2 WHERE id = $1 AND status = 'processing'`

const completeJobSQL = `
UPDATE reschedule_jobs
SET status = 'completed', progress = 100, plans_before_count = $2, plans_after_count = $3,
	log_id = $4, finished_at = now()
WHERE id = $1 AND status = 'processing'`

const failJobSQL = `
UPDATE reschedule_jobs
SET status = 'failed', error_message = $2, finished_at = now()
WHERE id = $1 AND status IN ('pending', 'processing')`

const failStaleSQL = `
UPDATE reschedule_jobs
SET status = 'failed', error_message = $2, finished_at = now()
WHERE status IN ('pending', 'processing') AND COALESCE(started_at, created_at) < $1`

const createLogSQL = `
INSERT INTO reschedule_logs (id, plan_group_id, job_id, student_id, suggestion_type, before_sessions,
	after_session_ids, prev_period_end, new_period_end, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getLogSQL = `
SELECT id, plan_group_id, job_id, student_id, suggestion_type, before_sessions, after_session_ids,
	prev_period_end, new_period_end, created_at
FROM reschedule_logs
WHERE id = $1`

const latestLogIDSQL = `
SELECT id FROM reschedule_logs
WHERE plan_group_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

const createRollbackSQL = `
INSERT INTO reschedule_rollbacks (id, log_id, restored_count, canceled_count, created_at)
VALUES ($1, $2, $3, $4, $5)`

const hasInFlightSQL = `
SELECT EXISTS(SELECT 1 FROM reschedule_jobs WHERE plan_group_id = $1 AND status IN ('pending', 'processing'))`

const rollbackExistsSQL = `
SELECT EXISTS(SELECT 1 FROM reschedule_rollbacks WHERE log_id = $1)`

// ---------------------------------------------------------------------------
// Jobs
// ---------------------------------------------------------------------------

// CreateJob inserts a pending job. Returns a retryable *domain.ConcurrencyError
// if the plan group already has a job in flight.
func (r *Repo) CreateJob(ctx context.Context, job *domain.RescheduleJob) error {
	suggestion, err := json.Marshal(job.Suggestion)
	if err != nil {
		return fmt.Errorf("reschedule_job %s: marshal suggestion: %w", job.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createJobSQL,
		job.ID, job.PlanGroupID, job.StudentID, suggestion, now)
	if err != nil {
		if postgres.IsUniqueViolation(err, inflightIndex) {
			return &domain.ConcurrencyError{Reason: "a reschedule job is already in flight for this plan group", Retryable: true}
		}
		return postgres.MapError(err, "reschedule_job", job.ID)
	}

	job.Status = domain.JobStatusPending
	job.Progress = 0
	job.CreatedAt = now
	return nil
}

// GetJob returns a job by id.
func (r *Repo) GetJob(ctx context.Context, id uuid.UUID) (*domain.RescheduleJob, error) {
	var row jobRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getJobSQL, id); err != nil {
		return nil, postgres.MapError(err, "reschedule_job", id)
	}
	return row.toDomain()
}

// MarkProcessing moves a pending job to processing at the given progress.
func (r *Repo) MarkProcessing(ctx context.Context, id uuid.UUID, progress int) error {
	return r.execJob(ctx, id, markProcessingSQL, id, progress)
}

// UpdateProgress records a progress checkpoint of a processing job.
func (r *Repo) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error {
	return r.execJob(ctx, id, updateProgressSQL, id, progress)
}

// Complete marks a processing job completed with its summary and log.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, summary domain.RescheduleSummary, logID uuid.UUID) error {
	return r.execJob(ctx, id, completeJobSQL, id, summary.PlansBeforeCount, summary.PlansAfterCount, logID)
}

// Fail marks a non-terminal job failed.
func (r *Repo) Fail(ctx context.Context, id uuid.UUID, message string) error {
	return r.execJob(ctx, id, failJobSQL, id, message)
}

// FailStale fails every non-terminal job that started (or was queued)
// before cutoff and returns how many were affected.
func (r *Repo) FailStale(ctx context.Context, cutoff time.Time, message string) (int, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, failStaleSQL, cutoff.UTC(), message)
	if err != nil {
		return 0, fmt.Errorf("fail stale reschedule_jobs: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

// HasInFlight reports whether a pending or processing job exists for the plan group.
func (r *Repo) HasInFlight(ctx context.Context, planGroupID uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, hasInFlightSQL, planGroupID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check reschedule_jobs: %w", err)
	}
	return exists, nil
}

func (r *Repo) execJob(ctx context.Context, id uuid.UUID, sql string, args ...any) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "reschedule_job", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("reschedule_job %s in expected status: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Logs
// ---------------------------------------------------------------------------

// CreateLog inserts a reschedule log. Logs are never updated.
func (r *Repo) CreateLog(ctx context.Context, l *domain.RescheduleLog) error {
	before, err := marshalSnapshot(l.BeforeSessions)
	if err != nil {
		return fmt.Errorf("reschedule_log %s: %w", l.ID, err)
	}

	afterIDs := l.AfterSessionIDs
	if afterIDs == nil {
		afterIDs = []uuid.UUID{}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createLogSQL,
		l.ID,
		l.PlanGroupID,
		l.JobID,
		l.StudentID,
		string(l.SuggestionType),
		before,
		afterIDs,
		postgres.NullDate(l.PrevPeriodEnd),
		postgres.NullDate(l.NewPeriodEnd),
		now,
	)
	if err != nil {
		return postgres.MapError(err, "reschedule_log", l.ID)
	}

	l.CreatedAt = now
	return nil
}

// GetLog returns a reschedule log by id.
func (r *Repo) GetLog(ctx context.Context, id uuid.UUID) (*domain.RescheduleLog, error) {
	var row logRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getLogSQL, id); err != nil {
		return nil, postgres.MapError(err, "reschedule_log", id)
	}

	before, err := unmarshalSnapshot(row.BeforeSessions)
	if err != nil {
		return nil, fmt.Errorf("reschedule_log %s: %w", id, err)
	}

	return &domain.RescheduleLog{
		ID:              row.ID,
		PlanGroupID:     row.PlanGroupID,
		JobID:           row.JobID,
		StudentID:       row.StudentID,
		SuggestionType:  domain.SuggestionType(row.SuggestionType),
		BeforeSessions:  before,
		AfterSessionIDs: row.AfterSessionIDs,
		PrevPeriodEnd:   postgres.ToDatePtr(row.PrevPeriodEnd),
		NewPeriodEnd:    postgres.ToDatePtr(row.NewPeriodEnd),
		CreatedAt:       row.CreatedAt,
	}, nil
}

// LatestLogID returns the id of the most recent log of a plan group.
func (r *Repo) LatestLogID(ctx context.Context, planGroupID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, latestLogIDSQL, planGroupID).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "reschedule_log of plan_group", planGroupID)
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Rollbacks
// ---------------------------------------------------------------------------

// CreateRollback records a rollback. Returns domain.ErrAlreadyExists if the
// log was already rolled back.
func (r *Repo) CreateRollback(ctx context.Context, rb *domain.RescheduleRollback) error {
	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createRollbackSQL,
		rb.ID, rb.LogID, rb.RestoredCount, rb.CanceledCount, now)
	if err != nil {
		return postgres.MapError(err, "reschedule_rollback", rb.ID)
	}
	rb.CreatedAt = now
	return nil
}

// RollbackExists reports whether a log has been rolled back.
func (r *Repo) RollbackExists(ctx context.Context, logID uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, rollbackExistsSQL, logID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check reschedule_rollbacks: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type jobRow struct {
	ID               uuid.UUID  `db:"id"`
	PlanGroupID      uuid.UUID  `db:"plan_group_id"`
	StudentID        uuid.UUID  `db:"student_id"`
	Suggestion       []byte     `db:"suggestion"`
	Status           string     `db:"status"`
	Progress         int16      `db:"progress"`
	ErrorMessage     *string    `db:"error_message"`
	PlansBeforeCount *int       `db:"plans_before_count"`
	PlansAfterCount  *int       `db:"plans_after_count"`
	LogID            *uuid.UUID `db:"log_id"`
	CreatedAt        time.Time  `db:"created_at"`
	StartedAt        *time.Time `db:"started_at"`
	FinishedAt       *time.Time `db:"finished_at"`
}

func (row *jobRow) toDomain() (*domain.RescheduleJob, error) {
	job := &domain.RescheduleJob{
		ID:           row.ID,
		PlanGroupID:  row.PlanGroupID,
		StudentID:    row.StudentID,
		Status:       domain.JobStatus(row.Status),
		Progress:     int(row.Progress),
		ErrorMessage: row.ErrorMessage,
		LogID:        row.LogID,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
	}
	if err := json.Unmarshal(row.Suggestion, &job.Suggestion); err != nil {
		return nil, fmt.Errorf("reschedule_job %s: unmarshal suggestion: %w", row.ID, err)
	}
	if row.PlansBeforeCount != nil && row.PlansAfterCount != nil {
		job.Result = &domain.RescheduleSummary{
			PlansBeforeCount: *row.PlansBeforeCount,
			PlansAfterCount:  *row.PlansAfterCount,
		}
	}
	return job, nil
}

type logRow struct {
	ID              uuid.UUID   `db:"id"`
	PlanGroupID     uuid.UUID   `db:"plan_group_id"`
	JobID           uuid.UUID   `db:"job_id"`
	StudentID       uuid.UUID   `db:"student_id"`
	SuggestionType  string      `db:"suggestion_type"`
	BeforeSessions  []byte      `db:"before_sessions"`
	AfterSessionIDs []uuid.UUID `db:"after_session_ids"`
	PrevPeriodEnd   pgtype.Date `db:"prev_period_end"`
	NewPeriodEnd    pgtype.Date `db:"new_period_end"`
	CreatedAt       time.Time   `db:"created_at"`
}
