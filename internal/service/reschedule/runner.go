package reschedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// ErrShuttingDown is returned by Submit once Shutdown has started.
var ErrShuttingDown = errors.New("reschedule runner is shutting down")

const (
	staleMessage     = "job abandoned by a previous process"
	failWriteTimeout = 5 * time.Second
)

// Submit validates an accepted suggestion, stores a pending job and starts it
// in the background. A second job for the same plan group while one is in
// flight fails with a retryable *domain.ConcurrencyError.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.RescheduleJob, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.groups.GetByID(ctx, input.PlanGroupID)
	if err != nil {
		return nil, fmt.Errorf("get plan group: %w", err)
	}
	if g.StudentID != studentID {
		return nil, fmt.Errorf("plan group %s: %w", g.ID, domain.ErrForbidden)
	}
	if g.Status != domain.PlanStatusActive && g.Status != domain.PlanStatusPaused {
		return nil, domain.NewStateConflict(g.Status, domain.ActionReschedule)
	}
	if err := checkNewEnd(g, input.Suggestion, s.today()); err != nil {
		return nil, err
	}

	job := &domain.RescheduleJob{
		ID:          uuid.New(),
		PlanGroupID: g.ID,
		StudentID:   studentID,
		Suggestion:  input.Suggestion,
		Status:      domain.JobStatusPending,
	}
	job.Suggestion.PlanGroupID = g.ID

	if err := s.reserve(g.ID, job.ID); err != nil {
		return nil, err
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		s.release(g.ID)
		s.wg.Done()
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.log.InfoContext(ctx, "reschedule job submitted",
		slog.String("job_id", job.ID.String()),
		slog.String("plan_group_id", g.ID.String()),
		slog.String("type", string(job.Suggestion.Type)),
	)

	go s.run(job, ctxutil.RequestIDFromCtx(ctx))

	return job, nil
}

// GetStatus returns one of the student's jobs.
func (s *Service) GetStatus(ctx context.Context, id uuid.UUID) (*domain.RescheduleJob, error) {
	studentID, ok := ctxutil.StudentIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.StudentID != studentID {
		return nil, fmt.Errorf("reschedule job %s: %w", id, domain.ErrForbidden)
	}
	return job, nil
}

// RecoverStale fails jobs left pending or processing by a process that died.
// It is called once at startup, before any job is submitted.
func (s *Service) RecoverStale(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.opts.StaleJobAfter)
	n, err := s.jobs.FailStale(ctx, cutoff, staleMessage)
	if err != nil {
		return 0, fmt.Errorf("fail stale jobs: %w", err)
	}
	if n > 0 {
		s.log.WarnContext(ctx, "stale reschedule jobs failed", slog.Int("count", n))
	}
	return n, nil
}

// Shutdown stops accepting jobs and waits for running ones. When ctx ends
// first, running jobs are cancelled; their rows are failed by RecoverStale on
// the next start.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-done
		return ctx.Err()
	}
}

// Wait blocks until every started job has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// run executes a job outside the submitting request. requestID ties its log
// lines to that request.
func (s *Service) run(job *domain.RescheduleJob, requestID string) {
	defer s.wg.Done()
	defer s.release(job.PlanGroupID)

	log := s.log.With(
		slog.String("job_id", job.ID.String()),
		slog.String("plan_group_id", job.PlanGroupID.String()),
		slog.String("request_id", requestID),
	)

	if err := s.sem.Acquire(s.root, 1); err != nil {
		s.fail(job, log, err)
		return
	}
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(s.root, s.opts.JobTimeout)
	defer cancel()

	summary, err := s.execute(ctx, job)
	if err != nil {
		s.fail(job, log, err)
		return
	}

	log.Info("reschedule job completed",
		slog.Int("plans_before", summary.PlansBeforeCount),
		slog.Int("plans_after", summary.PlansAfterCount),
	)
}

func (s *Service) fail(job *domain.RescheduleJob, log *slog.Logger, cause error) {
	log.Error("reschedule job failed", slog.String("error", cause.Error()))

	// The job context may be the reason for the failure.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(s.root), failWriteTimeout)
	defer cancel()
	if err := s.jobs.Fail(ctx, job.ID, failureMessage(cause)); err != nil {
		log.Error("mark job failed", slog.String("error", err.Error()))
	}
}

// failureMessage is what the student sees on a failed job.
func failureMessage(err error) string {
	var (
		ve *domain.ValidationError
		sc *domain.StateConflictError
		ce *domain.ConcurrencyError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &sc), errors.As(err, &ce):
		return err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "reschedule timed out; try again"
	default:
		return "reschedule failed; try again"
	}
}

// reserve claims the plan group and counts the job in s.wg before it is
// stored, so Shutdown cannot stop waiting between the two.
func (s *Service) reserve(planGroupID, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrShuttingDown
	}
	if _, busy := s.inflight[planGroupID]; busy {
		return &domain.ConcurrencyError{Reason: "a reschedule job is already in flight for this plan group", Retryable: true}
	}
	s.inflight[planGroupID] = jobID
	s.wg.Add(1)
	return nil
}

func (s *Service) release(planGroupID uuid.UUID) {
	s.mu.Lock()
	delete(s.inflight, planGroupID)
	s.mu.Unlock()
}

func (s *Service) busy(planGroupID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[planGroupID]
	return ok
}

// checkNewEnd requires an extension to move the end date later.
func checkNewEnd(g *domain.PlanGroup, sg domain.Suggestion, today domain.Date) error {
	if sg.Type != domain.SuggestionExtendPeriod {
		return nil
	}
	end := g.Period(today).End
	if !sg.NewEndDate.After(end) {
		return domain.NewValidationError("suggestion.new_end_date", "must be after the current end date "+end.String())
	}
	if sg.NewEndDate.Before(today) {
		return domain.NewValidationError("suggestion.new_end_date", "must not be in the past")
	}
	return nil
}

// InFlight returns the number of jobs reserved by this process.
func (s *Service) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}

// Draining reports whether Shutdown has been called.
func (s *Service) Draining() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
