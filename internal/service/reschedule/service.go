// Package reschedule runs accepted reschedule suggestions as background jobs
// and rolls executed reschedules back.
package reschedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/inputs"
)

type planGroupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	UpdateEndDate(ctx context.Context, id uuid.UUID, end domain.Date) error
}

type sessionRepo interface {
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ScheduledSession, error)
	InsertBatch(ctx context.Context, sessions []domain.ScheduledSession) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

type jobRepo interface {
	CreateJob(ctx context.Context, job *domain.RescheduleJob) error
	GetJob(ctx context.Context, id uuid.UUID) (*domain.RescheduleJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, progress int) error
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error
	Complete(ctx context.Context, id uuid.UUID, summary domain.RescheduleSummary, logID uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID, message string) error
	FailStale(ctx context.Context, cutoff time.Time, message string) (int, error)
	CreateLog(ctx context.Context, l *domain.RescheduleLog) error
	GetLog(ctx context.Context, id uuid.UUID) (*domain.RescheduleLog, error)
	LatestLogID(ctx context.Context, planGroupID uuid.UUID) (uuid.UUID, error)
	CreateRollback(ctx context.Context, rb *domain.RescheduleRollback) error
	RollbackExists(ctx context.Context, logID uuid.UUID) (bool, error)
}

type inputLoader interface {
	Load(ctx context.Context, group *domain.PlanGroup, period domain.DateRange) (*inputs.Bundle, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options bound the job runner.
type Options struct {
	MaxConcurrentJobs int64
	JobTimeout        time.Duration
	StaleJobAfter     time.Duration
}

// Progress checkpoints written while a job runs.
const (
	ProgressStarted   = 10
	ProgressLoaded    = 30
	ProgressAllocated = 60
)

// Service accepts reschedule jobs, runs them in the background and executes
// rollbacks.
type Service struct {
	groups   planGroupRepo
	sessions sessionRepo
	jobs     jobRepo
	loader   inputLoader
	audit    auditRepo
	tx       txManager
	opts     Options
	log      *slog.Logger
	now      func() time.Time

	sem *semaphore.Weighted
	wg  sync.WaitGroup

	// root outlives requests; Shutdown cancels it once its deadline passes.
	root   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	inflight map[uuid.UUID]uuid.UUID // plan group id -> job id
	closed   bool
}

// NewService creates a new reschedule service.
func NewService(
	log *slog.Logger,
	groups planGroupRepo,
	sessions sessionRepo,
	jobs jobRepo,
	loader inputLoader,
	audit auditRepo,
	tx txManager,
	opts Options,
) *Service {
	if opts.MaxConcurrentJobs < 1 {
		opts.MaxConcurrentJobs = 1
	}
	root, cancel := context.WithCancel(context.Background())
	return &Service{
		groups:   groups,
		sessions: sessions,
		jobs:     jobs,
		loader:   loader,
		audit:    audit,
		tx:       tx,
		opts:     opts,
		log:      log.With("service", "reschedule"),
		now:      time.Now,
		sem:      semaphore.NewWeighted(opts.MaxConcurrentJobs),
		root:     root,
		cancel:   cancel,
		inflight: make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now().UTC())
}
