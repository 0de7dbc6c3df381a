// Package plan implements the plan-group use cases: lifecycle-gated CRUD,
// content management, plan generation, session progress, delay detection,
// reschedule suggestions and intra-day reordering.
package plan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/delay"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/inputs"
)

type planGroupRepo interface {
	Create(ctx context.Context, g *domain.PlanGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	List(ctx context.Context, filter domain.PlanGroupFilter) ([]domain.PlanGroup, int, error)
	Update(ctx context.Context, g *domain.PlanGroup) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PlanStatus) error
	UpdatePeriodStart(ctx context.Context, id uuid.UUID, start domain.Date) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentRepo interface {
	ListByPlanGroup(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error)
	GetCatalog(ctx context.Context, id uuid.UUID) (*domain.CatalogContent, error)
	Create(ctx context.Context, item *domain.ContentItem) error
	Delete(ctx context.Context, planGroupID, id uuid.UUID) error
}

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledSession, error)
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error)
	InsertBatch(ctx context.Context, sessions []domain.ScheduledSession) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus, progress int) error
	UpdateTimes(ctx context.Context, updates []domain.SessionTimes) error
	DeleteByPlanGroup(ctx context.Context, planGroupID uuid.UUID) (int, error)
}

type blockSetRepo interface {
	Owner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type jobRepo interface {
	HasInFlight(ctx context.Context, planGroupID uuid.UUID) (bool, error)
}

type inputLoader interface {
	Load(ctx context.Context, group *domain.PlanGroup, period domain.DateRange) (*inputs.Bundle, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, studentID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit    = 20
	MaxListLimit        = 100
	DefaultHistoryLimit = 50
)

// Service provides plan-group operations.
type Service struct {
	groups     planGroupRepo
	contents   contentRepo
	sessions   sessionRepo
	blockSets  blockSetRepo
	jobs       jobRepo
	loader     inputLoader
	audit      auditRepo
	tx         txManager
	thresholds delay.Thresholds
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new plan service.
func NewService(
	log *slog.Logger,
	groups planGroupRepo,
	contents contentRepo,
	sessions sessionRepo,
	blockSets blockSetRepo,
	jobs jobRepo,
	loader inputLoader,
	audit auditRepo,
	tx txManager,
	thresholds delay.Thresholds,
) *Service {
	return &Service{
		groups:     groups,
		contents:   contents,
		sessions:   sessions,
		blockSets:  blockSets,
		jobs:       jobs,
		loader:     loader,
		audit:      audit,
		tx:         tx,
		thresholds: thresholds,
		log:        log.With("service", "plan"),
		now:        time.Now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now().UTC())
}
