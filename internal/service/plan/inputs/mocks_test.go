package inputs

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

var (
	_ contentRepo    = &contentRepoMock{}
	_ settingsRepo   = &settingsRepoMock{}
	_ exclusionRepo  = &exclusionRepoMock{}
	_ commitmentRepo = &commitmentRepoMock{}
	_ blockRepo      = &blockRepoMock{}
)

type contentRepoMock struct {
	ListByPlanGroupFunc func(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error)
	DurationTablesFunc  func(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]domain.DurationTable, error)

	calls struct {
		DurationTables []struct {
			ContentIDs []uuid.UUID
		}
	}
	lockDurationTables sync.RWMutex
}

func (mock *contentRepoMock) ListByPlanGroup(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error) {
	if mock.ListByPlanGroupFunc == nil {
		panic("contentRepoMock.ListByPlanGroupFunc: method is nil but contentRepo.ListByPlanGroup was just called")
	}
	return mock.ListByPlanGroupFunc(ctx, planGroupID)
}

func (mock *contentRepoMock) DurationTables(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]domain.DurationTable, error) {
	if mock.DurationTablesFunc == nil {
		panic("contentRepoMock.DurationTablesFunc: method is nil but contentRepo.DurationTables was just called")
	}
	mock.lockDurationTables.Lock()
	mock.calls.DurationTables = append(mock.calls.DurationTables, struct{ ContentIDs []uuid.UUID }{contentIDs})
	mock.lockDurationTables.Unlock()
	return mock.DurationTablesFunc(ctx, contentIDs)
}

func (mock *contentRepoMock) DurationTablesCalls() []struct{ ContentIDs []uuid.UUID } {
	mock.lockDurationTables.RLock()
	defer mock.lockDurationTables.RUnlock()
	return mock.calls.DurationTables
}

type settingsRepoMock struct {
	OrganizationFunc func(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error)
	TemplateFunc     func(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error)
}

func (mock *settingsRepoMock) Organization(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error) {
	if mock.OrganizationFunc == nil {
		panic("settingsRepoMock.OrganizationFunc: method is nil but settingsRepo.Organization was just called")
	}
	return mock.OrganizationFunc(ctx, id)
}

func (mock *settingsRepoMock) Template(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error) {
	if mock.TemplateFunc == nil {
		panic("settingsRepoMock.TemplateFunc: method is nil but settingsRepo.Template was just called")
	}
	return mock.TemplateFunc(ctx, id)
}

type exclusionRepoMock struct {
	ListFunc func(ctx context.Context, studentID uuid.UUID, from, to *domain.Date) ([]domain.ExclusionDay, error)
}

func (mock *exclusionRepoMock) List(ctx context.Context, studentID uuid.UUID, from, to *domain.Date) ([]domain.ExclusionDay, error) {
	if mock.ListFunc == nil {
		panic("exclusionRepoMock.ListFunc: method is nil but exclusionRepo.List was just called")
	}
	return mock.ListFunc(ctx, studentID, from, to)
}

type commitmentRepoMock struct {
	ListFunc func(ctx context.Context, studentID uuid.UUID) ([]domain.FixedCommitment, error)
}

func (mock *commitmentRepoMock) List(ctx context.Context, studentID uuid.UUID) ([]domain.FixedCommitment, error) {
	if mock.ListFunc == nil {
		panic("commitmentRepoMock.ListFunc: method is nil but commitmentRepo.List was just called")
	}
	return mock.ListFunc(ctx, studentID)
}

type blockRepoMock struct {
	ListBlocksFunc func(ctx context.Context, id uuid.UUID) ([]domain.TimeBlock, error)
}

func (mock *blockRepoMock) ListBlocks(ctx context.Context, id uuid.UUID) ([]domain.TimeBlock, error) {
	if mock.ListBlocksFunc == nil {
		panic("blockRepoMock.ListBlocksFunc: method is nil but blockRepo.ListBlocks was just called")
	}
	return mock.ListBlocksFunc(ctx, id)
}
