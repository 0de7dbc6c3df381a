package plan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/inputs"
)

var (
	_ planGroupRepo = &planGroupRepoMock{}
	_ contentRepo   = &contentRepoMock{}
	_ sessionRepo   = &sessionRepoMock{}
	_ blockSetRepo  = &blockSetRepoMock{}
	_ jobRepo       = &jobRepoMock{}
	_ inputLoader   = &inputLoaderMock{}
	_ auditRepo     = &auditRepoMock{}
	_ txManager     = &txManagerMock{}
)

type planGroupRepoMock struct {
	CreateFunc            func(ctx context.Context, g *domain.PlanGroup) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	ListFunc              func(ctx context.Context, filter domain.PlanGroupFilter) ([]domain.PlanGroup, int, error)
	UpdateFunc            func(ctx context.Context, g *domain.PlanGroup) error
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status domain.PlanStatus) error
	UpdatePeriodStartFunc func(ctx context.Context, id uuid.UUID, start domain.Date) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			G   *domain.PlanGroup
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.PlanGroupFilter
		}
		Update []struct {
			Ctx context.Context
			G   *domain.PlanGroup
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.PlanStatus
		}
		UpdatePeriodStart []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Start domain.Date
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockList              sync.RWMutex
	lockUpdate            sync.RWMutex
	lockUpdateStatus      sync.RWMutex
	lockUpdatePeriodStart sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *planGroupRepoMock) Create(ctx context.Context, g *domain.PlanGroup) error {
	if mock.CreateFunc == nil {
		panic("planGroupRepoMock.CreateFunc: method is nil but planGroupRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.PlanGroup
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *planGroupRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.PlanGroup
} {
	var calls []struct {
		Ctx context.Context
		G   *domain.PlanGroup
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
	if mock.GetByIDFunc == nil {
		panic("planGroupRepoMock.GetByIDFunc: method is nil but planGroupRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *planGroupRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
	if mock.GetForUpdateFunc == nil {
		panic("planGroupRepoMock.GetForUpdateFunc: method is nil but planGroupRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *planGroupRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) List(ctx context.Context, filter domain.PlanGroupFilter) ([]domain.PlanGroup, int, error) {
	if mock.ListFunc == nil {
		panic("planGroupRepoMock.ListFunc: method is nil but planGroupRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PlanGroupFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *planGroupRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.PlanGroupFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.PlanGroupFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) Update(ctx context.Context, g *domain.PlanGroup) error {
	if mock.UpdateFunc == nil {
		panic("planGroupRepoMock.UpdateFunc: method is nil but planGroupRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.PlanGroup
	}{Ctx: ctx, G: g}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, g)
}

func (mock *planGroupRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	G   *domain.PlanGroup
} {
	var calls []struct {
		Ctx context.Context
		G   *domain.PlanGroup
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PlanStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("planGroupRepoMock.UpdateStatusFunc: method is nil but planGroupRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.PlanStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *planGroupRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.PlanStatus
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.PlanStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) UpdatePeriodStart(ctx context.Context, id uuid.UUID, start domain.Date) error {
	if mock.UpdatePeriodStartFunc == nil {
		panic("planGroupRepoMock.UpdatePeriodStartFunc: method is nil but planGroupRepo.UpdatePeriodStart was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Start domain.Date
	}{Ctx: ctx, ID: id, Start: start}
	mock.lockUpdatePeriodStart.Lock()
	mock.calls.UpdatePeriodStart = append(mock.calls.UpdatePeriodStart, callInfo)
	mock.lockUpdatePeriodStart.Unlock()
	return mock.UpdatePeriodStartFunc(ctx, id, start)
}

func (mock *planGroupRepoMock) UpdatePeriodStartCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Start domain.Date
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Start domain.Date
	}
	mock.lockUpdatePeriodStart.RLock()
	calls = mock.calls.UpdatePeriodStart
	mock.lockUpdatePeriodStart.RUnlock()
	return calls
}

func (mock *planGroupRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("planGroupRepoMock.DeleteFunc: method is nil but planGroupRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *planGroupRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type contentRepoMock struct {
	ListByPlanGroupFunc func(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error)
	GetCatalogFunc      func(ctx context.Context, id uuid.UUID) (*domain.CatalogContent, error)
	CreateFunc          func(ctx context.Context, item *domain.ContentItem) error
	DeleteFunc          func(ctx context.Context, planGroupID uuid.UUID, id uuid.UUID) error

	calls struct {
		ListByPlanGroup []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
		GetCatalog []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Item *domain.ContentItem
		}
		Delete []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
			ID          uuid.UUID
		}
	}
	lockListByPlanGroup sync.RWMutex
	lockGetCatalog      sync.RWMutex
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *contentRepoMock) ListByPlanGroup(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error) {
	if mock.ListByPlanGroupFunc == nil {
		panic("contentRepoMock.ListByPlanGroupFunc: method is nil but contentRepo.ListByPlanGroup was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockListByPlanGroup.Lock()
	mock.calls.ListByPlanGroup = append(mock.calls.ListByPlanGroup, callInfo)
	mock.lockListByPlanGroup.Unlock()
	return mock.ListByPlanGroupFunc(ctx, planGroupID)
}

func (mock *contentRepoMock) ListByPlanGroupCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockListByPlanGroup.RLock()
	calls = mock.calls.ListByPlanGroup
	mock.lockListByPlanGroup.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetCatalog(ctx context.Context, id uuid.UUID) (*domain.CatalogContent, error) {
	if mock.GetCatalogFunc == nil {
		panic("contentRepoMock.GetCatalogFunc: method is nil but contentRepo.GetCatalog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetCatalog.Lock()
	mock.calls.GetCatalog = append(mock.calls.GetCatalog, callInfo)
	mock.lockGetCatalog.Unlock()
	return mock.GetCatalogFunc(ctx, id)
}

func (mock *contentRepoMock) GetCatalogCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetCatalog.RLock()
	calls = mock.calls.GetCatalog
	mock.lockGetCatalog.RUnlock()
	return calls
}

func (mock *contentRepoMock) Create(ctx context.Context, item *domain.ContentItem) error {
	if mock.CreateFunc == nil {
		panic("contentRepoMock.CreateFunc: method is nil but contentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ContentItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *contentRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.ContentItem
} {
	var calls []struct {
		Ctx  context.Context
		Item *domain.ContentItem
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contentRepoMock) Delete(ctx context.Context, planGroupID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contentRepoMock.DeleteFunc: method is nil but contentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
		ID          uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, planGroupID, id)
}

func (mock *contentRepoMock) DeleteCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
	ID          uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
		ID          uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type sessionRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.ScheduledSession, error)
	ListFunc              func(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error)
	InsertBatchFunc       func(ctx context.Context, sessions []domain.ScheduledSession) error
	UpdateStatusFunc      func(ctx context.Context, id uuid.UUID, status domain.ItemStatus, progress int) error
	UpdateTimesFunc       func(ctx context.Context, updates []domain.SessionTimes) error
	DeleteByPlanGroupFunc func(ctx context.Context, planGroupID uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SessionFilter
		}
		InsertBatch []struct {
			Ctx      context.Context
			Sessions []domain.ScheduledSession
		}
		UpdateStatus []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Status   domain.ItemStatus
			Progress int
		}
		UpdateTimes []struct {
			Ctx     context.Context
			Updates []domain.SessionTimes
		}
		DeleteByPlanGroup []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockInsertBatch       sync.RWMutex
	lockUpdateStatus      sync.RWMutex
	lockUpdateTimes       sync.RWMutex
	lockDeleteByPlanGroup sync.RWMutex
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduledSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) List(ctx context.Context, filter domain.SessionFilter) ([]domain.ScheduledSession, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SessionFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SessionFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.SessionFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sessionRepoMock) InsertBatch(ctx context.Context, sessions []domain.ScheduledSession) error {
	if mock.InsertBatchFunc == nil {
		panic("sessionRepoMock.InsertBatchFunc: method is nil but sessionRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Sessions []domain.ScheduledSession
	}{Ctx: ctx, Sessions: sessions}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, sessions)
}

func (mock *sessionRepoMock) InsertBatchCalls() []struct {
	Ctx      context.Context
	Sessions []domain.ScheduledSession
} {
	var calls []struct {
		Ctx      context.Context
		Sessions []domain.ScheduledSession
	}
	mock.lockInsertBatch.RLock()
	calls = mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus, progress int) error {
	if mock.UpdateStatusFunc == nil {
		panic("sessionRepoMock.UpdateStatusFunc: method is nil but sessionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Status   domain.ItemStatus
		Progress int
	}{Ctx: ctx, ID: id, Status: status, Progress: progress}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, progress)
}

func (mock *sessionRepoMock) UpdateStatusCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Status   domain.ItemStatus
	Progress int
} {
	var calls []struct {
		Ctx      context.Context
		ID       uuid.UUID
		Status   domain.ItemStatus
		Progress int
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateTimes(ctx context.Context, updates []domain.SessionTimes) error {
	if mock.UpdateTimesFunc == nil {
		panic("sessionRepoMock.UpdateTimesFunc: method is nil but sessionRepo.UpdateTimes was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Updates []domain.SessionTimes
	}{Ctx: ctx, Updates: updates}
	mock.lockUpdateTimes.Lock()
	mock.calls.UpdateTimes = append(mock.calls.UpdateTimes, callInfo)
	mock.lockUpdateTimes.Unlock()
	return mock.UpdateTimesFunc(ctx, updates)
}

func (mock *sessionRepoMock) UpdateTimesCalls() []struct {
	Ctx     context.Context
	Updates []domain.SessionTimes
} {
	var calls []struct {
		Ctx     context.Context
		Updates []domain.SessionTimes
	}
	mock.lockUpdateTimes.RLock()
	calls = mock.calls.UpdateTimes
	mock.lockUpdateTimes.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteByPlanGroup(ctx context.Context, planGroupID uuid.UUID) (int, error) {
	if mock.DeleteByPlanGroupFunc == nil {
		panic("sessionRepoMock.DeleteByPlanGroupFunc: method is nil but sessionRepo.DeleteByPlanGroup was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockDeleteByPlanGroup.Lock()
	mock.calls.DeleteByPlanGroup = append(mock.calls.DeleteByPlanGroup, callInfo)
	mock.lockDeleteByPlanGroup.Unlock()
	return mock.DeleteByPlanGroupFunc(ctx, planGroupID)
}

func (mock *sessionRepoMock) DeleteByPlanGroupCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockDeleteByPlanGroup.RLock()
	calls = mock.calls.DeleteByPlanGroup
	mock.lockDeleteByPlanGroup.RUnlock()
	return calls
}

type blockSetRepoMock struct {
	OwnerFunc func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	calls struct {
		Owner []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockOwner sync.RWMutex
}

func (mock *blockSetRepoMock) Owner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if mock.OwnerFunc == nil {
		panic("blockSetRepoMock.OwnerFunc: method is nil but blockSetRepo.Owner was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockOwner.Lock()
	mock.calls.Owner = append(mock.calls.Owner, callInfo)
	mock.lockOwner.Unlock()
	return mock.OwnerFunc(ctx, id)
}

func (mock *blockSetRepoMock) OwnerCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockOwner.RLock()
	calls = mock.calls.Owner
	mock.lockOwner.RUnlock()
	return calls
}

type jobRepoMock struct {
	HasInFlightFunc func(ctx context.Context, planGroupID uuid.UUID) (bool, error)

	calls struct {
		HasInFlight []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
	}
	lockHasInFlight sync.RWMutex
}

func (mock *jobRepoMock) HasInFlight(ctx context.Context, planGroupID uuid.UUID) (bool, error) {
	if mock.HasInFlightFunc == nil {
		panic("jobRepoMock.HasInFlightFunc: method is nil but jobRepo.HasInFlight was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockHasInFlight.Lock()
	mock.calls.HasInFlight = append(mock.calls.HasInFlight, callInfo)
	mock.lockHasInFlight.Unlock()
	return mock.HasInFlightFunc(ctx, planGroupID)
}

func (mock *jobRepoMock) HasInFlightCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockHasInFlight.RLock()
	calls = mock.calls.HasInFlight
	mock.lockHasInFlight.RUnlock()
	return calls
}

type inputLoaderMock struct {
	LoadFunc func(ctx context.Context, group *domain.PlanGroup, period domain.DateRange) (*inputs.Bundle, error)

	calls struct {
		Load []struct {
			Ctx    context.Context
			Group  *domain.PlanGroup
			Period domain.DateRange
		}
	}
	lockLoad sync.RWMutex
}

func (mock *inputLoaderMock) Load(ctx context.Context, group *domain.PlanGroup, period domain.DateRange) (*inputs.Bundle, error) {
	if mock.LoadFunc == nil {
		panic("inputLoaderMock.LoadFunc: method is nil but inputLoader.Load was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Group  *domain.PlanGroup
		Period domain.DateRange
	}{Ctx: ctx, Group: group, Period: period}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, group, period)
}

func (mock *inputLoaderMock) LoadCalls() []struct {
	Ctx    context.Context
	Group  *domain.PlanGroup
	Period domain.DateRange
} {
	var calls []struct {
		Ctx    context.Context
		Group  *domain.PlanGroup
		Period domain.DateRange
	}
	mock.lockLoad.RLock()
	calls = mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

type auditRepoMock struct {
	LogFunc          func(ctx context.Context, record domain.AuditRecord) error
	ListByEntityFunc func(ctx context.Context, studentID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
		ListByEntity []struct {
			Ctx        context.Context
			StudentID  uuid.UUID
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
	}
	lockLog          sync.RWMutex
	lockListByEntity sync.RWMutex
}

func (mock *auditRepoMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	var calls []struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListByEntity(ctx context.Context, studentID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditRepoMock.ListByEntityFunc: method is nil but auditRepo.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		StudentID  uuid.UUID
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{Ctx: ctx, StudentID: studentID, EntityType: entityType, EntityID: entityID, Limit: limit}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, studentID, entityType, entityID, limit)
}

func (mock *auditRepoMock) ListByEntityCalls() []struct {
	Ctx        context.Context
	StudentID  uuid.UUID
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	var calls []struct {
		Ctx        context.Context
		StudentID  uuid.UUID
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}
	mock.lockListByEntity.RLock()
	calls = mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

