package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/calendar"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan"
	"github.com/heartmarshall/studyplan-backend/internal/service/reschedule"
)

var (
	_ calendarService   = &calendarServiceMock{}
	_ planService       = &planServiceMock{}
	_ rescheduleService = &rescheduleServiceMock{}
)

type calendarServiceMock struct {
	ComputeAvailableDatesFunc func(input calendar.AvailableDatesInput) ([]domain.Date, error)
	ListExclusionsFunc        func(ctx context.Context, input calendar.ListExclusionsInput) ([]domain.ExclusionDay, error)
	CreateExclusionFunc       func(ctx context.Context, input calendar.CreateExclusionInput) (*domain.ExclusionDay, error)
	DeleteExclusionFunc       func(ctx context.Context, id uuid.UUID) error
	ListCommitmentsFunc       func(ctx context.Context) ([]domain.FixedCommitment, error)
	CreateCommitmentFunc      func(ctx context.Context, input calendar.CreateCommitmentInput) (*domain.FixedCommitment, error)
	DeleteCommitmentFunc      func(ctx context.Context, id uuid.UUID) error
	CreateBlockSetFunc        func(ctx context.Context, input calendar.CreateBlockSetInput) (*domain.BlockSet, error)
	GetBlockSetFunc           func(ctx context.Context, id uuid.UUID) (*domain.BlockSet, error)

	calls struct {
		ComputeAvailableDates []struct {
			Input calendar.AvailableDatesInput
		}
		ListExclusions []struct {
			Ctx   context.Context
			Input calendar.ListExclusionsInput
		}
		CreateExclusion []struct {
			Ctx   context.Context
			Input calendar.CreateExclusionInput
		}
		DeleteExclusion []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCommitments []struct {
			Ctx context.Context
		}
		CreateCommitment []struct {
			Ctx   context.Context
			Input calendar.CreateCommitmentInput
		}
		DeleteCommitment []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateBlockSet []struct {
			Ctx   context.Context
			Input calendar.CreateBlockSetInput
		}
		GetBlockSet []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockComputeAvailableDates sync.RWMutex
	lockListExclusions        sync.RWMutex
	lockCreateExclusion       sync.RWMutex
	lockDeleteExclusion       sync.RWMutex
	lockListCommitments       sync.RWMutex
	lockCreateCommitment      sync.RWMutex
	lockDeleteCommitment      sync.RWMutex
	lockCreateBlockSet        sync.RWMutex
	lockGetBlockSet           sync.RWMutex
}

func (mock *calendarServiceMock) ComputeAvailableDates(input calendar.AvailableDatesInput) ([]domain.Date, error) {
	if mock.ComputeAvailableDatesFunc == nil {
		panic("calendarServiceMock.ComputeAvailableDatesFunc: method is nil but calendarService.ComputeAvailableDates was just called")
	}
	callInfo := struct {
		Input calendar.AvailableDatesInput
	}{Input: input}
	mock.lockComputeAvailableDates.Lock()
	mock.calls.ComputeAvailableDates = append(mock.calls.ComputeAvailableDates, callInfo)
	mock.lockComputeAvailableDates.Unlock()
	return mock.ComputeAvailableDatesFunc(input)
}

func (mock *calendarServiceMock) ComputeAvailableDatesCalls() []struct {
	Input calendar.AvailableDatesInput
} {
	var calls []struct {
		Input calendar.AvailableDatesInput
	}
	mock.lockComputeAvailableDates.RLock()
	calls = mock.calls.ComputeAvailableDates
	mock.lockComputeAvailableDates.RUnlock()
	return calls
}

func (mock *calendarServiceMock) ListExclusions(ctx context.Context, input calendar.ListExclusionsInput) ([]domain.ExclusionDay, error) {
	if mock.ListExclusionsFunc == nil {
		panic("calendarServiceMock.ListExclusionsFunc: method is nil but calendarService.ListExclusions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input calendar.ListExclusionsInput
	}{Ctx: ctx, Input: input}
	mock.lockListExclusions.Lock()
	mock.calls.ListExclusions = append(mock.calls.ListExclusions, callInfo)
	mock.lockListExclusions.Unlock()
	return mock.ListExclusionsFunc(ctx, input)
}

func (mock *calendarServiceMock) ListExclusionsCalls() []struct {
	Ctx   context.Context
	Input calendar.ListExclusionsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input calendar.ListExclusionsInput
	}
	mock.lockListExclusions.RLock()
	calls = mock.calls.ListExclusions
	mock.lockListExclusions.RUnlock()
	return calls
}

func (mock *calendarServiceMock) CreateExclusion(ctx context.Context, input calendar.CreateExclusionInput) (*domain.ExclusionDay, error) {
	if mock.CreateExclusionFunc == nil {
		panic("calendarServiceMock.CreateExclusionFunc: method is nil but calendarService.CreateExclusion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input calendar.CreateExclusionInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateExclusion.Lock()
	mock.calls.CreateExclusion = append(mock.calls.CreateExclusion, callInfo)
	mock.lockCreateExclusion.Unlock()
	return mock.CreateExclusionFunc(ctx, input)
}

func (mock *calendarServiceMock) CreateExclusionCalls() []struct {
	Ctx   context.Context
	Input calendar.CreateExclusionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input calendar.CreateExclusionInput
	}
	mock.lockCreateExclusion.RLock()
	calls = mock.calls.CreateExclusion
	mock.lockCreateExclusion.RUnlock()
	return calls
}

func (mock *calendarServiceMock) DeleteExclusion(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteExclusionFunc == nil {
		panic("calendarServiceMock.DeleteExclusionFunc: method is nil but calendarService.DeleteExclusion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteExclusion.Lock()
	mock.calls.DeleteExclusion = append(mock.calls.DeleteExclusion, callInfo)
	mock.lockDeleteExclusion.Unlock()
	return mock.DeleteExclusionFunc(ctx, id)
}

func (mock *calendarServiceMock) DeleteExclusionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteExclusion.RLock()
	calls = mock.calls.DeleteExclusion
	mock.lockDeleteExclusion.RUnlock()
	return calls
}

func (mock *calendarServiceMock) ListCommitments(ctx context.Context) ([]domain.FixedCommitment, error) {
	if mock.ListCommitmentsFunc == nil {
		panic("calendarServiceMock.ListCommitmentsFunc: method is nil but calendarService.ListCommitments was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCommitments.Lock()
	mock.calls.ListCommitments = append(mock.calls.ListCommitments, callInfo)
	mock.lockListCommitments.Unlock()
	return mock.ListCommitmentsFunc(ctx)
}

func (mock *calendarServiceMock) ListCommitmentsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListCommitments.RLock()
	calls = mock.calls.ListCommitments
	mock.lockListCommitments.RUnlock()
	return calls
}

func (mock *calendarServiceMock) CreateCommitment(ctx context.Context, input calendar.CreateCommitmentInput) (*domain.FixedCommitment, error) {
	if mock.CreateCommitmentFunc == nil {
		panic("calendarServiceMock.CreateCommitmentFunc: method is nil but calendarService.CreateCommitment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input calendar.CreateCommitmentInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCommitment.Lock()
	mock.calls.CreateCommitment = append(mock.calls.CreateCommitment, callInfo)
	mock.lockCreateCommitment.Unlock()
	return mock.CreateCommitmentFunc(ctx, input)
}

func (mock *calendarServiceMock) CreateCommitmentCalls() []struct {
	Ctx   context.Context
	Input calendar.CreateCommitmentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input calendar.CreateCommitmentInput
	}
	mock.lockCreateCommitment.RLock()
	calls = mock.calls.CreateCommitment
	mock.lockCreateCommitment.RUnlock()
	return calls
}

func (mock *calendarServiceMock) DeleteCommitment(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCommitmentFunc == nil {
		panic("calendarServiceMock.DeleteCommitmentFunc: method is nil but calendarService.DeleteCommitment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCommitment.Lock()
	mock.calls.DeleteCommitment = append(mock.calls.DeleteCommitment, callInfo)
	mock.lockDeleteCommitment.Unlock()
	return mock.DeleteCommitmentFunc(ctx, id)
}

func (mock *calendarServiceMock) DeleteCommitmentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteCommitment.RLock()
	calls = mock.calls.DeleteCommitment
	mock.lockDeleteCommitment.RUnlock()
	return calls
}

func (mock *calendarServiceMock) CreateBlockSet(ctx context.Context, input calendar.CreateBlockSetInput) (*domain.BlockSet, error) {
	if mock.CreateBlockSetFunc == nil {
		panic("calendarServiceMock.CreateBlockSetFunc: method is nil but calendarService.CreateBlockSet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input calendar.CreateBlockSetInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBlockSet.Lock()
	mock.calls.CreateBlockSet = append(mock.calls.CreateBlockSet, callInfo)
	mock.lockCreateBlockSet.Unlock()
	return mock.CreateBlockSetFunc(ctx, input)
}

func (mock *calendarServiceMock) CreateBlockSetCalls() []struct {
	Ctx   context.Context
	Input calendar.CreateBlockSetInput
} {
	var calls []struct {
		Ctx   context.Context
		Input calendar.CreateBlockSetInput
	}
	mock.lockCreateBlockSet.RLock()
	calls = mock.calls.CreateBlockSet
	mock.lockCreateBlockSet.RUnlock()
	return calls
}

func (mock *calendarServiceMock) GetBlockSet(ctx context.Context, id uuid.UUID) (*domain.BlockSet, error) {
	if mock.GetBlockSetFunc == nil {
		panic("calendarServiceMock.GetBlockSetFunc: method is nil but calendarService.GetBlockSet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetBlockSet.Lock()
	mock.calls.GetBlockSet = append(mock.calls.GetBlockSet, callInfo)
	mock.lockGetBlockSet.Unlock()
	return mock.GetBlockSetFunc(ctx, id)
}

func (mock *calendarServiceMock) GetBlockSetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetBlockSet.RLock()
	calls = mock.calls.GetBlockSet
	mock.lockGetBlockSet.RUnlock()
	return calls
}

type planServiceMock struct {
	CreatePlanGroupFunc     func(ctx context.Context, input plan.CreatePlanGroupInput) (*domain.PlanGroup, error)
	GetPlanGroupFunc        func(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	ListPlanGroupsFunc      func(ctx context.Context, input plan.ListPlanGroupsInput) ([]domain.PlanGroup, int, error)
	UpdatePlanGroupFunc     func(ctx context.Context, input plan.UpdatePlanGroupInput) (*domain.PlanGroup, error)
	DeletePlanGroupFunc     func(ctx context.Context, id uuid.UUID) error
	TransitionStatusFunc    func(ctx context.Context, input plan.TransitionStatusInput) (*domain.PlanGroup, error)
	GetConstraintsFunc      func(ctx context.Context, id uuid.UUID) (*plan.Constraints, error)
	HistoryFunc             func(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error)
	AddContentFunc          func(ctx context.Context, input plan.AddContentInput) (*domain.ContentItem, error)
	ListContentsFunc        func(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error)
	RemoveContentFunc       func(ctx context.Context, planGroupID uuid.UUID, itemID uuid.UUID) error
	GeneratePlanFunc        func(ctx context.Context, planGroupID uuid.UUID) (*plan.GenerateResult, error)
	ListSessionsFunc        func(ctx context.Context, input plan.ListSessionsInput) ([]domain.ScheduledSession, error)
	UpdateSessionStatusFunc func(ctx context.Context, input plan.UpdateSessionStatusInput) (*domain.ScheduledSession, error)
	DetectDelayFunc         func(ctx context.Context, planGroupID uuid.UUID) (*domain.DelayReport, error)
	SuggestRescheduleFunc   func(ctx context.Context, planGroupID uuid.UUID) ([]domain.Suggestion, error)
	ReorderDayFunc          func(ctx context.Context, input plan.ReorderDayInput) (*plan.ReorderOutcome, error)

	calls struct {
		CreatePlanGroup []struct {
			Ctx   context.Context
			Input plan.CreatePlanGroupInput
		}
		GetPlanGroup []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPlanGroups []struct {
			Ctx   context.Context
			Input plan.ListPlanGroupsInput
		}
		UpdatePlanGroup []struct {
			Ctx   context.Context
			Input plan.UpdatePlanGroupInput
		}
		DeletePlanGroup []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		TransitionStatus []struct {
			Ctx   context.Context
			Input plan.TransitionStatusInput
		}
		GetConstraints []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		History []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Limit int
		}
		AddContent []struct {
			Ctx   context.Context
			Input plan.AddContentInput
		}
		ListContents []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
		RemoveContent []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
			ItemID      uuid.UUID
		}
		GeneratePlan []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
		ListSessions []struct {
			Ctx   context.Context
			Input plan.ListSessionsInput
		}
		UpdateSessionStatus []struct {
			Ctx   context.Context
			Input plan.UpdateSessionStatusInput
		}
		DetectDelay []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
		SuggestReschedule []struct {
			Ctx         context.Context
			PlanGroupID uuid.UUID
		}
		ReorderDay []struct {
			Ctx   context.Context
			Input plan.ReorderDayInput
		}
	}
	lockCreatePlanGroup     sync.RWMutex
	lockGetPlanGroup        sync.RWMutex
	lockListPlanGroups      sync.RWMutex
	lockUpdatePlanGroup     sync.RWMutex
	lockDeletePlanGroup     sync.RWMutex
	lockTransitionStatus    sync.RWMutex
	lockGetConstraints      sync.RWMutex
	lockHistory             sync.RWMutex
	lockAddContent          sync.RWMutex
	lockListContents        sync.RWMutex
	lockRemoveContent       sync.RWMutex
	lockGeneratePlan        sync.RWMutex
	lockListSessions        sync.RWMutex
	lockUpdateSessionStatus sync.RWMutex
	lockDetectDelay         sync.RWMutex
	lockSuggestReschedule   sync.RWMutex
	lockReorderDay          sync.RWMutex
}

func (mock *planServiceMock) CreatePlanGroup(ctx context.Context, input plan.CreatePlanGroupInput) (*domain.PlanGroup, error) {
	if mock.CreatePlanGroupFunc == nil {
		panic("planServiceMock.CreatePlanGroupFunc: method is nil but planService.CreatePlanGroup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.CreatePlanGroupInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePlanGroup.Lock()
	mock.calls.CreatePlanGroup = append(mock.calls.CreatePlanGroup, callInfo)
	mock.lockCreatePlanGroup.Unlock()
	return mock.CreatePlanGroupFunc(ctx, input)
}

func (mock *planServiceMock) CreatePlanGroupCalls() []struct {
	Ctx   context.Context
	Input plan.CreatePlanGroupInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.CreatePlanGroupInput
	}
	mock.lockCreatePlanGroup.RLock()
	calls = mock.calls.CreatePlanGroup
	mock.lockCreatePlanGroup.RUnlock()
	return calls
}

func (mock *planServiceMock) GetPlanGroup(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error) {
	if mock.GetPlanGroupFunc == nil {
		panic("planServiceMock.GetPlanGroupFunc: method is nil but planService.GetPlanGroup was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPlanGroup.Lock()
	mock.calls.GetPlanGroup = append(mock.calls.GetPlanGroup, callInfo)
	mock.lockGetPlanGroup.Unlock()
	return mock.GetPlanGroupFunc(ctx, id)
}

func (mock *planServiceMock) GetPlanGroupCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetPlanGroup.RLock()
	calls = mock.calls.GetPlanGroup
	mock.lockGetPlanGroup.RUnlock()
	return calls
}

func (mock *planServiceMock) ListPlanGroups(ctx context.Context, input plan.ListPlanGroupsInput) ([]domain.PlanGroup, int, error) {
	if mock.ListPlanGroupsFunc == nil {
		panic("planServiceMock.ListPlanGroupsFunc: method is nil but planService.ListPlanGroups was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.ListPlanGroupsInput
	}{Ctx: ctx, Input: input}
	mock.lockListPlanGroups.Lock()
	mock.calls.ListPlanGroups = append(mock.calls.ListPlanGroups, callInfo)
	mock.lockListPlanGroups.Unlock()
	return mock.ListPlanGroupsFunc(ctx, input)
}

func (mock *planServiceMock) ListPlanGroupsCalls() []struct {
	Ctx   context.Context
	Input plan.ListPlanGroupsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.ListPlanGroupsInput
	}
	mock.lockListPlanGroups.RLock()
	calls = mock.calls.ListPlanGroups
	mock.lockListPlanGroups.RUnlock()
	return calls
}

func (mock *planServiceMock) UpdatePlanGroup(ctx context.Context, input plan.UpdatePlanGroupInput) (*domain.PlanGroup, error) {
	if mock.UpdatePlanGroupFunc == nil {
		panic("planServiceMock.UpdatePlanGroupFunc: method is nil but planService.UpdatePlanGroup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.UpdatePlanGroupInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePlanGroup.Lock()
	mock.calls.UpdatePlanGroup = append(mock.calls.UpdatePlanGroup, callInfo)
	mock.lockUpdatePlanGroup.Unlock()
	return mock.UpdatePlanGroupFunc(ctx, input)
}

func (mock *planServiceMock) UpdatePlanGroupCalls() []struct {
	Ctx   context.Context
	Input plan.UpdatePlanGroupInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.UpdatePlanGroupInput
	}
	mock.lockUpdatePlanGroup.RLock()
	calls = mock.calls.UpdatePlanGroup
	mock.lockUpdatePlanGroup.RUnlock()
	return calls
}

func (mock *planServiceMock) DeletePlanGroup(ctx context.Context, id uuid.UUID) error {
	if mock.DeletePlanGroupFunc == nil {
		panic("planServiceMock.DeletePlanGroupFunc: method is nil but planService.DeletePlanGroup was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeletePlanGroup.Lock()
	mock.calls.DeletePlanGroup = append(mock.calls.DeletePlanGroup, callInfo)
	mock.lockDeletePlanGroup.Unlock()
	return mock.DeletePlanGroupFunc(ctx, id)
}

func (mock *planServiceMock) DeletePlanGroupCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeletePlanGroup.RLock()
	calls = mock.calls.DeletePlanGroup
	mock.lockDeletePlanGroup.RUnlock()
	return calls
}

func (mock *planServiceMock) TransitionStatus(ctx context.Context, input plan.TransitionStatusInput) (*domain.PlanGroup, error) {
	if mock.TransitionStatusFunc == nil {
		panic("planServiceMock.TransitionStatusFunc: method is nil but planService.TransitionStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.TransitionStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockTransitionStatus.Lock()
	mock.calls.TransitionStatus = append(mock.calls.TransitionStatus, callInfo)
	mock.lockTransitionStatus.Unlock()
	return mock.TransitionStatusFunc(ctx, input)
}

func (mock *planServiceMock) TransitionStatusCalls() []struct {
	Ctx   context.Context
	Input plan.TransitionStatusInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.TransitionStatusInput
	}
	mock.lockTransitionStatus.RLock()
	calls = mock.calls.TransitionStatus
	mock.lockTransitionStatus.RUnlock()
	return calls
}

func (mock *planServiceMock) GetConstraints(ctx context.Context, id uuid.UUID) (*plan.Constraints, error) {
	if mock.GetConstraintsFunc == nil {
		panic("planServiceMock.GetConstraintsFunc: method is nil but planService.GetConstraints was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetConstraints.Lock()
	mock.calls.GetConstraints = append(mock.calls.GetConstraints, callInfo)
	mock.lockGetConstraints.Unlock()
	return mock.GetConstraintsFunc(ctx, id)
}

func (mock *planServiceMock) GetConstraintsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetConstraints.RLock()
	calls = mock.calls.GetConstraints
	mock.lockGetConstraints.RUnlock()
	return calls
}

func (mock *planServiceMock) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("planServiceMock.HistoryFunc: method is nil but planService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Limit int
	}{Ctx: ctx, ID: id, Limit: limit}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, id, limit)
}

func (mock *planServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Limit int
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *planServiceMock) AddContent(ctx context.Context, input plan.AddContentInput) (*domain.ContentItem, error) {
	if mock.AddContentFunc == nil {
		panic("planServiceMock.AddContentFunc: method is nil but planService.AddContent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.AddContentInput
	}{Ctx: ctx, Input: input}
	mock.lockAddContent.Lock()
	mock.calls.AddContent = append(mock.calls.AddContent, callInfo)
	mock.lockAddContent.Unlock()
	return mock.AddContentFunc(ctx, input)
}

func (mock *planServiceMock) AddContentCalls() []struct {
	Ctx   context.Context
	Input plan.AddContentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.AddContentInput
	}
	mock.lockAddContent.RLock()
	calls = mock.calls.AddContent
	mock.lockAddContent.RUnlock()
	return calls
}

func (mock *planServiceMock) ListContents(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error) {
	if mock.ListContentsFunc == nil {
		panic("planServiceMock.ListContentsFunc: method is nil but planService.ListContents was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockListContents.Lock()
	mock.calls.ListContents = append(mock.calls.ListContents, callInfo)
	mock.lockListContents.Unlock()
	return mock.ListContentsFunc(ctx, planGroupID)
}

func (mock *planServiceMock) ListContentsCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockListContents.RLock()
	calls = mock.calls.ListContents
	mock.lockListContents.RUnlock()
	return calls
}

func (mock *planServiceMock) RemoveContent(ctx context.Context, planGroupID uuid.UUID, itemID uuid.UUID) error {
	if mock.RemoveContentFunc == nil {
		panic("planServiceMock.RemoveContentFunc: method is nil but planService.RemoveContent was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
		ItemID      uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID, ItemID: itemID}
	mock.lockRemoveContent.Lock()
	mock.calls.RemoveContent = append(mock.calls.RemoveContent, callInfo)
	mock.lockRemoveContent.Unlock()
	return mock.RemoveContentFunc(ctx, planGroupID, itemID)
}

func (mock *planServiceMock) RemoveContentCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
	ItemID      uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
		ItemID      uuid.UUID
	}
	mock.lockRemoveContent.RLock()
	calls = mock.calls.RemoveContent
	mock.lockRemoveContent.RUnlock()
	return calls
}

func (mock *planServiceMock) GeneratePlan(ctx context.Context, planGroupID uuid.UUID) (*plan.GenerateResult, error) {
	if mock.GeneratePlanFunc == nil {
		panic("planServiceMock.GeneratePlanFunc: method is nil but planService.GeneratePlan was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockGeneratePlan.Lock()
	mock.calls.GeneratePlan = append(mock.calls.GeneratePlan, callInfo)
	mock.lockGeneratePlan.Unlock()
	return mock.GeneratePlanFunc(ctx, planGroupID)
}

func (mock *planServiceMock) GeneratePlanCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockGeneratePlan.RLock()
	calls = mock.calls.GeneratePlan
	mock.lockGeneratePlan.RUnlock()
	return calls
}

func (mock *planServiceMock) ListSessions(ctx context.Context, input plan.ListSessionsInput) ([]domain.ScheduledSession, error) {
	if mock.ListSessionsFunc == nil {
		panic("planServiceMock.ListSessionsFunc: method is nil but planService.ListSessions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.ListSessionsInput
	}{Ctx: ctx, Input: input}
	mock.lockListSessions.Lock()
	mock.calls.ListSessions = append(mock.calls.ListSessions, callInfo)
	mock.lockListSessions.Unlock()
	return mock.ListSessionsFunc(ctx, input)
}

func (mock *planServiceMock) ListSessionsCalls() []struct {
	Ctx   context.Context
	Input plan.ListSessionsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.ListSessionsInput
	}
	mock.lockListSessions.RLock()
	calls = mock.calls.ListSessions
	mock.lockListSessions.RUnlock()
	return calls
}

func (mock *planServiceMock) UpdateSessionStatus(ctx context.Context, input plan.UpdateSessionStatusInput) (*domain.ScheduledSession, error) {
	if mock.UpdateSessionStatusFunc == nil {
		panic("planServiceMock.UpdateSessionStatusFunc: method is nil but planService.UpdateSessionStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.UpdateSessionStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSessionStatus.Lock()
	mock.calls.UpdateSessionStatus = append(mock.calls.UpdateSessionStatus, callInfo)
	mock.lockUpdateSessionStatus.Unlock()
	return mock.UpdateSessionStatusFunc(ctx, input)
}

func (mock *planServiceMock) UpdateSessionStatusCalls() []struct {
	Ctx   context.Context
	Input plan.UpdateSessionStatusInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.UpdateSessionStatusInput
	}
	mock.lockUpdateSessionStatus.RLock()
	calls = mock.calls.UpdateSessionStatus
	mock.lockUpdateSessionStatus.RUnlock()
	return calls
}

func (mock *planServiceMock) DetectDelay(ctx context.Context, planGroupID uuid.UUID) (*domain.DelayReport, error) {
	if mock.DetectDelayFunc == nil {
		panic("planServiceMock.DetectDelayFunc: method is nil but planService.DetectDelay was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockDetectDelay.Lock()
	mock.calls.DetectDelay = append(mock.calls.DetectDelay, callInfo)
	mock.lockDetectDelay.Unlock()
	return mock.DetectDelayFunc(ctx, planGroupID)
}

func (mock *planServiceMock) DetectDelayCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockDetectDelay.RLock()
	calls = mock.calls.DetectDelay
	mock.lockDetectDelay.RUnlock()
	return calls
}

func (mock *planServiceMock) SuggestReschedule(ctx context.Context, planGroupID uuid.UUID) ([]domain.Suggestion, error) {
	if mock.SuggestRescheduleFunc == nil {
		panic("planServiceMock.SuggestRescheduleFunc: method is nil but planService.SuggestReschedule was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}{Ctx: ctx, PlanGroupID: planGroupID}
	mock.lockSuggestReschedule.Lock()
	mock.calls.SuggestReschedule = append(mock.calls.SuggestReschedule, callInfo)
	mock.lockSuggestReschedule.Unlock()
	return mock.SuggestRescheduleFunc(ctx, planGroupID)
}

func (mock *planServiceMock) SuggestRescheduleCalls() []struct {
	Ctx         context.Context
	PlanGroupID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlanGroupID uuid.UUID
	}
	mock.lockSuggestReschedule.RLock()
	calls = mock.calls.SuggestReschedule
	mock.lockSuggestReschedule.RUnlock()
	return calls
}

func (mock *planServiceMock) ReorderDay(ctx context.Context, input plan.ReorderDayInput) (*plan.ReorderOutcome, error) {
	if mock.ReorderDayFunc == nil {
		panic("planServiceMock.ReorderDayFunc: method is nil but planService.ReorderDay was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input plan.ReorderDayInput
	}{Ctx: ctx, Input: input}
	mock.lockReorderDay.Lock()
	mock.calls.ReorderDay = append(mock.calls.ReorderDay, callInfo)
	mock.lockReorderDay.Unlock()
	return mock.ReorderDayFunc(ctx, input)
}

func (mock *planServiceMock) ReorderDayCalls() []struct {
	Ctx   context.Context
	Input plan.ReorderDayInput
} {
	var calls []struct {
		Ctx   context.Context
		Input plan.ReorderDayInput
	}
	mock.lockReorderDay.RLock()
	calls = mock.calls.ReorderDay
	mock.lockReorderDay.RUnlock()
	return calls
}

type rescheduleServiceMock struct {
	SubmitFunc           func(ctx context.Context, input reschedule.SubmitInput) (*domain.RescheduleJob, error)
	GetStatusFunc        func(ctx context.Context, id uuid.UUID) (*domain.RescheduleJob, error)
	ValidateRollbackFunc func(ctx context.Context, logID uuid.UUID) (*domain.RollbackCheck, error)
	ExecuteRollbackFunc  func(ctx context.Context, logID uuid.UUID) (*domain.RollbackResult, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input reschedule.SubmitInput
		}
		GetStatus []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ValidateRollback []struct {
			Ctx   context.Context
			LogID uuid.UUID
		}
		ExecuteRollback []struct {
			Ctx   context.Context
			LogID uuid.UUID
		}
	}
	lockSubmit           sync.RWMutex
	lockGetStatus        sync.RWMutex
	lockValidateRollback sync.RWMutex
	lockExecuteRollback  sync.RWMutex
}

func (mock *rescheduleServiceMock) Submit(ctx context.Context, input reschedule.SubmitInput) (*domain.RescheduleJob, error) {
	if mock.SubmitFunc == nil {
		panic("rescheduleServiceMock.SubmitFunc: method is nil but rescheduleService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reschedule.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *rescheduleServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input reschedule.SubmitInput
} {
	var calls []struct {
		Ctx   context.Context
		Input reschedule.SubmitInput
	}
	mock.lockSubmit.RLock()
	calls = mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *rescheduleServiceMock) GetStatus(ctx context.Context, id uuid.UUID) (*domain.RescheduleJob, error) {
	if mock.GetStatusFunc == nil {
		panic("rescheduleServiceMock.GetStatusFunc: method is nil but rescheduleService.GetStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetStatus.Lock()
	mock.calls.GetStatus = append(mock.calls.GetStatus, callInfo)
	mock.lockGetStatus.Unlock()
	return mock.GetStatusFunc(ctx, id)
}

func (mock *rescheduleServiceMock) GetStatusCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetStatus.RLock()
	calls = mock.calls.GetStatus
	mock.lockGetStatus.RUnlock()
	return calls
}

func (mock *rescheduleServiceMock) ValidateRollback(ctx context.Context, logID uuid.UUID) (*domain.RollbackCheck, error) {
	if mock.ValidateRollbackFunc == nil {
		panic("rescheduleServiceMock.ValidateRollbackFunc: method is nil but rescheduleService.ValidateRollback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		LogID uuid.UUID
	}{Ctx: ctx, LogID: logID}
	mock.lockValidateRollback.Lock()
	mock.calls.ValidateRollback = append(mock.calls.ValidateRollback, callInfo)
	mock.lockValidateRollback.Unlock()
	return mock.ValidateRollbackFunc(ctx, logID)
}

func (mock *rescheduleServiceMock) ValidateRollbackCalls() []struct {
	Ctx   context.Context
	LogID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		LogID uuid.UUID
	}
	mock.lockValidateRollback.RLock()
	calls = mock.calls.ValidateRollback
	mock.lockValidateRollback.RUnlock()
	return calls
}

func (mock *rescheduleServiceMock) ExecuteRollback(ctx context.Context, logID uuid.UUID) (*domain.RollbackResult, error) {
	if mock.ExecuteRollbackFunc == nil {
		panic("rescheduleServiceMock.ExecuteRollbackFunc: method is nil but rescheduleService.ExecuteRollback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		LogID uuid.UUID
	}{Ctx: ctx, LogID: logID}
	mock.lockExecuteRollback.Lock()
	mock.calls.ExecuteRollback = append(mock.calls.ExecuteRollback, callInfo)
	mock.lockExecuteRollback.Unlock()
	return mock.ExecuteRollbackFunc(ctx, logID)
}

func (mock *rescheduleServiceMock) ExecuteRollbackCalls() []struct {
	Ctx   context.Context
	LogID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		LogID uuid.UUID
	}
	mock.lockExecuteRollback.RLock()
	calls = mock.calls.ExecuteRollback
	mock.lockExecuteRollback.RUnlock()
	return calls
}

