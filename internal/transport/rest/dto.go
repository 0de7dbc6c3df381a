package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

type planGroupResponse struct {
	ID             uuid.UUID                       `json:"id"`
	OrganizationID *uuid.UUID                      `json:"organization_id,omitempty"`
	TemplateID     *uuid.UUID                      `json:"template_id,omitempty"`
	BlockSetID     *uuid.UUID                      `json:"block_set_id,omitempty"`
	Name           string                          `json:"name"`
	Purpose        string                          `json:"purpose"`
	SchedulerType  string                          `json:"scheduler_type"`
	PeriodStart    *domain.Date                    `json:"period_start,omitempty"`
	PeriodEnd      *domain.Date                    `json:"period_end,omitempty"`
	TargetDate     *domain.Date                    `json:"target_date,omitempty"`
	Status         domain.PlanStatus               `json:"status"`
	Settings       domain.PartialSchedulerSettings `json:"settings"`
	CreatedAt      time.Time                       `json:"created_at"`
	UpdatedAt      time.Time                       `json:"updated_at"`
}

func toPlanGroup(g *domain.PlanGroup) planGroupResponse {
	return planGroupResponse{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		TemplateID:     g.TemplateID,
		BlockSetID:     g.BlockSetID,
		Name:           g.Name,
		Purpose:        g.Purpose,
		SchedulerType:  g.SchedulerType,
		PeriodStart:    g.PeriodStart,
		PeriodEnd:      g.PeriodEnd,
		TargetDate:     g.TargetDate,
		Status:         g.Status,
		Settings:       g.Settings,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

type contentItemResponse struct {
	ID            uuid.UUID          `json:"id"`
	ContentID     *uuid.UUID         `json:"content_id,omitempty"`
	ContentType   domain.ContentType `json:"content_type"`
	Title         string             `json:"title"`
	Subject       string             `json:"subject"`
	IsWeakSubject bool               `json:"is_weak_subject"`
	StartRange    int                `json:"start_range"`
	EndRange      int                `json:"end_range"`
	UnitMinutes   *int               `json:"unit_minutes,omitempty"`
	DisplayOrder  int                `json:"display_order"`
}

func toContentItem(c *domain.ContentItem) contentItemResponse {
	return contentItemResponse{
		ID:            c.ID,
		ContentID:     c.ContentID,
		ContentType:   c.ContentType,
		Title:         c.Title,
		Subject:       c.Subject,
		IsWeakSubject: c.IsWeakSubject,
		StartRange:    c.StartRange,
		EndRange:      c.EndRange,
		UnitMinutes:   c.UnitMinutes,
		DisplayOrder:  c.DisplayOrder,
	}
}

type sessionResponse struct {
	ID              uuid.UUID          `json:"id"`
	PlanGroupID     uuid.UUID          `json:"plan_group_id"`
	ContentItemID   uuid.UUID          `json:"content_item_id"`
	ContentType     domain.ContentType `json:"content_type"`
	Date            domain.Date        `json:"date"`
	BlockIndex      int                `json:"block_index"`
	Kind            domain.SessionKind `json:"kind"`
	StartRange      int                `json:"start_range"`
	EndRange        int                `json:"end_range"`
	StartTime       *domain.Clock      `json:"start_time,omitempty"`
	EndTime         *domain.Clock      `json:"end_time,omitempty"`
	DurationMinutes int                `json:"duration_minutes"`
	Sequence        int                `json:"sequence"`
	Status          domain.ItemStatus  `json:"status"`
	Progress        int                `json:"progress"`
	IsReschedulable bool               `json:"is_reschedulable"`
}

func toSession(s *domain.ScheduledSession) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		PlanGroupID:     s.PlanGroupID,
		ContentItemID:   s.ContentItemID,
		ContentType:     s.ContentType,
		Date:            s.Date,
		BlockIndex:      s.BlockIndex,
		Kind:            s.Kind,
		StartRange:      s.StartRange,
		EndRange:        s.EndRange,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Sequence:        s.Sequence,
		Status:          s.Status,
		Progress:        s.Progress,
		IsReschedulable: s.IsReschedulable,
	}
}

type exclusionResponse struct {
	ID     uuid.UUID              `json:"id"`
	Date   domain.Date            `json:"date"`
	Reason domain.ExclusionReason `json:"reason"`
}

type commitmentResponse struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	DayOfWeek     int          `json:"day_of_week"`
	Start         domain.Clock `json:"start"`
	End           domain.Clock `json:"end"`
	TravelMinutes int          `json:"travel_minutes"`
}

type blockResponse struct {
	DayOfWeek  int          `json:"day_of_week"`
	BlockIndex int          `json:"block_index"`
	Start      domain.Clock `json:"start"`
	End        domain.Clock `json:"end"`
}

type blockSetResponse struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Blocks []blockResponse `json:"blocks"`
}

func toBlockSet(b *domain.BlockSet) blockSetResponse {
	out := blockSetResponse{ID: b.ID, Name: b.Name, Blocks: make([]blockResponse, len(b.Blocks))}
	for i, blk := range b.Blocks {
		out.Blocks[i] = blockResponse{
			DayOfWeek:  int(blk.DayOfWeek),
			BlockIndex: blk.BlockIndex,
			Start:      blk.Start,
			End:        blk.End,
		}
	}
	return out
}

type jobResponse struct {
	ID           uuid.UUID                 `json:"id"`
	PlanGroupID  uuid.UUID                 `json:"plan_group_id"`
	Suggestion   domain.Suggestion         `json:"suggestion"`
	Status       domain.JobStatus          `json:"status"`
	Progress     int                       `json:"progress"`
	ErrorMessage *string                   `json:"error_message,omitempty"`
	Result       *domain.RescheduleSummary `json:"result,omitempty"`
	LogID        *uuid.UUID                `json:"log_id,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	StartedAt    *time.Time                `json:"started_at,omitempty"`
	FinishedAt   *time.Time                `json:"finished_at,omitempty"`
}

func toJob(j *domain.RescheduleJob) jobResponse {
	return jobResponse{
		ID:           j.ID,
		PlanGroupID:  j.PlanGroupID,
		Suggestion:   j.Suggestion,
		Status:       j.Status,
		Progress:     j.Progress,
		ErrorMessage: j.ErrorMessage,
		Result:       j.Result,
		LogID:        j.LogID,
		CreatedAt:    j.CreatedAt,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
	}
}

func mapSlice[T, R any](in []T, f func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = f(&in[i])
	}
	return out
}
