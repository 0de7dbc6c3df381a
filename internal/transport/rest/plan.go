package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan"
)

type planService interface {
	CreatePlanGroup(ctx context.Context, input plan.CreatePlanGroupInput) (*domain.PlanGroup, error)
	GetPlanGroup(ctx context.Context, id uuid.UUID) (*domain.PlanGroup, error)
	ListPlanGroups(ctx context.Context, input plan.ListPlanGroupsInput) ([]domain.PlanGroup, int, error)
	UpdatePlanGroup(ctx context.Context, input plan.UpdatePlanGroupInput) (*domain.PlanGroup, error)
	DeletePlanGroup(ctx context.Context, id uuid.UUID) error
	TransitionStatus(ctx context.Context, input plan.TransitionStatusInput) (*domain.PlanGroup, error)
	GetConstraints(ctx context.Context, id uuid.UUID) (*plan.Constraints, error)
	History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditRecord, error)

	AddContent(ctx context.Context, input plan.AddContentInput) (*domain.ContentItem, error)
	ListContents(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error)
	RemoveContent(ctx context.Context, planGroupID, itemID uuid.UUID) error

	GeneratePlan(ctx context.Context, planGroupID uuid.UUID) (*plan.GenerateResult, error)
	ListSessions(ctx context.Context, input plan.ListSessionsInput) ([]domain.ScheduledSession, error)
	UpdateSessionStatus(ctx context.Context, input plan.UpdateSessionStatusInput) (*domain.ScheduledSession, error)

	DetectDelay(ctx context.Context, planGroupID uuid.UUID) (*domain.DelayReport, error)
	SuggestReschedule(ctx context.Context, planGroupID uuid.UUID) ([]domain.Suggestion, error)
	ReorderDay(ctx context.Context, input plan.ReorderDayInput) (*plan.ReorderOutcome, error)
}

// PlanHandler serves plan groups, their contents, sessions, delay analysis
// and timeline reordering.
type PlanHandler struct {
	svc planService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc planService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan")}
}

// ---------------------------------------------------------------------------
// Plan groups
// ---------------------------------------------------------------------------

type createPlanGroupRequest struct {
	Name           string                           `json:"name"`
	Purpose        string                           `json:"purpose"`
	SchedulerType  string                           `json:"scheduler_type"`
	PeriodStart    *domain.Date                     `json:"period_start"`
	PeriodEnd      *domain.Date                     `json:"period_end"`
	TargetDate     *domain.Date                     `json:"target_date"`
	OrganizationID *uuid.UUID                       `json:"organization_id"`
	TemplateID     *uuid.UUID                       `json:"template_id"`
	BlockSetID     *uuid.UUID                       `json:"block_set_id"`
	Settings       *domain.PartialSchedulerSettings `json:"settings"`
}

// CreatePlanGroup handles POST /plan-groups.
func (h *PlanHandler) CreatePlanGroup(w http.ResponseWriter, r *http.Request) {
	var req createPlanGroupRequest
	if !decode(w, r, &req) {
		return
	}

	g, err := h.svc.CreatePlanGroup(r.Context(), plan.CreatePlanGroupInput{
		Name:           req.Name,
		Purpose:        req.Purpose,
		SchedulerType:  req.SchedulerType,
		PeriodStart:    req.PeriodStart,
		PeriodEnd:      req.PeriodEnd,
		TargetDate:     req.TargetDate,
		OrganizationID: req.OrganizationID,
		TemplateID:     req.TemplateID,
		BlockSetID:     req.BlockSetID,
		Settings:       req.Settings,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlanGroup(g))
}

type planGroupListResponse struct {
	Items []planGroupResponse `json:"items"`
	Total int                 `json:"total"`
}

// ListPlanGroups handles GET /plan-groups?status=active,paused&limit=&offset=.
func (h *PlanHandler) ListPlanGroups(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	input := plan.ListPlanGroupsInput{Limit: limit, Offset: offset}
	for _, s := range splitList(r.URL.Query().Get("status")) {
		input.Statuses = append(input.Statuses, domain.PlanStatus(s))
	}

	groups, total, err := h.svc.ListPlanGroups(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planGroupListResponse{Items: mapSlice(groups, toPlanGroup), Total: total})
}

// GetPlanGroup handles GET /plan-groups/{id}.
func (h *PlanHandler) GetPlanGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	g, err := h.svc.GetPlanGroup(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanGroup(g))
}

type updatePlanGroupRequest struct {
	Name        *string                          `json:"name"`
	Purpose     *string                          `json:"purpose"`
	PeriodStart *domain.Date                     `json:"period_start"`
	PeriodEnd   *domain.Date                     `json:"period_end"`
	TargetDate  *domain.Date                     `json:"target_date"`
	BlockSetID  *uuid.UUID                       `json:"block_set_id"`
	Settings    *domain.PartialSchedulerSettings `json:"settings"`
}

// UpdatePlanGroup handles PATCH /plan-groups/{id}.
func (h *PlanHandler) UpdatePlanGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updatePlanGroupRequest
	if !decode(w, r, &req) {
		return
	}

	g, err := h.svc.UpdatePlanGroup(r.Context(), plan.UpdatePlanGroupInput{
		PlanGroupID: id,
		Name:        req.Name,
		Purpose:     req.Purpose,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		TargetDate:  req.TargetDate,
		BlockSetID:  req.BlockSetID,
		Settings:    req.Settings,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanGroup(g))
}

// DeletePlanGroup handles DELETE /plan-groups/{id}.
func (h *PlanHandler) DeletePlanGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePlanGroup(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transitionRequest struct {
	Status domain.PlanStatus `json:"status"`
}

// TransitionStatus handles POST /plan-groups/{id}/status.
func (h *PlanHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req transitionRequest
	if !decode(w, r, &req) {
		return
	}

	g, err := h.svc.TransitionStatus(r.Context(), plan.TransitionStatusInput{PlanGroupID: id, Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanGroup(g))
}

// GetConstraints handles GET /plan-groups/{id}/constraints.
func (h *PlanHandler) GetConstraints(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.GetConstraints(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// History handles GET /plan-groups/{id}/history?limit=.
func (h *PlanHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	records, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// ---------------------------------------------------------------------------
// Contents
// ---------------------------------------------------------------------------

type addContentRequest struct {
	ContentID     *uuid.UUID         `json:"content_id"`
	ContentType   domain.ContentType `json:"content_type"`
	Title         string             `json:"title"`
	Subject       string             `json:"subject"`
	IsWeakSubject bool               `json:"is_weak_subject"`
	StartRange    int                `json:"start_range"`
	EndRange      int                `json:"end_range"`
	UnitMinutes   *int               `json:"unit_minutes"`
}

// AddContent handles POST /plan-groups/{id}/contents.
func (h *PlanHandler) AddContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req addContentRequest
	if !decode(w, r, &req) {
		return
	}

	item, err := h.svc.AddContent(r.Context(), plan.AddContentInput{
		PlanGroupID:   id,
		ContentID:     req.ContentID,
		ContentType:   req.ContentType,
		Title:         req.Title,
		Subject:       req.Subject,
		IsWeakSubject: req.IsWeakSubject,
		StartRange:    req.StartRange,
		EndRange:      req.EndRange,
		UnitMinutes:   req.UnitMinutes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentItem(item))
}

// ListContents handles GET /plan-groups/{id}/contents.
func (h *PlanHandler) ListContents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.svc.ListContents(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toContentItem))
}

// RemoveContent handles DELETE /plan-groups/{id}/contents/{contentId}.
func (h *PlanHandler) RemoveContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "contentId")
	if !ok {
		return
	}
	if err := h.svc.RemoveContent(r.Context(), id, itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// GeneratePlan handles POST /plan-groups/{id}/generate.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.GeneratePlan(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListSessions handles GET /plan-groups/{id}/sessions?from=&to=&status=.
func (h *PlanHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	from, ok := queryDate(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryDate(w, r, "to")
	if !ok {
		return
	}

	input := plan.ListSessionsInput{PlanGroupID: id, From: from, To: to}
	for _, s := range splitList(r.URL.Query().Get("status")) {
		input.Statuses = append(input.Statuses, domain.ItemStatus(s))
	}

	sessions, err := h.svc.ListSessions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(sessions, toSession))
}

type sessionStatusRequest struct {
	Status   domain.ItemStatus `json:"status"`
	Progress *int              `json:"progress"`
}

// UpdateSessionStatus handles PATCH /sessions/{id}/status.
func (h *PlanHandler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req sessionStatusRequest
	if !decode(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateSessionStatus(r.Context(), plan.UpdateSessionStatusInput{
		SessionID: id,
		Status:    req.Status,
		Progress:  req.Progress,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(s))
}

// ---------------------------------------------------------------------------
// Delay and timeline
// ---------------------------------------------------------------------------

// DetectDelay handles GET /plan-groups/{id}/delay.
func (h *PlanHandler) DetectDelay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	report, err := h.svc.DetectDelay(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Suggestions handles GET /plan-groups/{id}/suggestions.
func (h *PlanHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.svc.SuggestReschedule(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if list == nil {
		list = []domain.Suggestion{}
	}
	writeJSON(w, http.StatusOK, list)
}

type reorderRequest struct {
	Date           domain.Date        `json:"date"`
	MovedID        string             `json:"moved_id"`
	InsertIndex    int                `json:"insert_index"`
	Mode           domain.ReorderMode `json:"mode"`
	AcceptOverflow bool               `json:"accept_overflow"`
}

// Reorder handles POST /plan-groups/{id}/timeline/reorder.
func (h *PlanHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.svc.ReorderDay(r.Context(), plan.ReorderDayInput{
		PlanGroupID:    id,
		Date:           req.Date,
		MovedID:        req.MovedID,
		InsertIndex:    req.InsertIndex,
		Mode:           req.Mode,
		AcceptOverflow: req.AcceptOverflow,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
