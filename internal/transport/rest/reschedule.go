package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/reschedule"
)

type rescheduleService interface {
	Submit(ctx context.Context, input reschedule.SubmitInput) (*domain.RescheduleJob, error)
	GetStatus(ctx context.Context, id uuid.UUID) (*domain.RescheduleJob, error)
	ValidateRollback(ctx context.Context, logID uuid.UUID) (*domain.RollbackCheck, error)
	ExecuteRollback(ctx context.Context, logID uuid.UUID) (*domain.RollbackResult, error)
}

// RescheduleHandler serves async reschedule jobs and rollbacks.
type RescheduleHandler struct {
	svc rescheduleService
	log *slog.Logger
}

// NewRescheduleHandler creates a RescheduleHandler.
func NewRescheduleHandler(svc rescheduleService, logger *slog.Logger) *RescheduleHandler {
	return &RescheduleHandler{svc: svc, log: logger.With("handler", "reschedule")}
}

type submitJobRequest struct {
	PlanGroupID uuid.UUID         `json:"plan_group_id"`
	Suggestion  domain.Suggestion `json:"suggestion"`
}

// Submit handles POST /reschedule-jobs. The job runs in the background; the
// response carries its id for polling.
func (h *RescheduleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitJobRequest
	if !decode(w, r, &req) {
		return
	}

	job, err := h.svc.Submit(r.Context(), reschedule.SubmitInput{
		PlanGroupID: req.PlanGroupID,
		Suggestion:  req.Suggestion,
	})
	if errors.Is(err, reschedule.ErrShuttingDown) {
		w.Header().Set("Retry-After", "5")
		writeError(w, http.StatusServiceUnavailable, "service is shutting down")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/reschedule-jobs/"+job.ID.String())
	writeJSON(w, http.StatusAccepted, toJob(job))
}

// GetJob handles GET /reschedule-jobs/{id}.
func (h *RescheduleHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	job, err := h.svc.GetStatus(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJob(job))
}

// ValidateRollback handles GET /reschedule-logs/{id}/rollback.
func (h *RescheduleHandler) ValidateRollback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	check, err := h.svc.ValidateRollback(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

// ExecuteRollback handles POST /reschedule-logs/{id}/rollback.
func (h *RescheduleHandler) ExecuteRollback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.ExecuteRollback(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
