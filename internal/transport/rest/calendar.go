package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/calendar"
)

type calendarService interface {
	ComputeAvailableDates(input calendar.AvailableDatesInput) ([]domain.Date, error)
	ListExclusions(ctx context.Context, input calendar.ListExclusionsInput) ([]domain.ExclusionDay, error)
	CreateExclusion(ctx context.Context, input calendar.CreateExclusionInput) (*domain.ExclusionDay, error)
	DeleteExclusion(ctx context.Context, id uuid.UUID) error
	ListCommitments(ctx context.Context) ([]domain.FixedCommitment, error)
	CreateCommitment(ctx context.Context, input calendar.CreateCommitmentInput) (*domain.FixedCommitment, error)
	DeleteCommitment(ctx context.Context, id uuid.UUID) error
	CreateBlockSet(ctx context.Context, input calendar.CreateBlockSetInput) (*domain.BlockSet, error)
	GetBlockSet(ctx context.Context, id uuid.UUID) (*domain.BlockSet, error)
}

// CalendarHandler serves the student's calendar: availability, exclusion
// days, fixed commitments and block sets.
type CalendarHandler struct {
	svc calendarService
	log *slog.Logger
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc calendarService, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{svc: svc, log: logger.With("handler", "calendar")}
}

type availabilityRequest struct {
	Start      domain.Date `json:"start"`
	End        domain.Date `json:"end"`
	Exclusions []time.Time `json:"exclusions"`
}

type availabilityResponse struct {
	Dates []domain.Date `json:"dates"`
	Count int           `json:"count"`
}

// AvailableDates handles POST /availability.
func (h *CalendarHandler) AvailableDates(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if !decode(w, r, &req) {
		return
	}

	dates, err := h.svc.ComputeAvailableDates(calendar.AvailableDatesInput{
		Start:      req.Start,
		End:        req.End,
		Exclusions: req.Exclusions,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if dates == nil {
		dates = []domain.Date{}
	}
	writeJSON(w, http.StatusOK, availabilityResponse{Dates: dates, Count: len(dates)})
}

// ListExclusions handles GET /exclusions?from=&to=.
func (h *CalendarHandler) ListExclusions(w http.ResponseWriter, r *http.Request) {
	from, ok := queryDate(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryDate(w, r, "to")
	if !ok {
		return
	}

	days, err := h.svc.ListExclusions(r.Context(), calendar.ListExclusionsInput{From: from, To: to})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(days, toExclusion))
}

type createExclusionRequest struct {
	Date   domain.Date            `json:"date"`
	Reason domain.ExclusionReason `json:"reason"`
}

// CreateExclusion handles POST /exclusions.
func (h *CalendarHandler) CreateExclusion(w http.ResponseWriter, r *http.Request) {
	var req createExclusionRequest
	if !decode(w, r, &req) {
		return
	}

	day, err := h.svc.CreateExclusion(r.Context(), calendar.CreateExclusionInput{Date: req.Date, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExclusion(day))
}

// DeleteExclusion handles DELETE /exclusions/{id}.
func (h *CalendarHandler) DeleteExclusion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteExclusion(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCommitments handles GET /commitments.
func (h *CalendarHandler) ListCommitments(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCommitments(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toCommitment))
}

type createCommitmentRequest struct {
	Title         string       `json:"title"`
	DayOfWeek     int          `json:"day_of_week"`
	Start         domain.Clock `json:"start"`
	End           domain.Clock `json:"end"`
	TravelMinutes int          `json:"travel_minutes"`
}

// CreateCommitment handles POST /commitments.
func (h *CalendarHandler) CreateCommitment(w http.ResponseWriter, r *http.Request) {
	var req createCommitmentRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCommitment(r.Context(), calendar.CreateCommitmentInput{
		Title:         req.Title,
		DayOfWeek:     req.DayOfWeek,
		Start:         req.Start,
		End:           req.End,
		TravelMinutes: req.TravelMinutes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommitment(c))
}

// DeleteCommitment handles DELETE /commitments/{id}.
func (h *CalendarHandler) DeleteCommitment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCommitment(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createBlockSetRequest struct {
	Name   string          `json:"name"`
	Blocks []blockResponse `json:"blocks"`
}

// CreateBlockSet handles POST /block-sets.
func (h *CalendarHandler) CreateBlockSet(w http.ResponseWriter, r *http.Request) {
	var req createBlockSetRequest
	if !decode(w, r, &req) {
		return
	}

	input := calendar.CreateBlockSetInput{Name: req.Name, Blocks: make([]calendar.BlockInput, len(req.Blocks))}
	for i, b := range req.Blocks {
		input.Blocks[i] = calendar.BlockInput{DayOfWeek: b.DayOfWeek, BlockIndex: b.BlockIndex, Start: b.Start, End: b.End}
	}

	set, err := h.svc.CreateBlockSet(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBlockSet(set))
}

// GetBlockSet handles GET /block-sets/{id}.
func (h *CalendarHandler) GetBlockSet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	set, err := h.svc.GetBlockSet(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBlockSet(set))
}

func toExclusion(d *domain.ExclusionDay) exclusionResponse {
	return exclusionResponse{ID: d.ID, Date: d.Date, Reason: d.Reason}
}

func toCommitment(c *domain.FixedCommitment) commitmentResponse {
	return commitmentResponse{
		ID:            c.ID,
		Title:         c.Title,
		DayOfWeek:     int(c.DayOfWeek),
		Start:         c.Start,
		End:           c.End,
		TravelMinutes: c.TravelMinutes,
	}
}
