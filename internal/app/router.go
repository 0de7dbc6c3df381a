package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studyplan-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyplan-backend/internal/transport/rest"
)

const apiPrefix = "/api/v1"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health     *rest.HealthHandler
	Calendar   *rest.CalendarHandler
	Plan       *rest.PlanHandler
	Reschedule *rest.RescheduleHandler
}

// NewRouter builds the HTTP handler. Probes are public; everything under
// /api/v1 requires a bearer token. Job submission and plan generation share
// a per-student rate limit.
func NewRouter(log *slog.Logger, h Handlers, auth middleware.Middleware, limit middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	route := func(pattern string, fn http.HandlerFunc) {
		api.Handle(pattern, fn)
	}
	limited := func(pattern string, fn http.HandlerFunc) {
		api.Handle(pattern, limit(fn))
	}

	route("POST "+apiPrefix+"/availability", h.Calendar.AvailableDates)
	route("GET "+apiPrefix+"/exclusions", h.Calendar.ListExclusions)
	route("POST "+apiPrefix+"/exclusions", h.Calendar.CreateExclusion)
	route("DELETE "+apiPrefix+"/exclusions/{id}", h.Calendar.DeleteExclusion)
	route("GET "+apiPrefix+"/commitments", h.Calendar.ListCommitments)
	route("POST "+apiPrefix+"/commitments", h.Calendar.CreateCommitment)
	route("DELETE "+apiPrefix+"/commitments/{id}", h.Calendar.DeleteCommitment)
	route("POST "+apiPrefix+"/block-sets", h.Calendar.CreateBlockSet)
	route("GET "+apiPrefix+"/block-sets/{id}", h.Calendar.GetBlockSet)

	route("POST "+apiPrefix+"/plan-groups", h.Plan.CreatePlanGroup)
	route("GET "+apiPrefix+"/plan-groups", h.Plan.ListPlanGroups)
	route("GET "+apiPrefix+"/plan-groups/{id}", h.Plan.GetPlanGroup)
	route("PATCH "+apiPrefix+"/plan-groups/{id}", h.Plan.UpdatePlanGroup)
	route("DELETE "+apiPrefix+"/plan-groups/{id}", h.Plan.DeletePlanGroup)
	route("POST "+apiPrefix+"/plan-groups/{id}/status", h.Plan.TransitionStatus)
	route("GET "+apiPrefix+"/plan-groups/{id}/constraints", h.Plan.GetConstraints)
	route("GET "+apiPrefix+"/plan-groups/{id}/history", h.Plan.History)
	route("GET "+apiPrefix+"/plan-groups/{id}/contents", h.Plan.ListContents)
	route("POST "+apiPrefix+"/plan-groups/{id}/contents", h.Plan.AddContent)
	route("DELETE "+apiPrefix+"/plan-groups/{id}/contents/{contentId}", h.Plan.RemoveContent)
	limited("POST "+apiPrefix+"/plan-groups/{id}/generate", h.Plan.GeneratePlan)
	route("GET "+apiPrefix+"/plan-groups/{id}/sessions", h.Plan.ListSessions)
	route("PATCH "+apiPrefix+"/sessions/{id}/status", h.Plan.UpdateSessionStatus)
	route("GET "+apiPrefix+"/plan-groups/{id}/delay", h.Plan.DetectDelay)
	route("GET "+apiPrefix+"/plan-groups/{id}/suggestions", h.Plan.Suggestions)
	route("POST "+apiPrefix+"/plan-groups/{id}/timeline/reorder", h.Plan.Reorder)

	limited("POST "+apiPrefix+"/reschedule-jobs", h.Reschedule.Submit)
	route("GET "+apiPrefix+"/reschedule-jobs/{id}", h.Reschedule.GetJob)
	route("GET "+apiPrefix+"/reschedule-logs/{id}/rollback", h.Reschedule.ValidateRollback)
	route("POST "+apiPrefix+"/reschedule-logs/{id}/rollback", h.Reschedule.ExecuteRollback)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle(apiPrefix+"/", auth(api))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)(root)
}
