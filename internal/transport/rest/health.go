package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// jobRunner exposes the reschedule worker state to the probes.
type jobRunner interface {
	InFlight() int
	Draining() bool
}

// HealthHandler serves the liveness, readiness and status probes.
type HealthHandler struct {
	db      dbPinger
	jobs    jobRunner
	version string
	now     func() time.Time
}

func NewHealthHandler(db dbPinger, jobs jobRunner, version string) *HealthHandler {
	return &HealthHandler{db: db, jobs: jobs, version: version, now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus describes one dependency of the service.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	InUse   *int   `json:"in_use,omitempty"`
}

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDraining = "draining"
)

// Live answers 200 as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready fails while the database is unreachable or the job runner is
// draining, so load balancers stop routing new reschedule submissions here.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := statusOK
	switch {
	case h.jobs.Draining():
		status = statusDraining
	case h.pingDB(r.Context()) != nil:
		status = statusDown
	}
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every component with database latency and the number of
// reschedule jobs this process is running.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall := statusOK

	start := time.Now()
	db := CompStatus{Status: statusOK}
	if err := h.pingDB(r.Context()); err != nil {
		db.Status = statusDown
		overall = statusDown
	} else {
		db.Latency = time.Since(start).String()
	}

	inFlight := h.jobs.InFlight()
	jobs := CompStatus{Status: statusOK, InUse: &inFlight}
	if h.jobs.Draining() {
		jobs.Status = statusDraining
		if overall == statusOK {
			overall = statusDraining
		}
	}

	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:  overall,
		Version: h.version,
		Components: map[string]CompStatus{
			"database":        db,
			"reschedule_jobs": jobs,
		},
		Timestamp: h.now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return h.db.Ping(ctx)
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
