package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// backlogCounter reports how many actas sit in each status.
type backlogCounter interface {
	CountByStatus(ctx context.Context) (map[domain.ActaStatus]int64, error)
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	backlog backlogCounter
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. backlog may be nil, in which
// case /health omits the work backlog.
func NewHealthHandler(db dbPinger, backlog backlogCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, backlog: backlog, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Backlog    map[string]int64      `json:"backlog,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	db := h.probeDB(ctx)
	writeJSON(w, statusFor(db), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health reports version, database latency and the acta backlog by status.
// A failing backlog query does not fail the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	db := h.probeDB(ctx)
	resp := HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  h.now(),
	}

	if h.backlog != nil && db.Status == "ok" {
		counts, err := h.backlog.CountByStatus(ctx)
		if err != nil {
			resp.Components["backlog"] = CompStatus{Status: "unknown"}
		} else {
			resp.Components["backlog"] = CompStatus{Status: "ok"}
			resp.Backlog = make(map[string]int64, len(counts))
			for st, n := range counts {
				resp.Backlog[st.String()] = n
			}
		}
	}

	writeJSON(w, statusFor(db), resp)
}

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusFor(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
