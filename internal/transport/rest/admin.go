package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/internal/service/moderation"
	"github.com/heartmarshall/actas-backend/internal/transport/middleware"
)

type moderationService interface {
	History(ctx context.Context, contributorID uuid.UUID, limit int) ([]domain.StateTransition, error)
	SetState(ctx context.Context, in moderation.SetStateInput) (*domain.StateTransition, error)
}

// AdminHandler serves moderator endpoints.
type AdminHandler struct {
	moderation moderationService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(moderation moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		log:        logger.With("handler", "admin"),
	}
}

type setStateRequest struct {
	State  string `json:"state"`
	Locked bool   `json:"locked"`
	Reason string `json:"reason"`
}

type transitionResponse struct {
	ID            int64                `json:"id"`
	PreviousState string               `json:"previous_state"`
	NewState      string               `json:"new_state"`
	Reason        string               `json:"reason"`
	Snapshot      domain.StatsSnapshot `json:"stats_snapshot"`
	Automatic     bool                 `json:"automatic"`
	CreatedAt     time.Time            `json:"created_at"`
}

// History handles GET /admin/contributors/{id}/history?limit=50.
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireModerator(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "limit must be an integer")
			return
		}
		limit = n
	}

	entries, err := h.moderation.History(r.Context(), id, limit)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	out := make([]transitionResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toTransitionResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// SetModeration handles POST /admin/contributors/{id}/moderation.
func (h *AdminHandler) SetModeration(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireModerator(w, r)
	if !ok {
		return
	}
	var req setStateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.moderation.SetState(r.Context(), moderation.SetStateInput{
		ContributorID: id,
		State:         domain.ModerationState(req.State),
		Locked:        req.Locked,
		Reason:        req.Reason,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransitionResponse(entry))
}

// requireModerator checks the caller's role and parses the contributor id
// from the path.
func (h *AdminHandler) requireModerator(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if err := middleware.RequireModerator(r.Context()); err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func toTransitionResponse(e *domain.StateTransition) transitionResponse {
	return transitionResponse{
		ID:            e.ID,
		PreviousState: e.PreviousState.String(),
		NewState:      e.NewState.String(),
		Reason:        e.Reason,
		Snapshot:      e.Snapshot,
		Automatic:     e.Automatic,
		CreatedAt:     e.CreatedAt,
	}
}
