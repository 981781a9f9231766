package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	svcacta "github.com/heartmarshall/actas-backend/internal/service/acta"
)

// actaService is the workflow surface used by ActaHandler.
type actaService interface {
	RequestAssignment(ctx context.Context, mode domain.AssignmentMode) (domain.Assignment, bool, error)
	GetActa(ctx context.Context, actaID uuid.UUID) (*domain.Acta, error)
	SubmitDigitization(ctx context.Context, in svcacta.SubmitDigitizationInput) error
	SubmitValidation(ctx context.Context, in svcacta.SubmitValidationInput) (svcacta.ValidationResult, error)
	ReportProblem(ctx context.Context, in svcacta.ReportProblemInput) ([]domain.Milestone, error)
	RefreshLease(ctx context.Context, actaID uuid.UUID) (time.Time, error)
	ReleaseLease(ctx context.Context, actaID uuid.UUID) error
	GetModerationBanner(ctx context.Context) (domain.ModerationBanner, error)
	ListMilestones(ctx context.Context) ([]domain.Milestone, error)
}

// ActaHandler serves the contributor workflow endpoints.
type ActaHandler struct {
	svc actaService
	log *slog.Logger
}

// NewActaHandler creates an ActaHandler.
func NewActaHandler(svc actaService, logger *slog.Logger) *ActaHandler {
	return &ActaHandler{svc: svc, log: logger.With("handler", "acta")}
}

type assignmentRequest struct {
	Mode string `json:"mode"`
}

type assignmentResponse struct {
	Status         string     `json:"status"`
	ActaID         *uuid.UUID `json:"acta_id,omitempty"`
	Mode           string     `json:"mode,omitempty"`
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	Resumed        bool       `json:"resumed,omitempty"`
}

type digitizationRequest struct {
	Values domain.Tally `json:"values"`
}

type validationRequest struct {
	ConfirmCorrect  bool          `json:"confirm_correct"`
	CorrectedValues *domain.Tally `json:"corrected_values,omitempty"`
	SessionStreak   int           `json:"session_streak,omitempty"`
}

type validationResponse struct {
	Matched         bool                `json:"matched"`
	Status          string              `json:"status"`
	ValidationCount int                 `json:"validation_count"`
	MatchedCount    int                 `json:"matched_count"`
	Milestones      []milestoneResponse `json:"milestones"`
}

type reportRequest struct {
	Category string  `json:"category"`
	Note     *string `json:"note,omitempty"`
}

type leaseResponse struct {
	LeaseExpiresAt time.Time `json:"lease_expires_at"`
}

type actaResponse struct {
	ID               uuid.UUID     `json:"id"`
	ExternalID       string        `json:"external_id"`
	DepartmentCode   string        `json:"department_code"`
	MunicipalityCode string        `json:"municipality_code"`
	PrecinctCode     string        `json:"precinct_code"`
	HasImage         bool          `json:"has_image"`
	Status           string        `json:"status"`
	Digitized        *tallyPayload `json:"digitized,omitempty"`
	ValidationCount  int           `json:"validation_count"`
	MatchedCount     int           `json:"matched_count"`
	LeaseExpiresAt   *time.Time    `json:"lease_expires_at,omitempty"`
}

type tallyPayload struct {
	domain.Tally
	Total int `json:"total"`
}

type milestoneResponse struct {
	Code      string     `json:"code"`
	Kind      string     `json:"kind"`
	Threshold int        `json:"threshold"`
	Title     string     `json:"title"`
	GrantedAt *time.Time `json:"granted_at,omitempty"`
}

// RequestAssignment handles POST /v1/assignments.
func (h *ActaHandler) RequestAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, ok, err := h.svc.RequestAssignment(r.Context(), domain.AssignmentMode(req.Mode))
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, assignmentResponse{Status: "none"})
		return
	}

	writeJSON(w, http.StatusOK, assignmentResponse{
		Status:         "assigned",
		ActaID:         &a.ActaID,
		Mode:           a.Mode.String(),
		LeaseExpiresAt: &a.LeaseExpiresAt,
		Resumed:        a.Resumed,
	})
}

// GetActa handles GET /v1/actas/{id}.
func (h *ActaHandler) GetActa(w http.ResponseWriter, r *http.Request) {
	id, ok := h.actaID(w, r)
	if !ok {
		return
	}

	a, err := h.svc.GetActa(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toActaResponse(a))
}

// SubmitDigitization handles POST /v1/actas/{id}/digitization.
func (h *ActaHandler) SubmitDigitization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.actaID(w, r)
	if !ok {
		return
	}
	var req digitizationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.SubmitDigitization(r.Context(), svcacta.SubmitDigitizationInput{ActaID: id, Values: req.Values}); err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitValidation handles POST /v1/actas/{id}/validation.
func (h *ActaHandler) SubmitValidation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.actaID(w, r)
	if !ok {
		return
	}
	var req validationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.SubmitValidation(r.Context(), svcacta.SubmitValidationInput{
		ActaID:          id,
		ConfirmCorrect:  req.ConfirmCorrect,
		CorrectedValues: req.CorrectedValues,
		SessionStreak:   req.SessionStreak,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, validationResponse{
		Matched:         res.Matched,
		Status:          res.Status.String(),
		ValidationCount: res.ValidationCount,
		MatchedCount:    res.MatchedCount,
		Milestones:      toMilestones(res.Milestones),
	})
}

// ReportProblem handles POST /v1/actas/{id}/reports.
func (h *ActaHandler) ReportProblem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.actaID(w, r)
	if !ok {
		return
	}
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	granted, err := h.svc.ReportProblem(r.Context(), svcacta.ReportProblemInput{
		ActaID:   id,
		Category: domain.ReportCategory(req.Category),
		Note:     req.Note,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"milestones": toMilestones(granted)})
}

// RefreshLease handles POST /v1/actas/{id}/lease/refresh.
func (h *ActaHandler) RefreshLease(w http.ResponseWriter, r *http.Request) {
	id, ok := h.actaID(w, r)
	if !ok {
		return
	}

	exp, err := h.svc.RefreshLease(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, leaseResponse{LeaseExpiresAt: exp})
}

// ReleaseLease handles DELETE /v1/actas/{id}/lease.
func (h *ActaHandler) ReleaseLease(w http.ResponseWriter, r *http.Request) {
	id, ok := h.actaID(w, r)
	if !ok {
		return
	}

	if err := h.svc.ReleaseLease(r.Context(), id); err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyModeration handles GET /v1/me/moderation.
func (h *ActaHandler) MyModeration(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetModerationBanner(r.Context())
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// MyMilestones handles GET /v1/me/milestones.
func (h *ActaHandler) MyMilestones(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.ListMilestones(r.Context())
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMilestones(ms))
}

func (h *ActaHandler) actaID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

const maxBodyBytes = 1 << 16

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return false
	}
	return true
}

func toActaResponse(a *domain.Acta) actaResponse {
	resp := actaResponse{
		ID:               a.PublicID,
		ExternalID:       a.ExternalID,
		DepartmentCode:   a.DepartmentCode,
		MunicipalityCode: a.MunicipalityCode,
		PrecinctCode:     a.PrecinctCode,
		HasImage:         a.HasImage,
		Status:           a.Status.String(),
		ValidationCount:  a.ValidationCount,
		MatchedCount:     a.MatchedCount,
		LeaseExpiresAt:   a.LeaseExpiresAt,
	}
	if a.Digitized != nil {
		resp.Digitized = &tallyPayload{Tally: *a.Digitized, Total: a.Digitized.Total()}
	}
	return resp
}

func toMilestones(ms []domain.Milestone) []milestoneResponse {
	out := make([]milestoneResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, milestoneResponse{
			Code:      m.Code,
			Kind:      m.Kind.String(),
			Threshold: m.Threshold,
			Title:     m.Title,
			GrantedAt: m.GrantedAt,
		})
	}
	return out
}
