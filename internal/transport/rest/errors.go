package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Error codes returned in the envelope.
const (
	codeNotFound         = "NOT_FOUND"
	codeNotLeaseHolder   = "NOT_LEASE_HOLDER"
	codeAlreadyHandled   = "ALREADY_HANDLED"
	codeAlreadyDigitized = "ALREADY_DIGITIZED"
	codeNoDigitized      = "NO_DIGITIZED_VALUES"
	codeConflict         = "CONFLICT"
	codeValidation       = "VALIDATION"
	codeUnauthorized     = "UNAUTHORIZED"
	codeBanned           = "BANNED"
	codeForbidden        = "FORBIDDEN"
	codeInternal         = "INTERNAL"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps a service error to a status and envelope. Unknown
// errors are logged and reported as INTERNAL without detail.
func writeDomainError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		detail := errorDetail{Code: codeValidation, Message: "invalid request"}
		for _, fe := range verr.Errors {
			detail.Fields = append(detail.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: detail})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrContributorBanned):
		writeError(w, http.StatusForbidden, codeBanned, "your account can no longer contribute")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "not allowed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrNotLeaseHolder):
		writeError(w, http.StatusConflict, codeNotLeaseHolder, "your lease on this acta expired, request a new assignment")
	case errors.Is(err, domain.ErrAlreadyDigitized):
		writeError(w, http.StatusConflict, codeAlreadyDigitized, "this acta was already digitized")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyHandled, "you already handled this acta")
	case errors.Is(err, domain.ErrNoDigitizedValues):
		writeError(w, http.StatusConflict, codeNoDigitized, "this acta has nothing to validate yet")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "conflict")
	default:
		log.ErrorContext(ctx, "request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
