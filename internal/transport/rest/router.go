package rest

import (
	"net/http"

	"github.com/heartmarshall/actas-backend/internal/transport/middleware"
)

// NewRouter registers every endpoint. Health probes bypass mw; everything
// else runs through it.
func NewRouter(health *HealthHandler, actas *ActaHandler, admin *AdminHandler, mw middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /v1/assignments", actas.RequestAssignment)
	api.HandleFunc("GET /v1/actas/{id}", actas.GetActa)
	api.HandleFunc("POST /v1/actas/{id}/digitization", actas.SubmitDigitization)
	api.HandleFunc("POST /v1/actas/{id}/validation", actas.SubmitValidation)
	api.HandleFunc("POST /v1/actas/{id}/reports", actas.ReportProblem)
	api.HandleFunc("POST /v1/actas/{id}/lease/refresh", actas.RefreshLease)
	api.HandleFunc("DELETE /v1/actas/{id}/lease", actas.ReleaseLease)
	api.HandleFunc("GET /v1/me/moderation", actas.MyModeration)
	api.HandleFunc("GET /v1/me/milestones", actas.MyMilestones)

	api.HandleFunc("GET /admin/contributors/{id}/history", admin.History)
	api.HandleFunc("POST /admin/contributors/{id}/moderation", admin.SetModeration)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", health.Live)
	root.HandleFunc("GET /ready", health.Ready)
	root.HandleFunc("GET /health", health.Health)
	root.Handle("/", mw(api))

	return root
}
