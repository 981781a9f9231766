package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID puts a request id into the context and echoes it in the
// response. An inbound id is reused only when it is a UUID; anything else
// is replaced so clients cannot inject arbitrary strings into the logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		w.Header().Set(RequestIDHeader, id.String())
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id.String())))
	})
}
