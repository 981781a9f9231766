package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/actas-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (ctxutil.Caller, error)
}

// Auth puts the caller's id and role into the request context. Requests
// without a bearer token pass through anonymously; handlers decide whether
// that is allowed.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			caller, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
				return
			}
			annotate(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithCaller(r.Context(), caller)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
