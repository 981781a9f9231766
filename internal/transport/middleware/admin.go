package middleware

import (
	"context"

	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/pkg/ctxutil"
)

// RequireModerator is called by admin handlers before any work. Anonymous
// callers get domain.ErrUnauthorized, contributors domain.ErrForbidden.
func RequireModerator(ctx context.Context) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	switch {
	case !ok:
		return domain.ErrUnauthorized
	case !caller.IsModerator():
		return domain.ErrForbidden
	}
	return nil
}
