// Package ctxutil carries the authenticated caller and request id through
// a request's context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	contributorKey struct{}
	roleKey        struct{}
	requestIDKey   struct{}
)

// ModeratorRole is the role claim that unlocks moderation endpoints.
const ModeratorRole = "moderator"

// Caller is the authenticated identity behind a request.
type Caller struct {
	ID   uuid.UUID
	Role string
}

func (c Caller) IsModerator() bool { return c.Role == ModeratorRole }

// WithCaller stores both the contributor id and the role of c.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return WithRole(WithContributorID(ctx, c.ID), c.Role)
}

// CallerFromCtx reports false for anonymous requests.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	id, ok := ContributorIDFromCtx(ctx)
	if !ok {
		return Caller{}, false
	}
	return Caller{ID: id, Role: RoleFromCtx(ctx)}, true
}

func WithContributorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contributorKey{}, id)
}

// ContributorIDFromCtx returns the authenticated contributor. A missing or
// nil id reports false.
func ContributorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(contributorKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromCtx returns the caller's role claim, "" for anonymous callers.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}

func IsModeratorCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx) == ModeratorRole
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
