package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

// SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeExclusionViolation   = "23P01"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

var sqlstateErrors = map[string]error{
	codeUniqueViolation:      domain.ErrAlreadyExists,
	codeForeignKeyViolation:  domain.ErrNotFound,
	codeCheckViolation:       domain.ErrValidation,
	codeExclusionViolation:   domain.ErrConflict,
	codeSerializationFailure: domain.ErrConflict,
	codeDeadlockDetected:     domain.ErrConflict,
	codeLockNotAvailable:     domain.ErrConflict,
}

// MapError translates driver errors into domain sentinels, prefixed with
// the entity and id. The driver error stays in the chain so IsRetryable
// still sees the SQLSTATE. Context errors pass through unmapped.
func MapError(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %v: %w", entity, id, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlstateErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w: %w", entity, id, sentinel, err)
		}
	}
	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// IsRetryable reports whether err is a serialization failure or deadlock,
// after which the whole transaction may be run again.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
