// Package lease grants, extends and releases the time-boxed exclusive claim
// a contributor holds on an acta. Contention is a normal outcome: a lost
// race is reported as ok == false, never as an error.
package lease

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/config"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

type actaRepo interface {
	AcquireLease(ctx context.Context, publicID, holder uuid.UUID, now, expiresAt time.Time) (time.Time, bool, error)
	ExtendLease(ctx context.Context, publicID, holder uuid.UUID, now, expiresAt time.Time) (time.Time, bool, error)
	ReleaseLease(ctx context.Context, publicID uuid.UUID, holder *uuid.UUID) (bool, error)
	ReleaseExpiredLeases(ctx context.Context, now time.Time) (int64, error)
}

type clock interface {
	Now() time.Time
}

// Service is the lease manager.
type Service struct {
	actas        actaRepo
	clock        clock
	duration     time.Duration
	refreshBelow time.Duration
	log          *slog.Logger
}

// NewService creates a new lease manager.
func NewService(log *slog.Logger, actas actaRepo, clk clock, cfg config.LeaseConfig) *Service {
	return &Service{
		actas:        actas,
		clock:        clk,
		duration:     cfg.Duration,
		refreshBelow: cfg.RefreshBelow,
		log:          log.With("service", "lease"),
	}
}

// Acquire claims the acta for contributorID. It succeeds when the lease is
// absent, expired or already held by the same contributor, in which case
// the expiry is pushed to now + duration.
func (s *Service) Acquire(ctx context.Context, actaID, contributorID uuid.UUID) (domain.Lease, bool, error) {
	now := s.clock.Now()

	exp, ok, err := s.actas.AcquireLease(ctx, actaID, contributorID, now, now.Add(s.duration))
	if err != nil {
		return domain.Lease{}, false, fmt.Errorf("acquire lease: %w", err)
	}
	if !ok {
		s.log.DebugContext(ctx, "lease rejected",
			slog.String("acta_id", actaID.String()),
			slog.String("contributor_id", contributorID.String()),
		)
		return domain.Lease{}, false, nil
	}

	return domain.Lease{ActaID: actaID, Holder: contributorID, ExpiresAt: exp}, true, nil
}

// Extend pushes the expiry of a lease the caller currently holds.
func (s *Service) Extend(ctx context.Context, actaID, contributorID uuid.UUID) (domain.Lease, bool, error) {
	now := s.clock.Now()

	exp, ok, err := s.actas.ExtendLease(ctx, actaID, contributorID, now, now.Add(s.duration))
	if err != nil {
		return domain.Lease{}, false, fmt.Errorf("extend lease: %w", err)
	}
	if !ok {
		return domain.Lease{}, false, nil
	}

	return domain.Lease{ActaID: actaID, Holder: contributorID, ExpiresAt: exp}, true, nil
}

// Release clears the lease. With a contributor it only releases that
// contributor's lease; without one it releases unconditionally.
// Releasing a lease that is not held is a no-op.
func (s *Service) Release(ctx context.Context, actaID uuid.UUID, contributorID *uuid.UUID) error {
	released, err := s.actas.ReleaseLease(ctx, actaID, contributorID)
	if err != nil {
		return fmt.Errorf("release lease: %w", err)
	}

	if released && contributorID == nil {
		s.log.InfoContext(ctx, "lease released administratively", slog.String("acta_id", actaID.String()))
	}
	return nil
}

// NeedsRefresh reports whether the remaining time on l has dropped below
// the low-water mark.
func (s *Service) NeedsRefresh(l domain.Lease) bool {
	return l.Remaining(s.clock.Now()) < s.refreshBelow
}

// Duration returns the fixed lease length.
func (s *Service) Duration() time.Duration {
	return s.duration
}

// ReleaseExpired clears stale lease columns. Expiry is always evaluated at
// read time, so this is housekeeping only.
func (s *Service) ReleaseExpired(ctx context.Context) (int64, error) {
	n, err := s.actas.ReleaseExpiredLeases(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("release expired leases: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired leases released", slog.Int64("count", n))
	}
	return n, nil
}
