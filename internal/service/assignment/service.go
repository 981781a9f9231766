// Package assignment hands each contributor an acta to digitize or validate
// under an exclusive lease.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

type actaRepo interface {
	FindHeldBy(ctx context.Context, holder uuid.UUID, now time.Time) (*domain.Acta, error)
	SelectCandidate(ctx context.Context, q domain.CandidateQuery) (uuid.UUID, bool, error)
}

type leaseManager interface {
	Acquire(ctx context.Context, actaID, contributorID uuid.UUID) (domain.Lease, bool, error)
	NeedsRefresh(l domain.Lease) bool
}

type statsRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error)
}

type clock interface {
	Now() time.Time
}

// Service picks work for contributors.
type Service struct {
	actas       actaRepo
	leases      leaseManager
	stats       statsRepo
	clock       clock
	quorum      int
	maxAttempts int
	log         *slog.Logger
}

// NewService creates a new assignment service.
func NewService(
	log *slog.Logger,
	actas actaRepo,
	leases leaseManager,
	stats statsRepo,
	clk clock,
	quorum int,
	maxAttempts int,
) *Service {
	return &Service{
		actas:       actas,
		leases:      leases,
		stats:       stats,
		clock:       clk,
		quorum:      quorum,
		maxAttempts: maxAttempts,
		log:         log.With("service", "assignment"),
	}
}

// Assign returns an acta leased to contributorID. A lease the contributor
// already holds is returned first, whatever the requested mode. When no
// eligible acta remains ok is false.
func (s *Service) Assign(ctx context.Context, contributorID uuid.UUID, mode domain.AssignmentMode) (domain.Assignment, bool, error) {
	if !mode.IsValid() {
		return domain.Assignment{}, false, domain.NewValidationError("mode", "must be DIGITIZE or VALIDATE")
	}

	if err := s.checkNotBanned(ctx, contributorID); err != nil {
		return domain.Assignment{}, false, err
	}

	if a, ok, err := s.resume(ctx, contributorID); err != nil || ok {
		return a, ok, err
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		actaID, found, err := s.actas.SelectCandidate(ctx, domain.CandidateQuery{
			ContributorID: contributorID,
			Mode:          mode,
			Quorum:        s.quorum,
			Now:           s.clock.Now(),
		})
		if err != nil {
			return domain.Assignment{}, false, fmt.Errorf("select candidate: %w", err)
		}
		if !found {
			return domain.Assignment{}, false, nil
		}

		l, ok, err := s.leases.Acquire(ctx, actaID, contributorID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			continue
		case err != nil:
			return domain.Assignment{}, false, err
		case !ok:
			s.log.DebugContext(ctx, "candidate taken, retrying",
				slog.String("acta_id", actaID.String()),
				slog.Int("attempt", attempt),
			)
			continue
		}

		return domain.Assignment{ActaID: actaID, Mode: mode, LeaseExpiresAt: l.ExpiresAt}, true, nil
	}

	s.log.InfoContext(ctx, "assignment attempts exhausted",
		slog.String("contributor_id", contributorID.String()),
		slog.String("mode", mode.String()),
	)
	return domain.Assignment{}, false, nil
}

func (s *Service) checkNotBanned(ctx context.Context, contributorID uuid.UUID) error {
	st, err := s.stats.Get(ctx, contributorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get contributor stats: %w", err)
	}
	if st.State == domain.ModerationStateBanned {
		return domain.ErrContributorBanned
	}
	return nil
}

// resume returns the acta the contributor is already working on, with its
// lease renewed.
func (s *Service) resume(ctx context.Context, contributorID uuid.UUID) (domain.Assignment, bool, error) {
	now := s.clock.Now()
	held, err := s.actas.FindHeldBy(ctx, contributorID, now)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Assignment{}, false, nil
	}
	if err != nil {
		return domain.Assignment{}, false, fmt.Errorf("find held acta: %w", err)
	}

	l, ok := held.Lease(now)
	if !ok || s.leases.NeedsRefresh(l) {
		l, ok, err = s.leases.Acquire(ctx, held.PublicID, contributorID)
		if err != nil {
			return domain.Assignment{}, false, err
		}
		if !ok {
			// Expired between the two statements and taken by someone else.
			return domain.Assignment{}, false, nil
		}
	}

	mode := domain.AssignmentModeValidate
	if held.Digitized == nil {
		mode = domain.AssignmentModeDigitize
	}
	return domain.Assignment{ActaID: held.PublicID, Mode: mode, LeaseExpiresAt: l.ExpiresAt, Resumed: true}, true, nil
}
