// Package acta orchestrates the contributor-facing workflow: assignment,
// digitization, validation, problem reports and lease upkeep. Moderation
// and achievements run after the primary write and never fail it.
package acta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/internal/service/consensus"
	"github.com/heartmarshall/actas-backend/pkg/ctxutil"
)

type actaRepo interface {
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error)
	LockForValidation(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error)
	SaveDigitization(ctx context.Context, publicID, contributorID uuid.UUID, values domain.Tally, now time.Time) error
	ApplyValidation(ctx context.Context, id int64, u domain.ValidationUpdate) (total, matched int, err error)
	SetStatus(ctx context.Context, id int64, status domain.ActaStatus, now time.Time) error
	MarkUnderReview(ctx context.Context, id int64, now time.Time) (bool, error)
}

type validationRepo interface {
	Create(ctx context.Context, v *domain.Validation) (*domain.Validation, error)
}

type reportRepo interface {
	Create(ctx context.Context, p *domain.ProblemReport) (*domain.ProblemReport, error)
}

type statsRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error)
	Increment(ctx context.Context, id uuid.UUID, d domain.StatsDelta, now time.Time) error
}

type assigner interface {
	Assign(ctx context.Context, contributorID uuid.UUID, mode domain.AssignmentMode) (domain.Assignment, bool, error)
}

type leaseManager interface {
	Extend(ctx context.Context, actaID, contributorID uuid.UUID) (domain.Lease, bool, error)
	Release(ctx context.Context, actaID uuid.UUID, contributorID *uuid.UUID) error
}

type moderator interface {
	Evaluate(ctx context.Context, contributorID uuid.UUID) (*domain.StateTransition, error)
	Banner(ctx context.Context, contributorID uuid.UUID) (domain.ModerationBanner, error)
}

type achiever interface {
	CheckAndGrant(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int) ([]domain.Milestone, error)
	List(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// Service is the workflow entry point used by the transport layer.
type Service struct {
	log          *slog.Logger
	actas        actaRepo
	validations  validationRepo
	reports      reportRepo
	stats        statsRepo
	assignments  assigner
	leases       leaseManager
	moderation   moderator
	achievements achiever
	tx           txManager
	clock        clock
	rules        consensus.Rules
}

// Deps groups the collaborators of Service.
type Deps struct {
	Actas        actaRepo
	Validations  validationRepo
	Reports      reportRepo
	Stats        statsRepo
	Assignments  assigner
	Leases       leaseManager
	Moderation   moderator
	Achievements achiever
	Tx           txManager
	Clock        clock
}

// NewService creates a new workflow service.
func NewService(logger *slog.Logger, deps Deps, rules consensus.Rules) *Service {
	return &Service{
		log:          logger.With("service", "acta"),
		actas:        deps.Actas,
		validations:  deps.Validations,
		reports:      deps.Reports,
		stats:        deps.Stats,
		assignments:  deps.Assignments,
		leases:       deps.Leases,
		moderation:   deps.Moderation,
		achievements: deps.Achievements,
		tx:           deps.Tx,
		clock:        deps.Clock,
		rules:        rules,
	}
}

// contributor returns the caller's id and refuses banned contributors.
func (s *Service) contributor(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.ContributorIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	st, err := s.stats.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return id, nil
	case err != nil:
		return uuid.Nil, fmt.Errorf("get contributor stats: %w", err)
	case st.State == domain.ModerationStateBanned:
		return uuid.Nil, domain.ErrContributorBanned
	}
	return id, nil
}

// RequestAssignment leases an acta to the caller. ok is false when there is
// nothing to do right now.
func (s *Service) RequestAssignment(ctx context.Context, mode domain.AssignmentMode) (domain.Assignment, bool, error) {
	id, ok := ctxutil.ContributorIDFromCtx(ctx)
	if !ok {
		return domain.Assignment{}, false, domain.ErrUnauthorized
	}

	a, ok, err := s.assignments.Assign(ctx, id, mode)
	if err != nil {
		return domain.Assignment{}, false, fmt.Errorf("acta.RequestAssignment: %w", err)
	}
	return a, ok, nil
}

// GetActa returns an acta by its public id.
func (s *Service) GetActa(ctx context.Context, actaID uuid.UUID) (*domain.Acta, error) {
	if _, ok := ctxutil.ContributorIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.actas.GetByPublicID(ctx, actaID)
	if err != nil {
		return nil, fmt.Errorf("acta.GetActa: %w", err)
	}
	return a, nil
}

// SubmitDigitization stores the caller's transcription. The caller must
// hold the lease and the acta must not be digitized yet.
func (s *Service) SubmitDigitization(ctx context.Context, in SubmitDigitizationInput) error {
	me, err := s.contributor(ctx)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		if err := s.actas.SaveDigitization(ctx, in.ActaID, me, in.Values, now); err != nil {
			return err
		}
		return s.stats.Increment(ctx, me, domain.StatsDelta{Digitized: 1}, now)
	})
	if err != nil {
		return fmt.Errorf("acta.SubmitDigitization: %w", err)
	}

	s.log.InfoContext(ctx, "acta digitized",
		slog.String("acta_id", in.ActaID.String()),
		slog.String("contributor_id", me.String()),
	)
	return nil
}

// RefreshLease pushes the expiry of the caller's lease.
func (s *Service) RefreshLease(ctx context.Context, actaID uuid.UUID) (time.Time, error) {
	me, ok := ctxutil.ContributorIDFromCtx(ctx)
	if !ok {
		return time.Time{}, domain.ErrUnauthorized
	}

	l, ok, err := s.leases.Extend(ctx, actaID, me)
	if err != nil {
		return time.Time{}, fmt.Errorf("acta.RefreshLease: %w", err)
	}
	if !ok {
		return time.Time{}, domain.ErrNotLeaseHolder
	}
	return l.ExpiresAt, nil
}

// ReleaseLease gives up the caller's lease. Releasing a lease the caller
// does not hold is a no-op.
func (s *Service) ReleaseLease(ctx context.Context, actaID uuid.UUID) error {
	me, ok := ctxutil.ContributorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.leases.Release(ctx, actaID, &me); err != nil {
		return fmt.Errorf("acta.ReleaseLease: %w", err)
	}
	return nil
}

// GetModerationBanner returns the caller's moderation standing.
func (s *Service) GetModerationBanner(ctx context.Context) (domain.ModerationBanner, error) {
	me, ok := ctxutil.ContributorIDFromCtx(ctx)
	if !ok {
		return domain.ModerationBanner{}, domain.ErrUnauthorized
	}

	b, err := s.moderation.Banner(ctx, me)
	if err != nil {
		return domain.ModerationBanner{}, fmt.Errorf("acta.GetModerationBanner: %w", err)
	}
	return b, nil
}

// ListMilestones returns the caller's milestones.
func (s *Service) ListMilestones(ctx context.Context) ([]domain.Milestone, error) {
	me, ok := ctxutil.ContributorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ms, err := s.achievements.List(ctx, me)
	if err != nil {
		return nil, fmt.Errorf("acta.ListMilestones: %w", err)
	}
	return ms, nil
}
