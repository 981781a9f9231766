// Package achievement grants milestone badges from cumulative counters.
package achievement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

type milestoneRepo interface {
	GrantReached(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int, now time.Time) ([]domain.Milestone, error)
	ListGranted(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error)
}

type clock interface {
	Now() time.Time
}

// Service is the achievement tracker.
type Service struct {
	log        *slog.Logger
	milestones milestoneRepo
	clock      clock
}

// NewService creates a new achievement tracker.
func NewService(logger *slog.Logger, milestones milestoneRepo, clk clock) *Service {
	return &Service{
		log:        logger.With("service", "achievement"),
		milestones: milestones,
		clock:      clk,
	}
}

// CheckAndGrant grants every milestone of kind whose threshold is at or
// below value and that the contributor does not hold yet. Already earned
// milestones are skipped, so repeated calls are harmless.
func (s *Service) CheckAndGrant(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int) ([]domain.Milestone, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown milestone kind")
	}
	if value <= 0 {
		return nil, nil
	}

	granted, err := s.milestones.GrantReached(ctx, contributorID, kind, value, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("achievement.CheckAndGrant: %w", err)
	}

	for _, m := range granted {
		s.log.InfoContext(ctx, "milestone granted",
			slog.String("contributor_id", contributorID.String()),
			slog.String("code", m.Code),
		)
	}
	return granted, nil
}

// List returns the contributor's milestones.
func (s *Service) List(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error) {
	ms, err := s.milestones.ListGranted(ctx, contributorID)
	if err != nil {
		return nil, fmt.Errorf("achievement.List: %w", err)
	}
	return ms, nil
}
