// Package moderation evaluates contributor accuracy and walks the
// moderation ladder. A ban removes the contributor's validations and
// reports and recounts every acta they touched.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/internal/service/consensus"
)

type statsRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error)
	Increment(ctx context.Context, id uuid.UUID, d domain.StatsDelta, now time.Time) error
	ApplyTransition(ctx context.Context, id uuid.UUID, t domain.StateChange) (bool, error)
	Override(ctx context.Context, id uuid.UUID, state domain.ModerationState, locked bool, reason string, at time.Time) error
}

type historyRepo interface {
	Append(ctx context.Context, e *domain.StateTransition) (*domain.StateTransition, error)
	List(ctx context.Context, contributorID uuid.UUID, limit int) ([]domain.StateTransition, error)
}

type validationRepo interface {
	DeleteByContributor(ctx context.Context, contributorID uuid.UUID) ([]int64, error)
}

type reportRepo interface {
	DeleteByContributor(ctx context.Context, contributorID uuid.UUID) (int64, error)
}

type actaRepo interface {
	Recount(ctx context.Context, ids []int64, quorum, agreement int, now time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// Service is the reputation and moderation engine.
type Service struct {
	log         *slog.Logger
	stats       statsRepo
	history     historyRepo
	validations validationRepo
	reports     reportRepo
	actas       actaRepo
	tx          txManager
	clock       clock
	policy      Policy
	rules       consensus.Rules
}

// NewService creates a new moderation engine.
func NewService(
	logger *slog.Logger,
	stats statsRepo,
	history historyRepo,
	validations validationRepo,
	reports reportRepo,
	actas actaRepo,
	tx txManager,
	clk clock,
	policy Policy,
	rules consensus.Rules,
) *Service {
	return &Service{
		log:         logger.With("service", "moderation"),
		stats:       stats,
		history:     history,
		validations: validations,
		reports:     reports,
		actas:       actas,
		tx:          tx,
		clock:       clk,
		policy:      policy,
		rules:       rules,
	}
}

// Evaluate recomputes the contributor's accuracy and, when it warrants a
// more severe state, moves them exactly one rung up the ladder. It returns
// the recorded transition, or nil when nothing changed.
func (s *Service) Evaluate(ctx context.Context, contributorID uuid.UUID) (*domain.StateTransition, error) {
	st, err := s.stats.Get(ctx, contributorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("moderation.Evaluate: %w", err)
	}

	if st.StateLocked {
		return nil, nil
	}

	accuracy, ok := Accuracy(*st, s.policy)
	if !ok {
		return nil, nil
	}
	target := domain.NextStep(st.State, Suggest(accuracy, s.policy))
	if target == st.State {
		return nil, nil
	}

	var entry *domain.StateTransition
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		fresh, err := s.stats.GetForUpdate(ctx, contributorID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if s.recentlyMovedTo(fresh, target, now) || fresh.State != st.State || fresh.StateLocked {
			return nil
		}

		reason := fmt.Sprintf("accuracy %d%%", accuracy)
		applied, err := s.stats.ApplyTransition(ctx, contributorID, domain.StateChange{
			From:   st.State,
			To:     target,
			Reason: reason,
			At:     now,
		})
		if err != nil || !applied {
			return err
		}

		if target == domain.ModerationStateBanned {
			if err := s.cascade(ctx, contributorID, now); err != nil {
				return err
			}
		}

		entry, err = s.history.Append(ctx, &domain.StateTransition{
			ContributorID: contributorID,
			PreviousState: st.State,
			NewState:      target,
			Reason:        reason,
			Snapshot:      fresh.Snapshot(&accuracy),
			Automatic:     true,
			CreatedAt:     now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("moderation.Evaluate: %w", err)
	}

	if entry != nil {
		s.log.InfoContext(ctx, "moderation state changed",
			slog.String("contributor_id", contributorID.String()),
			slog.String("from", entry.PreviousState.String()),
			slog.String("to", entry.NewState.String()),
			slog.Int("accuracy", accuracy),
		)
	}
	return entry, nil
}

// recentlyMovedTo de-duplicates evaluations racing on the same event.
func (s *Service) recentlyMovedTo(st *domain.ContributorStats, target domain.ModerationState, now time.Time) bool {
	return st.State == target &&
		st.StateChangedAt != nil &&
		now.Sub(*st.StateChangedAt) < s.policy.DedupWindow
}

// cascade removes a banned contributor's input from every acta it counted
// towards. Must run inside the ban transaction.
func (s *Service) cascade(ctx context.Context, contributorID uuid.UUID, now time.Time) error {
	actaIDs, err := s.validations.DeleteByContributor(ctx, contributorID)
	if err != nil {
		return fmt.Errorf("delete validations: %w", err)
	}

	reports, err := s.reports.DeleteByContributor(ctx, contributorID)
	if err != nil {
		return fmt.Errorf("delete reports: %w", err)
	}

	if len(actaIDs) > 0 {
		if _, err := s.actas.Recount(ctx, actaIDs, s.rules.Quorum, s.rules.Agreement, now); err != nil {
			return fmt.Errorf("recount actas: %w", err)
		}
	}

	s.log.InfoContext(ctx, "ban cascade applied",
		slog.String("contributor_id", contributorID.String()),
		slog.Int("actas_recounted", len(actaIDs)),
		slog.Int64("reports_deleted", reports),
	)
	return nil
}

// Banner returns what the contributor should see about their standing.
// Contributors without a record are active.
func (s *Service) Banner(ctx context.Context, contributorID uuid.UUID) (domain.ModerationBanner, error) {
	st, err := s.stats.Get(ctx, contributorID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ModerationBanner{State: domain.ModerationStateActive}, nil
	}
	if err != nil {
		return domain.ModerationBanner{}, fmt.Errorf("moderation.Banner: %w", err)
	}

	b := domain.ModerationBanner{State: st.State, Reason: st.StateReason}
	if acc, ok := Accuracy(*st, s.policy); ok {
		b.Accuracy = &acc
	}
	return b, nil
}
