package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// SetState applies a moderator's decision. Unlike Evaluate it may jump or
// descend the ladder, and Locked freezes automatic transitions. Moving a
// contributor into BANNED runs the same cascade as an automatic ban.
func (s *Service) SetState(ctx context.Context, in SetStateInput) (*domain.StateTransition, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.StateTransition
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		if err := s.stats.Increment(ctx, in.ContributorID, domain.StatsDelta{}, now); err != nil {
			return err
		}
		cur, err := s.stats.GetForUpdate(ctx, in.ContributorID)
		if err != nil {
			return err
		}

		if err := s.stats.Override(ctx, in.ContributorID, in.State, in.Locked, in.Reason, now); err != nil {
			return err
		}

		if in.State == domain.ModerationStateBanned && cur.State != domain.ModerationStateBanned {
			if err := s.cascade(ctx, in.ContributorID, now); err != nil {
				return err
			}
		}

		var accuracy *int
		if acc, ok := Accuracy(*cur, s.policy); ok {
			accuracy = &acc
		}

		entry, err = s.history.Append(ctx, &domain.StateTransition{
			ContributorID: in.ContributorID,
			PreviousState: cur.State,
			NewState:      in.State,
			Reason:        in.Reason,
			Snapshot:      cur.Snapshot(accuracy),
			Automatic:     false,
			CreatedAt:     now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("moderation.SetState: %w", err)
	}

	s.log.InfoContext(ctx, "moderation state set by moderator",
		slog.String("contributor_id", in.ContributorID.String()),
		slog.String("from", entry.PreviousState.String()),
		slog.String("to", entry.NewState.String()),
		slog.Bool("locked", in.Locked),
	)
	return entry, nil
}

// History returns the contributor's transitions, newest first.
func (s *Service) History(ctx context.Context, contributorID uuid.UUID, limit int) ([]domain.StateTransition, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	entries, err := s.history.List(ctx, contributorID, limit)
	if err != nil {
		return nil, fmt.Errorf("moderation.History: %w", err)
	}
	return entries, nil
}
