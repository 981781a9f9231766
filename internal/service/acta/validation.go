package acta

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/internal/service/consensus"
)

// ValidationResult reports the acta counters after a validation.
type ValidationResult struct {
	Matched         bool
	Status          domain.ActaStatus
	ValidationCount int
	MatchedCount    int
	Milestones      []domain.Milestone
}

// SubmitValidation records the caller's review of the stored values. The
// row lock, the lease check, the counter update and both contributors'
// statistics commit together.
func (s *Service) SubmitValidation(ctx context.Context, in SubmitValidationInput) (ValidationResult, error) {
	me, err := s.contributor(ctx)
	if err != nil {
		return ValidationResult{}, err
	}
	if err := in.Validate(); err != nil {
		return ValidationResult{}, err
	}

	var (
		res       ValidationResult
		corrected *uuid.UUID
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		a, err := s.actas.LockForValidation(ctx, in.ActaID)
		if err != nil {
			return err
		}
		if !a.HeldBy(me, now) {
			return domain.ErrNotLeaseHolder
		}
		if a.Digitized == nil {
			s.log.ErrorContext(ctx, "validation against acta without digitized values",
				slog.String("acta_id", in.ActaID.String()),
			)
			return domain.ErrNoDigitizedValues
		}
		if a.DigitizerID != nil && *a.DigitizerID == me {
			return fmt.Errorf("validate own digitization: %w", domain.ErrForbidden)
		}

		out, err := consensus.Evaluate(*a.Digitized, consensus.Submission{
			ConfirmCorrect: in.ConfirmCorrect,
			Values:         in.CorrectedValues,
		})
		if err != nil {
			return err
		}

		if _, err := s.validations.Create(ctx, &domain.Validation{
			ActaID:        a.ID,
			ContributorID: me,
			Matched:       out.Matched,
			Submitted:     in.CorrectedValues,
			CreatedAt:     now,
		}); err != nil {
			return err
		}

		total, matched, err := s.actas.ApplyValidation(ctx, a.ID, domain.ValidationUpdate{
			Matched:    out.Matched,
			Correction: out.Correction,
			Author:     me,
			Now:        now,
		})
		if err != nil {
			return err
		}

		// A flagged acta keeps accumulating reviews but stays under review.
		status := domain.ActaStatusUnderReview
		if a.Status != domain.ActaStatusUnderReview {
			status = s.rules.Decide(total, matched)
			if err := s.actas.SetStatus(ctx, a.ID, status, now); err != nil {
				return err
			}
		}

		delta := domain.StatsDelta{Validated: 1}
		if out.Matched {
			delta.Matched = 1
		}
		if err := s.stats.Increment(ctx, me, delta, now); err != nil {
			return err
		}

		if out.Correction != nil {
			corrected = previousAuthor(a)
			if corrected != nil {
				if err := s.stats.Increment(ctx, *corrected, domain.StatsDelta{Corrections: 1}, now); err != nil {
					return err
				}
			}
		}

		res = ValidationResult{Matched: out.Matched, Status: status, ValidationCount: total, MatchedCount: matched}
		return nil
	})
	if err != nil {
		return ValidationResult{}, fmt.Errorf("acta.SubmitValidation: %w", err)
	}

	s.log.InfoContext(ctx, "validation recorded",
		slog.String("acta_id", in.ActaID.String()),
		slog.String("contributor_id", me.String()),
		slog.Bool("matched", res.Matched),
		slog.String("status", res.Status.String()),
	)

	s.evaluate(ctx, me)
	if corrected != nil {
		s.evaluate(ctx, *corrected)
	}

	res.Milestones = append(res.Milestones, s.grantFromStats(ctx, me, domain.MilestoneKindTotalValidations)...)
	res.Milestones = append(res.Milestones, s.grant(ctx, me, domain.MilestoneKindSessionStreak, in.SessionStreak)...)
	return res, nil
}

// previousAuthor is whoever wrote the values a correction replaced.
func previousAuthor(a *domain.Acta) *uuid.UUID {
	if a.LastAuthorID != nil {
		return a.LastAuthorID
	}
	return a.DigitizerID
}

func (s *Service) evaluate(ctx context.Context, contributorID uuid.UUID) {
	if _, err := s.moderation.Evaluate(ctx, contributorID); err != nil {
		s.log.WarnContext(ctx, "moderation evaluation failed",
			slog.String("contributor_id", contributorID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// grantFromStats checks milestones measured against a persisted counter.
func (s *Service) grantFromStats(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind) []domain.Milestone {
	st, err := s.stats.Get(ctx, contributorID)
	if err != nil {
		s.log.WarnContext(ctx, "milestone check skipped",
			slog.String("contributor_id", contributorID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	value := st.ValidatedCount
	if kind == domain.MilestoneKindReportCount {
		value = st.ReportsCount
	}
	return s.grant(ctx, contributorID, kind, value)
}

func (s *Service) grant(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int) []domain.Milestone {
	ms, err := s.achievements.CheckAndGrant(ctx, contributorID, kind, value)
	if err != nil {
		s.log.WarnContext(ctx, "milestone grant failed",
			slog.String("contributor_id", contributorID.String()),
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return ms
}
