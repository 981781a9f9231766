package acta

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

// ReportProblem flags an acta. The acta moves to UNDER_REVIEW unless it is
// already validated, and the reporter's lease on it is released.
func (s *Service) ReportProblem(ctx context.Context, in ReportProblemInput) ([]domain.Milestone, error) {
	me, err := s.contributor(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var flagged bool
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()

		a, err := s.actas.GetByPublicID(ctx, in.ActaID)
		if err != nil {
			return err
		}

		if _, err := s.reports.Create(ctx, &domain.ProblemReport{
			ActaID:        a.ID,
			ContributorID: me,
			Category:      in.Category,
			Note:          in.Note,
			CreatedAt:     now,
		}); err != nil {
			return err
		}

		flagged, err = s.actas.MarkUnderReview(ctx, a.ID, now)
		if err != nil {
			return err
		}

		if err := s.leases.Release(ctx, in.ActaID, &me); err != nil {
			return err
		}

		return s.stats.Increment(ctx, me, domain.StatsDelta{Reports: 1}, now)
	})
	if err != nil {
		return nil, fmt.Errorf("acta.ReportProblem: %w", err)
	}

	s.log.InfoContext(ctx, "problem reported",
		slog.String("acta_id", in.ActaID.String()),
		slog.String("contributor_id", me.String()),
		slog.String("category", in.Category.String()),
		slog.Bool("flagged", flagged),
	)

	return s.grantFromStats(ctx, me, domain.MilestoneKindReportCount), nil
}
