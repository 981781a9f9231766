// Package report implements the problem report repository using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Repo provides problem report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a report. One report per contributor and acta; a repeat
// returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.ProblemReport) (*domain.ProblemReport, error) {
	out := *p
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO problem_reports (acta_id, contributor_id, category, note, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.ActaID, p.ContributorID, string(p.Category), p.Note, p.CreatedAt,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "problem_report", p.ActaID)
	}
	return &out, nil
}

// DeleteByContributor removes every report filed by contributorID.
func (r *Repo) DeleteByContributor(ctx context.Context, contributorID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM problem_reports WHERE contributor_id = $1`, contributorID)
	if err != nil {
		return 0, fmt.Errorf("delete reports of %s: %w", contributorID, err)
	}
	return tag.RowsAffected(), nil
}

type reportRow struct {
	ID            int64     `db:"id"`
	ActaID        int64     `db:"acta_id"`
	ContributorID uuid.UUID `db:"contributor_id"`
	Category      string    `db:"category"`
	Note          *string   `db:"note"`
	CreatedAt     time.Time `db:"created_at"`
}

// ListByContributor returns the reports filed by contributorID, newest first.
func (r *Repo) ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]domain.ProblemReport, error) {
	var rows []reportRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, acta_id, contributor_id, category, note, created_at
		 FROM problem_reports WHERE contributor_id = $1
		 ORDER BY created_at DESC, id DESC`,
		contributorID)
	if err != nil {
		return nil, fmt.Errorf("list reports of %s: %w", contributorID, err)
	}

	out := make([]domain.ProblemReport, len(rows))
	for i, row := range rows {
		out[i] = domain.ProblemReport{
			ID:            row.ID,
			ActaID:        row.ActaID,
			ContributorID: row.ContributorID,
			Category:      domain.ReportCategory(row.Category),
			Note:          row.Note,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}
