// Package validation implements the validation record repository using PostgreSQL.
package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Repo provides validation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new validation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO validations (acta_id, contributor_id, matched,
    submitted_pn, submitted_plh, submitted_pl, submitted_pinu,
    submitted_dc, submitted_null_votes, submitted_blank_votes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, created_at`

// Create inserts a validation. A second validation by the same contributor
// on the same acta returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v *domain.Validation) (*domain.Validation, error) {
	var f [7]*int
	if v.Submitted != nil {
		vals := v.Submitted.Fields()
		for i := range vals {
			n := vals[i]
			f[i] = &n
		}
	}

	out := *v
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		v.ActaID, v.ContributorID, v.Matched,
		f[0], f[1], f[2], f[3], f[4], f[5], f[6], v.CreatedAt,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "validation", v.ActaID)
	}
	return &out, nil
}

// DeleteByContributor removes every validation by contributorID and returns
// the distinct ids of the affected actas.
func (r *Repo) DeleteByContributor(ctx context.Context, contributorID uuid.UUID) ([]int64, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx,
		`DELETE FROM validations WHERE contributor_id = $1 RETURNING acta_id`, contributorID)
	if err != nil {
		return nil, fmt.Errorf("delete validations of %s: %w", contributorID, err)
	}
	defer rows.Close()

	seen := make(map[int64]struct{})
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("delete validations of %s: scan: %w", contributorID, err)
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("delete validations of %s: %w", contributorID, err)
	}
	return ids, nil
}

type validationRow struct {
	ID            int64     `db:"id"`
	ActaID        int64     `db:"acta_id"`
	ContributorID uuid.UUID `db:"contributor_id"`
	Matched       bool      `db:"matched"`
	CreatedAt     time.Time `db:"created_at"`
}

// ListByContributor returns the validations filed by contributorID, newest first.
func (r *Repo) ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]domain.Validation, error) {
	var rows []validationRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, acta_id, contributor_id, matched, created_at
		 FROM validations WHERE contributor_id = $1
		 ORDER BY created_at DESC, id DESC`,
		contributorID)
	if err != nil {
		return nil, fmt.Errorf("list validations of %s: %w", contributorID, err)
	}

	out := make([]domain.Validation, len(rows))
	for i, row := range rows {
		out[i] = domain.Validation{
			ID:            row.ID,
			ActaID:        row.ActaID,
			ContributorID: row.ContributorID,
			Matched:       row.Matched,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}
