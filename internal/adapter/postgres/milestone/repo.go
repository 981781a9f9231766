// Package milestone implements the achievement catalogue and grants using PostgreSQL.
package milestone

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Repo provides milestone persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new milestone repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type milestoneRow struct {
	ID        int64      `db:"id"`
	Code      string     `db:"code"`
	Kind      string     `db:"kind"`
	Threshold int        `db:"threshold"`
	Title     string     `db:"title"`
	GrantedAt *time.Time `db:"granted_at"`
}

func (r milestoneRow) toDomain() domain.Milestone {
	return domain.Milestone{
		ID:        r.ID,
		Code:      r.Code,
		Kind:      domain.MilestoneKind(r.Kind),
		Threshold: r.Threshold,
		Title:     r.Title,
		GrantedAt: r.GrantedAt,
	}
}

const grantReachedSQL = `
WITH granted AS (
    INSERT INTO contributor_milestones (contributor_id, milestone_id, granted_at)
    SELECT $1, m.id, $4
    FROM milestones m
    WHERE m.kind = $2 AND m.threshold <= $3
    ON CONFLICT (contributor_id, milestone_id) DO NOTHING
    RETURNING milestone_id, granted_at
)
SELECT m.id, m.code, m.kind, m.threshold, m.title, g.granted_at
FROM granted g
JOIN milestones m ON m.id = g.milestone_id
ORDER BY m.threshold`

// GrantReached grants every milestone of kind whose threshold is at or below
// value and that the contributor does not hold yet. Returns only the newly
// granted milestones.
func (r *Repo) GrantReached(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int, now time.Time) ([]domain.Milestone, error) {
	var rows []milestoneRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, grantReachedSQL,
		contributorID, string(kind), value, now)
	if err != nil {
		return nil, fmt.Errorf("grant milestones to %s: %w", contributorID, err)
	}
	return toDomain(rows), nil
}

// ListGranted returns the milestones a contributor holds, oldest first.
func (r *Repo) ListGranted(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error) {
	var rows []milestoneRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT m.id, m.code, m.kind, m.threshold, m.title, cm.granted_at
		 FROM contributor_milestones cm
		 JOIN milestones m ON m.id = cm.milestone_id
		 WHERE cm.contributor_id = $1
		 ORDER BY cm.granted_at, m.threshold`,
		contributorID)
	if err != nil {
		return nil, fmt.Errorf("list milestones of %s: %w", contributorID, err)
	}
	return toDomain(rows), nil
}

func toDomain(rows []milestoneRow) []domain.Milestone {
	out := make([]domain.Milestone, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
