// Package history implements the append-only moderation history using PostgreSQL.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Repo provides moderation history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append records a state transition. Rows are never updated or deleted; a
// trigger on the table enforces it.
func (r *Repo) Append(ctx context.Context, e *domain.StateTransition) (*domain.StateTransition, error) {
	snapshot, err := json.Marshal(e.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal stats snapshot: %w", err)
	}

	out := *e
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO moderation_history
		     (contributor_id, previous_state, new_state, reason, stats_snapshot, automatic, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		e.ContributorID, string(e.PreviousState), string(e.NewState), e.Reason, snapshot, e.Automatic, e.CreatedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "moderation_history", e.ContributorID)
	}
	return &out, nil
}

type entryRow struct {
	ID            int64     `db:"id"`
	ContributorID uuid.UUID `db:"contributor_id"`
	PreviousState string    `db:"previous_state"`
	NewState      string    `db:"new_state"`
	Reason        string    `db:"reason"`
	Snapshot      []byte    `db:"stats_snapshot"`
	Automatic     bool      `db:"automatic"`
	CreatedAt     time.Time `db:"created_at"`
}

// List returns the newest transitions of a contributor, at most limit.
func (r *Repo) List(ctx context.Context, contributorID uuid.UUID, limit int) ([]domain.StateTransition, error) {
	var rows []entryRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, contributor_id, previous_state, new_state, reason, stats_snapshot, automatic, created_at
		 FROM moderation_history
		 WHERE contributor_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		contributorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list moderation history of %s: %w", contributorID, err)
	}

	out := make([]domain.StateTransition, len(rows))
	for i, row := range rows {
		var snap domain.StatsSnapshot
		if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
			return nil, fmt.Errorf("decode stats snapshot %d: %w", row.ID, err)
		}
		out[i] = domain.StateTransition{
			ID:            row.ID,
			ContributorID: row.ContributorID,
			PreviousState: domain.ModerationState(row.PreviousState),
			NewState:      domain.ModerationState(row.NewState),
			Reason:        row.Reason,
			Snapshot:      snap,
			Automatic:     row.Automatic,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}
