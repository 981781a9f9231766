// Package contributor implements the contributor statistics repository
// using PostgreSQL. Counters are only ever changed by increment-in-place
// upserts and states by conditional updates.
package contributor

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Repo provides contributor statistics persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contributor repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const statsColumns = `contributor_id, digitized_count, validated_count, matched_validations,
	reports_count, corrections_received, moderation_state, state_changed_at, state_reason,
	warnings_count, state_locked, private_profile, onboarding_seen, created_at, updated_at`

type statsRow struct {
	ContributorID       uuid.UUID  `db:"contributor_id"`
	DigitizedCount      int        `db:"digitized_count"`
	ValidatedCount      int        `db:"validated_count"`
	MatchedValidations  int        `db:"matched_validations"`
	ReportsCount        int        `db:"reports_count"`
	CorrectionsReceived int        `db:"corrections_received"`
	ModerationState     string     `db:"moderation_state"`
	StateChangedAt      *time.Time `db:"state_changed_at"`
	StateReason         *string    `db:"state_reason"`
	WarningsCount       int        `db:"warnings_count"`
	StateLocked         bool       `db:"state_locked"`
	PrivateProfile      bool       `db:"private_profile"`
	OnboardingSeen      bool       `db:"onboarding_seen"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r statsRow) toDomain() domain.ContributorStats {
	return domain.ContributorStats{
		ContributorID:       r.ContributorID,
		DigitizedCount:      r.DigitizedCount,
		ValidatedCount:      r.ValidatedCount,
		MatchedValidations:  r.MatchedValidations,
		ReportsCount:        r.ReportsCount,
		CorrectionsReceived: r.CorrectionsReceived,
		State:               domain.ModerationState(r.ModerationState),
		StateChangedAt:      r.StateChangedAt,
		StateReason:         r.StateReason,
		WarningsCount:       r.WarningsCount,
		StateLocked:         r.StateLocked,
		PrivateProfile:      r.PrivateProfile,
		OnboardingSeen:      r.OnboardingSeen,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// Get returns the statistics of a contributor, or domain.ErrNotFound when
// the contributor has never contributed.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error) {
	return r.get(ctx, `SELECT `+statsColumns+` FROM contributor_stats WHERE contributor_id = $1`, id)
}

// GetForUpdate is Get with a row lock held until the transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error) {
	return r.get(ctx, `SELECT `+statsColumns+` FROM contributor_stats WHERE contributor_id = $1 FOR UPDATE`, id)
}

func (r *Repo) get(ctx context.Context, sql string, id uuid.UUID) (*domain.ContributorStats, error) {
	var row statsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, id); err != nil {
		return nil, postgres.MapError(err, "contributor", id)
	}
	s := row.toDomain()
	return &s, nil
}

const incrementSQL = `
INSERT INTO contributor_stats (contributor_id, digitized_count, validated_count,
    matched_validations, reports_count, corrections_received, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (contributor_id) DO UPDATE SET
    digitized_count      = contributor_stats.digitized_count + EXCLUDED.digitized_count,
    validated_count      = contributor_stats.validated_count + EXCLUDED.validated_count,
    matched_validations  = contributor_stats.matched_validations + EXCLUDED.matched_validations,
    reports_count        = contributor_stats.reports_count + EXCLUDED.reports_count,
    corrections_received = contributor_stats.corrections_received + EXCLUDED.corrections_received,
    updated_at           = EXCLUDED.updated_at`

// Increment applies d to the contributor's counters, creating the record
// on first contribution. A zero Delta only ensures the record exists.
func (r *Repo) Increment(ctx context.Context, id uuid.UUID, d domain.StatsDelta, now time.Time) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementSQL,
		id, d.Digitized, d.Validated, d.Matched, d.Reports, d.Corrections, now)
	if err != nil {
		return postgres.MapError(err, "contributor", id)
	}
	return nil
}

// ApplyTransition moves the contributor from t.From to t.To and bumps the
// warnings counter. It applies only if the stored state still equals
// t.From and the record is not locked; the bool reports whether it did.
func (r *Repo) ApplyTransition(ctx context.Context, id uuid.UUID, t domain.StateChange) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE contributor_stats
		 SET moderation_state = $3, state_reason = $4, state_changed_at = $5,
		     warnings_count = warnings_count + 1, updated_at = $5
		 WHERE contributor_id = $1 AND moderation_state = $2 AND NOT state_locked`,
		id, string(t.From), string(t.To), t.Reason, t.At)
	if err != nil {
		return false, postgres.MapError(err, "contributor", id)
	}
	return tag.RowsAffected() > 0, nil
}

// Override sets state and lock flag unconditionally on behalf of a human
// moderator. The record must exist.
func (r *Repo) Override(ctx context.Context, id uuid.UUID, state domain.ModerationState, locked bool, reason string, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE contributor_stats
		 SET moderation_state = $2, state_locked = $3, state_reason = $4,
		     state_changed_at = $5, updated_at = $5
		 WHERE contributor_id = $1`,
		id, string(state), locked, reason, at)
	if err != nil {
		return postgres.MapError(err, "contributor", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contributor %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
