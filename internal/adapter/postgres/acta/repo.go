// Package acta implements the tally-sheet store using PostgreSQL.
// Every per-acta mutation is a single conditional UPDATE so row-level
// atomicity is the only synchronization primitive.
package acta

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Repo provides acta persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new acta repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const actaColumns = `id, public_id, external_id, department_code, municipality_code, precinct_code,
	has_official_data, has_image,
	official_pn, official_plh, official_pl, official_pinu, official_dc, official_null_votes, official_blank_votes,
	digitized_pn, digitized_plh, digitized_pl, digitized_pinu, digitized_dc, digitized_null_votes, digitized_blank_votes,
	digitizer_id, digitized_at, last_author_id, status, validation_count, matched_count,
	lease_holder, lease_expires_at, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByPublicID returns an acta by its opaque public id.
func (r *Repo) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error) {
	return r.getOne(ctx, `SELECT `+actaColumns+` FROM actas WHERE public_id = $1`, publicID)
}

// LockForValidation returns the acta and holds a row lock until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) LockForValidation(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error) {
	return r.getOne(ctx, `SELECT `+actaColumns+` FROM actas WHERE public_id = $1 FOR UPDATE`, publicID)
}

// FindHeldBy returns the acta on which holder has an unexpired lease.
// Returns domain.ErrNotFound when the contributor holds nothing.
func (r *Repo) FindHeldBy(ctx context.Context, holder uuid.UUID, now time.Time) (*domain.Acta, error) {
	return r.getOne(ctx,
		`SELECT `+actaColumns+` FROM actas
		 WHERE lease_holder = $1 AND lease_expires_at > $2
		 ORDER BY lease_expires_at DESC
		 LIMIT 1`,
		holder, now)
}

func (r *Repo) getOne(ctx context.Context, sql string, id any, args ...any) (*domain.Acta, error) {
	var row actaRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, append([]any{id}, args...)...); err != nil {
		return nil, postgres.MapError(err, "acta", id)
	}
	a := row.toDomain()
	return &a, nil
}

// SelectCandidate picks one eligible acta uniformly at random. The second
// return value is false when nothing is eligible.
func (r *Repo) SelectCandidate(ctx context.Context, c domain.CandidateQuery) (uuid.UUID, bool, error) {
	q := postgres.Builder().
		Select("public_id").
		From("actas").
		Where(leaseFreeOrHeldBy(c.ContributorID, c.Now)).
		OrderBy("random()").
		Limit(1)

	switch c.Mode {
	case domain.AssignmentModeDigitize:
		q = q.Where(squirrel.Eq{
			"has_official_data": false,
			"digitizer_id":      nil,
			"digitized_pn":      nil,
		}).
			Where(squirrel.NotEq{"status": string(domain.ActaStatusUnderReview)})
	case domain.AssignmentModeValidate:
		q = q.Where(squirrel.Eq{"has_image": true}).
			Where(squirrel.Lt{"validation_count": c.Quorum}).
			Where(squirrel.NotEq{"digitized_pn": nil}).
			Where(squirrel.NotEq{"status": string(domain.ActaStatusUnderReview)}).
			Where(squirrel.Or{
				squirrel.Eq{"digitizer_id": nil},
				squirrel.NotEq{"digitizer_id": c.ContributorID},
			}).
			Where("NOT EXISTS (SELECT 1 FROM validations v WHERE v.acta_id = actas.id AND v.contributor_id = ?)", c.ContributorID).
			Where("NOT EXISTS (SELECT 1 FROM problem_reports p WHERE p.acta_id = actas.id AND p.contributor_id = ?)", c.ContributorID)
	default:
		return uuid.Nil, false, fmt.Errorf("select candidate: unknown mode %q", c.Mode)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("select candidate: build: %w", err)
	}

	var id uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("select candidate: %w", err)
	}
	return id, true, nil
}

func leaseFreeOrHeldBy(contributorID uuid.UUID, now time.Time) squirrel.Or {
	return squirrel.Or{
		squirrel.Eq{"lease_holder": nil},
		squirrel.Eq{"lease_expires_at": nil},
		squirrel.LtOrEq{"lease_expires_at": now},
		squirrel.Eq{"lease_holder": contributorID},
	}
}

// ---------------------------------------------------------------------------
// Lease operations
// ---------------------------------------------------------------------------

const acquireLeaseSQL = `
UPDATE actas
SET lease_holder = $2, lease_expires_at = $4, updated_at = $3
WHERE public_id = $1
  AND (lease_holder IS NULL OR lease_expires_at IS NULL OR lease_expires_at <= $3 OR lease_holder = $2)
RETURNING lease_expires_at`

// AcquireLease grants holder the lease until expiresAt if it is free,
// expired or already theirs. A false result means another contributor won.
func (r *Repo) AcquireLease(ctx context.Context, publicID, holder uuid.UUID, now, expiresAt time.Time) (time.Time, bool, error) {
	return r.leaseUpdate(ctx, acquireLeaseSQL, publicID, holder, now, expiresAt)
}

const extendLeaseSQL = `
UPDATE actas
SET lease_expires_at = $4, updated_at = $3
WHERE public_id = $1 AND lease_holder = $2 AND lease_expires_at > $3
RETURNING lease_expires_at`

// ExtendLease pushes the expiry of an unexpired lease held by holder.
func (r *Repo) ExtendLease(ctx context.Context, publicID, holder uuid.UUID, now, expiresAt time.Time) (time.Time, bool, error) {
	return r.leaseUpdate(ctx, extendLeaseSQL, publicID, holder, now, expiresAt)
}

func (r *Repo) leaseUpdate(ctx context.Context, sql string, publicID, holder uuid.UUID, now, expiresAt time.Time) (time.Time, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var got time.Time
	err := q.QueryRow(ctx, sql, publicID, holder, now, expiresAt).Scan(&got)
	if err == nil {
		return got, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, postgres.MapError(err, "acta", publicID)
	}

	exists, err := r.exists(ctx, publicID)
	if err != nil {
		return time.Time{}, false, err
	}
	if !exists {
		return time.Time{}, false, fmt.Errorf("acta %s: %w", publicID, domain.ErrNotFound)
	}
	return time.Time{}, false, nil
}

func (r *Repo) exists(ctx context.Context, publicID uuid.UUID) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM actas WHERE public_id = $1)`, publicID).
		Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "acta", publicID)
	}
	return ok, nil
}

// ReleaseLease clears the lease. With a non-nil holder only that holder's
// lease is released. Reports whether a row changed.
func (r *Repo) ReleaseLease(ctx context.Context, publicID uuid.UUID, holder *uuid.UUID) (bool, error) {
	q := postgres.Builder().
		Update("actas").
		Set("lease_holder", squirrel.Expr("NULL")).
		Set("lease_expires_at", squirrel.Expr("NULL")).
		Where(squirrel.Eq{"public_id": publicID}).
		Where(squirrel.NotEq{"lease_holder": nil})
	if holder != nil {
		q = q.Where(squirrel.Eq{"lease_holder": *holder})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("release lease: build: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "acta", publicID)
	}
	return tag.RowsAffected() > 0, nil
}

// ReleaseExpiredLeases clears lease columns whose expiry has passed.
func (r *Repo) ReleaseExpiredLeases(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE actas SET lease_holder = NULL, lease_expires_at = NULL
		 WHERE lease_expires_at IS NOT NULL AND lease_expires_at <= $1`,
		now)
	if err != nil {
		return 0, fmt.Errorf("release expired leases: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Workflow writes
// ---------------------------------------------------------------------------

const saveDigitizationSQL = `
UPDATE actas
SET digitized_pn = $3, digitized_plh = $4, digitized_pl = $5, digitized_pinu = $6,
    digitized_dc = $7, digitized_null_votes = $8, digitized_blank_votes = $9,
    digitizer_id = $2, digitized_at = $10, last_author_id = $2,
    status = CASE WHEN status = 'UNDER_REVIEW' THEN status ELSE 'DIGITIZED'::acta_status END,
    lease_holder = NULL, lease_expires_at = NULL, updated_at = $10
WHERE public_id = $1
  AND digitizer_id IS NULL AND digitized_pn IS NULL
  AND lease_holder = $2 AND lease_expires_at > $10
RETURNING id`

// SaveDigitization stores the first transcription of an acta and releases
// the digitizer's lease. It only applies while contributorID holds an
// unexpired lease and nobody has digitized the acta yet. An acta reported
// while the lease was held stays UNDER_REVIEW.
func (r *Repo) SaveDigitization(ctx context.Context, publicID, contributorID uuid.UUID, values domain.Tally, now time.Time) error {
	f := values.Fields()

	var id int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, saveDigitizationSQL,
		publicID, contributorID, f[0], f[1], f[2], f[3], f[4], f[5], f[6], now,
	).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "acta", publicID)
	}

	current, err := r.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if current.Digitized != nil || current.DigitizerID != nil {
		return fmt.Errorf("acta %s: %w", publicID, domain.ErrAlreadyDigitized)
	}
	return fmt.Errorf("acta %s: %w", publicID, domain.ErrNotLeaseHolder)
}

// ApplyValidation increments the acta counters in place, applies an optional
// correction and clears the lease. Returns the counters after the update.
func (r *Repo) ApplyValidation(ctx context.Context, id int64, u domain.ValidationUpdate) (total, matched int, err error) {
	matchedInc := 0
	if u.Matched {
		matchedInc = 1
	}

	q := postgres.Builder().
		Update("actas").
		Set("validation_count", squirrel.Expr("validation_count + 1")).
		Set("matched_count", squirrel.Expr("matched_count + ?", matchedInc)).
		Set("lease_holder", squirrel.Expr("NULL")).
		Set("lease_expires_at", squirrel.Expr("NULL")).
		Set("updated_at", u.Now)

	if u.Correction != nil {
		f := u.Correction.Fields()
		for i, col := range digitizedColumns {
			q = q.Set(col, f[i])
		}
		q = q.Set("last_author_id", u.Author)
	}

	sql, args, err := q.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING validation_count, matched_count").
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("apply validation: build: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&total, &matched); err != nil {
		return 0, 0, postgres.MapError(err, "acta", id)
	}
	return total, matched, nil
}

var digitizedColumns = [7]string{
	"digitized_pn", "digitized_plh", "digitized_pl", "digitized_pinu",
	"digitized_dc", "digitized_null_votes", "digitized_blank_votes",
}

// SetStatus overwrites the status of an acta.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.ActaStatus, now time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE actas SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), now)
	if err != nil {
		return postgres.MapError(err, "acta", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("acta %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkUnderReview flags the acta for human review unless it is already
// validated. Reports whether the status changed.
func (r *Repo) MarkUnderReview(ctx context.Context, id int64, now time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE actas SET status = 'UNDER_REVIEW', updated_at = $2
		 WHERE id = $1 AND status NOT IN ('VALIDATED', 'UNDER_REVIEW')`,
		id, now)
	if err != nil {
		return false, postgres.MapError(err, "acta", id)
	}
	return tag.RowsAffected() > 0, nil
}

const recountSQL = `
WITH c AS (
    SELECT a.id,
           count(v.id) AS total,
           count(v.id) FILTER (WHERE v.matched) AS matched
    FROM actas a
    LEFT JOIN validations v ON v.acta_id = a.id
    WHERE a.id = ANY($1)
    GROUP BY a.id
)
UPDATE actas a
SET validation_count = c.total,
    matched_count = c.matched,
    status = CASE
        WHEN a.status = 'UNDER_REVIEW' THEN a.status
        WHEN c.total = 0 THEN (CASE WHEN a.digitized_pn IS NULL THEN 'PENDING' ELSE 'DIGITIZED' END)::acta_status
        WHEN c.total < $2 THEN 'UNDER_VALIDATION'::acta_status
        WHEN c.matched >= $3 THEN 'VALIDATED'::acta_status
        ELSE 'DISPUTED'::acta_status
    END,
    updated_at = $4
FROM c
WHERE a.id = c.id`

// Recount recomputes counters and status of the given actas from their
// surviving validation rows. Actas under review keep their status.
func (r *Repo) Recount(ctx context.Context, ids []int64, quorum, agreement int, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recountSQL, ids, quorum, agreement, now)
	if err != nil {
		return 0, fmt.Errorf("recount actas: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Reopen discards the validations and reports of an acta and puts it back
// in the validation pool. Must be called inside TxManager.RunInTx.
func (r *Repo) Reopen(ctx context.Context, publicID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx,
		`UPDATE actas
		 SET validation_count = 0, matched_count = 0,
		     status = CASE WHEN digitized_pn IS NULL THEN 'PENDING' ELSE 'DIGITIZED' END::acta_status,
		     lease_holder = NULL, lease_expires_at = NULL, updated_at = $2
		 WHERE public_id = $1
		 RETURNING id`,
		publicID, now).Scan(&id)
	if err != nil {
		return postgres.MapError(err, "acta", publicID)
	}

	if _, err := q.Exec(ctx, `DELETE FROM validations WHERE acta_id = $1`, id); err != nil {
		return fmt.Errorf("reopen acta %s: delete validations: %w", publicID, err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM problem_reports WHERE acta_id = $1`, id); err != nil {
		return fmt.Errorf("reopen acta %s: delete reports: %w", publicID, err)
	}
	return nil
}

// Import bulk-inserts actas, skipping external ids that already exist.
// Returns the number of inserted rows.
func (r *Repo) Import(ctx context.Context, actas []domain.Acta) (int64, error) {
	if len(actas) == 0 {
		return 0, nil
	}

	q := postgres.Builder().
		Insert("actas").
		Columns(
			"external_id", "department_code", "municipality_code", "precinct_code",
			"has_official_data", "has_image",
			"official_pn", "official_plh", "official_pl", "official_pinu",
			"official_dc", "official_null_votes", "official_blank_votes",
		).
		Suffix("ON CONFLICT (external_id) DO NOTHING")

	for _, a := range actas {
		off := tallyPtrs(a.Official)
		q = q.Values(
			a.ExternalID, a.DepartmentCode, a.MunicipalityCode, a.PrecinctCode,
			a.HasOfficialData, a.HasImage,
			off[0], off[1], off[2], off[3], off[4], off[5], off[6],
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("import actas: build: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "acta import", len(actas))
	}
	return tag.RowsAffected(), nil
}

// CountByStatus returns the number of actas in each status. Statuses with no
// actas are absent from the map.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.ActaStatus]int64, error) {
	var rows []struct {
		Status string `db:"status"`
		N      int64  `db:"n"`
	}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT status::text AS status, count(*) AS n FROM actas GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count actas by status: %w", err)
	}

	out := make(map[domain.ActaStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.ActaStatus(row.Status)] = row.N
	}
	return out, nil
}
