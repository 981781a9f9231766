package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ActaSeed describes an acta row to insert. Zero values produce a pending
// acta with an image and no official or digitized data.
type ActaSeed struct {
	NoImage         bool
	HasOfficialData bool
	Official        *domain.Tally
	Digitized       *domain.Tally
	DigitizerID     *uuid.UUID
	Status          domain.ActaStatus
}

// SeedActa inserts an acta and returns it as stored.
func SeedActa(t *testing.T, pool *pgxpool.Pool, s ActaSeed) domain.Acta {
	t.Helper()
	ctx := context.Background()

	status := s.Status
	if status == "" {
		status = domain.ActaStatusPending
		if s.Digitized != nil {
			status = domain.ActaStatusDigitized
		}
	}

	a := domain.Acta{
		PublicID:         uuid.New(),
		ExternalID:       "JRV-" + uniqueSuffix(),
		DepartmentCode:   "08",
		MunicipalityCode: "0801",
		PrecinctCode:     "0801-" + uniqueSuffix(),
		HasOfficialData:  s.HasOfficialData,
		HasImage:         !s.NoImage,
		Official:         s.Official,
		Digitized:        s.Digitized,
		DigitizerID:      s.DigitizerID,
		LastAuthorID:     s.DigitizerID,
		Status:           status,
	}
	if s.Digitized != nil {
		now := time.Now().UTC().Truncate(time.Microsecond)
		a.DigitizedAt = &now
	}

	off, dig := tallyArgs(a.Official), tallyArgs(a.Digitized)
	err := pool.QueryRow(ctx,
		`INSERT INTO actas (
			public_id, external_id, department_code, municipality_code, precinct_code,
			has_official_data, has_image,
			official_pn, official_plh, official_pl, official_pinu, official_dc, official_null_votes, official_blank_votes,
			digitized_pn, digitized_plh, digitized_pl, digitized_pinu, digitized_dc, digitized_null_votes, digitized_blank_votes,
			digitizer_id, digitized_at, last_author_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24, $25)
		 RETURNING id, created_at, updated_at`,
		a.PublicID, a.ExternalID, a.DepartmentCode, a.MunicipalityCode, a.PrecinctCode,
		a.HasOfficialData, a.HasImage,
		off[0], off[1], off[2], off[3], off[4], off[5], off[6],
		dig[0], dig[1], dig[2], dig[3], dig[4], dig[5], dig[6],
		a.DigitizerID, a.DigitizedAt, a.LastAuthorID, string(a.Status),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActa: %v", err)
	}

	return a
}

// SeedDigitizedActa inserts an acta with an image whose digitized values are
// already set by digitizer.
func SeedDigitizedActa(t *testing.T, pool *pgxpool.Pool, values domain.Tally, digitizer uuid.UUID) domain.Acta {
	t.Helper()
	return SeedActa(t, pool, ActaSeed{Digitized: &values, DigitizerID: &digitizer})
}

// SeedContributor creates a contributor_stats row in the ACTIVE state and
// returns the contributor id.
func SeedContributor(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO contributor_stats (contributor_id) VALUES ($1)`, id)
	if err != nil {
		t.Fatalf("testhelper: SeedContributor: %v", err)
	}
	return id
}

// SeedValidation inserts a validation row without touching the acta counters.
func SeedValidation(t *testing.T, pool *pgxpool.Pool, actaID int64, contributorID uuid.UUID, matched bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO validations (acta_id, contributor_id, matched) VALUES ($1, $2, $3)`,
		actaID, contributorID, matched)
	if err != nil {
		t.Fatalf("testhelper: SeedValidation: %v", err)
	}
}

// SeedReport inserts a problem report.
func SeedReport(t *testing.T, pool *pgxpool.Pool, actaID int64, contributorID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO problem_reports (acta_id, contributor_id, category) VALUES ($1, $2, $3)`,
		actaID, contributorID, string(domain.ReportCategoryIllegibleImage))
	if err != nil {
		t.Fatalf("testhelper: SeedReport: %v", err)
	}
}

func tallyArgs(t *domain.Tally) [7]*int {
	var out [7]*int
	if t == nil {
		return out
	}
	f := t.Fields()
	for i := range f {
		v := f[i]
		out[i] = &v
	}
	return out
}
