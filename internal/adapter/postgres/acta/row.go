package acta

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

// actaRow is the scan target for actaColumns.
type actaRow struct {
	ID               int64     `db:"id"`
	PublicID         uuid.UUID `db:"public_id"`
	ExternalID       string    `db:"external_id"`
	DepartmentCode   string    `db:"department_code"`
	MunicipalityCode string    `db:"municipality_code"`
	PrecinctCode     string    `db:"precinct_code"`
	HasOfficialData  bool      `db:"has_official_data"`
	HasImage         bool      `db:"has_image"`

	OfficialPN    *int `db:"official_pn"`
	OfficialPLH   *int `db:"official_plh"`
	OfficialPL    *int `db:"official_pl"`
	OfficialPINU  *int `db:"official_pinu"`
	OfficialDC    *int `db:"official_dc"`
	OfficialNull  *int `db:"official_null_votes"`
	OfficialBlank *int `db:"official_blank_votes"`

	DigitizedPN    *int `db:"digitized_pn"`
	DigitizedPLH   *int `db:"digitized_plh"`
	DigitizedPL    *int `db:"digitized_pl"`
	DigitizedPINU  *int `db:"digitized_pinu"`
	DigitizedDC    *int `db:"digitized_dc"`
	DigitizedNull  *int `db:"digitized_null_votes"`
	DigitizedBlank *int `db:"digitized_blank_votes"`

	DigitizerID  *uuid.UUID `db:"digitizer_id"`
	DigitizedAt  *time.Time `db:"digitized_at"`
	LastAuthorID *uuid.UUID `db:"last_author_id"`

	Status          string `db:"status"`
	ValidationCount int    `db:"validation_count"`
	MatchedCount    int    `db:"matched_count"`

	LeaseHolder    *uuid.UUID `db:"lease_holder"`
	LeaseExpiresAt *time.Time `db:"lease_expires_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r actaRow) toDomain() domain.Acta {
	return domain.Acta{
		ID:               r.ID,
		PublicID:         r.PublicID,
		ExternalID:       r.ExternalID,
		DepartmentCode:   r.DepartmentCode,
		MunicipalityCode: r.MunicipalityCode,
		PrecinctCode:     r.PrecinctCode,
		HasOfficialData:  r.HasOfficialData,
		HasImage:         r.HasImage,
		Official: toTally(r.OfficialPN, r.OfficialPLH, r.OfficialPL, r.OfficialPINU,
			r.OfficialDC, r.OfficialNull, r.OfficialBlank),
		Digitized: toTally(r.DigitizedPN, r.DigitizedPLH, r.DigitizedPL, r.DigitizedPINU,
			r.DigitizedDC, r.DigitizedNull, r.DigitizedBlank),
		DigitizerID:     r.DigitizerID,
		DigitizedAt:     r.DigitizedAt,
		LastAuthorID:    r.LastAuthorID,
		Status:          domain.ActaStatus(r.Status),
		ValidationCount: r.ValidationCount,
		MatchedCount:    r.MatchedCount,
		LeaseHolder:     r.LeaseHolder,
		LeaseExpiresAt:  r.LeaseExpiresAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// toTally returns nil unless all seven columns are set; the table's CHECK
// constraint guarantees all-or-nothing.
func toTally(pn, plh, pl, pinu, dc, null, blank *int) *domain.Tally {
	if pn == nil || plh == nil || pl == nil || pinu == nil || dc == nil || null == nil || blank == nil {
		return nil
	}
	return &domain.Tally{PN: *pn, PLH: *plh, PL: *pl, PINU: *pinu, DC: *dc, Null: *null, Blank: *blank}
}

func tallyPtrs(t *domain.Tally) [7]*int {
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
