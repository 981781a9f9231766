package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tally holds the seven vote-count fields of a tally sheet.
type Tally struct {
	PN    int `json:"pn"`
	PLH   int `json:"plh"`
	PL    int `json:"pl"`
	PINU  int `json:"pinu"`
	DC    int `json:"dc"`
	Null  int `json:"nulos"`
	Blank int `json:"blancos"`
}

// Total returns the sum of all seven fields.
func (t Tally) Total() int {
	return t.PN + t.PLH + t.PL + t.PINU + t.DC + t.Null + t.Blank
}

// Fields returns the seven values in column order.
func (t Tally) Fields() [7]int {
	return [7]int{t.PN, t.PLH, t.PL, t.PINU, t.DC, t.Null, t.Blank}
}

// Validate rejects negative counts.
func (t Tally) Validate(field string) []FieldError {
	names := [7]string{"pn", "plh", "pl", "pinu", "dc", "nulos", "blancos"}
	var errs []FieldError
	for i, v := range t.Fields() {
		if v < 0 {
			errs = append(errs, FieldError{Field: field + "." + names[i], Message: "must be >= 0"})
		}
	}
	return errs
}

// Acta is a single precinct's tally sheet.
type Acta struct {
	ID               int64
	PublicID         uuid.UUID
	ExternalID       string
	DepartmentCode   string
	MunicipalityCode string
	PrecinctCode     string
	HasOfficialData  bool
	HasImage         bool

	Official *Tally
	// Digitized is nil until the first transcription (or a pre-load) sets all seven values.
	Digitized *Tally

	DigitizerID  *uuid.UUID
	DigitizedAt  *time.Time
	LastAuthorID *uuid.UUID

	Status          ActaStatus
	ValidationCount int
	MatchedCount    int

	LeaseHolder    *uuid.UUID
	LeaseExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Lease returns the active lease at now, or false when the acta is free.
// An expired lease is indistinguishable from no lease.
func (a *Acta) Lease(now time.Time) (Lease, bool) {
	if a.LeaseHolder == nil || a.LeaseExpiresAt == nil || !a.LeaseExpiresAt.After(now) {
		return Lease{}, false
	}
	return Lease{ActaID: a.PublicID, Holder: *a.LeaseHolder, ExpiresAt: *a.LeaseExpiresAt}, true
}

// HeldBy reports whether contributorID holds an unexpired lease at now.
func (a *Acta) HeldBy(contributorID uuid.UUID, now time.Time) bool {
	l, ok := a.Lease(now)
	return ok && l.Holder == contributorID
}

// Lease is a time-boxed exclusive claim on an acta.
type Lease struct {
	ActaID    uuid.UUID
	Holder    uuid.UUID
	ExpiresAt time.Time
}

// Remaining returns the time left on the lease at now (never negative).
func (l Lease) Remaining(now time.Time) time.Duration {
	d := l.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Assignment is a unit of work handed to a contributor.
type Assignment struct {
	ActaID         uuid.UUID
	Mode           AssignmentMode
	LeaseExpiresAt time.Time
	// Resumed is true when the contributor already held this lease.
	Resumed bool
}

// Validation is one reviewer's submission on an acta.
type Validation struct {
	ID            int64
	ActaID        int64
	ContributorID uuid.UUID
	Matched       bool
	Submitted     *Tally
	CreatedAt     time.Time
}

// ProblemReport flags a data or image problem on an acta.
type ProblemReport struct {
	ID            int64
	ActaID        int64
	ContributorID uuid.UUID
	Category      ReportCategory
	Note          *string
	CreatedAt     time.Time
}
