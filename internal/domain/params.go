package domain

import (
	"time"

	"github.com/google/uuid"
)

// CandidateQuery describes the acta a contributor is looking for.
type CandidateQuery struct {
	ContributorID uuid.UUID
	Mode          AssignmentMode
	Quorum        int
	Now           time.Time
}

// ValidationUpdate is the in-place counter change produced by one validation.
type ValidationUpdate struct {
	Matched bool
	// Correction, when set, overwrites the stored digitized values and
	// records Author as their new author.
	Correction *Tally
	Author     uuid.UUID
	Now        time.Time
}

// StatsDelta is a set of contributor counter increments applied in place.
type StatsDelta struct {
	Digitized   int
	Validated   int
	Matched     int
	Reports     int
	Corrections int
}

// StateChange is a conditional moderation state change: it applies only if
// the stored state still equals From.
type StateChange struct {
	From   ModerationState
	To     ModerationState
	Reason string
	At     time.Time
}
