package moderation

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

const maxReasonLength = 500

// SetStateInput holds a moderator's override.
type SetStateInput struct {
	ContributorID uuid.UUID
	State         domain.ModerationState
	Locked        bool
	Reason        string
}

// Validate validates the override.
func (i SetStateInput) Validate() error {
	var p domain.Problems
	p.Require(i.ContributorID != uuid.Nil, "contributor_id", "required")
	p.Require(i.State.IsValid(), "state", "must be ACTIVE, WARNED, RESTRICTED or BANNED")
	switch {
	case i.Reason == "":
		p.Add("reason", "required")
	case len(i.Reason) > maxReasonLength:
		p.Add("reason", "too long")
	}
	return p.Err()
}
