package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModerationState is a rung on the moderation ladder.
// The ladder is totally ordered: ACTIVE < WARNED < RESTRICTED < BANNED.
type ModerationState string

const (
	ModerationStateActive     ModerationState = "ACTIVE"
	ModerationStateWarned     ModerationState = "WARNED"
	ModerationStateRestricted ModerationState = "RESTRICTED"
	ModerationStateBanned     ModerationState = "BANNED"
)

var moderationLadder = []ModerationState{
	ModerationStateActive,
	ModerationStateWarned,
	ModerationStateRestricted,
	ModerationStateBanned,
}

func (s ModerationState) String() string { return string(s) }

func (s ModerationState) IsValid() bool {
	return s.Severity() >= 0
}

// Severity returns the position of s on the ladder, or -1 for unknown states.
func (s ModerationState) Severity() int {
	for i, rung := range moderationLadder {
		if rung == s {
			return i
		}
	}
	return -1
}

// MoreSevereThan reports whether s is strictly further up the ladder than other.
func (s ModerationState) MoreSevereThan(other ModerationState) bool {
	return s.Severity() > other.Severity()
}

// NextStep returns the state a contributor moves to when an evaluation
// suggests `suggested` while they are at `current`. It climbs at most one
// rung and never descends; unknown states leave current untouched.
func NextStep(current, suggested ModerationState) ModerationState {
	cur, sug := current.Severity(), suggested.Severity()
	if cur < 0 || sug < 0 || sug <= cur {
		return current
	}
	return moderationLadder[cur+1]
}

// ContributorStats is the per-contributor reputation record.
type ContributorStats struct {
	ContributorID       uuid.UUID
	DigitizedCount      int
	ValidatedCount      int
	MatchedValidations  int
	ReportsCount        int
	CorrectionsReceived int

	State          ModerationState
	StateChangedAt *time.Time
	StateReason    *string
	WarningsCount  int
	// StateLocked is set by a human moderator and freezes automatic transitions.
	StateLocked bool

	PrivateProfile bool
	OnboardingSeen bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewContributorStats returns the lazily-created record for a first-time contributor.
func NewContributorStats(id uuid.UUID) ContributorStats {
	return ContributorStats{
		ContributorID: id,
		State:         ModerationStateActive,
	}
}

// StatsSnapshot is the subset of counters captured in a history entry.
type StatsSnapshot struct {
	DigitizedCount      int  `json:"digitized_count"`
	ValidatedCount      int  `json:"validated_count"`
	MatchedValidations  int  `json:"matched_validations"`
	ReportsCount        int  `json:"reports_count"`
	CorrectionsReceived int  `json:"corrections_received"`
	Accuracy            *int `json:"accuracy,omitempty"`
}

// Snapshot captures the counters of s.
func (s ContributorStats) Snapshot(accuracy *int) StatsSnapshot {
	return StatsSnapshot{
		DigitizedCount:      s.DigitizedCount,
		ValidatedCount:      s.ValidatedCount,
		MatchedValidations:  s.MatchedValidations,
		ReportsCount:        s.ReportsCount,
		CorrectionsReceived: s.CorrectionsReceived,
		Accuracy:            accuracy,
	}
}

// StateTransition is an append-only audit entry of a moderation change.
type StateTransition struct {
	ID            int64
	ContributorID uuid.UUID
	PreviousState ModerationState
	NewState      ModerationState
	Reason        string
	Snapshot      StatsSnapshot
	Automatic     bool
	CreatedAt     time.Time
}

// ModerationBanner is what the UI shows a contributor about their standing.
type ModerationBanner struct {
	State    ModerationState `json:"state"`
	Accuracy *int            `json:"accuracy,omitempty"`
	Reason   *string         `json:"reason,omitempty"`
}
