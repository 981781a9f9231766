package domain

import "time"

// Milestone is an achievement threshold.
type Milestone struct {
	ID        int64
	Code      string
	Kind      MilestoneKind
	Threshold int
	Title     string
	GrantedAt *time.Time
}
