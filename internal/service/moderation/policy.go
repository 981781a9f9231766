package moderation

import (
	"math"
	"time"

	"github.com/heartmarshall/actas-backend/internal/config"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// Policy holds the reputation thresholds.
type Policy struct {
	MinValidations   int
	GraceValidations int
	WarnBelow        int
	RestrictBelow    int
	BanBelow         int
	DedupWindow      time.Duration
}

// DefaultPolicy: 10 validations minimum, no grace, 70/50/30, 5s dedup.
func DefaultPolicy() Policy {
	return Policy{
		MinValidations: 10,
		WarnBelow:      70,
		RestrictBelow:  50,
		BanBelow:       30,
		DedupWindow:    5 * time.Second,
	}
}

// PolicyFromConfig builds a Policy from configuration.
func PolicyFromConfig(cfg config.ModerationConfig) Policy {
	return Policy{
		MinValidations:   cfg.MinValidations,
		GraceValidations: cfg.GraceValidations,
		WarnBelow:        cfg.WarnBelow,
		RestrictBelow:    cfg.RestrictBelow,
		BanBelow:         cfg.BanBelow,
		DedupWindow:      cfg.DedupWindow,
	}
}

// Accuracy returns the share of the contributor's validations that did not
// draw a correction, as a rounded percentage in [0, 100]. The first
// GraceValidations validations and corrections are ignored. ok is false
// below the minimum sample size.
func Accuracy(s domain.ContributorStats, p Policy) (int, bool) {
	validations := max(s.ValidatedCount-p.GraceValidations, 0)
	corrections := max(s.CorrectionsReceived-p.GraceValidations, 0)

	if validations < p.MinValidations || validations == 0 {
		return 0, false
	}

	pct := math.Round(float64(validations-corrections) / float64(validations) * 100)
	return int(min(max(pct, 0), 100)), true
}

// Suggest maps an accuracy to the state it warrants on its own, before the
// single-step rule is applied.
func Suggest(accuracy int, p Policy) domain.ModerationState {
	switch {
	case accuracy < p.BanBelow:
		return domain.ModerationStateBanned
	case accuracy < p.RestrictBelow:
		return domain.ModerationStateRestricted
	case accuracy < p.WarnBelow:
		return domain.ModerationStateWarned
	default:
		return domain.ModerationStateActive
	}
}
