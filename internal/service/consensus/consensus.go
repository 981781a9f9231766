// Package consensus holds the side-effect-free decision logic over vote
// tallies: exact matching, per-submission evaluation and the quorum rule.
package consensus

import (
	"github.com/heartmarshall/actas-backend/internal/config"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// ValuesMatch reports whether all seven fields are equal. No tolerance.
func ValuesMatch(a, b domain.Tally) bool {
	return a == b
}

// Submission is one reviewer's verdict on the stored values: either a
// confirmation or a full replacement tally.
type Submission struct {
	ConfirmCorrect bool
	Values         *domain.Tally
}

// Outcome is the effect of a submission on the acta.
type Outcome struct {
	// Matched is true for a confirmation or an identical retype.
	Matched bool
	// Correction holds the values that replace the stored ones; nil unless
	// the reviewer typed different numbers.
	Correction *domain.Tally
}

// Evaluate compares a submission with the values stored at submission time.
// A submission that neither confirms nor carries values is invalid.
func Evaluate(stored domain.Tally, sub Submission) (Outcome, error) {
	if sub.ConfirmCorrect {
		return Outcome{Matched: true}, nil
	}
	if sub.Values == nil {
		return Outcome{}, domain.NewValidationError("corrected_values", "required unless confirm_correct is set")
	}
	if ValuesMatch(stored, *sub.Values) {
		return Outcome{Matched: true}, nil
	}
	v := *sub.Values
	return Outcome{Correction: &v}, nil
}

// Rules is the quorum policy.
type Rules struct {
	Quorum    int
	Agreement int
}

// DefaultRules is 2-of-3.
func DefaultRules() Rules {
	return Rules{Quorum: 3, Agreement: 2}
}

// RulesFromConfig builds Rules from configuration.
func RulesFromConfig(cfg config.ConsensusConfig) Rules {
	return Rules{Quorum: cfg.Quorum, Agreement: cfg.AgreementThreshold}
}

// Decide maps the running counters to an acta status. Below quorum the acta
// is under validation; at or past quorum it is validated when enough
// submissions matched and disputed otherwise. There is no plurality fallback.
func (r Rules) Decide(total, matched int) domain.ActaStatus {
	switch {
	case total <= 0:
		return domain.ActaStatusDigitized
	case total < r.Quorum:
		return domain.ActaStatusUnderValidation
	case matched >= r.Agreement:
		return domain.ActaStatusValidated
	default:
		return domain.ActaStatusDisputed
	}
}
