package acta

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

const maxNoteLength = 1000

// SubmitDigitizationInput holds a first transcription.
type SubmitDigitizationInput struct {
	ActaID uuid.UUID
	Values domain.Tally
}

// Validate validates the digitization input.
func (i SubmitDigitizationInput) Validate() error {
	var p domain.Problems
	p.Require(i.ActaID != uuid.Nil, "acta_id", "required")
	p.Merge(i.Values.Validate("values"))
	return p.Err()
}

// SubmitValidationInput holds a review. Either ConfirmCorrect is set or
// CorrectedValues carries all seven values.
type SubmitValidationInput struct {
	ActaID          uuid.UUID
	ConfirmCorrect  bool
	CorrectedValues *domain.Tally
	// SessionStreak is the number of actas reviewed in the current client
	// session, including this one.
	SessionStreak int
}

// Validate validates the validation input.
func (i SubmitValidationInput) Validate() error {
	var p domain.Problems
	p.Require(i.ActaID != uuid.Nil, "acta_id", "required")
	p.Require(i.ConfirmCorrect || i.CorrectedValues != nil, "corrected_values", "required unless confirm_correct is set")
	if i.CorrectedValues != nil {
		p.Merge(i.CorrectedValues.Validate("corrected_values"))
	}
	p.Require(i.SessionStreak >= 0, "session_streak", "must be >= 0")
	return p.Err()
}

// ReportProblemInput holds a problem report.
type ReportProblemInput struct {
	ActaID   uuid.UUID
	Category domain.ReportCategory
	Note     *string
}

// Validate validates the report input.
func (i ReportProblemInput) Validate() error {
	var p domain.Problems
	p.Require(i.ActaID != uuid.Nil, "acta_id", "required")
	p.Require(i.Category.IsValid(), "category", "invalid category")
	p.Require(i.Note == nil || len(*i.Note) <= maxNoteLength, "note", "too long")
	return p.Err()
}
