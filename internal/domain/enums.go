package domain

// ActaStatus represents the lifecycle state of a tally sheet.
type ActaStatus string

const (
	ActaStatusPending         ActaStatus = "PENDING"
	ActaStatusDigitized       ActaStatus = "DIGITIZED"
	ActaStatusUnderValidation ActaStatus = "UNDER_VALIDATION"
	ActaStatusValidated       ActaStatus = "VALIDATED"
	ActaStatusDisputed        ActaStatus = "DISPUTED"
	ActaStatusUnderReview     ActaStatus = "UNDER_REVIEW"
)

func (s ActaStatus) String() string { return string(s) }

func (s ActaStatus) IsValid() bool {
	switch s {
	case ActaStatusPending, ActaStatusDigitized, ActaStatusUnderValidation,
		ActaStatusValidated, ActaStatusDisputed, ActaStatusUnderReview:
		return true
	}
	return false
}

// AssignmentMode selects what kind of work a contributor asks for.
type AssignmentMode string

const (
	AssignmentModeDigitize AssignmentMode = "DIGITIZE"
	AssignmentModeValidate AssignmentMode = "VALIDATE"
)

func (m AssignmentMode) String() string { return string(m) }

func (m AssignmentMode) IsValid() bool {
	switch m {
	case AssignmentModeDigitize, AssignmentModeValidate:
		return true
	}
	return false
}

// ReportCategory classifies a problem report.
type ReportCategory string

const (
	ReportCategoryIllegibleImage ReportCategory = "ILLEGIBLE_IMAGE"
	ReportCategoryWrongImage     ReportCategory = "WRONG_IMAGE"
	ReportCategoryMissingImage   ReportCategory = "MISSING_IMAGE"
	ReportCategoryDataMismatch   ReportCategory = "DATA_MISMATCH"
	ReportCategoryOther          ReportCategory = "OTHER"
)

func (c ReportCategory) String() string { return string(c) }

func (c ReportCategory) IsValid() bool {
	switch c {
	case ReportCategoryIllegibleImage, ReportCategoryWrongImage, ReportCategoryMissingImage,
		ReportCategoryDataMismatch, ReportCategoryOther:
		return true
	}
	return false
}

// MilestoneKind identifies the counter a milestone is measured against.
type MilestoneKind string

const (
	MilestoneKindTotalValidations MilestoneKind = "TOTAL_VALIDATIONS"
	MilestoneKindReportCount      MilestoneKind = "REPORT_COUNT"
	MilestoneKindSessionStreak    MilestoneKind = "SESSION_STREAK"
)

func (k MilestoneKind) String() string { return string(k) }

func (k MilestoneKind) IsValid() bool {
	switch k {
	case MilestoneKindTotalValidations, MilestoneKindReportCount, MilestoneKindSessionStreak:
		return true
	}
	return false
}

// ContributorRole is the authorization level carried in the access token.
type ContributorRole string

const (
	ContributorRoleContributor ContributorRole = "contributor"
	ContributorRoleModerator   ContributorRole = "moderator"
)

func (r ContributorRole) String() string { return string(r) }

func (r ContributorRole) IsValid() bool {
	switch r {
	case ContributorRoleContributor, ContributorRoleModerator:
		return true
	}
	return false
}
