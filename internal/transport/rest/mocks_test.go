package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	svcacta "github.com/heartmarshall/actas-backend/internal/service/acta"
	"github.com/heartmarshall/actas-backend/internal/service/moderation"
)

var _ actaService = &actaServiceMock{}

type actaServiceMock struct {
	RequestAssignmentFunc   func(ctx context.Context, mode domain.AssignmentMode) (domain.Assignment, bool, error)
	GetActaFunc             func(ctx context.Context, actaID uuid.UUID) (*domain.Acta, error)
	SubmitDigitizationFunc  func(ctx context.Context, in svcacta.SubmitDigitizationInput) error
	SubmitValidationFunc    func(ctx context.Context, in svcacta.SubmitValidationInput) (svcacta.ValidationResult, error)
	ReportProblemFunc       func(ctx context.Context, in svcacta.ReportProblemInput) ([]domain.Milestone, error)
	RefreshLeaseFunc        func(ctx context.Context, actaID uuid.UUID) (time.Time, error)
	ReleaseLeaseFunc        func(ctx context.Context, actaID uuid.UUID) error
	GetModerationBannerFunc func(ctx context.Context) (domain.ModerationBanner, error)
	ListMilestonesFunc      func(ctx context.Context) ([]domain.Milestone, error)

	calls struct {
		RequestAssignment []struct {
			Ctx  context.Context
			Mode domain.AssignmentMode
		}
		GetActa []struct {
			Ctx    context.Context
			ActaID uuid.UUID
		}
		SubmitDigitization []struct {
			Ctx context.Context
			In  svcacta.SubmitDigitizationInput
		}
		SubmitValidation []struct {
			Ctx context.Context
			In  svcacta.SubmitValidationInput
		}
		ReportProblem []struct {
			Ctx context.Context
			In  svcacta.ReportProblemInput
		}
		RefreshLease []struct {
			Ctx    context.Context
			ActaID uuid.UUID
		}
		ReleaseLease []struct {
			Ctx    context.Context
			ActaID uuid.UUID
		}
		GetModerationBanner []struct {
			Ctx context.Context
		}
		ListMilestones []struct {
			Ctx context.Context
		}
	}
	lockRequestAssignment   sync.RWMutex
	lockGetActa             sync.RWMutex
	lockSubmitDigitization  sync.RWMutex
	lockSubmitValidation    sync.RWMutex
	lockReportProblem       sync.RWMutex
	lockRefreshLease        sync.RWMutex
	lockReleaseLease        sync.RWMutex
	lockGetModerationBanner sync.RWMutex
	lockListMilestones      sync.RWMutex
}

func (mock *actaServiceMock) RequestAssignment(ctx context.Context, mode domain.AssignmentMode) (domain.Assignment, bool, error) {
	if mock.RequestAssignmentFunc == nil {
		panic("actaServiceMock.RequestAssignmentFunc: method is nil but actaService.RequestAssignment was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Mode domain.AssignmentMode
	}{Ctx: ctx, Mode: mode}
	mock.lockRequestAssignment.Lock()
	mock.calls.RequestAssignment = append(mock.calls.RequestAssignment, callInfo)
	mock.lockRequestAssignment.Unlock()
	return mock.RequestAssignmentFunc(ctx, mode)
}

func (mock *actaServiceMock) RequestAssignmentCalls() []struct {
	Ctx  context.Context
	Mode domain.AssignmentMode
} {
	var calls []struct {
		Ctx  context.Context
		Mode domain.AssignmentMode
	}
	mock.lockRequestAssignment.RLock()
	calls = mock.calls.RequestAssignment
	mock.lockRequestAssignment.RUnlock()
	return calls
}

func (mock *actaServiceMock) GetActa(ctx context.Context, actaID uuid.UUID) (*domain.Acta, error) {
	if mock.GetActaFunc == nil {
		panic("actaServiceMock.GetActaFunc: method is nil but actaService.GetActa was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ActaID uuid.UUID
	}{Ctx: ctx, ActaID: actaID}
	mock.lockGetActa.Lock()
	mock.calls.GetActa = append(mock.calls.GetActa, callInfo)
	mock.lockGetActa.Unlock()
	return mock.GetActaFunc(ctx, actaID)
}

func (mock *actaServiceMock) GetActaCalls() []struct {
	Ctx    context.Context
	ActaID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ActaID uuid.UUID
	}
	mock.lockGetActa.RLock()
	calls = mock.calls.GetActa
	mock.lockGetActa.RUnlock()
	return calls
}

func (mock *actaServiceMock) SubmitDigitization(ctx context.Context, in svcacta.SubmitDigitizationInput) error {
	if mock.SubmitDigitizationFunc == nil {
		panic("actaServiceMock.SubmitDigitizationFunc: method is nil but actaService.SubmitDigitization was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  svcacta.SubmitDigitizationInput
	}{Ctx: ctx, In: in}
	mock.lockSubmitDigitization.Lock()
	mock.calls.SubmitDigitization = append(mock.calls.SubmitDigitization, callInfo)
	mock.lockSubmitDigitization.Unlock()
	return mock.SubmitDigitizationFunc(ctx, in)
}

func (mock *actaServiceMock) SubmitDigitizationCalls() []struct {
	Ctx context.Context
	In  svcacta.SubmitDigitizationInput
} {
	var calls []struct {
		Ctx context.Context
		In  svcacta.SubmitDigitizationInput
	}
	mock.lockSubmitDigitization.RLock()
	calls = mock.calls.SubmitDigitization
	mock.lockSubmitDigitization.RUnlock()
	return calls
}

func (mock *actaServiceMock) SubmitValidation(ctx context.Context, in svcacta.SubmitValidationInput) (svcacta.ValidationResult, error) {
	if mock.SubmitValidationFunc == nil {
		panic("actaServiceMock.SubmitValidationFunc: method is nil but actaService.SubmitValidation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  svcacta.SubmitValidationInput
	}{Ctx: ctx, In: in}
	mock.lockSubmitValidation.Lock()
	mock.calls.SubmitValidation = append(mock.calls.SubmitValidation, callInfo)
	mock.lockSubmitValidation.Unlock()
	return mock.SubmitValidationFunc(ctx, in)
}

func (mock *actaServiceMock) SubmitValidationCalls() []struct {
	Ctx context.Context
	In  svcacta.SubmitValidationInput
} {
	var calls []struct {
		Ctx context.Context
		In  svcacta.SubmitValidationInput
	}
	mock.lockSubmitValidation.RLock()
	calls = mock.calls.SubmitValidation
	mock.lockSubmitValidation.RUnlock()
	return calls
}

func (mock *actaServiceMock) ReportProblem(ctx context.Context, in svcacta.ReportProblemInput) ([]domain.Milestone, error) {
	if mock.ReportProblemFunc == nil {
		panic("actaServiceMock.ReportProblemFunc: method is nil but actaService.ReportProblem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  svcacta.ReportProblemInput
	}{Ctx: ctx, In: in}
	mock.lockReportProblem.Lock()
	mock.calls.ReportProblem = append(mock.calls.ReportProblem, callInfo)
	mock.lockReportProblem.Unlock()
	return mock.ReportProblemFunc(ctx, in)
}

func (mock *actaServiceMock) ReportProblemCalls() []struct {
	Ctx context.Context
	In  svcacta.ReportProblemInput
} {
	var calls []struct {
		Ctx context.Context
		In  svcacta.ReportProblemInput
	}
	mock.lockReportProblem.RLock()
	calls = mock.calls.ReportProblem
	mock.lockReportProblem.RUnlock()
	return calls
}

func (mock *actaServiceMock) RefreshLease(ctx context.Context, actaID uuid.UUID) (time.Time, error) {
	if mock.RefreshLeaseFunc == nil {
		panic("actaServiceMock.RefreshLeaseFunc: method is nil but actaService.RefreshLease was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ActaID uuid.UUID
	}{Ctx: ctx, ActaID: actaID}
	mock.lockRefreshLease.Lock()
	mock.calls.RefreshLease = append(mock.calls.RefreshLease, callInfo)
	mock.lockRefreshLease.Unlock()
	return mock.RefreshLeaseFunc(ctx, actaID)
}

func (mock *actaServiceMock) RefreshLeaseCalls() []struct {
	Ctx    context.Context
	ActaID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ActaID uuid.UUID
	}
	mock.lockRefreshLease.RLock()
	calls = mock.calls.RefreshLease
	mock.lockRefreshLease.RUnlock()
	return calls
}

func (mock *actaServiceMock) ReleaseLease(ctx context.Context, actaID uuid.UUID) error {
	if mock.ReleaseLeaseFunc == nil {
		panic("actaServiceMock.ReleaseLeaseFunc: method is nil but actaService.ReleaseLease was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ActaID uuid.UUID
	}{Ctx: ctx, ActaID: actaID}
	mock.lockReleaseLease.Lock()
	mock.calls.ReleaseLease = append(mock.calls.ReleaseLease, callInfo)
	mock.lockReleaseLease.Unlock()
	return mock.ReleaseLeaseFunc(ctx, actaID)
}

func (mock *actaServiceMock) ReleaseLeaseCalls() []struct {
	Ctx    context.Context
	ActaID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ActaID uuid.UUID
	}
	mock.lockReleaseLease.RLock()
	calls = mock.calls.ReleaseLease
	mock.lockReleaseLease.RUnlock()
	return calls
}

func (mock *actaServiceMock) GetModerationBanner(ctx context.Context) (domain.ModerationBanner, error) {
	if mock.GetModerationBannerFunc == nil {
		panic("actaServiceMock.GetModerationBannerFunc: method is nil but actaService.GetModerationBanner was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetModerationBanner.Lock()
	mock.calls.GetModerationBanner = append(mock.calls.GetModerationBanner, callInfo)
	mock.lockGetModerationBanner.Unlock()
	return mock.GetModerationBannerFunc(ctx)
}

func (mock *actaServiceMock) GetModerationBannerCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetModerationBanner.RLock()
	calls = mock.calls.GetModerationBanner
	mock.lockGetModerationBanner.RUnlock()
	return calls
}

func (mock *actaServiceMock) ListMilestones(ctx context.Context) ([]domain.Milestone, error) {
	if mock.ListMilestonesFunc == nil {
		panic("actaServiceMock.ListMilestonesFunc: method is nil but actaService.ListMilestones was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListMilestones.Lock()
	mock.calls.ListMilestones = append(mock.calls.ListMilestones, callInfo)
	mock.lockListMilestones.Unlock()
	return mock.ListMilestonesFunc(ctx)
}

func (mock *actaServiceMock) ListMilestonesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListMilestones.RLock()
	calls = mock.calls.ListMilestones
	mock.lockListMilestones.RUnlock()
	return calls
}

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	HistoryFunc  func(ctx context.Context, contributorID uuid.UUID, limit int) ([]domain.StateTransition, error)
	SetStateFunc func(ctx context.Context, in moderation.SetStateInput) (*domain.StateTransition, error)

	calls struct {
		History []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
			Limit         int
		}
		SetState []struct {
			Ctx context.Context
			In  moderation.SetStateInput
		}
	}
	lockHistory  sync.RWMutex
	lockSetState sync.RWMutex
}

func (mock *moderationServiceMock) History(ctx context.Context, contributorID uuid.UUID, limit int) ([]domain.StateTransition, error) {
	if mock.HistoryFunc == nil {
		panic("moderationServiceMock.HistoryFunc: method is nil but moderationService.History was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Limit         int
	}{Ctx: ctx, ContributorID: contributorID, Limit: limit}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, contributorID, limit)
}

func (mock *moderationServiceMock) HistoryCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
	Limit         int
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Limit         int
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *moderationServiceMock) SetState(ctx context.Context, in moderation.SetStateInput) (*domain.StateTransition, error) {
	if mock.SetStateFunc == nil {
		panic("moderationServiceMock.SetStateFunc: method is nil but moderationService.SetState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  moderation.SetStateInput
	}{Ctx: ctx, In: in}
	mock.lockSetState.Lock()
	mock.calls.SetState = append(mock.calls.SetState, callInfo)
	mock.lockSetState.Unlock()
	return mock.SetStateFunc(ctx, in)
}

func (mock *moderationServiceMock) SetStateCalls() []struct {
	Ctx context.Context
	In  moderation.SetStateInput
} {
	var calls []struct {
		Ctx context.Context
		In  moderation.SetStateInput
	}
	mock.lockSetState.RLock()
	calls = mock.calls.SetState
	mock.lockSetState.RUnlock()
	return calls
}
