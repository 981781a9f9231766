package acta

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

var _ actaRepo = &actaRepoMock{}

type actaRepoMock struct {
	GetByPublicIDFunc     func(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error)
	LockForValidationFunc func(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error)
	SaveDigitizationFunc  func(ctx context.Context, publicID uuid.UUID, contributorID uuid.UUID, values domain.Tally, now time.Time) error
	ApplyValidationFunc   func(ctx context.Context, id int64, u domain.ValidationUpdate) (int, int, error)
	SetStatusFunc         func(ctx context.Context, id int64, status domain.ActaStatus, now time.Time) error
	MarkUnderReviewFunc   func(ctx context.Context, id int64, now time.Time) (bool, error)

	calls struct {
		GetByPublicID []struct {
			Ctx      context.Context
			PublicID uuid.UUID
		}
		LockForValidation []struct {
			Ctx      context.Context
			PublicID uuid.UUID
		}
		SaveDigitization []struct {
			Ctx           context.Context
			PublicID      uuid.UUID
			ContributorID uuid.UUID
			Values        domain.Tally
			Now           time.Time
		}
		ApplyValidation []struct {
			Ctx context.Context
			ID  int64
			U   domain.ValidationUpdate
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     int64
			Status domain.ActaStatus
			Now    time.Time
		}
		MarkUnderReview []struct {
			Ctx context.Context
			ID  int64
			Now time.Time
		}
	}
	lockGetByPublicID     sync.RWMutex
	lockLockForValidation sync.RWMutex
	lockSaveDigitization  sync.RWMutex
	lockApplyValidation   sync.RWMutex
	lockSetStatus         sync.RWMutex
	lockMarkUnderReview   sync.RWMutex
}

func (mock *actaRepoMock) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error) {
	if mock.GetByPublicIDFunc == nil {
		panic("actaRepoMock.GetByPublicIDFunc: method is nil but actaRepo.GetByPublicID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID uuid.UUID
	}{Ctx: ctx, PublicID: publicID}
	mock.lockGetByPublicID.Lock()
	mock.calls.GetByPublicID = append(mock.calls.GetByPublicID, callInfo)
	mock.lockGetByPublicID.Unlock()
	return mock.GetByPublicIDFunc(ctx, publicID)
}

func (mock *actaRepoMock) GetByPublicIDCalls() []struct {
	Ctx      context.Context
	PublicID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		PublicID uuid.UUID
	}
	mock.lockGetByPublicID.RLock()
	calls = mock.calls.GetByPublicID
	mock.lockGetByPublicID.RUnlock()
	return calls
}

func (mock *actaRepoMock) LockForValidation(ctx context.Context, publicID uuid.UUID) (*domain.Acta, error) {
	if mock.LockForValidationFunc == nil {
		panic("actaRepoMock.LockForValidationFunc: method is nil but actaRepo.LockForValidation was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID uuid.UUID
	}{Ctx: ctx, PublicID: publicID}
	mock.lockLockForValidation.Lock()
	mock.calls.LockForValidation = append(mock.calls.LockForValidation, callInfo)
	mock.lockLockForValidation.Unlock()
	return mock.LockForValidationFunc(ctx, publicID)
}

func (mock *actaRepoMock) LockForValidationCalls() []struct {
	Ctx      context.Context
	PublicID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		PublicID uuid.UUID
	}
	mock.lockLockForValidation.RLock()
	calls = mock.calls.LockForValidation
	mock.lockLockForValidation.RUnlock()
	return calls
}

func (mock *actaRepoMock) SaveDigitization(ctx context.Context, publicID uuid.UUID, contributorID uuid.UUID, values domain.Tally, now time.Time) error {
	if mock.SaveDigitizationFunc == nil {
		panic("actaRepoMock.SaveDigitizationFunc: method is nil but actaRepo.SaveDigitization was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		PublicID      uuid.UUID
		ContributorID uuid.UUID
		Values        domain.Tally
		Now           time.Time
	}{Ctx: ctx, PublicID: publicID, ContributorID: contributorID, Values: values, Now: now}
	mock.lockSaveDigitization.Lock()
	mock.calls.SaveDigitization = append(mock.calls.SaveDigitization, callInfo)
	mock.lockSaveDigitization.Unlock()
	return mock.SaveDigitizationFunc(ctx, publicID, contributorID, values, now)
}

func (mock *actaRepoMock) SaveDigitizationCalls() []struct {
	Ctx           context.Context
	PublicID      uuid.UUID
	ContributorID uuid.UUID
	Values        domain.Tally
	Now           time.Time
} {
	var calls []struct {
		Ctx           context.Context
		PublicID      uuid.UUID
		ContributorID uuid.UUID
		Values        domain.Tally
		Now           time.Time
	}
	mock.lockSaveDigitization.RLock()
	calls = mock.calls.SaveDigitization
	mock.lockSaveDigitization.RUnlock()
	return calls
}

func (mock *actaRepoMock) ApplyValidation(ctx context.Context, id int64, u domain.ValidationUpdate) (int, int, error) {
	if mock.ApplyValidationFunc == nil {
		panic("actaRepoMock.ApplyValidationFunc: method is nil but actaRepo.ApplyValidation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		U   domain.ValidationUpdate
	}{Ctx: ctx, ID: id, U: u}
	mock.lockApplyValidation.Lock()
	mock.calls.ApplyValidation = append(mock.calls.ApplyValidation, callInfo)
	mock.lockApplyValidation.Unlock()
	return mock.ApplyValidationFunc(ctx, id, u)
}

func (mock *actaRepoMock) ApplyValidationCalls() []struct {
	Ctx context.Context
	ID  int64
	U   domain.ValidationUpdate
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
		U   domain.ValidationUpdate
	}
	mock.lockApplyValidation.RLock()
	calls = mock.calls.ApplyValidation
	mock.lockApplyValidation.RUnlock()
	return calls
}

func (mock *actaRepoMock) SetStatus(ctx context.Context, id int64, status domain.ActaStatus, now time.Time) error {
	if mock.SetStatusFunc == nil {
		panic("actaRepoMock.SetStatusFunc: method is nil but actaRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Status domain.ActaStatus
		Now    time.Time
	}{Ctx: ctx, ID: id, Status: status, Now: now}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status, now)
}

func (mock *actaRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Status domain.ActaStatus
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Status domain.ActaStatus
		Now    time.Time
	}
	mock.lockSetStatus.RLock()
	calls = mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *actaRepoMock) MarkUnderReview(ctx context.Context, id int64, now time.Time) (bool, error) {
	if mock.MarkUnderReviewFunc == nil {
		panic("actaRepoMock.MarkUnderReviewFunc: method is nil but actaRepo.MarkUnderReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		Now time.Time
	}{Ctx: ctx, ID: id, Now: now}
	mock.lockMarkUnderReview.Lock()
	mock.calls.MarkUnderReview = append(mock.calls.MarkUnderReview, callInfo)
	mock.lockMarkUnderReview.Unlock()
	return mock.MarkUnderReviewFunc(ctx, id, now)
}

func (mock *actaRepoMock) MarkUnderReviewCalls() []struct {
	Ctx context.Context
	ID  int64
	Now time.Time
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
		Now time.Time
	}
	mock.lockMarkUnderReview.RLock()
	calls = mock.calls.MarkUnderReview
	mock.lockMarkUnderReview.RUnlock()
	return calls
}

var _ validationRepo = &validationRepoMock{}

type validationRepoMock struct {
	CreateFunc func(ctx context.Context, v *domain.Validation) (*domain.Validation, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V   *domain.Validation
		}
	}
	lockCreate sync.RWMutex
}

func (mock *validationRepoMock) Create(ctx context.Context, v *domain.Validation) (*domain.Validation, error) {
	if mock.CreateFunc == nil {
		panic("validationRepoMock.CreateFunc: method is nil but validationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Validation
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *validationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Validation
} {
	var calls []struct {
		Ctx context.Context
		V   *domain.Validation
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc func(ctx context.Context, p *domain.ProblemReport) (*domain.ProblemReport, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.ProblemReport
		}
	}
	lockCreate sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, p *domain.ProblemReport) (*domain.ProblemReport, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.ProblemReport
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.ProblemReport
} {
	var calls []struct {
		Ctx context.Context
		P   *domain.ProblemReport
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	GetFunc       func(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error)
	IncrementFunc func(ctx context.Context, id uuid.UUID, d domain.StatsDelta, now time.Time) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Increment []struct {
			Ctx context.Context
			ID  uuid.UUID
			D   domain.StatsDelta
			Now time.Time
		}
	}
	lockGet       sync.RWMutex
	lockIncrement sync.RWMutex
}

func (mock *statsRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error) {
	if mock.GetFunc == nil {
		panic("statsRepoMock.GetFunc: method is nil but statsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *statsRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *statsRepoMock) Increment(ctx context.Context, id uuid.UUID, d domain.StatsDelta, now time.Time) error {
	if mock.IncrementFunc == nil {
		panic("statsRepoMock.IncrementFunc: method is nil but statsRepo.Increment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		D   domain.StatsDelta
		Now time.Time
	}{Ctx: ctx, ID: id, D: d, Now: now}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, id, d, now)
}

func (mock *statsRepoMock) IncrementCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	D   domain.StatsDelta
	Now time.Time
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		D   domain.StatsDelta
		Now time.Time
	}
	mock.lockIncrement.RLock()
	calls = mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}

var _ assigner = &assignerMock{}

type assignerMock struct {
	AssignFunc func(ctx context.Context, contributorID uuid.UUID, mode domain.AssignmentMode) (domain.Assignment, bool, error)

	calls struct {
		Assign []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
			Mode          domain.AssignmentMode
		}
	}
	lockAssign sync.RWMutex
}

func (mock *assignerMock) Assign(ctx context.Context, contributorID uuid.UUID, mode domain.AssignmentMode) (domain.Assignment, bool, error) {
	if mock.AssignFunc == nil {
		panic("assignerMock.AssignFunc: method is nil but assigner.Assign was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Mode          domain.AssignmentMode
	}{Ctx: ctx, ContributorID: contributorID, Mode: mode}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, contributorID, mode)
}

func (mock *assignerMock) AssignCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
	Mode          domain.AssignmentMode
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Mode          domain.AssignmentMode
	}
	mock.lockAssign.RLock()
	calls = mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

var _ leaseManager = &leaseManagerMock{}

type leaseManagerMock struct {
	ExtendFunc  func(ctx context.Context, actaID uuid.UUID, contributorID uuid.UUID) (domain.Lease, bool, error)
	ReleaseFunc func(ctx context.Context, actaID uuid.UUID, contributorID *uuid.UUID) error

	calls struct {
		Extend []struct {
			Ctx           context.Context
			ActaID        uuid.UUID
			ContributorID uuid.UUID
		}
		Release []struct {
			Ctx           context.Context
			ActaID        uuid.UUID
			ContributorID *uuid.UUID
		}
	}
	lockExtend  sync.RWMutex
	lockRelease sync.RWMutex
}

func (mock *leaseManagerMock) Extend(ctx context.Context, actaID uuid.UUID, contributorID uuid.UUID) (domain.Lease, bool, error) {
	if mock.ExtendFunc == nil {
		panic("leaseManagerMock.ExtendFunc: method is nil but leaseManager.Extend was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ActaID        uuid.UUID
		ContributorID uuid.UUID
	}{Ctx: ctx, ActaID: actaID, ContributorID: contributorID}
	mock.lockExtend.Lock()
	mock.calls.Extend = append(mock.calls.Extend, callInfo)
	mock.lockExtend.Unlock()
	return mock.ExtendFunc(ctx, actaID, contributorID)
}

func (mock *leaseManagerMock) ExtendCalls() []struct {
	Ctx           context.Context
	ActaID        uuid.UUID
	ContributorID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ActaID        uuid.UUID
		ContributorID uuid.UUID
	}
	mock.lockExtend.RLock()
	calls = mock.calls.Extend
	mock.lockExtend.RUnlock()
	return calls
}

func (mock *leaseManagerMock) Release(ctx context.Context, actaID uuid.UUID, contributorID *uuid.UUID) error {
	if mock.ReleaseFunc == nil {
		panic("leaseManagerMock.ReleaseFunc: method is nil but leaseManager.Release was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ActaID        uuid.UUID
		ContributorID *uuid.UUID
	}{Ctx: ctx, ActaID: actaID, ContributorID: contributorID}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, actaID, contributorID)
}

func (mock *leaseManagerMock) ReleaseCalls() []struct {
	Ctx           context.Context
	ActaID        uuid.UUID
	ContributorID *uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ActaID        uuid.UUID
		ContributorID *uuid.UUID
	}
	mock.lockRelease.RLock()
	calls = mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

var _ moderator = &moderatorMock{}

type moderatorMock struct {
	EvaluateFunc func(ctx context.Context, contributorID uuid.UUID) (*domain.StateTransition, error)
	BannerFunc   func(ctx context.Context, contributorID uuid.UUID) (domain.ModerationBanner, error)

	calls struct {
		Evaluate []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
		}
		Banner []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
		}
	}
	lockEvaluate sync.RWMutex
	lockBanner   sync.RWMutex
}

func (mock *moderatorMock) Evaluate(ctx context.Context, contributorID uuid.UUID) (*domain.StateTransition, error) {
	if mock.EvaluateFunc == nil {
		panic("moderatorMock.EvaluateFunc: method is nil but moderator.Evaluate was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}{Ctx: ctx, ContributorID: contributorID}
	mock.lockEvaluate.Lock()
	mock.calls.Evaluate = append(mock.calls.Evaluate, callInfo)
	mock.lockEvaluate.Unlock()
	return mock.EvaluateFunc(ctx, contributorID)
}

func (mock *moderatorMock) EvaluateCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}
	mock.lockEvaluate.RLock()
	calls = mock.calls.Evaluate
	mock.lockEvaluate.RUnlock()
	return calls
}

func (mock *moderatorMock) Banner(ctx context.Context, contributorID uuid.UUID) (domain.ModerationBanner, error) {
	if mock.BannerFunc == nil {
		panic("moderatorMock.BannerFunc: method is nil but moderator.Banner was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}{Ctx: ctx, ContributorID: contributorID}
	mock.lockBanner.Lock()
	mock.calls.Banner = append(mock.calls.Banner, callInfo)
	mock.lockBanner.Unlock()
	return mock.BannerFunc(ctx, contributorID)
}

func (mock *moderatorMock) BannerCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}
	mock.lockBanner.RLock()
	calls = mock.calls.Banner
	mock.lockBanner.RUnlock()
	return calls
}

var _ achiever = &achieverMock{}

type achieverMock struct {
	CheckAndGrantFunc func(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int) ([]domain.Milestone, error)
	ListFunc          func(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error)

	calls struct {
		CheckAndGrant []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
			Kind          domain.MilestoneKind
			Value         int
		}
		List []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
		}
	}
	lockCheckAndGrant sync.RWMutex
	lockList          sync.RWMutex
}

func (mock *achieverMock) CheckAndGrant(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int) ([]domain.Milestone, error) {
	if mock.CheckAndGrantFunc == nil {
		panic("achieverMock.CheckAndGrantFunc: method is nil but achiever.CheckAndGrant was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Kind          domain.MilestoneKind
		Value         int
	}{Ctx: ctx, ContributorID: contributorID, Kind: kind, Value: value}
	mock.lockCheckAndGrant.Lock()
	mock.calls.CheckAndGrant = append(mock.calls.CheckAndGrant, callInfo)
	mock.lockCheckAndGrant.Unlock()
	return mock.CheckAndGrantFunc(ctx, contributorID, kind, value)
}

func (mock *achieverMock) CheckAndGrantCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
	Kind          domain.MilestoneKind
	Value         int
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Kind          domain.MilestoneKind
		Value         int
	}
	mock.lockCheckAndGrant.RLock()
	calls = mock.calls.CheckAndGrant
	mock.lockCheckAndGrant.RUnlock()
	return calls
}

func (mock *achieverMock) List(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error) {
	if mock.ListFunc == nil {
		panic("achieverMock.ListFunc: method is nil but achiever.List was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}{Ctx: ctx, ContributorID: contributorID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, contributorID)
}

func (mock *achieverMock) ListCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
