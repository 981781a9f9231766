package assignment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

var _ actaRepo = &actaRepoMock{}

type actaRepoMock struct {
	FindHeldByFunc      func(ctx context.Context, holder uuid.UUID, now time.Time) (*domain.Acta, error)
	SelectCandidateFunc func(ctx context.Context, q domain.CandidateQuery) (uuid.UUID, bool, error)

	calls struct {
		FindHeldBy []struct {
			Ctx    context.Context
			Holder uuid.UUID
			Now    time.Time
		}
		SelectCandidate []struct {
			Ctx context.Context
			Q   domain.CandidateQuery
		}
	}
	lockFindHeldBy      sync.RWMutex
	lockSelectCandidate sync.RWMutex
}

func (mock *actaRepoMock) FindHeldBy(ctx context.Context, holder uuid.UUID, now time.Time) (*domain.Acta, error) {
	if mock.FindHeldByFunc == nil {
		panic("actaRepoMock.FindHeldByFunc: method is nil but actaRepo.FindHeldBy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Holder uuid.UUID
		Now    time.Time
	}{Ctx: ctx, Holder: holder, Now: now}
	mock.lockFindHeldBy.Lock()
	mock.calls.FindHeldBy = append(mock.calls.FindHeldBy, callInfo)
	mock.lockFindHeldBy.Unlock()
	return mock.FindHeldByFunc(ctx, holder, now)
}

func (mock *actaRepoMock) FindHeldByCalls() []struct {
	Ctx    context.Context
	Holder uuid.UUID
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Holder uuid.UUID
		Now    time.Time
	}
	mock.lockFindHeldBy.RLock()
	calls = mock.calls.FindHeldBy
	mock.lockFindHeldBy.RUnlock()
	return calls
}

func (mock *actaRepoMock) SelectCandidate(ctx context.Context, q domain.CandidateQuery) (uuid.UUID, bool, error) {
	if mock.SelectCandidateFunc == nil {
		panic("actaRepoMock.SelectCandidateFunc: method is nil but actaRepo.SelectCandidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.CandidateQuery
	}{Ctx: ctx, Q: q}
	mock.lockSelectCandidate.Lock()
	mock.calls.SelectCandidate = append(mock.calls.SelectCandidate, callInfo)
	mock.lockSelectCandidate.Unlock()
	return mock.SelectCandidateFunc(ctx, q)
}

func (mock *actaRepoMock) SelectCandidateCalls() []struct {
	Ctx context.Context
	Q   domain.CandidateQuery
} {
	var calls []struct {
		Ctx context.Context
		Q   domain.CandidateQuery
	}
	mock.lockSelectCandidate.RLock()
	calls = mock.calls.SelectCandidate
	mock.lockSelectCandidate.RUnlock()
	return calls
}

var _ leaseManager = &leaseManagerMock{}

type leaseManagerMock struct {
	AcquireFunc      func(ctx context.Context, actaID uuid.UUID, contributorID uuid.UUID) (domain.Lease, bool, error)
	NeedsRefreshFunc func(l domain.Lease) bool

	calls struct {
		Acquire []struct {
			Ctx           context.Context
			ActaID        uuid.UUID
			ContributorID uuid.UUID
		}
		NeedsRefresh []struct {
			L domain.Lease
		}
	}
	lockAcquire      sync.RWMutex
	lockNeedsRefresh sync.RWMutex
}

func (mock *leaseManagerMock) Acquire(ctx context.Context, actaID uuid.UUID, contributorID uuid.UUID) (domain.Lease, bool, error) {
	if mock.AcquireFunc == nil {
		panic("leaseManagerMock.AcquireFunc: method is nil but leaseManager.Acquire was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ActaID        uuid.UUID
		ContributorID uuid.UUID
	}{Ctx: ctx, ActaID: actaID, ContributorID: contributorID}
	mock.lockAcquire.Lock()
	mock.calls.Acquire = append(mock.calls.Acquire, callInfo)
	mock.lockAcquire.Unlock()
	return mock.AcquireFunc(ctx, actaID, contributorID)
}

func (mock *leaseManagerMock) AcquireCalls() []struct {
	Ctx           context.Context
	ActaID        uuid.UUID
	ContributorID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ActaID        uuid.UUID
		ContributorID uuid.UUID
	}
	mock.lockAcquire.RLock()
	calls = mock.calls.Acquire
	mock.lockAcquire.RUnlock()
	return calls
}

func (mock *leaseManagerMock) NeedsRefresh(l domain.Lease) bool {
	if mock.NeedsRefreshFunc == nil {
		panic("leaseManagerMock.NeedsRefreshFunc: method is nil but leaseManager.NeedsRefresh was just called")
	}
	callInfo := struct {
		L domain.Lease
	}{L: l}
	mock.lockNeedsRefresh.Lock()
	mock.calls.NeedsRefresh = append(mock.calls.NeedsRefresh, callInfo)
	mock.lockNeedsRefresh.Unlock()
	return mock.NeedsRefreshFunc(l)
}

func (mock *leaseManagerMock) NeedsRefreshCalls() []struct {
	L domain.Lease
} {
	var calls []struct {
		L domain.Lease
	}
	mock.lockNeedsRefresh.RLock()
	calls = mock.calls.NeedsRefresh
	mock.lockNeedsRefresh.RUnlock()
	return calls
}

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	GetFunc func(ctx context.Context, id uuid.UUID) (*domain.ContributorStats, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGet sync.RWMutex
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
