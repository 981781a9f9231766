package achievement

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
)

var _ milestoneRepo = &milestoneRepoMock{}

type milestoneRepoMock struct {
	GrantReachedFunc func(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int, now time.Time) ([]domain.Milestone, error)
	ListGrantedFunc  func(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error)

	calls struct {
		GrantReached []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
			Kind          domain.MilestoneKind
			Value         int
			Now           time.Time
		}
		ListGranted []struct {
			Ctx           context.Context
			ContributorID uuid.UUID
		}
	}
	lockGrantReached sync.RWMutex
	lockListGranted  sync.RWMutex
}

func (mock *milestoneRepoMock) GrantReached(ctx context.Context, contributorID uuid.UUID, kind domain.MilestoneKind, value int, now time.Time) ([]domain.Milestone, error) {
	if mock.GrantReachedFunc == nil {
		panic("milestoneRepoMock.GrantReachedFunc: method is nil but milestoneRepo.GrantReached was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Kind          domain.MilestoneKind
		Value         int
		Now           time.Time
	}{Ctx: ctx, ContributorID: contributorID, Kind: kind, Value: value, Now: now}
	mock.lockGrantReached.Lock()
	mock.calls.GrantReached = append(mock.calls.GrantReached, callInfo)
	mock.lockGrantReached.Unlock()
	return mock.GrantReachedFunc(ctx, contributorID, kind, value, now)
}

func (mock *milestoneRepoMock) GrantReachedCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
	Kind          domain.MilestoneKind
	Value         int
	Now           time.Time
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
		Kind          domain.MilestoneKind
		Value         int
		Now           time.Time
	}
	mock.lockGrantReached.RLock()
	calls = mock.calls.GrantReached
	mock.lockGrantReached.RUnlock()
	return calls
}

func (mock *milestoneRepoMock) ListGranted(ctx context.Context, contributorID uuid.UUID) ([]domain.Milestone, error) {
	if mock.ListGrantedFunc == nil {
		panic("milestoneRepoMock.ListGrantedFunc: method is nil but milestoneRepo.ListGranted was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}{Ctx: ctx, ContributorID: contributorID}
	mock.lockListGranted.Lock()
	mock.calls.ListGranted = append(mock.calls.ListGranted, callInfo)
	mock.lockListGranted.Unlock()
	return mock.ListGrantedFunc(ctx, contributorID)
}

func (mock *milestoneRepoMock) ListGrantedCalls() []struct {
	Ctx           context.Context
	ContributorID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ContributorID uuid.UUID
	}
	mock.lockListGranted.RLock()
	calls = mock.calls.ListGranted
	mock.lockListGranted.RUnlock()
	return calls
}
