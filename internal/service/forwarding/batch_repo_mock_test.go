package forwarding

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

var _ batchRepo = &batchRepoMock{}

type batchRepoMock struct {
	CreateFunc        func(ctx context.Context, b *domain.ForwardedBatch) (*domain.ForwardedBatch, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.ForwardedBatch, error)
	ListDecisionsFunc func(ctx context.Context, batchID uuid.UUID) ([]domain.BatchDecision, error)
	AddDecisionFunc   func(ctx context.Context, d domain.BatchDecision) error
	UpdateStatusFunc  func(ctx context.Context, id uuid.UUID, status domain.BatchStatus, updatedAt time.Time) error

	calls struct {
		Create []struct {
			Ctx context.Context
			B   *domain.ForwardedBatch
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListDecisions []struct {
			Ctx     context.Context
			BatchID uuid.UUID
		}
		AddDecision []struct {
			Ctx context.Context
			D   domain.BatchDecision
		}
		UpdateStatus []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Status    domain.BatchStatus
			UpdatedAt time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListDecisions sync.RWMutex
	lockAddDecision   sync.RWMutex
	lockUpdateStatus  sync.RWMutex
}

func (mock *batchRepoMock) Create(ctx context.Context, b *domain.ForwardedBatch) (*domain.ForwardedBatch, error) {
	if mock.CreateFunc == nil {
		panic("batchRepoMock.CreateFunc: method is nil but batchRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.ForwardedBatch
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *batchRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.ForwardedBatch
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *batchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForwardedBatch, error) {
	if mock.GetByIDFunc == nil {
		panic("batchRepoMock.GetByIDFunc: method is nil but batchRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *batchRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *batchRepoMock) ListDecisions(ctx context.Context, batchID uuid.UUID) ([]domain.BatchDecision, error) {
	if mock.ListDecisionsFunc == nil {
		panic("batchRepoMock.ListDecisionsFunc: method is nil but batchRepo.ListDecisions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID uuid.UUID
	}{Ctx: ctx, BatchID: batchID}
	mock.lockListDecisions.Lock()
	mock.calls.ListDecisions = append(mock.calls.ListDecisions, callInfo)
	mock.lockListDecisions.Unlock()
	return mock.ListDecisionsFunc(ctx, batchID)
}

func (mock *batchRepoMock) ListDecisionsCalls() []struct {
	Ctx     context.Context
	BatchID uuid.UUID
} {
	mock.lockListDecisions.RLock()
	calls := mock.calls.ListDecisions
	mock.lockListDecisions.RUnlock()
	return calls
}

func (mock *batchRepoMock) AddDecision(ctx context.Context, d domain.BatchDecision) error {
	if mock.AddDecisionFunc == nil {
		panic("batchRepoMock.AddDecisionFunc: method is nil but batchRepo.AddDecision was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.BatchDecision
	}{Ctx: ctx, D: d}
	mock.lockAddDecision.Lock()
	mock.calls.AddDecision = append(mock.calls.AddDecision, callInfo)
	mock.lockAddDecision.Unlock()
	return mock.AddDecisionFunc(ctx, d)
}

func (mock *batchRepoMock) AddDecisionCalls() []struct {
	Ctx context.Context
	D   domain.BatchDecision
} {
	mock.lockAddDecision.RLock()
	calls := mock.calls.AddDecision
	mock.lockAddDecision.RUnlock()
	return calls
}

func (mock *batchRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, updatedAt time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("batchRepoMock.UpdateStatusFunc: method is nil but batchRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Status    domain.BatchStatus
		UpdatedAt time.Time
	}{Ctx: ctx, ID: id, Status: status, UpdatedAt: updatedAt}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, updatedAt)
}

func (mock *batchRepoMock) UpdateStatusCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Status    domain.BatchStatus
	UpdatedAt time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
