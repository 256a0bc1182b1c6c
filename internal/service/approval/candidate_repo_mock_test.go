package approval

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	CreateFunc       func(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	GetByContactFunc func(ctx context.Context, email, applicationNumber string) (*domain.Candidate, error)
	UpdateFunc       func(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Candidate
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByContact []struct {
			Ctx               context.Context
			Email             string
			ApplicationNumber string
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Candidate
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetByContact sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *candidateRepoMock) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if mock.CreateFunc == nil {
		panic("candidateRepoMock.CreateFunc: method is nil but candidateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Candidate
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *candidateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Candidate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *candidateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	if mock.GetByIDFunc == nil {
		panic("candidateRepoMock.GetByIDFunc: method is nil but candidateRepo.GetByID was just called")
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

func (mock *candidateRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *candidateRepoMock) GetByContact(ctx context.Context, email, applicationNumber string) (*domain.Candidate, error) {
	if mock.GetByContactFunc == nil {
		panic("candidateRepoMock.GetByContactFunc: method is nil but candidateRepo.GetByContact was just called")
	}
	callInfo := struct {
		Ctx               context.Context
		Email             string
		ApplicationNumber string
	}{Ctx: ctx, Email: email, ApplicationNumber: applicationNumber}
	mock.lockGetByContact.Lock()
	mock.calls.GetByContact = append(mock.calls.GetByContact, callInfo)
	mock.lockGetByContact.Unlock()
	return mock.GetByContactFunc(ctx, email, applicationNumber)
}

func (mock *candidateRepoMock) GetByContactCalls() []struct {
	Ctx               context.Context
	Email             string
	ApplicationNumber string
} {
	mock.lockGetByContact.RLock()
	calls := mock.calls.GetByContact
	mock.lockGetByContact.RUnlock()
	return calls
}

func (mock *candidateRepoMock) Update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if mock.UpdateFunc == nil {
		panic("candidateRepoMock.UpdateFunc: method is nil but candidateRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Candidate
	}{Ctx: ctx, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *candidateRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Candidate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
