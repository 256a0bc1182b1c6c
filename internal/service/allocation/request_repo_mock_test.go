package allocation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	UpdateStatusWhereFunc func(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params request.UpdateParams) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStatusWhere []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Expected domain.RequestStatus
			Params   request.UpdateParams
		}
	}
	lockGetByID           sync.RWMutex
	lockUpdateStatusWhere sync.RWMutex
}

func (mock *requestRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	if mock.GetByIDFunc == nil {
		panic("requestRepoMock.GetByIDFunc: method is nil but requestRepo.GetByID was just called")
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

func (mock *requestRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *requestRepoMock) UpdateStatusWhere(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params request.UpdateParams) (bool, error) {
	if mock.UpdateStatusWhereFunc == nil {
		panic("requestRepoMock.UpdateStatusWhereFunc: method is nil but requestRepo.UpdateStatusWhere was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Expected domain.RequestStatus
		Params   request.UpdateParams
	}{Ctx: ctx, ID: id, Expected: expected, Params: params}
	mock.lockUpdateStatusWhere.Lock()
	mock.calls.UpdateStatusWhere = append(mock.calls.UpdateStatusWhere, callInfo)
	mock.lockUpdateStatusWhere.Unlock()
	return mock.UpdateStatusWhereFunc(ctx, id, expected, params)
}

func (mock *requestRepoMock) UpdateStatusWhereCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Expected domain.RequestStatus
	Params   request.UpdateParams
} {
	mock.lockUpdateStatusWhere.RLock()
	calls := mock.calls.UpdateStatusWhere
	mock.lockUpdateStatusWhere.RUnlock()
	return calls
}
