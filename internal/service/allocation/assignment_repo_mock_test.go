package allocation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	CreateIfUnderCapacityFunc func(ctx context.Context, a *domain.Assignment, capacity int) (bool, error)
	CancelByRequestFunc       func(ctx context.Context, requestID uuid.UUID) (bool, error)

	calls struct {
		CreateIfUnderCapacity []struct {
			Ctx      context.Context
			A        *domain.Assignment
			Capacity int
		}
		CancelByRequest []struct {
			Ctx       context.Context
			RequestID uuid.UUID
		}
	}
	lockCreateIfUnderCapacity sync.RWMutex
	lockCancelByRequest       sync.RWMutex
}

func (mock *assignmentRepoMock) CreateIfUnderCapacity(ctx context.Context, a *domain.Assignment, capacity int) (bool, error) {
	if mock.CreateIfUnderCapacityFunc == nil {
		panic("assignmentRepoMock.CreateIfUnderCapacityFunc: method is nil but assignmentRepo.CreateIfUnderCapacity was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		A        *domain.Assignment
		Capacity int
	}{Ctx: ctx, A: a, Capacity: capacity}
	mock.lockCreateIfUnderCapacity.Lock()
	mock.calls.CreateIfUnderCapacity = append(mock.calls.CreateIfUnderCapacity, callInfo)
	mock.lockCreateIfUnderCapacity.Unlock()
	return mock.CreateIfUnderCapacityFunc(ctx, a, capacity)
}

func (mock *assignmentRepoMock) CreateIfUnderCapacityCalls() []struct {
	Ctx      context.Context
	A        *domain.Assignment
	Capacity int
} {
	mock.lockCreateIfUnderCapacity.RLock()
	calls := mock.calls.CreateIfUnderCapacity
	mock.lockCreateIfUnderCapacity.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) CancelByRequest(ctx context.Context, requestID uuid.UUID) (bool, error) {
	if mock.CancelByRequestFunc == nil {
		panic("assignmentRepoMock.CancelByRequestFunc: method is nil but assignmentRepo.CancelByRequest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
	}{Ctx: ctx, RequestID: requestID}
	mock.lockCancelByRequest.Lock()
	mock.calls.CancelByRequest = append(mock.calls.CancelByRequest, callInfo)
	mock.lockCancelByRequest.Unlock()
	return mock.CancelByRequestFunc(ctx, requestID)
}

func (mock *assignmentRepoMock) CancelByRequestCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
} {
	mock.lockCancelByRequest.RLock()
	calls := mock.calls.CancelByRequest
	mock.lockCancelByRequest.RUnlock()
	return calls
}
