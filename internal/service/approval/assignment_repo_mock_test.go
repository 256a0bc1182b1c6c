package approval

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	GetActiveByRequestFunc func(ctx context.Context, requestID uuid.UUID) (*domain.Assignment, error)
	SetStartDateFunc       func(ctx context.Context, requestID uuid.UUID, start time.Time) (bool, error)
	CompleteByRequestFunc  func(ctx context.Context, requestID uuid.UUID, end time.Time) (bool, error)

	calls struct {
		GetActiveByRequest []struct {
			Ctx       context.Context
			RequestID uuid.UUID
		}
		SetStartDate []struct {
			Ctx       context.Context
			RequestID uuid.UUID
			Start     time.Time
		}
		CompleteByRequest []struct {
			Ctx       context.Context
			RequestID uuid.UUID
			End       time.Time
		}
	}
	lockGetActiveByRequest sync.RWMutex
	lockSetStartDate       sync.RWMutex
	lockCompleteByRequest  sync.RWMutex
}

func (mock *assignmentRepoMock) GetActiveByRequest(ctx context.Context, requestID uuid.UUID) (*domain.Assignment, error) {
	if mock.GetActiveByRequestFunc == nil {
		panic("assignmentRepoMock.GetActiveByRequestFunc: method is nil but assignmentRepo.GetActiveByRequest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
	}{Ctx: ctx, RequestID: requestID}
	mock.lockGetActiveByRequest.Lock()
	mock.calls.GetActiveByRequest = append(mock.calls.GetActiveByRequest, callInfo)
	mock.lockGetActiveByRequest.Unlock()
	return mock.GetActiveByRequestFunc(ctx, requestID)
}

func (mock *assignmentRepoMock) GetActiveByRequestCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
} {
	mock.lockGetActiveByRequest.RLock()
	calls := mock.calls.GetActiveByRequest
	mock.lockGetActiveByRequest.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) SetStartDate(ctx context.Context, requestID uuid.UUID, start time.Time) (bool, error) {
	if mock.SetStartDateFunc == nil {
		panic("assignmentRepoMock.SetStartDateFunc: method is nil but assignmentRepo.SetStartDate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
		Start     time.Time
	}{Ctx: ctx, RequestID: requestID, Start: start}
	mock.lockSetStartDate.Lock()
	mock.calls.SetStartDate = append(mock.calls.SetStartDate, callInfo)
	mock.lockSetStartDate.Unlock()
	return mock.SetStartDateFunc(ctx, requestID, start)
}

func (mock *assignmentRepoMock) SetStartDateCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
	Start     time.Time
} {
	mock.lockSetStartDate.RLock()
	calls := mock.calls.SetStartDate
	mock.lockSetStartDate.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) CompleteByRequest(ctx context.Context, requestID uuid.UUID, end time.Time) (bool, error) {
	if mock.CompleteByRequestFunc == nil {
		panic("assignmentRepoMock.CompleteByRequestFunc: method is nil but assignmentRepo.CompleteByRequest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
		End       time.Time
	}{Ctx: ctx, RequestID: requestID, End: end}
	mock.lockCompleteByRequest.Lock()
	mock.calls.CompleteByRequest = append(mock.calls.CompleteByRequest, callInfo)
	mock.lockCompleteByRequest.Unlock()
	return mock.CompleteByRequestFunc(ctx, requestID, end)
}

func (mock *assignmentRepoMock) CompleteByRequestCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
	End       time.Time
} {
	mock.lockCompleteByRequest.RLock()
	calls := mock.calls.CompleteByRequest
	mock.lockCompleteByRequest.RUnlock()
	return calls
}
