package approval

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/service/allocation"
)

var _ mentorAllocator = &mentorAllocatorMock{}

type mentorAllocatorMock struct {
	AssignMentorFunc func(ctx context.Context, requestID uuid.UUID) (*allocation.AssignResult, error)

	calls struct {
		AssignMentor []struct {
			Ctx       context.Context
			RequestID uuid.UUID
		}
	}
	lockAssignMentor sync.RWMutex
}

func (mock *mentorAllocatorMock) AssignMentor(ctx context.Context, requestID uuid.UUID) (*allocation.AssignResult, error) {
	if mock.AssignMentorFunc == nil {
		panic("mentorAllocatorMock.AssignMentorFunc: method is nil but mentorAllocator.AssignMentor was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID uuid.UUID
	}{Ctx: ctx, RequestID: requestID}
	mock.lockAssignMentor.Lock()
	mock.calls.AssignMentor = append(mock.calls.AssignMentor, callInfo)
	mock.lockAssignMentor.Unlock()
	return mock.AssignMentorFunc(ctx, requestID)
}

func (mock *mentorAllocatorMock) AssignMentorCalls() []struct {
	Ctx       context.Context
	RequestID uuid.UUID
} {
	mock.lockAssignMentor.RLock()
	calls := mock.calls.AssignMentor
	mock.lockAssignMentor.RUnlock()
	return calls
}
