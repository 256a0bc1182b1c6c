package allocation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

var _ mentorDirectory = &mentorDirectoryMock{}

type mentorDirectoryMock struct {
	ListMentorLoadsFunc func(ctx context.Context, departmentID uuid.UUID, excludeIDs []uuid.UUID, seniorCapacity, regularCapacity int) ([]domain.MentorLoad, error)

	calls struct {
		ListMentorLoads []struct {
			Ctx             context.Context
			DepartmentID    uuid.UUID
			ExcludeIDs      []uuid.UUID
			SeniorCapacity  int
			RegularCapacity int
		}
	}
	lockListMentorLoads sync.RWMutex
}

func (mock *mentorDirectoryMock) ListMentorLoads(ctx context.Context, departmentID uuid.UUID, excludeIDs []uuid.UUID, seniorCapacity, regularCapacity int) ([]domain.MentorLoad, error) {
	if mock.ListMentorLoadsFunc == nil {
		panic("mentorDirectoryMock.ListMentorLoadsFunc: method is nil but mentorDirectory.ListMentorLoads was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		DepartmentID    uuid.UUID
		ExcludeIDs      []uuid.UUID
		SeniorCapacity  int
		RegularCapacity int
	}{Ctx: ctx, DepartmentID: departmentID, ExcludeIDs: excludeIDs, SeniorCapacity: seniorCapacity, RegularCapacity: regularCapacity}
	mock.lockListMentorLoads.Lock()
	mock.calls.ListMentorLoads = append(mock.calls.ListMentorLoads, callInfo)
	mock.lockListMentorLoads.Unlock()
	return mock.ListMentorLoadsFunc(ctx, departmentID, excludeIDs, seniorCapacity, regularCapacity)
}

func (mock *mentorDirectoryMock) ListMentorLoadsCalls() []struct {
	Ctx             context.Context
	DepartmentID    uuid.UUID
	ExcludeIDs      []uuid.UUID
	SeniorCapacity  int
	RegularCapacity int
} {
	mock.lockListMentorLoads.RLock()
	calls := mock.calls.ListMentorLoads
	mock.lockListMentorLoads.RUnlock()
	return calls
}
