package approval

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

var _ reviewerDirectory = &reviewerDirectoryMock{}

type reviewerDirectoryMock struct {
	ResolveByRoleFunc func(ctx context.Context, role domain.StaffRole, departmentID *uuid.UUID) ([]domain.Staff, error)

	calls struct {
		ResolveByRole []struct {
			Ctx          context.Context
			Role         domain.StaffRole
			DepartmentID *uuid.UUID
		}
	}
	lockResolveByRole sync.RWMutex
}

func (mock *reviewerDirectoryMock) ResolveByRole(ctx context.Context, role domain.StaffRole, departmentID *uuid.UUID) ([]domain.Staff, error) {
	if mock.ResolveByRoleFunc == nil {
		panic("reviewerDirectoryMock.ResolveByRoleFunc: method is nil but reviewerDirectory.ResolveByRole was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Role         domain.StaffRole
		DepartmentID *uuid.UUID
	}{Ctx: ctx, Role: role, DepartmentID: departmentID}
	mock.lockResolveByRole.Lock()
	mock.calls.ResolveByRole = append(mock.calls.ResolveByRole, callInfo)
	mock.lockResolveByRole.Unlock()
	return mock.ResolveByRoleFunc(ctx, role, departmentID)
}

func (mock *reviewerDirectoryMock) ResolveByRoleCalls() []struct {
	Ctx          context.Context
	Role         domain.StaffRole
	DepartmentID *uuid.UUID
} {
	mock.lockResolveByRole.RLock()
	calls := mock.calls.ResolveByRole
	mock.lockResolveByRole.RUnlock()
	return calls
}
