package approval

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	CreateFunc              func(ctx context.Context, req *domain.Request) (*domain.Request, error)
	LockContactFunc         func(ctx context.Context, email string) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	UpdateStatusWhereFunc   func(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params request.UpdateParams) (bool, error)
	SetReviewCommentFunc    func(ctx context.Context, id uuid.UUID, comment string, updatedAt time.Time) error
	ExistsOpenByContactFunc func(ctx context.Context, email, applicationNumber string) (bool, error)
	ListFunc                func(ctx context.Context, filter request.Filter) ([]*domain.Request, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Req *domain.Request
		}
		LockContact []struct {
			Ctx   context.Context
			Email string
		}
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
		SetReviewComment []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Comment   string
			UpdatedAt time.Time
		}
		ExistsOpenByContact []struct {
			Ctx               context.Context
			Email             string
			ApplicationNumber string
		}
		List []struct {
			Ctx    context.Context
			Filter request.Filter
		}
	}
	lockCreate              sync.RWMutex
	lockLockContact         sync.RWMutex
	lockGetByID             sync.RWMutex
	lockUpdateStatusWhere   sync.RWMutex
	lockSetReviewComment    sync.RWMutex
	lockExistsOpenByContact sync.RWMutex
	lockList                sync.RWMutex
}

func (mock *requestRepoMock) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req *domain.Request
	}{Ctx: ctx, Req: req}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req *domain.Request
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestRepoMock) LockContact(ctx context.Context, email string) error {
	if mock.LockContactFunc == nil {
		panic("requestRepoMock.LockContactFunc: method is nil but requestRepo.LockContact was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockLockContact.Lock()
	mock.calls.LockContact = append(mock.calls.LockContact, callInfo)
	mock.lockLockContact.Unlock()
	return mock.LockContactFunc(ctx, email)
}

func (mock *requestRepoMock) LockContactCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockLockContact.RLock()
	calls := mock.calls.LockContact
	mock.lockLockContact.RUnlock()
	return calls
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

func (mock *requestRepoMock) SetReviewComment(ctx context.Context, id uuid.UUID, comment string, updatedAt time.Time) error {
	if mock.SetReviewCommentFunc == nil {
		panic("requestRepoMock.SetReviewCommentFunc: method is nil but requestRepo.SetReviewComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Comment   string
		UpdatedAt time.Time
	}{Ctx: ctx, ID: id, Comment: comment, UpdatedAt: updatedAt}
	mock.lockSetReviewComment.Lock()
	mock.calls.SetReviewComment = append(mock.calls.SetReviewComment, callInfo)
	mock.lockSetReviewComment.Unlock()
	return mock.SetReviewCommentFunc(ctx, id, comment, updatedAt)
}

func (mock *requestRepoMock) SetReviewCommentCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Comment   string
	UpdatedAt time.Time
} {
	mock.lockSetReviewComment.RLock()
	calls := mock.calls.SetReviewComment
	mock.lockSetReviewComment.RUnlock()
	return calls
}

func (mock *requestRepoMock) ExistsOpenByContact(ctx context.Context, email, applicationNumber string) (bool, error) {
	if mock.ExistsOpenByContactFunc == nil {
		panic("requestRepoMock.ExistsOpenByContactFunc: method is nil but requestRepo.ExistsOpenByContact was just called")
	}
	callInfo := struct {
		Ctx               context.Context
		Email             string
		ApplicationNumber string
	}{Ctx: ctx, Email: email, ApplicationNumber: applicationNumber}
	mock.lockExistsOpenByContact.Lock()
	mock.calls.ExistsOpenByContact = append(mock.calls.ExistsOpenByContact, callInfo)
	mock.lockExistsOpenByContact.Unlock()
	return mock.ExistsOpenByContactFunc(ctx, email, applicationNumber)
}

func (mock *requestRepoMock) ExistsOpenByContactCalls() []struct {
	Ctx               context.Context
	Email             string
	ApplicationNumber string
} {
	mock.lockExistsOpenByContact.RLock()
	calls := mock.calls.ExistsOpenByContact
	mock.lockExistsOpenByContact.RUnlock()
	return calls
}

func (mock *requestRepoMock) List(ctx context.Context, filter request.Filter) ([]*domain.Request, error) {
	if mock.ListFunc == nil {
		panic("requestRepoMock.ListFunc: method is nil but requestRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter request.Filter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *requestRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter request.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
