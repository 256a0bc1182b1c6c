// Package approval owns the request review state machine: submission,
// review, the approve/reject decision with its downstream mentor
// assignment, senior sign-off, and the internship lifecycle transitions.
package approval

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/internal/service/allocation"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type candidateRepo interface {
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	GetByContact(ctx context.Context, email, applicationNumber string) (*domain.Candidate, error)
	Update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
}

type requestRepo interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	LockContact(ctx context.Context, email string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	UpdateStatusWhere(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params request.UpdateParams) (bool, error)
	SetReviewComment(ctx context.Context, id uuid.UUID, comment string, updatedAt time.Time) error
	ExistsOpenByContact(ctx context.Context, email, applicationNumber string) (bool, error)
	List(ctx context.Context, filter request.Filter) ([]*domain.Request, error)
}

type assignmentRepo interface {
	GetActiveByRequest(ctx context.Context, requestID uuid.UUID) (*domain.Assignment, error)
	SetStartDate(ctx context.Context, requestID uuid.UUID, start time.Time) (bool, error)
	CompleteByRequest(ctx context.Context, requestID uuid.UUID, end time.Time) (bool, error)
}

// reviewerDirectory resolves "who holds this role in this department",
// so the engine never queries staff ad hoc.
type reviewerDirectory interface {
	ResolveByRole(ctx context.Context, role domain.StaffRole, departmentID *uuid.UUID) ([]domain.Staff, error)
}

type mentorAllocator interface {
	AssignMentor(ctx context.Context, requestID uuid.UUID) (*allocation.AssignResult, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the approval workflow.
type Service struct {
	log        *slog.Logger
	candidates candidateRepo
	requests   requestRepo
	assignment assignmentRepo
	directory  reviewerDirectory
	allocator  mentorAllocator
	audit      auditLogger
	notify     notifier
	tx         txManager

	now func() time.Time
}

// NewService creates a new approval service.
func NewService(
	log *slog.Logger,
	candidates candidateRepo,
	requests requestRepo,
	assignment assignmentRepo,
	directory reviewerDirectory,
	allocator mentorAllocator,
	audit auditLogger,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		log:        log,
		candidates: candidates,
		requests:   requests,
		assignment: assignment,
		directory:  directory,
		allocator:  allocator,
		audit:      audit,
		notify:     notify,
		tx:         tx,
		now:        time.Now,
	}
}

// GetRequest returns a single request by id.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return s.requests.GetByID(ctx, id)
}

// ListRequests returns requests matching the filter, newest first.
func (s *Service) ListRequests(ctx context.Context, filter request.Filter) ([]*domain.Request, error) {
	return s.requests.List(ctx, filter)
}

// notifyRole sends one notification to every active holder of the role,
// optionally scoped to a department. Best-effort: resolution failures are
// logged and swallowed.
func (s *Service) notifyRole(ctx context.Context, role domain.StaffRole, departmentID *uuid.UUID, title, message string, priority domain.NotificationPriority) {
	staff, err := s.directory.ResolveByRole(ctx, role, departmentID)
	if err != nil {
		s.log.Warn("resolve notification recipients failed",
			slog.String("role", string(role)),
			slog.String("error", err.Error()),
		)
		return
	}
	for _, member := range staff {
		s.notify.Notify(ctx, domain.Notification{
			RecipientID: member.ID,
			Title:       title,
			Message:     message,
			Priority:    priority,
		})
	}
}
