package allocation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type mentorDirectory interface {
	ListMentorLoads(ctx context.Context, departmentID uuid.UUID, excludeIDs []uuid.UUID, seniorCapacity, regularCapacity int) ([]domain.MentorLoad, error)
}

type assignmentRepo interface {
	CreateIfUnderCapacity(ctx context.Context, a *domain.Assignment, capacity int) (bool, error)
	CancelByRequest(ctx context.Context, requestID uuid.UUID) (bool, error)
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	UpdateStatusWhere(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params request.UpdateParams) (bool, error)
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

// Capacities holds the tier-default assignment ceilings from configuration.
type Capacities struct {
	Senior  int
	Regular int
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements mentor selection and assignment.
type Service struct {
	mentors     mentorDirectory
	assignments assignmentRepo
	requests    requestRepo
	audit       auditLogger
	notify      notifier
	tx          txManager
	log         *slog.Logger
	capacities  Capacities

	now func() time.Time
}

// NewService creates a new allocation service.
func NewService(
	log *slog.Logger,
	mentors mentorDirectory,
	assignments assignmentRepo,
	requests requestRepo,
	audit auditLogger,
	notify notifier,
	tx txManager,
	capacities Capacities,
) *Service {
	return &Service{
		mentors:     mentors,
		assignments: assignments,
		requests:    requests,
		audit:       audit,
		notify:      notify,
		tx:          tx,
		log:         log,
		capacities:  capacities,
		now:         time.Now,
	}
}
