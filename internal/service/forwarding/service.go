// Package forwarding implements the batch forwarding protocol: coordinators
// bundle approved candidates for one reviewer, who then decides candidate
// subsets. Decisions are append-only; the batch status is always derived
// from them.
package forwarding

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

type batchRepo interface {
	Create(ctx context.Context, b *domain.ForwardedBatch) (*domain.ForwardedBatch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ForwardedBatch, error)
	ListDecisions(ctx context.Context, batchID uuid.UUID) ([]domain.BatchDecision, error)
	AddDecision(ctx context.Context, d domain.BatchDecision) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, updatedAt time.Time) error
}

type requestRepo interface {
	GetByCandidateIDs(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID]*domain.Request, error)
	UpdateStatusWhere(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params request.UpdateParams) (bool, error)
}

type staffDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
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

// Service implements batch forwarding and subset decisions.
type Service struct {
	log      *slog.Logger
	batches  batchRepo
	requests requestRepo
	staff    staffDirectory
	audit    auditLogger
	notify   notifier
	tx       txManager

	maxBatchSize int
	now          func() time.Time
}

// NewService creates a new forwarding service.
func NewService(
	log *slog.Logger,
	batches batchRepo,
	requests requestRepo,
	staff staffDirectory,
	audit auditLogger,
	notify notifier,
	tx txManager,
	maxBatchSize int,
) *Service {
	return &Service{
		log:          log,
		batches:      batches,
		requests:     requests,
		staff:        staff,
		audit:        audit,
		notify:       notify,
		tx:           tx,
		maxBatchSize: maxBatchSize,
		now:          time.Now,
	}
}

// GetBatch returns the batch with its status derived from the current
// decision set, never the stored value alone.
func (s *Service) GetBatch(ctx context.Context, id uuid.UUID) (*domain.ForwardedBatch, []domain.BatchDecision, error) {
	b, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	decisions, err := s.batches.ListDecisions(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	b.Status = domain.DeriveBatchStatus(len(b.CandidateIDs), decisions)
	return b, decisions, nil
}
