// Package report lets mentors and candidates file progress reports against
// an active assignment.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

type reportRepo interface {
	Create(ctx context.Context, rep *domain.ProgressReport) (*domain.ProgressReport, error)
	ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]domain.ProgressReport, error)
}

type assignmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
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

// Service implements progress reporting.
type Service struct {
	log         *slog.Logger
	reports     reportRepo
	assignments assignmentRepo
	requests    requestRepo
	audit       auditLogger
	notify      notifier
	tx          txManager

	now func() time.Time
}

// NewService creates a new report service.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	assignments assignmentRepo,
	requests requestRepo,
	audit auditLogger,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		log:         log,
		reports:     reports,
		assignments: assignments,
		requests:    requests,
		audit:       audit,
		notify:      notify,
		tx:          tx,
		now:         time.Now,
	}
}

// ListReports returns all reports filed against an assignment, oldest first.
func (s *Service) ListReports(ctx context.Context, assignmentID uuid.UUID) ([]domain.ProgressReport, error) {
	return s.reports.ListByAssignment(ctx, assignmentID)
}
