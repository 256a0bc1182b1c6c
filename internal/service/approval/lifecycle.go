package approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// Start begins the internship: MENTOR_ASSIGNED or SIGNED_OFF moves to
// IN_PROGRESS and the active assignment (when one exists) gets its start
// date. A request signed off before mentor allocation may start without an
// assignment; the assignment catches up later.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.Request, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting staff id")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	from := req.Status
	if from != domain.RequestStatusMentorAssigned && from != domain.RequestStatusSignedOff {
		return nil, &domain.TransitionError{
			RequestID: req.ID,
			From:      from,
			To:        domain.RequestStatusInProgress,
		}
	}

	now := s.now().UTC()
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = now
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		moved, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, from, request.UpdateParams{
			Status:    domain.RequestStatusInProgress,
			UpdatedAt: now,
		})
		if txErr != nil {
			return fmt.Errorf("update request status: %w", txErr)
		}
		if !moved {
			return fmt.Errorf("request %s: %w", req.ID, domain.ErrConcurrentModification)
		}

		if _, txErr = s.assignment.SetStartDate(txCtx, req.ID, startDate); txErr != nil {
			return fmt.Errorf("set assignment start date: %w", txErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeRequest,
			EntityID:   req.ID,
			Action:     domain.AuditActionStart,
			ActorID:    actorID,
			Before:     map[string]any{"status": string(from)},
			After: map[string]any{
				"status":     string(domain.RequestStatusInProgress),
				"start_date": startDate.Format("2006-01-02"),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusInProgress
	req.UpdatedAt = now

	s.notify.Notify(ctx, domain.Notification{
		RecipientID: req.CandidateID,
		Title:       "Internship started",
		Message:     fmt.Sprintf("Your internship starts on %s.", startDate.Format("2006-01-02")),
		Priority:    domain.NotificationPriorityNormal,
	})

	return req, nil
}

// Complete finishes the internship: IN_PROGRESS moves to COMPLETED and the
// active assignment, if any, is closed with an end date.
func (s *Service) Complete(ctx context.Context, requestID uuid.UUID) (*domain.Request, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting staff id")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	if req.Status != domain.RequestStatusInProgress {
		return nil, &domain.TransitionError{
			RequestID: req.ID,
			From:      req.Status,
			To:        domain.RequestStatusCompleted,
		}
	}

	// Read the assignment first so the mentor can be told afterwards.
	active, err := s.assignment.GetActiveByRequest(ctx, req.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get active assignment: %w", err)
	}

	now := s.now().UTC()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		moved, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusInProgress, request.UpdateParams{
			Status:    domain.RequestStatusCompleted,
			UpdatedAt: now,
		})
		if txErr != nil {
			return fmt.Errorf("update request status: %w", txErr)
		}
		if !moved {
			return fmt.Errorf("request %s: %w", req.ID, domain.ErrConcurrentModification)
		}

		if _, txErr = s.assignment.CompleteByRequest(txCtx, req.ID, now); txErr != nil {
			return fmt.Errorf("complete assignment: %w", txErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeRequest,
			EntityID:   req.ID,
			Action:     domain.AuditActionComplete,
			ActorID:    actorID,
			Before:     map[string]any{"status": string(domain.RequestStatusInProgress)},
			After:      map[string]any{"status": string(domain.RequestStatusCompleted)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusCompleted
	req.UpdatedAt = now

	s.notify.Notify(ctx, domain.Notification{
		RecipientID: req.CandidateID,
		Title:       "Internship completed",
		Message:     "Congratulations, your internship is complete.",
		Priority:    domain.NotificationPriorityNormal,
	})
	if active != nil {
		s.notify.Notify(ctx, domain.Notification{
			RecipientID: active.MentorID,
			Title:       "Assignment completed",
			Message:     fmt.Sprintf("Your assignment for request %s is complete.", req.ID),
			Priority:    domain.NotificationPriorityLow,
		})
	}

	return req, nil
}
