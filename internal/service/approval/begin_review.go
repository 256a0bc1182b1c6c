package approval

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// BeginReview claims a SUBMITTED request for the acting reviewer and moves it
// to UNDER_REVIEW.
func (s *Service) BeginReview(ctx context.Context, requestID uuid.UUID) (*domain.Request, error) {
	reviewerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting staff id")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	if req.Status != domain.RequestStatusSubmitted {
		return nil, &domain.TransitionError{
			RequestID: req.ID,
			From:      req.Status,
			To:        domain.RequestStatusUnderReview,
		}
	}

	now := s.now().UTC()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		moved, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusSubmitted, request.UpdateParams{
			Status:     domain.RequestStatusUnderReview,
			ReviewerID: &reviewerID,
			UpdatedAt:  now,
		})
		if txErr != nil {
			return fmt.Errorf("update request status: %w", txErr)
		}
		if !moved {
			return fmt.Errorf("request %s: %w", req.ID, domain.ErrConcurrentModification)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeRequest,
			EntityID:   req.ID,
			Action:     domain.AuditActionBeginReview,
			ActorID:    reviewerID,
			Before:     map[string]any{"status": string(domain.RequestStatusSubmitted)},
			After:      map[string]any{"status": string(domain.RequestStatusUnderReview)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusUnderReview
	req.ReviewerID = &reviewerID
	req.UpdatedAt = now
	return req, nil
}
