package approval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// Decide records the reviewer's verdict on an UNDER_REVIEW request.
// APPROVE also triggers mentor assignment as part of the same logical
// operation: if no mentor has spare capacity the request stays APPROVED and
// the result carries a warning; if the assignment step fails hard, the
// approval is rolled back and the failure reason persisted into the review
// comment, so a retried call sees the request as still UNDER_REVIEW.
func (s *Service) Decide(ctx context.Context, input DecideInput) (*DecideResult, error) {
	reviewerID, ok := ctxutil.ActorIDFromCtx(ctx)
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

	target := domain.RequestStatusApproved
	action := domain.AuditActionApprove
	if input.Decision == domain.DecisionReject {
		target = domain.RequestStatusRejected
		action = domain.AuditActionReject
	}

	if req.Status != domain.RequestStatusUnderReview {
		return nil, &domain.TransitionError{
			RequestID: req.ID,
			From:      req.Status,
			To:        target,
		}
	}

	now := s.now().UTC()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		moved, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusUnderReview, request.UpdateParams{
			Status:        target,
			ReviewedAt:    &now,
			ReviewerID:    &reviewerID,
			ReviewComment: input.Comment,
			UpdatedAt:     now,
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
			Action:     action,
			ActorID:    reviewerID,
			Before:     map[string]any{"status": string(domain.RequestStatusUnderReview)},
			After:      map[string]any{"status": string(target)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	req.Status = target
	req.ReviewedAt = &now
	req.ReviewerID = &reviewerID
	if input.Comment != nil {
		req.ReviewComment = input.Comment
	}
	req.UpdatedAt = now

	if input.Decision == domain.DecisionReject {
		message := "Your application was rejected."
		if input.Comment != nil {
			message = fmt.Sprintf("Your application was rejected: %s", *input.Comment)
		}
		s.notify.Notify(ctx, domain.Notification{
			RecipientID: req.CandidateID,
			Title:       "Application rejected",
			Message:     message,
			Priority:    domain.NotificationPriorityHigh,
		})
		return &DecideResult{Request: req}, nil
	}

	assigned, err := s.allocator.AssignMentor(ctx, req.ID)
	if err != nil {
		s.rollbackApproval(ctx, req, reviewerID, err)
		return nil, fmt.Errorf("assign mentor: %w", err)
	}

	// Tell the candidate only once the assignment outcome is known, so a
	// rolled-back approval never produces an approval notification.
	message := "Your application was approved."
	if assigned.Assignment == nil {
		message = "Your application was approved. Mentor assignment is in progress."
	}
	s.notify.Notify(ctx, domain.Notification{
		RecipientID: req.CandidateID,
		Title:       "Application approved",
		Message:     message,
		Priority:    domain.NotificationPriorityNormal,
	})

	return &DecideResult{
		Request:    assigned.Request,
		Assignment: assigned.Assignment,
		Warning:    assigned.Warning,
	}, nil
}

// rollbackApproval reverts APPROVED back to UNDER_REVIEW after the
// downstream assignment step failed hard, persisting the failure reason
// into the review comment. Best effort: if the revert itself fails the
// original error still wins, so the inconsistency is at least logged.
func (s *Service) rollbackApproval(ctx context.Context, req *domain.Request, reviewerID uuid.UUID, cause error) {
	now := s.now().UTC()
	reason := fmt.Sprintf("approval rolled back: %s", cause)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reverted, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusApproved, request.UpdateParams{
			Status:        domain.RequestStatusUnderReview,
			ReviewComment: &reason,
			UpdatedAt:     now,
		})
		if txErr != nil {
			return fmt.Errorf("revert request status: %w", txErr)
		}
		if !reverted {
			return fmt.Errorf("request %s moved during rollback: %w", req.ID, domain.ErrConcurrentModification)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeRequest,
			EntityID:   req.ID,
			Action:     domain.AuditActionRollback,
			ActorID:    reviewerID,
			Before:     map[string]any{"status": string(domain.RequestStatusApproved)},
			After: map[string]any{
				"status": string(domain.RequestStatusUnderReview),
				"reason": cause.Error(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		s.log.Error("approval rollback failed",
			slog.String("request_id", req.ID.String()),
			slog.String("cause", cause.Error()),
			slog.String("error", err.Error()),
		)
		return
	}

	req.Status = domain.RequestStatusUnderReview
	req.ReviewComment = &reason
	req.UpdatedAt = now
}
