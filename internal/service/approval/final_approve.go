package approval

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// FinalApprove is the senior sign-off on an APPROVED request, moving it to
// SIGNED_OFF and telling the department's coordinators. Usable only while
// the request is APPROVED.
func (s *Service) FinalApprove(ctx context.Context, input FinalApproveInput) (*domain.Request, error) {
	signerID, ok := ctxutil.ActorIDFromCtx(ctx)
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

	if req.Status != domain.RequestStatusApproved {
		return nil, fmt.Errorf("request %s is %s, sign-off requires APPROVED: %w",
			req.ID, req.Status, domain.ErrPrecondition)
	}

	now := s.now().UTC()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		moved, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusApproved, request.UpdateParams{
			Status:        domain.RequestStatusSignedOff,
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
			Action:     domain.AuditActionFinalApprove,
			ActorID:    signerID,
			Before:     map[string]any{"status": string(domain.RequestStatusApproved)},
			After:      map[string]any{"status": string(domain.RequestStatusSignedOff)},
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusSignedOff
	if input.Comment != nil {
		req.ReviewComment = input.Comment
	}
	req.UpdatedAt = now

	s.notifyRole(ctx, domain.StaffRoleCoordinator, &req.DepartmentID,
		"Application signed off",
		fmt.Sprintf("Request %s received final sign-off.", req.ID),
		domain.NotificationPriorityNormal,
	)

	return req, nil
}
