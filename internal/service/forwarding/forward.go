package forwarding

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// Forward bundles approved candidates into a batch addressed to one
// reviewer. Every candidate's latest request must be APPROVED at forward
// time; otherwise the offending ids are reported together and nothing is
// created.
func (s *Service) Forward(ctx context.Context, input ForwardInput) (*domain.ForwardedBatch, error) {
	coordinatorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting staff id")
	}
	if err := input.Validate(s.maxBatchSize); err != nil {
		return nil, err
	}

	reviewer, err := s.staff.GetByID(ctx, input.ToReviewerID)
	if err != nil {
		return nil, fmt.Errorf("get reviewer: %w", err)
	}
	if !reviewer.Active || reviewer.Role != domain.StaffRoleDepartmentHead {
		return nil, domain.NewValidationError("to_reviewer_id", "must be an active department head")
	}

	reqs, err := s.requests.GetByCandidateIDs(ctx, input.CandidateIDs)
	if err != nil {
		return nil, fmt.Errorf("get candidate requests: %w", err)
	}

	var offending []uuid.UUID
	for _, candidateID := range input.CandidateIDs {
		req, found := reqs[candidateID]
		if !found || req.Status != domain.RequestStatusApproved {
			offending = append(offending, candidateID)
		}
	}
	if len(offending) > 0 {
		return nil, &domain.CandidateStateError{CandidateIDs: offending}
	}

	now := s.now().UTC()
	batch := &domain.ForwardedBatch{
		ID:           uuid.New(),
		DepartmentID: input.DepartmentID,
		CandidateIDs: input.CandidateIDs,
		ForwardedBy:  coordinatorID,
		ForwardedTo:  input.ToReviewerID,
		Status:       domain.BatchStatusPendingReview,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, txErr := s.batches.Create(txCtx, batch); txErr != nil {
			return fmt.Errorf("create batch: %w", txErr)
		}

		memberIDs := make([]string, len(batch.CandidateIDs))
		for i, id := range batch.CandidateIDs {
			memberIDs[i] = id.String()
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeBatch,
			EntityID:   batch.ID,
			Action:     domain.AuditActionForward,
			ActorID:    coordinatorID,
			After: map[string]any{
				"status":        string(domain.BatchStatusPendingReview),
				"candidate_ids": memberIDs,
				"forwarded_to":  input.ToReviewerID.String(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notify.Notify(ctx, domain.Notification{
		RecipientID: input.ToReviewerID,
		Title:       "Batch forwarded for review",
		Message:     fmt.Sprintf("%d approved candidate(s) await your decision (batch %s).", len(batch.CandidateIDs), batch.ID),
		Priority:    domain.NotificationPriorityHigh,
	})

	return batch, nil
}
