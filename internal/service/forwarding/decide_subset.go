package forwarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// DecideSubsetResult is the outcome of a subset decision: the batch with its
// freshly derived status and the full decision set after this call.
type DecideSubsetResult struct {
	Batch     *domain.ForwardedBatch
	Decisions []domain.BatchDecision
}

// DecideSubset records the reviewer's verdict on a subset of a batch's
// candidates. APPROVE is the terminal acceptance into the department and
// leaves the request at APPROVED; REJECT moves it to REJECTED. Each
// candidate already decided in this batch is refused, and the batch status
// is recomputed from the decision table, never updated incrementally.
func (s *Service) DecideSubset(ctx context.Context, input DecideSubsetInput) (*DecideSubsetResult, error) {
	reviewerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting staff id")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	batch, err := s.batches.GetByID(ctx, input.BatchID)
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	existing, err := s.batches.ListDecisions(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	decided := make(map[uuid.UUID]struct{}, len(existing))
	for _, d := range existing {
		decided[d.CandidateID] = struct{}{}
	}

	for _, candidateID := range input.CandidateIDs {
		if !batch.Contains(candidateID) {
			return nil, fmt.Errorf("candidate %s is not in batch %s: %w",
				candidateID, batch.ID, domain.ErrInvalidSubset)
		}
		if _, already := decided[candidateID]; already {
			return nil, fmt.Errorf("candidate %s: %w", candidateID, domain.ErrAlreadyDecided)
		}
	}

	reqs, err := s.requests.GetByCandidateIDs(ctx, input.CandidateIDs)
	if err != nil {
		return nil, fmt.Errorf("get candidate requests: %w", err)
	}

	now := s.now().UTC()

	// One transaction per candidate: a crash mid-list leaves earlier
	// candidates fully decided and later ones untouched, and the derived
	// batch status stays honest either way.
	for _, candidateID := range input.CandidateIDs {
		req, found := reqs[candidateID]
		if !found {
			return nil, fmt.Errorf("candidate %s has no request: %w", candidateID, domain.ErrNotFound)
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if input.Decision == domain.DecisionReject {
				moved, txErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusApproved, request.UpdateParams{
					Status:        domain.RequestStatusRejected,
					ReviewedAt:    &now,
					ReviewerID:    &reviewerID,
					ReviewComment: input.Comment,
					UpdatedAt:     now,
				})
				if txErr != nil {
					return fmt.Errorf("reject request %s: %w", req.ID, txErr)
				}
				if !moved {
					return fmt.Errorf("request %s: %w", req.ID, domain.ErrConcurrentModification)
				}
			}

			txErr := s.batches.AddDecision(txCtx, domain.BatchDecision{
				BatchID:     batch.ID,
				CandidateID: candidateID,
				Decision:    input.Decision,
				DecidedBy:   reviewerID,
				Comment:     input.Comment,
				DecidedAt:   now,
			})
			if txErr != nil {
				// Composite PK violation: a concurrent call decided this
				// candidate between our read and this write.
				if errors.Is(txErr, domain.ErrAlreadyExists) {
					return fmt.Errorf("candidate %s: %w", candidateID, domain.ErrAlreadyDecided)
				}
				return fmt.Errorf("add decision: %w", txErr)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	all, err := s.batches.ListDecisions(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	derived := domain.DeriveBatchStatus(len(batch.CandidateIDs), all)

	subsetIDs := make([]string, len(input.CandidateIDs))
	for i, id := range input.CandidateIDs {
		subsetIDs[i] = id.String()
	}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if txErr := s.batches.UpdateStatus(txCtx, batch.ID, derived, now); txErr != nil {
			return fmt.Errorf("update batch status: %w", txErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeBatch,
			EntityID:   batch.ID,
			Action:     domain.AuditActionBatchDecide,
			ActorID:    reviewerID,
			Before:     map[string]any{"status": string(batch.Status)},
			After: map[string]any{
				"status":        string(derived),
				"decision":      string(input.Decision),
				"candidate_ids": subsetIDs,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	batch.Status = derived
	batch.UpdatedAt = now

	summary := fmt.Sprintf("%s recorded for %d candidate(s) in batch %s.", input.Decision, len(input.CandidateIDs), batch.ID)
	if input.Comment != nil {
		summary = fmt.Sprintf("%s Comment: %s", summary, *input.Comment)
	}
	s.notify.Notify(ctx, domain.Notification{
		RecipientID: batch.ForwardedBy,
		Title:       "Batch decision recorded",
		Message:     summary,
		Priority:    domain.NotificationPriorityNormal,
	})

	return &DecideSubsetResult{Batch: batch, Decisions: all}, nil
}
