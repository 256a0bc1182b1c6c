package domain

import (
	"time"

	"github.com/google/uuid"
)

// ForwardedBatch bundles approved candidates for one reviewer's decision.
// CandidateIDs preserves forward order; decisions live in a side table and
// the batch status is always derived from them, never stored incrementally.
type ForwardedBatch struct {
	ID           uuid.UUID
	DepartmentID uuid.UUID
	CandidateIDs []uuid.UUID
	ForwardedBy  uuid.UUID
	ForwardedTo  uuid.UUID
	Status       BatchStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contains reports whether the candidate is a member of the batch.
func (b *ForwardedBatch) Contains(candidateID uuid.UUID) bool {
	for _, id := range b.CandidateIDs {
		if id == candidateID {
			return true
		}
	}
	return false
}

// BatchDecision is one reviewer verdict on one candidate within a batch.
// Decisions are append-only; a candidate is decided at most once per batch.
type BatchDecision struct {
	BatchID     uuid.UUID
	CandidateID uuid.UUID
	Decision    Decision
	DecidedBy   uuid.UUID
	Comment     *string
	DecidedAt   time.Time
}

// DeriveBatchStatus recomputes the batch status from the authoritative
// per-candidate decisions:
//   - no decisions            -> PENDING_REVIEW
//   - all approved            -> APPROVED_BY_REVIEWER
//   - all rejected            -> REJECTED_BY_REVIEWER
//   - anything else           -> PARTIALLY_DECIDED
func DeriveBatchStatus(total int, decisions []BatchDecision) BatchStatus {
	if len(decisions) == 0 {
		return BatchStatusPendingReview
	}

	approved, rejected := 0, 0
	for _, d := range decisions {
		switch d.Decision {
		case DecisionApprove:
			approved++
		case DecisionReject:
			rejected++
		}
	}

	switch {
	case approved == total:
		return BatchStatusApprovedByReviewer
	case rejected == total:
		return BatchStatusRejectedByReviewer
	default:
		return BatchStatusPartiallyDecided
	}
}
