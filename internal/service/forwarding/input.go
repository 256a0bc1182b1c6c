package forwarding

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

// ForwardInput holds the parameters for forwarding approved candidates to a
// reviewer. The forwarding coordinator is taken from the request context.
type ForwardInput struct {
	CandidateIDs []uuid.UUID
	DepartmentID uuid.UUID
	ToReviewerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ForwardInput) Validate(maxBatchSize int) error {
	var errs []domain.FieldError

	switch {
	case len(i.CandidateIDs) == 0:
		errs = append(errs, domain.FieldError{Field: "candidate_ids", Message: "required"})
	case len(i.CandidateIDs) > maxBatchSize:
		errs = append(errs, domain.FieldError{
			Field:   "candidate_ids",
			Message: fmt.Sprintf("too many (max %d)", maxBatchSize),
		})
	}
	if dup := firstDuplicate(i.CandidateIDs); dup != uuid.Nil {
		errs = append(errs, domain.FieldError{
			Field:   "candidate_ids",
			Message: fmt.Sprintf("duplicate id %s", dup),
		})
	}
	if i.DepartmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "department_id", Message: "required"})
	}
	if i.ToReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_reviewer_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DecideSubsetInput holds the parameters for deciding a subset of a batch.
// The deciding reviewer is taken from the request context.
type DecideSubsetInput struct {
	BatchID      uuid.UUID
	CandidateIDs []uuid.UUID
	Decision     domain.Decision
	Comment      *string
}

// Validate checks all fields and collects all errors.
func (i *DecideSubsetInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	if len(i.CandidateIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "candidate_ids", Message: "required"})
	}
	if dup := firstDuplicate(i.CandidateIDs); dup != uuid.Nil {
		errs = append(errs, domain.FieldError{
			Field:   "candidate_ids",
			Message: fmt.Sprintf("duplicate id %s", dup),
		})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be APPROVE or REJECT"})
	}
	if i.Comment != nil && len(*i.Comment) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func firstDuplicate(ids []uuid.UUID) uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return uuid.Nil
}
