package approval

import "github.com/internhub/intake-backend/internal/domain"

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	Candidate *domain.Candidate
	Request   *domain.Request
}

// DecideResult is the outcome of a reviewer decision. On APPROVE, Assignment
// is the freshly created mentor binding, or nil with Warning set to
// domain.ErrAllocationUnavailable when no mentor had spare capacity.
type DecideResult struct {
	Request    *domain.Request
	Assignment *domain.Assignment
	Warning    error
}
