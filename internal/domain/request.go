package domain

import (
	"time"

	"github.com/google/uuid"
)

// Request is one candidate's application instance and its review lifecycle.
// A candidate has exactly one non-terminal request at a time.
type Request struct {
	ID            uuid.UUID
	CandidateID   uuid.UUID
	Status        RequestStatus
	DepartmentID  uuid.UUID
	SubmittedAt   time.Time
	ReviewedAt    *time.Time
	ReviewerID    *uuid.UUID
	ReviewComment *string
	UpdatedAt     time.Time
}

// requestTransitions is the legal edge set of the request status graph.
// Terminal statuses have no outgoing edges.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusSubmitted:      {RequestStatusUnderReview},
	RequestStatusUnderReview:    {RequestStatusApproved, RequestStatusRejected},
	RequestStatusApproved:       {RequestStatusMentorAssigned, RequestStatusSignedOff, RequestStatusRejected},
	RequestStatusMentorAssigned: {RequestStatusSignedOff, RequestStatusInProgress},
	RequestStatusSignedOff:      {RequestStatusInProgress},
	RequestStatusInProgress:     {RequestStatusCompleted},
}

// CanTransitionTo reports whether the status graph contains the edge s -> to.
func (s RequestStatus) CanTransitionTo(to RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
