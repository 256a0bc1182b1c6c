package allocation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// AssignResult is the outcome of a mentor allocation attempt.
// Assignment is nil when no mentor had spare capacity; Warning then carries
// domain.ErrAllocationUnavailable so callers can surface it without failing.
type AssignResult struct {
	Request    *domain.Request
	Assignment *domain.Assignment
	Warning    error
}

// maxPlacementAttempts bounds the select-then-insert retry loop under
// concurrent allocations racing for the same mentors.
const maxPlacementAttempts = 3

// AssignMentor allocates a mentor for an APPROVED request: selects the
// least-loaded mentor, creates an ACTIVE assignment under a capacity guard,
// and moves the request to MENTOR_ASSIGNED.
//
// When no mentor has spare capacity, the request stays APPROVED and the
// result carries a soft warning instead of an error.
func (s *Service) AssignMentor(ctx context.Context, requestID uuid.UUID) (*AssignResult, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting staff id")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	if req.Status != domain.RequestStatusApproved {
		return nil, &domain.TransitionError{
			RequestID: req.ID,
			From:      req.Status,
			To:        domain.RequestStatusMentorAssigned,
		}
	}

	assignment, mentor, err := s.placeAssignment(ctx, req)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		s.log.Info("no mentor available",
			slog.String("request_id", req.ID.String()),
			slog.String("department_id", req.DepartmentID.String()),
		)
		return &AssignResult{Request: req, Warning: domain.ErrAllocationUnavailable}, nil
	}

	// Transition the request and record the audit entry atomically. If this
	// fails, the freshly created assignment is compensated away so a retry
	// sees the system as if nothing happened.
	now := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		moved, updateErr := s.requests.UpdateStatusWhere(txCtx, req.ID, domain.RequestStatusApproved, request.UpdateParams{
			Status:    domain.RequestStatusMentorAssigned,
			UpdatedAt: now,
		})
		if updateErr != nil {
			return fmt.Errorf("update request status: %w", updateErr)
		}
		if !moved {
			return fmt.Errorf("request %s: %w", req.ID, domain.ErrConcurrentModification)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeRequest,
			EntityID:   req.ID,
			Action:     domain.AuditActionAssignMentor,
			ActorID:    actorID,
			Before:     map[string]any{"status": string(domain.RequestStatusApproved)},
			After: map[string]any{
				"status":        string(domain.RequestStatusMentorAssigned),
				"assignment_id": assignment.ID.String(),
				"mentor_id":     assignment.MentorID.String(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		if _, cancelErr := s.assignments.CancelByRequest(ctx, req.ID); cancelErr != nil {
			s.log.Error("compensating assignment cancel failed",
				slog.String("request_id", req.ID.String()),
				slog.String("error", cancelErr.Error()),
			)
		}
		return nil, err
	}

	req.Status = domain.RequestStatusMentorAssigned
	req.UpdatedAt = now

	s.notify.Notify(ctx, domain.Notification{
		RecipientID: assignment.MentorID,
		Title:       "New trainee assigned",
		Message:     fmt.Sprintf("You have been assigned a trainee (request %s).", req.ID),
		Priority:    domain.NotificationPriorityHigh,
	})
	s.notify.Notify(ctx, domain.Notification{
		RecipientID: req.CandidateID,
		Title:       "Mentor assigned",
		Message:     fmt.Sprintf("A mentor (%s) has been assigned to your internship.", mentor.StaffNumber),
		Priority:    domain.NotificationPriorityNormal,
	})

	return &AssignResult{Request: req, Assignment: assignment}, nil
}

// placeAssignment runs the select-then-guarded-insert loop. A mentor that
// reaches capacity between selection and insert is excluded and selection
// retried, so a losing racer lands on the next-best mentor instead of
// overbooking.
func (s *Service) placeAssignment(ctx context.Context, req *domain.Request) (*domain.Assignment, *domain.MentorLoad, error) {
	var exclude []uuid.UUID

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		mentor, err := s.SelectMentor(ctx, req.DepartmentID, exclude)
		if err != nil {
			return nil, nil, err
		}
		if mentor == nil {
			return nil, nil, nil
		}

		assignment := &domain.Assignment{
			ID:         uuid.New(),
			RequestID:  req.ID,
			MentorID:   mentor.MentorID,
			Status:     domain.AssignmentStatusActive,
			AssignedAt: s.now(),
		}

		// The guarded insert needs a transaction of its own: the capacity
		// check holds a per-mentor lock that must span the insert and release
		// on commit.
		var created bool
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var txErr error
			created, txErr = s.assignments.CreateIfUnderCapacity(txCtx, assignment, mentor.Capacity)
			return txErr
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create assignment: %w", err)
		}
		if created {
			return assignment, mentor, nil
		}

		// Lost the capacity race for this mentor; try the next one.
		exclude = append(exclude, mentor.MentorID)
	}

	return nil, nil, nil
}
