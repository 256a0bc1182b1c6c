package approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

// Submit registers a new application: creates the request in SUBMITTED along
// with its candidate, records the audit entry, and tells the department's
// coordinators. A second open request for the same contact identity (email
// or application number) is rejected; the check runs under a per-contact
// lock so two racing submissions cannot both pass it. A returning applicant
// whose previous request ended terminal reuses the existing candidate row
// with refreshed profile fields.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)
	applicationNumber := domain.NormalizeStaffNumber(input.ApplicationNumber)

	now := s.now().UTC()
	candidate := &domain.Candidate{
		ID:                uuid.New(),
		FullName:          input.FullName,
		Email:             email,
		Phone:             input.Phone,
		ApplicationNumber: applicationNumber,
		Institution:       input.Institution,
		Course:            input.Course,
		DepartmentID:      input.DepartmentID,
		DurationWeeks:     input.DurationWeeks,
		CreatedAt:         now,
	}

	var req *domain.Request
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if txErr := s.requests.LockContact(txCtx, email); txErr != nil {
			return fmt.Errorf("lock contact: %w", txErr)
		}

		exists, txErr := s.requests.ExistsOpenByContact(txCtx, email, applicationNumber)
		if txErr != nil {
			return fmt.Errorf("check open request: %w", txErr)
		}
		if exists {
			return domain.NewValidationError("contact",
				"an open request already exists for this email or application number")
		}

		existing, txErr := s.candidates.GetByContact(txCtx, email, applicationNumber)
		switch {
		case txErr == nil:
			// Reapplication: keep the identity row, refresh the profile.
			candidate.ID = existing.ID
			candidate.CreatedAt = existing.CreatedAt
			if _, txErr = s.candidates.Update(txCtx, candidate); txErr != nil {
				return fmt.Errorf("update candidate: %w", txErr)
			}
		case errors.Is(txErr, domain.ErrNotFound):
			if _, txErr = s.candidates.Create(txCtx, candidate); txErr != nil {
				return fmt.Errorf("create candidate: %w", txErr)
			}
		default:
			return fmt.Errorf("find candidate: %w", txErr)
		}

		req = &domain.Request{
			ID:           uuid.New(),
			CandidateID:  candidate.ID,
			Status:       domain.RequestStatusSubmitted,
			DepartmentID: input.DepartmentID,
			SubmittedAt:  now,
			UpdatedAt:    now,
		}
		if _, txErr := s.requests.Create(txCtx, req); txErr != nil {
			return fmt.Errorf("create request: %w", txErr)
		}

		// The applicant acts for themselves on submission.
		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeRequest,
			EntityID:   req.ID,
			Action:     domain.AuditActionSubmit,
			ActorID:    candidate.ID,
			After: map[string]any{
				"status":       string(domain.RequestStatusSubmitted),
				"candidate_id": candidate.ID.String(),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifyRole(ctx, domain.StaffRoleCoordinator, &input.DepartmentID,
		"New application submitted",
		fmt.Sprintf("%s (%s) applied for %s.", candidate.FullName, candidate.ApplicationNumber, candidate.Course),
		domain.NotificationPriorityNormal,
	)

	return &SubmitResult{Candidate: candidate, Request: req}, nil
}
