package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// FileReportInput holds the parameters for filing a progress report.
type FileReportInput struct {
	AssignmentID uuid.UUID
	Author       domain.ReportAuthor
	Week         int
	Summary      string
}

// Validate checks all fields and collects all errors.
func (i *FileReportInput) Validate() error {
	var errs []domain.FieldError

	if i.AssignmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assignment_id", Message: "required"})
	}
	if !i.Author.IsValid() {
		errs = append(errs, domain.FieldError{Field: "author", Message: "must be MENTOR or CANDIDATE"})
	}
	if i.Week < 1 || i.Week > 52 {
		errs = append(errs, domain.FieldError{Field: "week", Message: "must be between 1 and 52"})
	}
	if strings.TrimSpace(i.Summary) == "" {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "required"})
	} else if len(i.Summary) > 4000 {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long (max 4000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FileReport records a progress report against an ACTIVE assignment. Only
// the assignment's mentor or the candidate behind its request may file, and
// the declared author side must match the acting user.
func (s *Service) FileReport(ctx context.Context, input FileReportInput) (*domain.ProgressReport, error) {
	authorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.NewValidationError("actor", "missing acting user id")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	assignment, err := s.assignments.GetByID(ctx, input.AssignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if assignment.Status != domain.AssignmentStatusActive {
		return nil, fmt.Errorf("assignment %s is %s, reports require ACTIVE: %w",
			assignment.ID, assignment.Status, domain.ErrPrecondition)
	}

	req, err := s.requests.GetByID(ctx, assignment.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var counterpartID uuid.UUID
	switch input.Author {
	case domain.ReportAuthorMentor:
		if authorID != assignment.MentorID {
			return nil, domain.NewValidationError("author", "acting user is not this assignment's mentor")
		}
		counterpartID = req.CandidateID
	case domain.ReportAuthorCandidate:
		if authorID != req.CandidateID {
			return nil, domain.NewValidationError("author", "acting user is not this assignment's candidate")
		}
		counterpartID = assignment.MentorID
	}

	now := s.now().UTC()
	rep := &domain.ProgressReport{
		ID:           uuid.New(),
		AssignmentID: assignment.ID,
		Author:       input.Author,
		AuthorID:     authorID,
		Week:         input.Week,
		Summary:      input.Summary,
		CreatedAt:    now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, txErr := s.reports.Create(txCtx, rep); txErr != nil {
			return fmt.Errorf("create report: %w", txErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			EntityType: domain.EntityTypeReport,
			EntityID:   rep.ID,
			Action:     domain.AuditActionFileReport,
			ActorID:    authorID,
			After: map[string]any{
				"assignment_id": assignment.ID.String(),
				"author":        string(input.Author),
				"week":          input.Week,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notify.Notify(ctx, domain.Notification{
		RecipientID: counterpartID,
		Title:       "Progress report filed",
		Message:     fmt.Sprintf("A week %d progress report was filed by the %s.", input.Week, strings.ToLower(string(input.Author))),
		Priority:    domain.NotificationPriorityLow,
	})

	return rep, nil
}
