package approval

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

// SubmitInput holds the parameters for a new application submission.
type SubmitInput struct {
	FullName          string
	Email             string
	Phone             *string
	ApplicationNumber string
	Institution       string
	Course            string
	DepartmentID      uuid.UUID
	DurationWeeks     int
}

// Validate checks all fields and collects all errors.
func (i *SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if len(i.FullName) > 200 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long (max 200)"})
	}

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case !strings.Contains(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	case len(email) > 320:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long (max 320)"})
	}

	if strings.TrimSpace(i.ApplicationNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "application_number", Message: "required"})
	}
	if strings.TrimSpace(i.Institution) == "" {
		errs = append(errs, domain.FieldError{Field: "institution", Message: "required"})
	}
	if strings.TrimSpace(i.Course) == "" {
		errs = append(errs, domain.FieldError{Field: "course", Message: "required"})
	}
	if i.DepartmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "department_id", Message: "required"})
	}
	if i.DurationWeeks < 1 || i.DurationWeeks > 52 {
		errs = append(errs, domain.FieldError{Field: "duration_weeks", Message: "must be between 1 and 52"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DecideInput holds the parameters for the reviewer's approve/reject decision.
type DecideInput struct {
	RequestID uuid.UUID
	Decision  domain.Decision
	Comment   *string
}

// Validate checks all fields and collects all errors.
func (i *DecideInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
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

// FinalApproveInput holds the parameters for the senior sign-off.
type FinalApproveInput struct {
	RequestID uuid.UUID
	Comment   *string
}

// Validate checks all fields and collects all errors.
func (i *FinalApproveInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.Comment != nil && len(*i.Comment) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartInput holds the parameters for starting an internship.
// StartDate defaults to the current time when zero.
type StartInput struct {
	RequestID uuid.UUID
	StartDate time.Time
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	if i.RequestID == uuid.Nil {
		return domain.NewValidationError("request_id", "required")
	}
	return nil
}
