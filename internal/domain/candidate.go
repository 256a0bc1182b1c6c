package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is an applicant to the trainee program. Identity fields are
// immutable after submission; lifecycle lives on the Request.
type Candidate struct {
	ID                uuid.UUID
	FullName          string
	Email             string
	Phone             *string
	ApplicationNumber string
	Institution       string
	Course            string
	DepartmentID      uuid.UUID
	DurationWeeks     int
	CreatedAt         time.Time
}

// Department is a program area candidates apply to and mentors belong to.
type Department struct {
	ID   uuid.UUID
	Code string
	Name string
}
