package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportAuthor identifies who filed a progress report.
type ReportAuthor string

const (
	ReportAuthorMentor    ReportAuthor = "MENTOR"
	ReportAuthorCandidate ReportAuthor = "CANDIDATE"
)

func (a ReportAuthor) IsValid() bool {
	return a == ReportAuthorMentor || a == ReportAuthorCandidate
}

// ProgressReport tracks internship progress against an active assignment.
type ProgressReport struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	Author       ReportAuthor
	AuthorID     uuid.UUID
	Week         int
	Summary      string
	CreatedAt    time.Time
}
