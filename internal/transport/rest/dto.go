package rest

import (
	"time"

	"github.com/internhub/intake-backend/internal/domain"
)

type candidateResponse struct {
	ID                string  `json:"id"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone,omitempty"`
	ApplicationNumber string  `json:"applicationNumber"`
	Institution       string  `json:"institution"`
	Course            string  `json:"course"`
	DepartmentID      string  `json:"departmentId"`
	DurationWeeks     int     `json:"durationWeeks"`
}

type requestResponse struct {
	ID            string     `json:"id"`
	CandidateID   string     `json:"candidateId"`
	Status        string     `json:"status"`
	DepartmentID  string     `json:"departmentId"`
	SubmittedAt   time.Time  `json:"submittedAt"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	ReviewerID    *string    `json:"reviewerId,omitempty"`
	ReviewComment *string    `json:"reviewComment,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type assignmentResponse struct {
	ID         string     `json:"id"`
	RequestID  string     `json:"requestId"`
	MentorID   string     `json:"mentorId"`
	Status     string     `json:"status"`
	AssignedAt time.Time  `json:"assignedAt"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
}

type batchResponse struct {
	ID           string             `json:"id"`
	DepartmentID string             `json:"departmentId"`
	CandidateIDs []string           `json:"candidateIds"`
	ForwardedBy  string             `json:"forwardedBy"`
	ForwardedTo  string             `json:"forwardedTo"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	Decisions    []decisionResponse `json:"decisions,omitempty"`
}

type decisionResponse struct {
	CandidateID string    `json:"candidateId"`
	Decision    string    `json:"decision"`
	DecidedBy   string    `json:"decidedBy"`
	Comment     *string   `json:"comment,omitempty"`
	DecidedAt   time.Time `json:"decidedAt"`
}

type reportResponse struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	Author       string    `json:"author"`
	AuthorID     string    `json:"authorId"`
	Week         int       `json:"week"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"createdAt"`
}

type auditRecordResponse struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	ActorID    string         `json:"actorId"`
	Before     map[string]any `json:"before,omitempty"`
	After      map[string]any `json:"after,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toCandidateResponse(c *domain.Candidate) candidateResponse {
	return candidateResponse{
		ID:                c.ID.String(),
		FullName:          c.FullName,
		Email:             c.Email,
		Phone:             c.Phone,
		ApplicationNumber: c.ApplicationNumber,
		Institution:       c.Institution,
		Course:            c.Course,
		DepartmentID:      c.DepartmentID.String(),
		DurationWeeks:     c.DurationWeeks,
	}
}

func toRequestResponse(r *domain.Request) requestResponse {
	resp := requestResponse{
		ID:            r.ID.String(),
		CandidateID:   r.CandidateID.String(),
		Status:        string(r.Status),
		DepartmentID:  r.DepartmentID.String(),
		SubmittedAt:   r.SubmittedAt,
		ReviewedAt:    r.ReviewedAt,
		ReviewComment: r.ReviewComment,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.ReviewerID != nil {
		s := r.ReviewerID.String()
		resp.ReviewerID = &s
	}
	return resp
}

func toAssignmentResponse(a *domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:         a.ID.String(),
		RequestID:  a.RequestID.String(),
		MentorID:   a.MentorID.String(),
		Status:     string(a.Status),
		AssignedAt: a.AssignedAt,
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
	}
}

func toBatchResponse(b *domain.ForwardedBatch, decisions []domain.BatchDecision) batchResponse {
	ids := make([]string, 0, len(b.CandidateIDs))
	for _, id := range b.CandidateIDs {
		ids = append(ids, id.String())
	}

	var decs []decisionResponse
	for _, d := range decisions {
		decs = append(decs, decisionResponse{
			CandidateID: d.CandidateID.String(),
			Decision:    string(d.Decision),
			DecidedBy:   d.DecidedBy.String(),
			Comment:     d.Comment,
			DecidedAt:   d.DecidedAt,
		})
	}

	return batchResponse{
		ID:           b.ID.String(),
		DepartmentID: b.DepartmentID.String(),
		CandidateIDs: ids,
		ForwardedBy:  b.ForwardedBy.String(),
		ForwardedTo:  b.ForwardedTo.String(),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		Decisions:    decs,
	}
}

func toReportResponse(r *domain.ProgressReport) reportResponse {
	return reportResponse{
		ID:           r.ID.String(),
		AssignmentID: r.AssignmentID.String(),
		Author:       string(r.Author),
		AuthorID:     r.AuthorID.String(),
		Week:         r.Week,
		Summary:      r.Summary,
		CreatedAt:    r.CreatedAt,
	}
}

func toAuditRecordResponse(r domain.AuditRecord) auditRecordResponse {
	return auditRecordResponse{
		ID:         r.ID.String(),
		EntityType: string(r.EntityType),
		EntityID:   r.EntityID.String(),
		Action:     string(r.Action),
		ActorID:    r.ActorID.String(),
		Before:     r.Before,
		After:      r.After,
		CreatedAt:  r.CreatedAt,
	}
}
