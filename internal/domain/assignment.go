package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds one approved request to one mentor. A request has at most
// one ACTIVE assignment; a mentor's ACTIVE count never exceeds its capacity.
type Assignment struct {
	ID         uuid.UUID
	RequestID  uuid.UUID
	MentorID   uuid.UUID
	Status     AssignmentStatus
	AssignedAt time.Time
	StartDate  *time.Time
	EndDate    *time.Time
}

// MentorLoad is a mentor together with its current ACTIVE assignment count,
// as read for allocation. Capacity is the effective (tier or override) value.
type MentorLoad struct {
	MentorID          uuid.UUID
	StaffNumber       string
	Tier              MentorTier
	Capacity          int
	ActiveAssignments int
}

// Load returns the fractional utilization used for least-loaded selection.
func (m MentorLoad) Load() float64 {
	if m.Capacity <= 0 {
		return 1
	}
	return float64(m.ActiveAssignments) / float64(m.Capacity)
}

// HasCapacity reports whether the mentor can take one more active assignment.
func (m MentorLoad) HasCapacity() bool {
	return m.Capacity > 0 && m.ActiveAssignments < m.Capacity
}
