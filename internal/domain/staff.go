package domain

import (
	"time"

	"github.com/google/uuid"
)

// Staff is an internal user acting in the workflow: coordinators vet and
// forward, department heads decide batches, mentors hold assignments.
type Staff struct {
	ID           uuid.UUID
	StaffNumber  string
	FullName     string
	Email        string
	Role         StaffRole
	DepartmentID *uuid.UUID
	Tier         *MentorTier
	// CapacityOverride, when set, wins over the tier default.
	CapacityOverride *int
	Active           bool
	CreatedAt        time.Time
}

// EffectiveCapacity resolves the mentor's assignment ceiling: explicit
// override first, then the tier default supplied by configuration.
func (s *Staff) EffectiveCapacity(seniorDefault, regularDefault int) int {
	if s.CapacityOverride != nil {
		return *s.CapacityOverride
	}
	if s.Tier != nil && *s.Tier == MentorTierSenior {
		return seniorDefault
	}
	return regularDefault
}
