package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

// SelectMentor returns the least-loaded eligible mentor in the department,
// or nil when no mentor has spare capacity. Greedy, one assignment at a
// time; not a global optimum and not meant to be.
func (s *Service) SelectMentor(ctx context.Context, departmentID uuid.UUID, excludeIDs []uuid.UUID) (*domain.MentorLoad, error) {
	loads, err := s.mentors.ListMentorLoads(ctx, departmentID, excludeIDs,
		s.capacities.Senior, s.capacities.Regular)
	if err != nil {
		return nil, fmt.Errorf("list mentor loads: %w", err)
	}
	return pickMentor(loads), nil
}

// pickMentor selects among mentors with spare capacity:
// minimum load first, then minimum active count, then lowest staff number.
// Deterministic: the same roster always yields the same pick.
func pickMentor(loads []domain.MentorLoad) *domain.MentorLoad {
	var best *domain.MentorLoad
	for i := range loads {
		m := &loads[i]
		if !m.HasCapacity() {
			continue
		}
		if best == nil || lessLoaded(*m, *best) {
			best = m
		}
	}
	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}

func lessLoaded(a, b domain.MentorLoad) bool {
	if a.Load() != b.Load() {
		return a.Load() < b.Load()
	}
	if a.ActiveAssignments != b.ActiveAssignments {
		return a.ActiveAssignments < b.ActiveAssignments
	}
	return a.StaffNumber < b.StaffNumber
}
