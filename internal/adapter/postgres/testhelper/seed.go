package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/intake-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDepartment creates a department with a unique code.
func SeedDepartment(t *testing.T, pool *pgxpool.Pool) domain.Department {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	dept := domain.Department{
		ID:   uuid.New(),
		Code: "DEPT-" + suffix,
		Name: "Department " + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO departments (id, code, name) VALUES ($1, $2, $3)`,
		dept.ID, dept.Code, dept.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDepartment: %v", err)
	}
	return dept
}

// SeedStaff creates an active staff member with the given role in the department.
// For mentors, tier defaults to REGULAR; use SeedMentor for tier control.
func SeedStaff(t *testing.T, pool *pgxpool.Pool, role domain.StaffRole, departmentID uuid.UUID) domain.Staff {
	t.Helper()

	var tier *domain.MentorTier
	if role == domain.StaffRoleMentor {
		reg := domain.MentorTierRegular
		tier = &reg
	}
	return seedStaff(t, pool, role, departmentID, tier, nil)
}

// SeedMentor creates an active mentor with an explicit tier and optional
// capacity override.
func SeedMentor(t *testing.T, pool *pgxpool.Pool, departmentID uuid.UUID, tier domain.MentorTier, capacityOverride *int) domain.Staff {
	t.Helper()
	return seedStaff(t, pool, domain.StaffRoleMentor, departmentID, &tier, capacityOverride)
}

func seedStaff(t *testing.T, pool *pgxpool.Pool, role domain.StaffRole, departmentID uuid.UUID, tier *domain.MentorTier, capacityOverride *int) domain.Staff {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Staff{
		ID:               uuid.New(),
		StaffNumber:      "EMP-" + suffix,
		FullName:         "Staff " + suffix,
		Email:            "staff-" + suffix + "@example.com",
		Role:             role,
		DepartmentID:     &departmentID,
		Tier:             tier,
		CapacityOverride: capacityOverride,
		Active:           true,
		CreatedAt:        now,
	}

	var tierStr *string
	if tier != nil {
		ts := string(*tier)
		tierStr = &ts
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO staff (id, staff_number, full_name, email, role, department_id,
			tier, capacity_override, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.StaffNumber, s.FullName, s.Email, string(s.Role), s.DepartmentID,
		tierStr, s.CapacityOverride, s.Active, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaff: %v", err)
	}
	return s
}

// SeedCandidate creates a candidate applying to the department.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, departmentID uuid.UUID) domain.Candidate {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Candidate{
		ID:                uuid.New(),
		FullName:          "Candidate " + suffix,
		Email:             fmt.Sprintf("candidate-%s@example.com", suffix),
		ApplicationNumber: "APP-" + suffix,
		Institution:       "Test Institute",
		Course:            "Computer Science",
		DepartmentID:      departmentID,
		DurationWeeks:     12,
		CreatedAt:         now,
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO candidates (id, full_name, email, phone, application_number,
			institution, course, department_id, duration_weeks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.FullName, c.Email, c.Phone, c.ApplicationNumber,
		c.Institution, c.Course, c.DepartmentID, c.DurationWeeks, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate: %v", err)
	}
	return c
}

// SeedRequest creates a request for the candidate in the given status.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, candidate domain.Candidate, status domain.RequestStatus) domain.Request {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.Request{
		ID:           uuid.New(),
		CandidateID:  candidate.ID,
		Status:       status,
		DepartmentID: candidate.DepartmentID,
		SubmittedAt:  now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO requests (id, candidate_id, status, department_id, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.CandidateID, string(req.Status), req.DepartmentID, req.SubmittedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}
	return req
}
