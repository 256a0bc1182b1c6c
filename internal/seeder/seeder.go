// Package seeder provisions departments and staff for development and demo
// environments. Seeding is idempotent: departments are matched by code and
// staff by staff number, and existing rows are updated in place.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/intake-backend/internal/domain"
)

// Seeder writes the declared departments and staff to the database.
type Seeder struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a Seeder.
func New(pool *pgxpool.Pool, log *slog.Logger) *Seeder {
	return &Seeder{pool: pool, log: log}
}

// Run applies the whole seed declaration. It stops at the first error.
func (s *Seeder) Run(ctx context.Context, cfg *Config) error {
	for _, dept := range cfg.Departments {
		deptID, err := s.upsertDepartment(ctx, dept)
		if err != nil {
			return fmt.Errorf("department %s: %w", dept.Code, err)
		}

		for _, st := range dept.Staff {
			if err := s.upsertStaff(ctx, deptID, st); err != nil {
				return fmt.Errorf("department %s: staff %s: %w", dept.Code, st.StaffNumber, err)
			}
		}

		s.log.Info("department seeded",
			slog.String("code", dept.Code),
			slog.Int("staff", len(dept.Staff)),
		)
	}
	return nil
}

func (s *Seeder) upsertDepartment(ctx context.Context, spec DepartmentSpec) (uuid.UUID, error) {
	if spec.Code == "" || spec.Name == "" {
		return uuid.Nil, fmt.Errorf("code and name are required")
	}

	id := uuid.New()
	err := s.pool.QueryRow(ctx, `
		INSERT INTO departments (id, code, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, id, spec.Code, spec.Name).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *Seeder) upsertStaff(ctx context.Context, deptID uuid.UUID, spec StaffSpec) error {
	role := domain.StaffRole(strings.ToUpper(spec.Role))
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q", spec.Role)
	}

	staffNumber := domain.NormalizeStaffNumber(spec.StaffNumber)
	if staffNumber == "" || spec.FullName == "" || spec.Email == "" {
		return fmt.Errorf("staff_number, full_name, and email are required")
	}

	var tier *domain.MentorTier
	if role == domain.StaffRoleMentor {
		t := domain.MentorTier(strings.ToUpper(spec.Tier))
		if spec.Tier == "" {
			t = domain.MentorTierRegular
		}
		if !t.IsValid() {
			return fmt.Errorf("unknown mentor tier %q", spec.Tier)
		}
		tier = &t
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO staff (id, staff_number, full_name, email, role, department_id,
		                   tier, capacity_override, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, now())
		ON CONFLICT (staff_number) DO UPDATE SET
			full_name         = EXCLUDED.full_name,
			email             = EXCLUDED.email,
			role              = EXCLUDED.role,
			department_id     = EXCLUDED.department_id,
			tier              = EXCLUDED.tier,
			capacity_override = EXCLUDED.capacity_override,
			active            = true
	`, uuid.New(), staffNumber, spec.FullName, domain.NormalizeEmail(spec.Email),
		role, deptID, tier, spec.CapacityOverride)
	return err
}
