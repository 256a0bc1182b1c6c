// Package staff implements the staff directory repository using PostgreSQL.
// It backs reviewer resolution (coordinators, department heads) and the
// mentor roster with live load counts for allocation.
package staff

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides staff directory queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staff repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const staffColumns = `id, staff_number, full_name, email, role, department_id,
	tier, capacity_override, active, created_at`

// GetByID returns a staff member by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)

	s, err := scanStaff(row)
	if err != nil {
		return nil, postgres.MapError(err, "staff", id)
	}
	return s, nil
}

// ResolveByRole returns active staff holding the given role, optionally
// scoped to a department. Backs the workflow's reviewer directory.
func (r *Repo) ResolveByRole(ctx context.Context, role domain.StaffRole, departmentID *uuid.UUID) ([]domain.Staff, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	qb := postgres.Builder.
		Select("id", "staff_number", "full_name", "email", "role", "department_id",
			"tier", "capacity_override", "active", "created_at").
		From("staff").
		Where(sq.Eq{"role": string(role), "active": true}).
		OrderBy("staff_number")

	if departmentID != nil {
		qb = qb.Where(sq.Eq{"department_id": *departmentID})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve staff query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve staff by role %s: %w", role, err)
	}
	defer rows.Close()

	var out []domain.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// ListMentorLoads returns every active mentor in the department together with
// its current ACTIVE assignment count and effective capacity. Ordered by
// staff_number so downstream tie-breaking is reproducible.
func (r *Repo) ListMentorLoads(ctx context.Context, departmentID uuid.UUID, excludeIDs []uuid.UUID, seniorCapacity, regularCapacity int) ([]domain.MentorLoad, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	qb := postgres.Builder.
		Select(
			"s.id",
			"s.staff_number",
			"COALESCE(s.tier, 'REGULAR')",
		).
		Column(sq.Expr("COALESCE(s.capacity_override, CASE s.tier WHEN 'SENIOR' THEN ? ELSE ? END)",
			seniorCapacity, regularCapacity)).
		Column("count(a.id) FILTER (WHERE a.status = 'ACTIVE')").
		From("staff s").
		LeftJoin("assignments a ON a.mentor_id = s.id").
		Where(sq.Eq{"s.role": string(domain.StaffRoleMentor), "s.active": true, "s.department_id": departmentID}).
		GroupBy("s.id", "s.staff_number", "s.tier", "s.capacity_override").
		OrderBy("s.staff_number")

	if len(excludeIDs) > 0 {
		qb = qb.Where(sq.NotEq{"s.id": excludeIDs})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mentor loads query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list mentor loads for department %s: %w", departmentID, err)
	}
	defer rows.Close()

	var out []domain.MentorLoad
	for rows.Next() {
		var (
			m    domain.MentorLoad
			tier string
		)
		err := rows.Scan(&m.MentorID, &m.StaffNumber, &tier, &m.Capacity, &m.ActiveAssignments)
		if err != nil {
			return nil, fmt.Errorf("scan mentor load: %w", err)
		}
		m.Tier = domain.MentorTier(tier)
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var (
		s    domain.Staff
		role string
		tier *string
	)
	err := row.Scan(
		&s.ID, &s.StaffNumber, &s.FullName, &s.Email, &role, &s.DepartmentID,
		&tier, &s.CapacityOverride, &s.Active, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Role = domain.StaffRole(role)
	if tier != nil {
		t := domain.MentorTier(*tier)
		s.Tier = &t
	}
	return &s, nil
}
