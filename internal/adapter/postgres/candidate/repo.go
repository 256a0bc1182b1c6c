// Package candidate implements the Candidate repository using PostgreSQL.
// A candidate row is an identity keyed by email and application number;
// reapplication after a terminal request reuses and refreshes the same row.
// Lifecycle lives on requests.
package candidate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides candidate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const candidateColumns = `id, full_name, email, phone, application_number,
	institution, course, department_id, duration_weeks, created_at`

// Create inserts a new candidate.
func (r *Repo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO candidates (id, full_name, email, phone, application_number,
			institution, course, department_id, duration_weeks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.FullName, c.Email, c.Phone, c.ApplicationNumber,
		c.Institution, c.Course, c.DepartmentID, c.DurationWeeks, c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", c.ID)
	}
	return c, nil
}

// GetByID returns a candidate by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)

	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.ApplicationNumber,
		&c.Institution, &c.Course, &c.DepartmentID, &c.DurationWeeks, &c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", id)
	}
	return &c, nil
}

// GetByContact returns the candidate matching the email or application
// number, preferring an application-number match when both exist. Used on
// submission to reuse the identity row of a returning applicant.
func (r *Repo) GetByContact(ctx context.Context, email, applicationNumber string) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+candidateColumns+` FROM candidates
		WHERE application_number = $2 OR lower(email) = lower($1)
		ORDER BY (application_number = $2) DESC, created_at DESC
		LIMIT 1`,
		email, applicationNumber,
	)

	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.ApplicationNumber,
		&c.Institution, &c.Course, &c.DepartmentID, &c.DurationWeeks, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("candidate by contact: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("candidate by contact: %w", err)
	}
	return &c, nil
}

// Update overwrites the candidate's profile fields. CreatedAt is not touched.
func (r *Repo) Update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE candidates
		SET full_name = $2, email = $3, phone = $4, application_number = $5,
		    institution = $6, course = $7, department_id = $8, duration_weeks = $9
		WHERE id = $1`,
		c.ID, c.FullName, c.Email, c.Phone, c.ApplicationNumber,
		c.Institution, c.Course, c.DepartmentID, c.DurationWeeks,
	)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(domain.ErrNotFound, "candidate", c.ID)
	}
	return c, nil
}

// GetByIDs returns the candidates for the given ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get candidates by ids: %w", err)
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		err := rows.Scan(
			&c.ID, &c.FullName, &c.Email, &c.Phone, &c.ApplicationNumber,
			&c.Institution, &c.Course, &c.DepartmentID, &c.DurationWeeks, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
