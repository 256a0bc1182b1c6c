// Package assignment implements the mentor Assignment repository using
// PostgreSQL. The capacity ceiling is enforced at write time: the insert
// takes a per-mentor advisory lock and re-counts the mentor's ACTIVE
// assignments under it, so two concurrent allocations cannot both push a
// mentor over capacity.
package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateIfUnderCapacity inserts an ACTIVE assignment only if the mentor's
// current ACTIVE count is below capacity. A guarded insert alone is not
// enough under Read Committed: two writers at count C-1 would each see C-1
// and both insert. The transaction-scoped advisory lock on the mentor id
// serializes concurrent allocations, and the loser's re-count then sees the
// winner's committed row. Callers MUST run this inside a transaction, or the
// lock releases at statement end and the guard degrades. The partial unique
// index on (request_id) WHERE status='ACTIVE' additionally rejects a double
// assignment of the same request.
// Returns false (and no error) when the mentor is at capacity.
func (r *Repo) CreateIfUnderCapacity(ctx context.Context, a *domain.Assignment, capacity int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, a.MentorID)
	if err != nil {
		return false, fmt.Errorf("lock mentor %s: %w", a.MentorID, err)
	}

	tag, err := q.Exec(ctx, `
		INSERT INTO assignments (id, request_id, mentor_id, status, assigned_at, start_date, end_date)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE (
			SELECT count(*) FROM assignments
			WHERE mentor_id = $3 AND status = 'ACTIVE'
		) < $8`,
		a.ID, a.RequestID, a.MentorID, string(a.Status), a.AssignedAt, a.StartDate, a.EndDate, capacity,
	)
	if err != nil {
		return false, postgres.MapError(err, "assignment", a.ID)
	}

	return tag.RowsAffected() == 1, nil
}

// GetByID returns an assignment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT id, request_id, mentor_id, status, assigned_at, start_date, end_date
		FROM assignments
		WHERE id = $1`, id)

	var (
		a      domain.Assignment
		status string
	)
	err := row.Scan(&a.ID, &a.RequestID, &a.MentorID, &status, &a.AssignedAt, &a.StartDate, &a.EndDate)
	if err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}
	a.Status = domain.AssignmentStatus(status)
	return &a, nil
}

// GetActiveByRequest returns the request's ACTIVE assignment, if any.
func (r *Repo) GetActiveByRequest(ctx context.Context, requestID uuid.UUID) (*domain.Assignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT id, request_id, mentor_id, status, assigned_at, start_date, end_date
		FROM assignments
		WHERE request_id = $1 AND status = 'ACTIVE'`, requestID)

	var (
		a      domain.Assignment
		status string
	)
	err := row.Scan(&a.ID, &a.RequestID, &a.MentorID, &status, &a.AssignedAt, &a.StartDate, &a.EndDate)
	if err != nil {
		return nil, postgres.MapError(err, "assignment for request", requestID)
	}
	a.Status = domain.AssignmentStatus(status)
	return &a, nil
}

// CountActiveByMentor returns the mentor's current ACTIVE assignment count.
func (r *Repo) CountActiveByMentor(ctx context.Context, mentorID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM assignments WHERE mentor_id = $1 AND status = 'ACTIVE'`,
		mentorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active assignments for mentor %s: %w", mentorID, err)
	}
	return count, nil
}

// SetStartDate stamps the internship start on the request's ACTIVE assignment.
func (r *Repo) SetStartDate(ctx context.Context, requestID uuid.UUID, start time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE assignments SET start_date = $1
		WHERE request_id = $2 AND status = 'ACTIVE'`,
		start, requestID,
	)
	if err != nil {
		return false, postgres.MapError(err, "assignment for request", requestID)
	}
	return tag.RowsAffected() == 1, nil
}

// CompleteByRequest transitions the request's ACTIVE assignment to COMPLETED.
// Returns false when no ACTIVE assignment exists (already completed or never
// assigned).
func (r *Repo) CompleteByRequest(ctx context.Context, requestID uuid.UUID, end time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE assignments SET status = 'COMPLETED', end_date = $1
		WHERE request_id = $2 AND status = 'ACTIVE'`,
		end, requestID,
	)
	if err != nil {
		return false, postgres.MapError(err, "assignment for request", requestID)
	}
	return tag.RowsAffected() == 1, nil
}

// CancelByRequest cancels the request's ACTIVE assignment. Used by the
// compensating rollback when a downstream step fails after allocation.
func (r *Repo) CancelByRequest(ctx context.Context, requestID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE assignments SET status = 'CANCELLED'
		WHERE request_id = $1 AND status = 'ACTIVE'`,
		requestID,
	)
	if err != nil {
		return false, postgres.MapError(err, "assignment for request", requestID)
	}
	return tag.RowsAffected() == 1, nil
}
