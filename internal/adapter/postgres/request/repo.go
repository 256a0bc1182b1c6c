// Package request implements the internship Request repository using
// PostgreSQL. Status changes go through conditional updates so that
// concurrent reviewers cannot both win the same transition.
package request

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const requestColumns = `id, candidate_id, status, department_id, submitted_at,
	reviewed_at, reviewer_id, review_comment, updated_at`

// Create inserts a new request. The partial unique index on open requests
// rejects a second non-terminal request for the same candidate.
func (r *Repo) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO requests (id, candidate_id, status, department_id, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.CandidateID, string(req.Status), req.DepartmentID, req.SubmittedAt, req.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "request", req.ID)
	}

	return req, nil
}

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)

	req, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	return req, nil
}

// GetByCandidateIDs returns the latest request per candidate for the given ids.
// Used by batch forwarding to validate member state in one round trip.
func (r *Repo) GetByCandidateIDs(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID]*domain.Request, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT ON (candidate_id) `+requestColumns+`
		FROM requests
		WHERE candidate_id = ANY($1::uuid[])
		ORDER BY candidate_id, submitted_at DESC`,
		candidateIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("get requests by candidates: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*domain.Request, len(candidateIDs))
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out[req.CandidateID] = req
	}
	return out, rows.Err()
}

// UpdateParams holds the review fields written together with a status change.
type UpdateParams struct {
	Status        domain.RequestStatus
	ReviewedAt    *time.Time
	ReviewerID    *uuid.UUID
	ReviewComment *string
	UpdatedAt     time.Time
}

// UpdateStatusWhere performs the conditional status transition
// "set status = new WHERE id = $1 AND status = expected".
// Returns false (and no error) when the current status no longer matches,
// which is how a concurrent writer's victory is observed.
func (r *Repo) UpdateStatusWhere(ctx context.Context, id uuid.UUID, expected domain.RequestStatus, params UpdateParams) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE requests
		SET status = $1,
		    reviewed_at = COALESCE($2, reviewed_at),
		    reviewer_id = COALESCE($3, reviewer_id),
		    review_comment = COALESCE($4, review_comment),
		    updated_at = $5
		WHERE id = $6 AND status = $7`,
		string(params.Status), params.ReviewedAt, params.ReviewerID,
		params.ReviewComment, params.UpdatedAt, id, string(expected),
	)
	if err != nil {
		return false, postgres.MapError(err, "request", id)
	}

	return tag.RowsAffected() == 1, nil
}

// SetReviewComment overwrites the review comment without touching status.
// Used by the compensating rollback path to persist the failure reason.
func (r *Repo) SetReviewComment(ctx context.Context, id uuid.UUID, comment string, updatedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE requests SET review_comment = $1, updated_at = $2 WHERE id = $3`,
		comment, updatedAt, id,
	)
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "request", id)
	}
	return nil
}

// LockContact takes a transaction-scoped advisory lock on the normalized
// email, serializing concurrent submissions for one contact identity so the
// open-request check and the inserts that follow cannot interleave.
// Callers MUST run this inside a transaction.
func (r *Repo) LockContact(ctx context.Context, email string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended(lower($1), 0))`, email)
	if err != nil {
		return fmt.Errorf("lock contact: %w", err)
	}
	return nil
}

// ExistsOpenByContact reports whether any non-terminal request belongs to a
// candidate with the given email or application number. Backs the global
// contact-identity uniqueness check on submission.
func (r *Repo) ExistsOpenByContact(ctx context.Context, email, applicationNumber string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM requests r
			JOIN candidates c ON c.id = r.candidate_id
			WHERE r.status NOT IN ('COMPLETED', 'REJECTED')
			  AND (lower(c.email) = lower($1) OR c.application_number = $2)
		)`,
		email, applicationNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists open request by contact: %w", err)
	}
	return exists, nil
}

// Filter defines parameters for listing requests.
type Filter struct {
	Status       *domain.RequestStatus
	DepartmentID *uuid.UUID
	Limit        int
	Offset       int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// List returns requests matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter Filter) ([]*domain.Request, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	qb := postgres.Builder.
		Select("id", "candidate_id", "status", "department_id", "submitted_at",
			"reviewed_at", "reviewer_id", "review_comment", "updated_at").
		From("requests").
		OrderBy("submitted_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(filter.Offset))

	if filter.Status != nil {
		qb = qb.Where("status = ?", string(*filter.Status))
	}
	if filter.DepartmentID != nil {
		qb = qb.Where("department_id = ?", *filter.DepartmentID)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var out []*domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.Request, error) {
	var (
		req    domain.Request
		status string
	)
	err := row.Scan(
		&req.ID, &req.CandidateID, &status, &req.DepartmentID, &req.SubmittedAt,
		&req.ReviewedAt, &req.ReviewerID, &req.ReviewComment, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return &req, nil
}
