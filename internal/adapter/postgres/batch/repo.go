// Package batch implements the ForwardedBatch repository using PostgreSQL.
// Batch membership is ordered; decisions live in a side table whose composite
// primary key makes re-deciding a candidate a unique violation.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides forwarded-batch persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new batch repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the batch and its ordered members. Callers run it inside a
// transaction so a partial member insert never becomes visible.
func (r *Repo) Create(ctx context.Context, b *domain.ForwardedBatch) (*domain.ForwardedBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO forwarded_batches (id, department_id, forwarded_by, forwarded_to, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.DepartmentID, b.ForwardedBy, b.ForwardedTo, string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "batch", b.ID)
	}

	for pos, candidateID := range b.CandidateIDs {
		_, err := q.Exec(ctx, `
			INSERT INTO batch_candidates (batch_id, candidate_id, position)
			VALUES ($1, $2, $3)`,
			b.ID, candidateID, pos,
		)
		if err != nil {
			return nil, postgres.MapError(err, "batch", b.ID)
		}
	}

	return b, nil
}

// GetByID returns a batch with its members in forward order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForwardedBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		b      domain.ForwardedBatch
		status string
	)
	err := q.QueryRow(ctx, `
		SELECT id, department_id, forwarded_by, forwarded_to, status, created_at, updated_at
		FROM forwarded_batches WHERE id = $1`, id,
	).Scan(&b.ID, &b.DepartmentID, &b.ForwardedBy, &b.ForwardedTo, &status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "batch", id)
	}
	b.Status = domain.BatchStatus(status)

	rows, err := q.Query(ctx, `
		SELECT candidate_id FROM batch_candidates
		WHERE batch_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("batch %s members: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var candidateID uuid.UUID
		if err := rows.Scan(&candidateID); err != nil {
			return nil, fmt.Errorf("scan batch member: %w", err)
		}
		b.CandidateIDs = append(b.CandidateIDs, candidateID)
	}
	return &b, rows.Err()
}

// ListDecisions returns all decisions recorded for a batch, oldest first.
func (r *Repo) ListDecisions(ctx context.Context, batchID uuid.UUID) ([]domain.BatchDecision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT batch_id, candidate_id, decision, decided_by, comment, decided_at
		FROM batch_decisions
		WHERE batch_id = $1
		ORDER BY decided_at`, batchID)
	if err != nil {
		return nil, fmt.Errorf("batch %s decisions: %w", batchID, err)
	}
	defer rows.Close()

	var out []domain.BatchDecision
	for rows.Next() {
		var (
			d        domain.BatchDecision
			decision string
		)
		err := rows.Scan(&d.BatchID, &d.CandidateID, &decision, &d.DecidedBy, &d.Comment, &d.DecidedAt)
		if err != nil {
			return nil, fmt.Errorf("scan batch decision: %w", err)
		}
		d.Decision = domain.Decision(decision)
		out = append(out, d)
	}
	return out, rows.Err()
}

// AddDecision appends one per-candidate decision. A second decision for the
// same candidate violates the composite primary key and surfaces as
// domain.ErrAlreadyExists; the service maps it to ErrAlreadyDecided.
func (r *Repo) AddDecision(ctx context.Context, d domain.BatchDecision) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO batch_decisions (batch_id, candidate_id, decision, decided_by, comment, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		d.BatchID, d.CandidateID, string(d.Decision), d.DecidedBy, d.Comment, d.DecidedAt,
	)
	if err != nil {
		return postgres.MapError(err, "batch_decision", d.BatchID)
	}
	return nil
}

// UpdateStatus stores the derived batch status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BatchStatus, updatedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE forwarded_batches SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), updatedAt, id,
	)
	if err != nil {
		return postgres.MapError(err, "batch", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "batch", id)
	}
	return nil
}
