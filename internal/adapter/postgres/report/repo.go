// Package report implements the ProgressReport repository using PostgreSQL.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides progress report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new progress report. The unique constraint on
// (assignment_id, author, week) rejects duplicate weekly reports.
func (r *Repo) Create(ctx context.Context, rep *domain.ProgressReport) (*domain.ProgressReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO progress_reports (id, assignment_id, author, author_id, week, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rep.ID, rep.AssignmentID, string(rep.Author), rep.AuthorID, rep.Week, rep.Summary, rep.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "progress_report", rep.ID)
	}
	return rep, nil
}

// ListByAssignment returns an assignment's reports in week order.
func (r *Repo) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]domain.ProgressReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT id, assignment_id, author, author_id, week, summary, created_at
		FROM progress_reports
		WHERE assignment_id = $1
		ORDER BY week, author`, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("list reports for assignment %s: %w", assignmentID, err)
	}
	defer rows.Close()

	var out []domain.ProgressReport
	for rows.Next() {
		var (
			rep    domain.ProgressReport
			author string
		)
		err := rows.Scan(&rep.ID, &rep.AssignmentID, &author, &rep.AuthorID,
			&rep.Week, &rep.Summary, &rep.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan progress_report: %w", err)
		}
		rep.Author = domain.ReportAuthor(author)
		out = append(out, rep)
	}
	return out, rows.Err()
}
