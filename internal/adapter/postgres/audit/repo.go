// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records; there is no
// update or delete. A failed audit write fails the calling operation.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new audit record.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	beforeJSON, err := marshalState(record.Before)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal before: %w", err)
	}
	afterJSON, err := marshalState(record.After)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal after: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO audit_log (id, entity_type, entity_id, action, actor_id, before_state, after_state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, string(record.EntityType), record.EntityID, string(record.Action),
		record.ActorID, beforeJSON, afterJSON, record.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return record, nil
}

// Log creates an audit record without returning it. Satisfies the services'
// auditLogger interfaces.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// GetByEntity returns the change history for a specific entity, newest first,
// limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, sq.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit, 0)
}

// GetByActor returns audit records written by one actor, newest first,
// with pagination.
func (r *Repo) GetByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	return r.list(ctx, sq.Eq{"actor_id": actorID}, limit, offset)
}

func (r *Repo) list(ctx context.Context, where sq.Eq, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	qb := postgres.Builder.
		Select("id", "entity_type", "entity_id", "action", "actor_id",
			"before_state", "after_state", "created_at").
		From("audit_log").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var (
			rec              domain.AuditRecord
			entityType       string
			action           string
			beforeJSON, afterJSON []byte
		)
		err := rows.Scan(&rec.ID, &entityType, &rec.EntityID, &action, &rec.ActorID,
			&beforeJSON, &afterJSON, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		rec.EntityType = domain.EntityType(entityType)
		rec.Action = domain.AuditAction(action)
		if rec.Before, err = unmarshalState(beforeJSON); err != nil {
			return nil, fmt.Errorf("audit_record %s unmarshal before: %w", rec.ID, err)
		}
		if rec.After, err = unmarshalState(afterJSON); err != nil {
			return nil, fmt.Errorf("audit_record %s unmarshal after: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// marshalState serializes a snapshot map; nil stays NULL in the database.
func marshalState(state map[string]any) ([]byte, error) {
	if state == nil {
		return nil, nil
	}
	return json.Marshal(state)
}

func unmarshalState(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	state := make(map[string]any)
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}
