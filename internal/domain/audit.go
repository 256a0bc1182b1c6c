package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one immutable entry in the append-only audit trail.
// Before and After hold the state snapshot relevant to the action; either
// may be nil (e.g. Before on creation).
type AuditRecord struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	ActorID    uuid.UUID
	Before     map[string]any
	After      map[string]any
	CreatedAt  time.Time
}
