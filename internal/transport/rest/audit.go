package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

// auditReader defines the minimal interface needed by AuditHandler.
type auditReader interface {
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// AuditHandler serves the audit trail read endpoint.
type AuditHandler struct {
	audit auditReader
	log   *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit auditReader, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: logger.With("handler", "audit")}
}

const defaultAuditLimit = 100

// ListByEntity handles GET /audit/:entityType/:id?limit=.
func (h *AuditHandler) ListByEntity(c *gin.Context) {
	entityType := domain.EntityType(strings.ToUpper(c.Param("entityType")))
	if !entityType.IsValid() {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "unknown entity type")
		return
	}

	entityID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	limit := intQuery(c, "limit", defaultAuditLimit)

	records, err := h.audit.GetByEntity(c.Request.Context(), entityType, entityID, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items := make([]auditRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toAuditRecordResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"records": items})
}
