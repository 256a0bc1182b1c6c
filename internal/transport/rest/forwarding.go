package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/internal/service/forwarding"
)

// forwardingService defines the minimal interface needed by ForwardingHandler.
type forwardingService interface {
	Forward(ctx context.Context, input forwarding.ForwardInput) (*domain.ForwardedBatch, error)
	DecideSubset(ctx context.Context, input forwarding.DecideSubsetInput) (*forwarding.DecideSubsetResult, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.ForwardedBatch, []domain.BatchDecision, error)
}

// ForwardingHandler serves the batch forwarding endpoints.
type ForwardingHandler struct {
	svc forwardingService
	log *slog.Logger
}

// NewForwardingHandler creates a ForwardingHandler.
func NewForwardingHandler(svc forwardingService, logger *slog.Logger) *ForwardingHandler {
	return &ForwardingHandler{svc: svc, log: logger.With("handler", "forwarding")}
}

type forwardRequest struct {
	CandidateIDs []string `json:"candidateIds"`
	DepartmentID string   `json:"departmentId"`
	ToReviewerID string   `json:"toReviewerId"`
}

type decideSubsetRequest struct {
	CandidateIDs []string `json:"candidateIds"`
	Decision     string   `json:"decision"`
	Comment      *string  `json:"comment"`
}

// Forward handles POST /batches. The acting coordinator forwards approved
// candidates to a department head for review.
func (h *ForwardingHandler) Forward(c *gin.Context) {
	var req forwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	candidateIDs, ok := parseUUIDList(c, "candidateIds", req.CandidateIDs)
	if !ok {
		return
	}
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid departmentId")
		return
	}
	toReviewerID, err := uuid.Parse(req.ToReviewerID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid toReviewerId")
		return
	}

	batch, err := h.svc.Forward(c.Request.Context(), forwarding.ForwardInput{
		CandidateIDs: candidateIDs,
		DepartmentID: departmentID,
		ToReviewerID: toReviewerID,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toBatchResponse(batch, nil))
}

// DecideSubset handles POST /batches/:id/decisions.
func (h *ForwardingHandler) DecideSubset(c *gin.Context) {
	batchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req decideSubsetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	candidateIDs, ok := parseUUIDList(c, "candidateIds", req.CandidateIDs)
	if !ok {
		return
	}

	result, err := h.svc.DecideSubset(c.Request.Context(), forwarding.DecideSubsetInput{
		BatchID:      batchID,
		CandidateIDs: candidateIDs,
		Decision:     domain.Decision(req.Decision),
		Comment:      req.Comment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(result.Batch, result.Decisions))
}

// Get handles GET /batches/:id.
func (h *ForwardingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	batch, decisions, err := h.svc.GetBatch(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(batch, decisions))
}

func parseUUIDList(c *gin.Context, field string, raw []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid UUID in "+field)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
