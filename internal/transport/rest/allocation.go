package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/service/allocation"
)

// allocationService defines the minimal interface needed by AllocationHandler.
type allocationService interface {
	AssignMentor(ctx context.Context, requestID uuid.UUID) (*allocation.AssignResult, error)
}

// AllocationHandler serves the explicit mentor assignment endpoint, used to
// retry placement for requests approved while no mentor had capacity.
type AllocationHandler struct {
	svc allocationService
	log *slog.Logger
}

// NewAllocationHandler creates an AllocationHandler.
func NewAllocationHandler(svc allocationService, logger *slog.Logger) *AllocationHandler {
	return &AllocationHandler{svc: svc, log: logger.With("handler", "allocation")}
}

type assignResponse struct {
	Request    requestResponse     `json:"request"`
	Assignment *assignmentResponse `json:"assignment,omitempty"`
	Warning    string              `json:"warning,omitempty"`
}

// Assign handles POST /requests/:id/mentor.
func (h *AllocationHandler) Assign(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.AssignMentor(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := assignResponse{Request: toRequestResponse(result.Request)}
	if result.Assignment != nil {
		a := toAssignmentResponse(result.Assignment)
		resp.Assignment = &a
	}
	if result.Warning != nil {
		resp.Warning = "NO_MENTOR_AVAILABLE"
	}
	c.JSON(http.StatusOK, resp)
}
