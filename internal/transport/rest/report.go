package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	FileReport(ctx context.Context, input report.FileReportInput) (*domain.ProgressReport, error)
	ListReports(ctx context.Context, assignmentID uuid.UUID) ([]domain.ProgressReport, error)
}

// ReportHandler serves the progress report endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type fileReportRequest struct {
	Author  string `json:"author"`
	Week    int    `json:"week"`
	Summary string `json:"summary"`
}

// File handles POST /assignments/:id/reports.
func (h *ReportHandler) File(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req fileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	rep, err := h.svc.FileReport(c.Request.Context(), report.FileReportInput{
		AssignmentID: assignmentID,
		Author:       domain.ReportAuthor(req.Author),
		Week:         req.Week,
		Summary:      req.Summary,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toReportResponse(rep))
}

// List handles GET /assignments/:id/reports.
func (h *ReportHandler) List(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reports, err := h.svc.ListReports(c.Request.Context(), assignmentID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items := make([]reportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, toReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, gin.H{"reports": items})
}
