package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/adapter/postgres/request"
	"github.com/internhub/intake-backend/internal/domain"
	"github.com/internhub/intake-backend/internal/service/approval"
)

// approvalService defines the minimal interface needed by ApprovalHandler.
type approvalService interface {
	Submit(ctx context.Context, input approval.SubmitInput) (*approval.SubmitResult, error)
	BeginReview(ctx context.Context, requestID uuid.UUID) (*domain.Request, error)
	Decide(ctx context.Context, input approval.DecideInput) (*approval.DecideResult, error)
	FinalApprove(ctx context.Context, input approval.FinalApproveInput) (*domain.Request, error)
	Start(ctx context.Context, input approval.StartInput) (*domain.Request, error)
	Complete(ctx context.Context, requestID uuid.UUID) (*domain.Request, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	ListRequests(ctx context.Context, filter request.Filter) ([]*domain.Request, error)
}

// ApprovalHandler serves the request lifecycle endpoints.
type ApprovalHandler struct {
	svc approvalService
	log *slog.Logger
}

// NewApprovalHandler creates an ApprovalHandler.
func NewApprovalHandler(svc approvalService, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{svc: svc, log: logger.With("handler", "approval")}
}

type submitRequest struct {
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone"`
	ApplicationNumber string  `json:"applicationNumber"`
	Institution       string  `json:"institution"`
	Course            string  `json:"course"`
	DepartmentID      string  `json:"departmentId"`
	DurationWeeks     int     `json:"durationWeeks"`
}

type submitResponse struct {
	Candidate candidateResponse `json:"candidate"`
	Request   requestResponse   `json:"request"`
}

type decideRequest struct {
	Decision string  `json:"decision"`
	Comment  *string `json:"comment"`
}

// decideResponse carries the post-decision request state. On APPROVE with no
// mentor capacity, warning is set and assignment is absent.
type decideResponse struct {
	Request    requestResponse     `json:"request"`
	Assignment *assignmentResponse `json:"assignment,omitempty"`
	Warning    string              `json:"warning,omitempty"`
}

type signOffRequest struct {
	Comment *string `json:"comment"`
}

type startRequest struct {
	StartDate string `json:"startDate"` // YYYY-MM-DD, defaults to today
}

// Submit handles POST /requests. Submission is applicant-initiated and
// needs no actor header.
func (h *ApprovalHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid departmentId")
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), approval.SubmitInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		ApplicationNumber: req.ApplicationNumber,
		Institution:       req.Institution,
		Course:            req.Course,
		DepartmentID:      departmentID,
		DurationWeeks:     req.DurationWeeks,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, submitResponse{
		Candidate: toCandidateResponse(result.Candidate),
		Request:   toRequestResponse(result.Request),
	})
}

// BeginReview handles POST /requests/:id/review. The acting coordinator
// claims the request for review.
func (h *ApprovalHandler) BeginReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, err := h.svc.BeginReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(req))
}

// Decide handles POST /requests/:id/decision.
func (h *ApprovalHandler) Decide(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	result, err := h.svc.Decide(c.Request.Context(), approval.DecideInput{
		RequestID: id,
		Decision:  domain.Decision(req.Decision),
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toDecideResponse(result))
}

// FinalApprove handles POST /requests/:id/sign-off.
func (h *ApprovalHandler) FinalApprove(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req signOffRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	result, err := h.svc.FinalApprove(c.Request.Context(), approval.FinalApproveInput{
		RequestID: id,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(result))
}

// Start handles POST /requests/:id/start.
func (h *ApprovalHandler) Start(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req startRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		var err error
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid startDate, want YYYY-MM-DD")
			return
		}
	}

	result, err := h.svc.Start(c.Request.Context(), approval.StartInput{
		RequestID: id,
		StartDate: startDate,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(result))
}

// Complete handles POST /requests/:id/complete.
func (h *ApprovalHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.svc.Complete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(result))
}

// Get handles GET /requests/:id.
func (h *ApprovalHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, err := h.svc.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(req))
}

// List handles GET /requests?status=&departmentId=&limit=&offset=.
func (h *ApprovalHandler) List(c *gin.Context) {
	var filter request.Filter

	if v := c.Query("status"); v != "" {
		status := domain.RequestStatus(v)
		if !status.IsValid() {
			writeError(c, http.StatusBadRequest, "BAD_REQUEST", "unknown status "+v)
			return
		}
		filter.Status = &status
	}
	if v := c.Query("departmentId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid departmentId")
			return
		}
		filter.DepartmentID = &id
	}
	filter.Limit = intQuery(c, "limit", 0)
	filter.Offset = intQuery(c, "offset", 0)

	requests, err := h.svc.ListRequests(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items := make([]requestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, toRequestResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"requests": items})
}

func toDecideResponse(result *approval.DecideResult) decideResponse {
	resp := decideResponse{Request: toRequestResponse(result.Request)}
	if result.Assignment != nil {
		a := toAssignmentResponse(result.Assignment)
		resp.Assignment = &a
	}
	if result.Warning != nil {
		resp.Warning = "NO_MENTOR_AVAILABLE"
	}
	return resp
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
