package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/internal/domain"
)

// errorResponse is the uniform error envelope for all endpoints.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	Fields       []fieldError `json:"fields,omitempty"`
	CandidateIDs []string     `json:"candidateIds,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// respondError maps domain errors to HTTP statuses. Anything unrecognized
// is logged and reported as a 500 without leaking internals.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		transitionErr *domain.TransitionError
		candStateErr  *domain.CandidateStateError
	)

	switch {
	case errors.As(err, &validationErr):
		fields := make([]fieldError, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "VALIDATION",
			Message: validationErr.Error(),
			Fields:  fields,
		}})
	case errors.As(err, &transitionErr):
		writeError(c, http.StatusConflict, "INVALID_TRANSITION", transitionErr.Error())
	case errors.As(err, &candStateErr):
		ids := make([]string, 0, len(candStateErr.CandidateIDs))
		for _, id := range candStateErr.CandidateIDs {
			ids = append(ids, id.String())
		}
		c.JSON(http.StatusConflict, errorResponse{Error: errorBody{
			Code:         "CANDIDATE_NOT_FORWARDABLE",
			Message:      candStateErr.Error(),
			CandidateIDs: ids,
		}})
	case errors.Is(err, domain.ErrAlreadyDecided):
		writeError(c, http.StatusConflict, "ALREADY_DECIDED", err.Error())
	case errors.Is(err, domain.ErrInvalidSubset):
		writeError(c, http.StatusBadRequest, "NOT_IN_BATCH", err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(c, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(c, http.StatusConflict, "ALREADY_EXISTS", "already exists")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, domain.ErrPrecondition):
		writeError(c, http.StatusConflict, "PRECONDITION_FAILED", err.Error())
	case errors.Is(err, domain.ErrConcurrentModification):
		writeError(c, http.StatusConflict, "CONCURRENT_MODIFICATION", "the record was modified concurrently, retry")
	default:
		log.ErrorContext(c.Request.Context(), "internal error", slog.String("error", err.Error()))
		writeError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// bindOptionalJSON decodes the body into dst, treating an absent or empty
// body as empty input.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(dst)
}

// parseIDParam parses a UUID path parameter; on failure it writes a 400
// and returns false.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid "+name+" path parameter")
		return uuid.Nil, false
	}
	return id, true
}
