package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internhub/intake-backend/pkg/ctxutil"
)

// Actor extracts the acting staff member's ID from the X-Actor-Id header
// and stores it in the request context. Requests without the header pass
// through anonymously; operations that require an actor reject them at the
// service layer. A malformed header is rejected immediately.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Actor-Id")
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"code": "BAD_REQUEST", "message": "invalid X-Actor-Id header"},
			})
			return
		}

		ctx := ctxutil.WithActorID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
