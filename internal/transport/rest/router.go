package rest

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/internhub/intake-backend/internal/config"
	"github.com/internhub/intake-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	Log        *slog.Logger
	CORS       config.CORSConfig
	RateLimit  config.RateLimitConfig
	Limiter    *middleware.RateLimiter
	Health     *HealthHandler
	Approval   *ApprovalHandler
	Forwarding *ForwardingHandler
	Allocation *AllocationHandler
	Reports    *ReportHandler
	Audit      *AuditHandler
}

// NewRouter assembles the gin engine: middleware stack, health probes, and
// the versioned API routes.
func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(d.Log),
		middleware.RequestID(),
		middleware.Actor(),
		middleware.Logger(d.Log),
		middleware.CORS(d.CORS),
	)
	if d.Limiter != nil {
		router.Use(d.Limiter.Limit(d.RateLimit.PerMinute))
	}

	router.GET("/health", d.Health.Health)
	router.GET("/health/live", d.Health.Live)
	router.GET("/health/ready", d.Health.Ready)

	v1 := router.Group("/api/v1")
	{
		requests := v1.Group("/requests")
		{
			requests.POST("", d.Approval.Submit)
			requests.GET("", d.Approval.List)
			requests.GET("/:id", d.Approval.Get)
			requests.POST("/:id/review", d.Approval.BeginReview)
			requests.POST("/:id/decision", d.Approval.Decide)
			requests.POST("/:id/sign-off", d.Approval.FinalApprove)
			requests.POST("/:id/mentor", d.Allocation.Assign)
			requests.POST("/:id/start", d.Approval.Start)
			requests.POST("/:id/complete", d.Approval.Complete)
		}

		batches := v1.Group("/batches")
		{
			batches.POST("", d.Forwarding.Forward)
			batches.GET("/:id", d.Forwarding.Get)
			batches.POST("/:id/decisions", d.Forwarding.DecideSubset)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.POST("/:id/reports", d.Reports.File)
			assignments.GET("/:id/reports", d.Reports.List)
		}

		v1.GET("/audit/:entityType/:id", d.Audit.ListByEntity)
	}

	return router
}
