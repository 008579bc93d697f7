package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reventhtv/careerscope-AI/internal/admin"
	"github.com/reventhtv/careerscope-AI/internal/analyses"
	"github.com/reventhtv/careerscope-AI/internal/courses"
	"github.com/reventhtv/careerscope-AI/internal/feedback"
	"github.com/reventhtv/careerscope-AI/internal/shared/config"
	"github.com/reventhtv/careerscope-AI/internal/shared/metrics"
	"github.com/reventhtv/careerscope-AI/internal/shared/server/middleware"
	"github.com/reventhtv/careerscope-AI/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	FeedbackHandler *feedback.Handler
	CourseHandler   *courses.Handler
	AdminHandler    *admin.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.GuestIdentity(),
	)

	// Uploads are the expensive path; everything else rides the default.
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 0.2, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/analyses" {
				return "ANALYZE"
			}
			return ""
		},
	}))

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.AnalysisHandler.RegisterRoutes(api)
	deps.FeedbackHandler.RegisterRoutes(api)
	deps.CourseHandler.RegisterRoutes(api)
	deps.AdminHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
