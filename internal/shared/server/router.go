package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-relay/internal/analyses"
	"resume-relay/internal/services/health"
	"resume-relay/internal/shared/config"
	"resume-relay/internal/shared/metrics"
	"resume-relay/internal/shared/server/middleware"
	"resume-relay/internal/shared/server/respond"
	"resume-relay/internal/translations"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	AnalysisHandler    *analyses.Handler
	TranslationHandler *translations.Handler
	Limiter            *middleware.RateLimiter
}

// providerRoutes are rate limited as the LLM group.
var providerRoutes = map[string]struct{}{
	"/api/analyzeResume":     {},
	"/api/analyzeResumeFile": {},
	"/api/languages":         {},
	"/api/labels/:lang":      {},
	"/api/translateResume":   {},
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
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: deps.Limiter,
			GroupFor: func(c *gin.Context) string {
				if _, ok := providerRoutes[c.FullPath()]; ok {
					return middleware.LLMRateLimitGroup
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				middleware.LLMRateLimitGroup: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(deps.Config.LLMProvider, deps.Config.LLMModel)
	}

	r.GET("/metrics", metrics.Handler())
	r.GET("/.well-known/appspecific/com.chrome.devtools.json", func(c *gin.Context) {
		respond.OK(c, gin.H{})
	})

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.TranslationHandler != nil {
		deps.TranslationHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
