package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/config"
	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/server/middleware"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries what the router needs beyond config.
type RouterDeps struct {
	Config   config.Config
	Sessions middleware.SessionVerifier
	Health   gin.HandlerFunc
	Handlers []RouteRegistrar
	Limiter  *middleware.RateLimiter
}

const chatRateGroup = "CHAT"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Sessions, deps.Config.RequireSession),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter:  deps.Limiter,
			GroupFor: rateGroupFor,
			Rules: map[string]middleware.RateLimitRule{
				chatRateGroup: middleware.PerMinute(deps.Config.ChatRatePerMinute),
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	health := deps.Health
	if health == nil {
		health = func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	}
	api.GET("/health", health)
	registerMeRoutes(api)
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && c.FullPath() == "/api/chatbot" {
		return chatRateGroup
	}
	return ""
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
