package api

import (
	"errors"
	"net/http"

	"fleetmeter/internal/server/api/middleware"
	"fleetmeter/internal/server/api/response"
	av1 "fleetmeter/internal/server/api/v1"
	"fleetmeter/internal/server/config"
	"fleetmeter/internal/server/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router handles all routing logic
type Router struct {
	engine *gin.Engine
	config *config.Config
	logger *zap.Logger
}

// NewRouter creates and configures a new router
func NewRouter(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Router {
	// Set gin mode based on config
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine: gin.New(),
		config: cfg,
		logger: logger,
	}

	// Initialize middleware
	r.setupMiddleware()

	// Initialize routes
	r.setupRoutes(svc)

	return r
}

// Handler returns the HTTP handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// setupMiddleware configures all middleware
func (r *Router) setupMiddleware() {
	m := middleware.New(r.config, r.logger)

	// Basic middleware
	r.engine.Use(m.RequestID())
	r.engine.Use(m.Logger())
	r.engine.Use(m.Recovery())

	// Security middleware
	r.engine.Use(m.Secure())

	// Every response carries CORS headers; the boundary is open by design.
	r.engine.Use(m.Cors())

	// Rate limiting if enabled
	if r.config.API.RateLimit.Enabled {
		r.engine.Use(m.RateLimit())
	}
}

// setupRoutes configures API routes
func (r *Router) setupRoutes(svc *service.Service) {
	api := av1.NewAPI(svc, r.logger)
	api.RegisterRoutes(r.engine.Group(""))

	// Unknown paths and methods get a structured not-found error.
	r.engine.NoRoute(func(c *gin.Context) {
		response.New(c, r.logger).NotFound(errors.New("not found"))
	})
}
