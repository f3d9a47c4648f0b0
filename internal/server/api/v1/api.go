package v1

import (
	"fleetmeter/internal/server/api/response"
	"fleetmeter/internal/server/service"
	"fleetmeter/internal/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// API represents the API
type API struct {
	service   *service.Service
	validator *validator.Validator
	logger    *zap.Logger
}

// NewAPI creates new API
func NewAPI(svc *service.Service, logger *zap.Logger) *API {
	return &API{
		service:   svc,
		validator: validator.New(),
		logger:    logger,
	}
}

// RegisterRoutes registers API routes. Paths match the wire protocol the
// deployed agents already speak, so they live at the root rather than
// under a version prefix.
func (api *API) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/report", api.saveReport)
	r.GET("/all", api.listReports)
	r.GET("/merge", api.mergeReports)
	r.GET("/health", api.healthCheck)
}

// healthCheck handles health check requests
func (api *API) healthCheck(c *gin.Context) {
	resp := response.New(c, api.logger)
	resp.Success(api.service.HealthCheck())
}
