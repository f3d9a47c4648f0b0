package v1

import (
	"fmt"
	"strings"

	"fleetmeter/internal/server/api/response"
	"fleetmeter/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// saveReport handles an agent pushing its latest telemetry report
func (api *API) saveReport(c *gin.Context) {
	resp := response.New(c, api.logger)

	var report types.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		api.logger.Error("Invalid report payload",
			zap.Error(err),
			zap.String("client_ip", c.ClientIP()))
		resp.BadRequest(fmt.Errorf("invalid report payload: %v", err))
		return
	}

	// The id is the only mandatory field; every telemetry section is
	// agent-controlled and accepted as-is.
	if err := api.validator.Struct(&report); err != nil {
		resp.BadRequest(err)
		return
	}

	if err := api.service.IngestReport(report); err != nil {
		resp.BadRequest(err)
		return
	}

	resp.Success(gin.H{"status": "ok"})
}

// listReports handles retrieving the current snapshot of all live
// entries, annotated with offline flags and cosmetic renames
func (api *API) listReports(c *gin.Context) {
	resp := response.New(c, api.logger)
	resp.Success(api.service.ListReports())
}

// mergeReports handles the aggregated cross-agent view. An optional
// comma-separated ids parameter restricts the aggregation scope.
func (api *API) mergeReports(c *gin.Context) {
	resp := response.New(c, api.logger)

	var ids []string
	if raw := c.Query("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	summary := api.service.MergeReports(ids)
	if summary == nil {
		// No fresh data qualified; a defined empty result, not an error.
		resp.Success(gin.H{})
		return
	}

	resp.Success(summary)
}
