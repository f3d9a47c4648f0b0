package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorBody represents the structured error payload for failed requests
type ErrorBody struct {
	Code      int       `json:"code"`
	Error     string    `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler provides methods for standard API responses
type Handler struct {
	ctx    *gin.Context
	logger *zap.Logger
}

// New creates new response handler
func New(c *gin.Context, logger *zap.Logger) *Handler {
	return &Handler{
		ctx:    c,
		logger: logger,
	}
}

// Success writes the domain document as-is. Agents and dashboards speak
// the raw wire format, so success bodies carry no envelope.
func (h *Handler) Success(data any) {
	h.ctx.JSON(http.StatusOK, data)
}

// Error sends an error response
func (h *Handler) Error(status int, err error) {
	h.logger.Debug("request failed",
		zap.Int("status", status),
		zap.String("request_id", h.ctx.GetString("request_id")),
		zap.Error(err))

	h.ctx.JSON(status, ErrorBody{
		Code:      status,
		Error:     err.Error(),
		RequestID: h.ctx.GetString("request_id"),
		Timestamp: time.Now(),
	})
}

// BadRequest sends bad request error response
func (h *Handler) BadRequest(err error) {
	h.Error(http.StatusBadRequest, err)
}

// NotFound sends not found error response
func (h *Handler) NotFound(err error) {
	h.Error(http.StatusNotFound, err)
}

// InternalError sends an internal server error response
func (h *Handler) InternalError(err error) {
	h.Error(http.StatusInternalServerError, err)
}
