// File: internal/stats/handler.go
package stats

import (
	"blood_donation_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for the stats handler.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new stats handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the dashboard stats route.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMW gin.HandlerFunc) {
	router.GET("/dashboard/stats", authMW, h.getStats)
}

func (h *Handler) getStats(c *gin.Context) {
	dashboard, err := h.service.ComputeStats(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Dashboard stats computed successfully.", dashboard)
}
