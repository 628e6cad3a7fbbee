// File: internal/payment/handler.go
package payment

import (
	"errors"

	"blood_donation_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for payment handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new payment handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for payment operations. Both routes are
// public: donors are not required to hold an account.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/create-payment-checkout", h.createCheckout)
	router.POST("/success-payment", h.recordPayment)
}

func (h *Handler) createCheckout(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create checkout: Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	url, err := h.service.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Checkout session created.", gin.H{"url": url})
}

func (h *Handler) recordPayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("The session_id query parameter is required."))
		return
	}

	id, err := h.service.RecordPayment(c.Request.Context(), sessionID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Payment recorded successfully.", gin.H{"insertedId": id.Hex()})
}
