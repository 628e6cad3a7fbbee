// File: internal/donation/handler.go
package donation

import (
	"errors"

	"blood_donation_backend/internal/common"
	"blood_donation_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for donation request handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new donation request handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for donation request operations.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMW gin.HandlerFunc) {
	requestGroup := router.Group("/donation-requests")
	requestGroup.Use(authMW)
	{
		requestGroup.POST("", h.createRequest)
		requestGroup.GET("", h.listMyRequests)
		requestGroup.GET("/:id", h.getRequestByID)
		requestGroup.PATCH("/:id", h.updateRequest)
		requestGroup.DELETE("/:id", h.deleteRequest)
	}

	// Public: finding who needs blood must not require an account.
	router.GET("/search-request", h.searchRequests)
}

func (h *Handler) createRequest(c *gin.Context) {
	principal := middleware.GetPrincipalEmail(c)
	if principal == "" {
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create donation request: Invalid request body", zap.Error(err), zap.String("principal", principal))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	id, err := h.service.CreateRequest(c.Request.Context(), principal, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Donation request created successfully.", gin.H{"insertedId": id.Hex()})
}

func (h *Handler) listMyRequests(c *gin.Context) {
	principal := middleware.GetPrincipalEmail(c)
	if principal == "" {
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	size, page := common.GetPageParams(c)
	query := ListQuery{
		Size:   size,
		Page:   page,
		Status: c.Query("status"),
	}

	result, err := h.service.ListMyRequests(c.Request.Context(), principal, query)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Donation requests retrieved successfully.", result)
}

func (h *Handler) getRequestByID(c *gin.Context) {
	request, err := h.service.GetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Absent records read as an empty body, not a 404.
			common.RespondOK(c, "Donation request not found.", nil)
			return
		}
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Donation request retrieved successfully.", request)
}

func (h *Handler) updateRequest(c *gin.Context) {
	principal := middleware.GetPrincipalEmail(c)
	if principal == "" {
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	var req UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Update donation request: Invalid request body", zap.Error(err), zap.String("principal", principal))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	ack, err := h.service.UpdateRequest(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Donation request updated successfully.", ack)
}

func (h *Handler) deleteRequest(c *gin.Context) {
	principal := middleware.GetPrincipalEmail(c)
	if principal == "" {
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	ack, err := h.service.DeleteRequest(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Donation request deleted successfully.", ack)
}

func (h *Handler) searchRequests(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("Search donation requests: Invalid query parameters", zap.Error(err))
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("The bloodGroup query parameter is required."))
		return
	}

	requests, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Donation requests retrieved successfully.", requests)
}
