// File: internal/user/handler.go
package user

import (
	"errors"

	"blood_donation_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for user operations.
// It takes the auth middleware function as a parameter.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMW gin.HandlerFunc) {
	router.POST("/users", h.createUser)
	router.GET("/users", authMW, h.listUsers)

	// Public lookup of a user record (including role) by email. Kept
	// unauthenticated to preserve the original API contract.
	router.GET("/users/role/:email", h.getUserByEmail)

	router.PATCH("/update/user/status", authMW, h.updateUserStatus)
	router.PATCH("/update/user/role", authMW, h.updateUserRole)
}

func (h *Handler) createUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("User registration: Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	id, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "User registered successfully.", gin.H{"insertedId": id.Hex()})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Users retrieved successfully.", users)
}

func (h *Handler) getUserByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Email parameter is required."))
		return
	}

	usr, err := h.service.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Absent records read as an empty body, not a 404.
			common.RespondOK(c, "User not found.", nil)
			return
		}
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "User retrieved successfully.", usr)
}

func (h *Handler) updateUserStatus(c *gin.Context) {
	email := c.Query("email")
	status := c.Query("status")
	if email == "" || status == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Both 'email' and 'status' query parameters are required."))
		return
	}

	ack, err := h.service.UpdateUserStatus(c.Request.Context(), email, status)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "User status updated successfully.", ack)
}

func (h *Handler) updateUserRole(c *gin.Context) {
	email := c.Query("email")
	role := c.Query("role")
	if email == "" || role == "" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Both 'email' and 'role' query parameters are required."))
		return
	}

	ack, err := h.service.UpdateUserRole(c.Request.Context(), email, role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "User role updated successfully.", ack)
}
