// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"strings"

	"blood_donation_backend/internal/common"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AuthorizationHeader is the header name for the authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// PrincipalEmailKey is the context key for the verified principal email.
	// Handlers must take "who is calling" from here and never from the body.
	PrincipalEmailKey = "principalEmail"
)

// TokenVerifier validates a bearer credential and yields the verified claims.
// Satisfied by *firebase.Service.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware creates a Gin middleware that gates protected routes behind
// Firebase ID token verification. On success the verified email is attached
// to the request context; on any failure the handler body never runs.
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Debug("Authorization header missing")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header is required."))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
			logger.Debug("Authorization header format invalid", zap.String("header", authHeader))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired credential."))
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			logger.Warn("Verified token carries no email claim", zap.String("uid", token.UID))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Credential carries no email identity."))
			return
		}

		c.Set(PrincipalEmailKey, email)

		logger.Debug("Principal authenticated successfully",
			zap.String("email", email),
			zap.String("uid", token.UID),
		)

		c.Next()
	}
}

// GetPrincipalEmail retrieves the verified principal email from the Gin
// context. Returns "" when the auth middleware did not run.
func GetPrincipalEmail(c *gin.Context) string {
	val, exists := c.Get(PrincipalEmailKey)
	if !exists {
		return ""
	}
	email, ok := val.(string)
	if !ok {
		return ""
	}
	return email
}
