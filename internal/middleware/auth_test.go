package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubVerifier is a hand-written TokenVerifier for middleware tests.
type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return s.token, s.err
}

func newAuthTestRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()

	router := gin.New()
	router.GET("/protected", AuthMiddleware(verifier, logger), func(c *gin.Context) {
		c.String(http.StatusOK, GetPrincipalEmail(c))
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	validToken := &auth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "donor@example.com"},
	}

	tests := []struct {
		name       string
		verifier   TokenVerifier
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header is rejected",
			verifier:   &stubVerifier{token: validToken},
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme is rejected",
			verifier:   &stubVerifier{token: validToken},
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header is rejected",
			verifier:   &stubVerifier{token: validToken},
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "failed verification is rejected",
			verifier:   &stubVerifier{err: errors.New("token expired")},
			authHeader: "Bearer expired-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token without email claim is rejected",
			verifier: &stubVerifier{token: &auth.Token{
				UID:    "uid-2",
				Claims: map[string]interface{}{},
			}},
			authHeader: "Bearer anonymous-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token attaches the principal email",
			verifier:   &stubVerifier{token: validToken},
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
			wantBody:   "donor@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(tt.verifier)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(AuthorizationHeader, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGetPrincipalEmail_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetPrincipalEmail(c))
}
