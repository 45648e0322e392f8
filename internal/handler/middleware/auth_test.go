//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/handler/middleware"
	"court-slot-engine/internal/pkg/cookie"
	"court-slot-engine/internal/pkg/jwt"
	"court-slot-engine/internal/usecase"
	"court-slot-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	jwt    *jwt.Service
	router *gin.Engine
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwt = jwt.NewService("unit-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt))

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	me := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	}
	s.router.GET("/me", auth.RequireAuth(), me)
	s.router.GET("/managed", auth.RequireAuth(), auth.RequireRole(user.RoleOwner, user.RoleAdmin), me)
	s.router.GET("/unguarded-role", auth.RequireRole(user.RoleAdmin), me)
}

func (s *AuthMiddlewareTestSuite) token(id uuid.UUID, role user.Role) string {
	token, err := s.jwt.GenerateToken(id, role)
	s.Require().NoError(err)
	return token
}

type meResponse struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

// =============================================================================
// TestRequireAuth
// =============================================================================

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer token sets the actor", func() {
		t := s.T()
		id := uuid.New()

		w := httptest.PerformRequest(t, s.router, http.MethodGet, "/me", nil, s.token(id, user.RoleCustomer))

		var got meResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "customer", got.Role)
	})

	s.Run("access token cookie is accepted", func() {
		t := s.T()
		id := uuid.New()
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token(id, user.RoleOwner)}}

		w := httptest.PerformRequestWithCookies(t, s.router, http.MethodGet, "/me", nil, cookies, "")

		var got meResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id, got.ID)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("token signed with another secret", func() {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("expired token", func() {
		expired := jwt.NewService("unit-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), user.RoleCustomer)
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestRequireRole
// =============================================================================

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	cases := []struct {
		name       string
		role       user.Role
		expectCode int
	}{
		{name: "owner allowed", role: user.RoleOwner, expectCode: http.StatusOK},
		{name: "admin allowed", role: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "customer forbidden", role: user.RoleCustomer, expectCode: http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/managed", nil, s.token(uuid.New(), tc.role))
			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, nil)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "Insufficient permissions")
		})
	}

	s.Run("role check without authentication is a server error", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unguarded-role", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
