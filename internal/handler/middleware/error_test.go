//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"court-slot-engine/internal/handler/httperr"
	"court-slot-engine/internal/handler/middleware"
	"court-slot-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/public", func(c *gin.Context) {
		resp := httperr.NewResponse(http.StatusConflict, "Conflict", nil)
		_ = c.Error(gin.Error{Err: errors.New("taken"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Conflict")

	w = httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")

	w = httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
