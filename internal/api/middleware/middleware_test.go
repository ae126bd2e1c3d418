package middleware_test

import (
	"net/http"
	"testing"

	"shoot-planner-backend/internal/api/middleware"
	"shoot-planner-backend/internal/config"
	"shoot-planner-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pingHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func setupCORSRouter(cfg *config.Config) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID())
	httpSuite.Router.Use(middleware.CORS(cfg))
	httpSuite.Router.GET("/ping", pingHandler)
	return httpSuite
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID())
	httpSuite.Router.GET("/ping", pingHandler)

	recorder := httpSuite.MakeRequest("GET", "/ping", nil)

	got := recorder.Header().Get(middleware.RequestIDKey)
	assert.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID())
	httpSuite.Router.GET("/ping", pingHandler)

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/ping", nil, map[string]string{
		middleware.RequestIDKey: "caller-supplied-id",
	})

	assert.Equal(t, "caller-supplied-id", recorder.Header().Get(middleware.RequestIDKey))
}

func TestCORS_AllowsListedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	httpSuite := setupCORSRouter(cfg)

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/ping", nil, map[string]string{
		"Origin": "http://localhost:3000",
	})

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectsUnlistedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	httpSuite := setupCORSRouter(cfg)

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/ping", nil, map[string]string{
		"Origin": "http://evil.example",
	})

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	httpSuite := setupCORSRouter(cfg)

	recorder := httpSuite.MakeRequestWithHeaders("OPTIONS", "/ping", nil, map[string]string{
		"Origin": "http://localhost:3000",
	})

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestCORS_EmptyAllowlistPermitsAnyOrigin(t *testing.T) {
	cfg := &config.Config{}
	httpSuite := setupCORSRouter(cfg)

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/ping", nil, map[string]string{
		"Origin": "http://anywhere.example",
	})

	assert.Equal(t, "http://anywhere.example", recorder.Header().Get("Access-Control-Allow-Origin"))
}
