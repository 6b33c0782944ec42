package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"thematic-analysis-backend/internal/api/routes"
	"thematic-analysis-backend/internal/auth"
	"thematic-analysis-backend/internal/config"
	"thematic-analysis-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RoutesTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(suite.T(), err)

	authService, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "test-secret"})
	require.NoError(suite.T(), err)

	ctrl := gomock.NewController(suite.T())
	cfg := &config.Config{Environment: "development", AllowedOrigins: []string{"http://localhost:3000"}}

	suite.router = routes.SetupRoutes(cfg, routes.Dependencies{
		DB:        db,
		Generator: mocks.NewMockClient(ctrl),
		Auth:      authService,
	})
}

func (suite *RoutesTestSuite) serve(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func (suite *RoutesTestSuite) TestAPIRequiresAuthentication() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/code-assignments"},
		{http.MethodPost, "/api/v1/code-assignments/submit"},
		{http.MethodPost, "/api/v1/code-assignments/review"},
		{http.MethodPost, "/api/v1/code-assignments/bulk-review"},
		{http.MethodGet, "/api/v1/codebooks/6f1c1f3e-2b7a-4a53-9a53-1d7e0b1c2d3e/assignments"},
		{http.MethodGet, "/api/v1/projects/6f1c1f3e-2b7a-4a53-9a53-1d7e0b1c2d3e/comprehensive"},
		{http.MethodPost, "/api/v1/ai/generate-themes"},
		{http.MethodPost, "/api/v1/ai/generate-report"},
	}

	for _, p := range paths {
		w := suite.serve(p.method, p.path)
		assert.Equal(suite.T(), http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func (suite *RoutesTestSuite) TestLiveAndMetrics() {
	assert.Equal(suite.T(), http.StatusOK, suite.serve(http.MethodGet, "/health/live").Code)

	w := suite.serve(http.MethodGet, "/metrics")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "thematic_http_request_duration_seconds")
}

func (suite *RoutesTestSuite) TestUnknownRoute() {
	w := suite.serve(http.MethodGet, "/api/v2/nothing")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Endpoint not found")
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
