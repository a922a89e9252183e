package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospistay/backend/internal/api"
	"github.com/hospistay/backend/internal/router"
	"github.com/hospistay/backend/internal/service"
	"github.com/hospistay/backend/internal/testhelpers"
)

func setupEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)

	authSvc := service.NewAuthService(db, "test-secret")
	predictionSvc := service.NewPredictionService(
		db,
		service.NewEstimator(nil),
		&testhelpers.StubAdvisoryProvider{},
		testhelpers.NewFakeIntakeStore(),
		nil,
	)

	return router.SetupRouter(
		api.NewAuthHandler(authSvc),
		api.NewPredictionHandler(predictionSvc),
		authSvc,
		nil,
		db,
	)
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUnknownRouteReturns404(t *testing.T) {
	engine := setupEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
