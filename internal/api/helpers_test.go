package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hospistay/backend/internal/api"
	"github.com/hospistay/backend/internal/router"
	"github.com/hospistay/backend/internal/service"
	"github.com/hospistay/backend/internal/testhelpers"
	"github.com/hospistay/backend/internal/types"
)

type apiFixture struct {
	engine *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	intake *testhelpers.FakeIntakeStore
}

func setupAPI(t *testing.T) *apiFixture {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)

	authSvc := service.NewAuthService(db, "test-secret")
	intake := testhelpers.NewFakeIntakeStore()
	predictionSvc := service.NewPredictionService(
		db,
		service.NewEstimator(func() int { return 0 }),
		&testhelpers.StubAdvisoryProvider{},
		intake,
		nil,
	)

	engine := router.SetupRouter(
		api.NewAuthHandler(authSvc),
		api.NewPredictionHandler(predictionSvc),
		authSvc,
		nil,
		db,
	)

	return &apiFixture{engine: engine, db: db, auth: authSvc, intake: intake}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token
func (f *apiFixture) registerUser(t *testing.T, email string) types.AuthResponse {
	t.Helper()

	w := f.do(t, http.MethodPost, "/api/v1/auth/register", "", types.RegisterRequest{
		Name:     "Test Patient",
		Email:    email,
		Age:      70,
		Contact:  "+15551234567",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func validIntake() types.Intake {
	return types.Intake{
		Age:              70,
		Severity:         "high",
		Comorbidities:    3,
		Temperature:      "98.6",
		BloodPressure:    "120/80",
		OxygenSaturation: "95",
	}
}
