package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/provider"
	"github.com/snedea/meal-planner-app/internal/service"
	"github.com/snedea/meal-planner-app/internal/testhelpers"
	"github.com/snedea/meal-planner-app/internal/types"
)

// stubValidator accepts any bearer token and returns fixed claims.
type stubValidator struct {
	claims *types.TokenClaims
}

func (v *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	return v.claims, nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	user   *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.NewTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db)
	foodService := service.NewFoodService(db, nil, provider.NewStaticProvider())
	recipeService := service.NewRecipeService(db, foodService)
	mealLogService := service.NewMealLogService(db, recipeService.Resolver())

	validator := &stubValidator{claims: &types.TokenClaims{UserID: user.ID, Email: user.Email}}

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewProfileHandler(profileService).RegisterRoutes(v1, validator)
	NewFoodHandler(foodService).RegisterRoutes(v1, validator, nil)
	NewRecipeHandler(recipeService).RegisterRoutes(v1, validator)
	NewMealLogHandler(mealLogService).RegisterRoutes(v1, validator, nil)

	return &testEnv{router: router, db: db, user: user}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func statusIs(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
