package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/service"
	"github.com/snedea/meal-planner-app/internal/testhelpers"
)

func TestCreateLogEndpoint(t *testing.T) {
	env := newTestEnv(t)

	food := testhelpers.CreateTestFood(t, env.db, "Chicken Breast", 100, "g", 165, 31, 0, 3.6)

	w := env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		FoodID:     &food.ID,
		Quantity:   200,
		Unit:       "g",
		MealType:   models.MealLunch,
		LoggedDate: "2026-08-15",
	})
	statusIs(t, w, http.StatusCreated)

	var entry models.MealLog
	decodeBody(t, w, &entry)
	assert.Equal(t, 330.0, entry.Calories)
	assert.Equal(t, 62.0, entry.ProteinG)

	w = env.request(t, http.MethodGet, "/api/v1/logs?date=2026-08-15", nil)
	statusIs(t, w, http.StatusOK)

	var list struct {
		Logs []models.MealLog `json:"logs"`
	}
	decodeBody(t, w, &list)
	assert.Len(t, list.Logs, 1)
}

func TestCreateLogEndpointValidation(t *testing.T) {
	env := newTestEnv(t)
	foodID := uuid.New()

	// Unknown food
	statusIs(t, env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		FoodID: &foodID, Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "2026-08-15",
	}), http.StatusNotFound)

	// Neither food nor recipe
	statusIs(t, env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "2026-08-15",
	}), http.StatusBadRequest)

	// Bad meal type
	statusIs(t, env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		FoodID: &foodID, Quantity: 100, Unit: "g", MealType: "elevenses", LoggedDate: "2026-08-15",
	}), http.StatusBadRequest)

	// Bad date
	statusIs(t, env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		FoodID: &foodID, Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "soon",
	}), http.StatusBadRequest)
}

func TestDeleteLogEndpoint(t *testing.T) {
	env := newTestEnv(t)

	food := testhelpers.CreateTestFood(t, env.db, "Banana", 118, "g", 105, 1.3, 27, 0.4)

	w := env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		FoodID: &food.ID, Quantity: 118, Unit: "g", MealType: models.MealSnack, LoggedDate: "2026-08-15",
	})
	statusIs(t, w, http.StatusCreated)
	var entry models.MealLog
	decodeBody(t, w, &entry)

	statusIs(t, env.request(t, http.MethodDelete, "/api/v1/logs/"+entry.ID.String(), nil), http.StatusOK)
	statusIs(t, env.request(t, http.MethodDelete, "/api/v1/logs/"+entry.ID.String(), nil), http.StatusNotFound)
}

func TestSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)

	calories := 2000.0
	require.NoError(t, env.db.Model(env.user).Update("daily_calorie_target", &calories).Error)

	food := testhelpers.CreateTestFood(t, env.db, "Oatmeal", 50, "g", 190, 7, 34, 3.5)
	statusIs(t, env.request(t, http.MethodPost, "/api/v1/logs", CreateLogRequest{
		FoodID: &food.ID, Quantity: 100, Unit: "g", MealType: models.MealBreakfast, LoggedDate: "2026-08-15",
	}), http.StatusCreated)

	statusIs(t, env.request(t, http.MethodPost, "/api/v1/water-logs", WaterLogRequest{
		AmountMl: 500, LoggedDate: "2026-08-15",
	}), http.StatusCreated)

	w := env.request(t, http.MethodGet, "/api/v1/logs/summary?date=2026-08-15", nil)
	statusIs(t, w, http.StatusOK)

	var summary service.DailySummary
	decodeBody(t, w, &summary)
	assert.Equal(t, "2026-08-15", summary.Date)
	assert.Equal(t, 380.0, summary.Totals.Calories)
	require.NotNil(t, summary.Remaining.Calories)
	assert.Equal(t, 1620.0, *summary.Remaining.Calories)
	assert.Nil(t, summary.Remaining.ProteinG)
	assert.Equal(t, 500, summary.WaterTotalMl)
}

func TestFavoriteEndpoints(t *testing.T) {
	env := newTestEnv(t)

	food := testhelpers.CreateTestFood(t, env.db, "Salmon", 100, "g", 208, 20, 0, 13)

	w := env.request(t, http.MethodPost, "/api/v1/favorites", FavoriteRequest{FoodID: &food.ID})
	statusIs(t, w, http.StatusCreated)
	var fav models.Favorite
	decodeBody(t, w, &fav)

	statusIs(t, env.request(t, http.MethodPost, "/api/v1/favorites", FavoriteRequest{}), http.StatusBadRequest)

	w = env.request(t, http.MethodGet, "/api/v1/favorites", nil)
	statusIs(t, w, http.StatusOK)
	var list struct {
		Favorites []models.Favorite `json:"favorites"`
	}
	decodeBody(t, w, &list)
	assert.Len(t, list.Favorites, 1)

	statusIs(t, env.request(t, http.MethodDelete, "/api/v1/favorites/"+fav.ID.String(), nil), http.StatusOK)
	statusIs(t, env.request(t, http.MethodDelete, "/api/v1/favorites/"+fav.ID.String(), nil), http.StatusNotFound)
}
