package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/nutrition"
	"github.com/snedea/meal-planner-app/internal/provider"
	"github.com/snedea/meal-planner-app/internal/testhelpers"
)

func newMealLogService(t *testing.T) (*MealLogService, *RecipeService, *gorm.DB) {
	db := testhelpers.NewTestDB(t)
	foods := NewFoodService(db, nil, provider.NewStaticProvider())
	recipes := NewRecipeService(db, foods)
	return NewMealLogService(db, recipes.Resolver()), recipes, db
}

func TestCreateLogFreezesFoodNutrition(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	chicken := testhelpers.CreateTestFood(t, db, "Chicken Breast", 100, "g", 165, 31, 0, 3.6)

	entry, err := svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		FoodID:     &chicken.ID,
		Quantity:   200,
		Unit:       "g",
		MealType:   models.MealLunch,
		LoggedDate: "2026-08-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 330.0, entry.Calories)
	assert.Equal(t, 62.0, entry.ProteinG)
	assert.Equal(t, 7.2, entry.FatsG)

	// Catalog edits never change stored entries.
	require.NoError(t, db.Exec("UPDATE nutrition_infos SET calories = 999 WHERE food_id = ?", chicken.ID).Error)

	logs, err := svc.ListLogs(context.Background(), user.ID, "2026-08-15")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 330.0, logs[0].Calories)
}

func TestCreateLogRecipeServings(t *testing.T) {
	svc, recipes, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	a := testhelpers.CreateTestFood(t, db, "Food A", 100, "g", 100, 10, 20, 5)
	b := testhelpers.CreateTestFood(t, db, "Food B", 100, "g", 300, 30, 60, 15)

	recipe, err := recipes.CreateRecipe(context.Background(), user.ID, RecipeParams{
		Name:     "Meal Prep",
		Servings: 2,
		Ingredients: []IngredientParams{
			{FoodID: a.ID, Quantity: 100, Unit: "g"},
			{FoodID: b.ID, Quantity: 100, Unit: "g"},
		},
	})
	require.NoError(t, err)

	// Quantity on a recipe log is a number of servings: 1.5 servings of a
	// 2-serving, 400 kcal recipe is 300 kcal.
	entry, err := svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		RecipeID:   &recipe.ID,
		Quantity:   1.5,
		Unit:       "serving",
		MealType:   models.MealDinner,
		LoggedDate: "2026-08-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, entry.Calories)
	assert.Equal(t, 30.0, entry.ProteinG)
}

func TestCreateLogValidation(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")
	foodID := uuid.New()

	_, err := svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		FoodID: &foodID, Quantity: 100, Unit: "g", MealType: "brunch", LoggedDate: "2026-08-15",
	})
	assert.ErrorIs(t, err, ErrInvalidMealType)

	_, err = svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		FoodID: &foodID, Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "15/08/2026",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "2026-08-15",
	})
	assert.ErrorIs(t, err, nutrition.ErrInvalidLogTarget)

	_, err = svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		FoodID: &foodID, Quantity: 0, Unit: "g", MealType: models.MealLunch, LoggedDate: "2026-08-15",
	})
	assert.ErrorIs(t, err, nutrition.ErrInvalidQuantity)

	_, err = svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		FoodID: &foodID, Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "2026-08-15",
	})
	assert.ErrorIs(t, err, nutrition.ErrFoodNotFound)
}

func TestDeleteLogOwnership(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")
	chicken := testhelpers.CreateTestFood(t, db, "Chicken Breast", 100, "g", 165, 31, 0, 3.6)

	entry, err := svc.CreateLog(context.Background(), user.ID, CreateLogParams{
		FoodID: &chicken.ID, Quantity: 100, Unit: "g", MealType: models.MealLunch, LoggedDate: "2026-08-15",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteLog(context.Background(), entry.ID, uuid.New()), ErrNotAuthorized)
	assert.NoError(t, svc.DeleteLog(context.Background(), entry.ID, user.ID))
	assert.ErrorIs(t, svc.DeleteLog(context.Background(), entry.ID, user.ID), gorm.ErrRecordNotFound)
}

func TestDailySummary(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	calTarget := 2000.0
	proteinTarget := 150.0
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"daily_calorie_target": calTarget,
		"protein_target_g":     proteinTarget,
	}).Error)

	food := testhelpers.CreateTestFood(t, db, "Oatmeal", 50, "g", 190, 7, 34, 3.5)

	for _, meal := range []string{models.MealBreakfast, models.MealSnack} {
		_, err := svc.CreateLog(context.Background(), user.ID, CreateLogParams{
			FoodID: &food.ID, Quantity: 50, Unit: "g", MealType: meal, LoggedDate: "2026-08-15",
		})
		require.NoError(t, err)
	}

	_, err := svc.CreateWaterLog(context.Background(), user.ID, 500, "2026-08-15", nil)
	require.NoError(t, err)
	_, err = svc.CreateWaterLog(context.Background(), user.ID, 250, "2026-08-15", nil)
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background(), user.ID, "2026-08-15")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-15", summary.Date)
	assert.Equal(t, 380.0, summary.Totals.Calories)
	assert.Equal(t, 14.0, summary.Totals.ProteinG)

	require.NotNil(t, summary.Remaining.Calories)
	assert.Equal(t, 1620.0, *summary.Remaining.Calories)
	require.NotNil(t, summary.Remaining.ProteinG)
	assert.Equal(t, 136.0, *summary.Remaining.ProteinG)
	assert.Nil(t, summary.Remaining.CarbsG)
	assert.Nil(t, summary.Remaining.FatsG)

	assert.Equal(t, 750, summary.WaterTotalMl)
	assert.Equal(t, 2000, summary.WaterTargetMl)
}

func TestDailySummaryEmptyDay(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	summary, err := svc.Summary(context.Background(), user.ID, "2026-08-15")
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.Totals.Calories)
	assert.Nil(t, summary.Remaining.Calories)
	assert.Equal(t, 0, summary.WaterTotalMl)
}

func TestWaterLogValidation(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	_, err := svc.CreateWaterLog(context.Background(), user.ID, 0, "2026-08-15", nil)
	assert.ErrorIs(t, err, ErrInvalidWaterAmount)

	_, err = svc.CreateWaterLog(context.Background(), user.ID, 500, "bad-date", nil)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.CreateWaterLog(context.Background(), user.ID, 500, "2026-08-15", nil)
	assert.NoError(t, err)

	logs, err := svc.ListWaterLogs(context.Background(), user.ID, "2026-08-15")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestFavorites(t *testing.T) {
	svc, _, db := newMealLogService(t)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")
	food := testhelpers.CreateTestFood(t, db, "Banana", 118, "g", 105, 1.3, 27, 0.4)

	_, err := svc.AddFavorite(context.Background(), user.ID, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidFavoriteTarget)

	recipeID := uuid.New()
	_, err = svc.AddFavorite(context.Background(), user.ID, &food.ID, &recipeID)
	assert.ErrorIs(t, err, ErrInvalidFavoriteTarget)

	fav, err := svc.AddFavorite(context.Background(), user.ID, &food.ID, nil)
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, food.ID, *favorites[0].FoodID)

	assert.ErrorIs(t, svc.RemoveFavorite(context.Background(), fav.ID, uuid.New()), ErrNotAuthorized)
	assert.NoError(t, svc.RemoveFavorite(context.Background(), fav.ID, user.ID))
}
