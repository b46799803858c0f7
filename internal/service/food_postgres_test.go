package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/snedea/meal-planner-app/internal/database"
	"github.com/snedea/meal-planner-app/internal/provider"
	"github.com/snedea/meal-planner-app/internal/testhelpers"
)

// Exercises the pgvector-ranked search path, which SQLite cannot cover.
func TestSearchFoodsPostgres(t *testing.T) {
	db := testhelpers.NewPostgresTestDB(t)
	require.NoError(t, database.AutoMigrate(db))

	svc := NewFoodService(db, nil, provider.NewStaticProvider())

	for _, name := range []string{"Chicken Breast", "Chicken Thigh"} {
		_, err := svc.CreateCustomFood(context.Background(), uuid.New(), CreateFoodParams{
			Name: name,
			Nutrition: NutritionParams{
				ServingSize: 100,
				ServingUnit: "g",
				Calories:    165,
				ProteinG:    31,
			},
		})
		require.NoError(t, err)
	}

	results, err := svc.SearchFoods(context.Background(), "chicken", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, food := range results {
		require.Contains(t, food.Name, "Chicken")
	}
}
