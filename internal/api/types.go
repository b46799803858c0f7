package api

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// NutritionRequest is the per-serving nutrition payload on food creation.
type NutritionRequest struct {
	ServingSize          float64  `json:"serving_size" binding:"required,gt=0"`
	ServingUnit          string   `json:"serving_unit" binding:"required"`
	ServingsPerContainer *float64 `json:"servings_per_container"`

	Calories float64 `json:"calories" binding:"min=0"`
	ProteinG float64 `json:"protein_g" binding:"min=0"`
	CarbsG   float64 `json:"carbs_g" binding:"min=0"`
	FatsG    float64 `json:"fats_g" binding:"min=0"`

	FiberG        *float64 `json:"fiber_g"`
	SugarG        *float64 `json:"sugar_g"`
	SaturatedFatG *float64 `json:"saturated_fat_g"`
	TransFatG     *float64 `json:"trans_fat_g"`
	CholesterolMg *float64 `json:"cholesterol_mg"`
	SodiumMg      *float64 `json:"sodium_mg"`
}

type CreateFoodRequest struct {
	Name        string           `json:"name" binding:"required"`
	Brand       string           `json:"brand"`
	Description string           `json:"description"`
	Nutrition   NutritionRequest `json:"nutrition" binding:"required"`
}

type IngredientRequest struct {
	FoodID   uuid.UUID `json:"food_id" binding:"required"`
	Quantity float64   `json:"quantity" binding:"required,gt=0"`
	Unit     string    `json:"unit" binding:"required"`
}

type RecipeRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	Instructions    string              `json:"instructions"`
	PrepTimeMinutes *int                `json:"prep_time_minutes"`
	CookTimeMinutes *int                `json:"cook_time_minutes"`
	Servings        int                 `json:"servings" binding:"required,gt=0"`
	IsPublic        bool                `json:"is_public"`
	Ingredients     []IngredientRequest `json:"ingredients" binding:"dive"`
}

// CreateLogRequest logs one food or recipe entry. Exactly one of food_id and
// recipe_id must be set. For a recipe, quantity is a number of servings.
type CreateLogRequest struct {
	FoodID     *uuid.UUID `json:"food_id"`
	RecipeID   *uuid.UUID `json:"recipe_id"`
	Quantity   float64    `json:"quantity" binding:"required,gt=0"`
	Unit       string     `json:"unit" binding:"required"`
	MealType   string     `json:"meal_type" binding:"required"`
	LoggedDate string     `json:"logged_date" binding:"required"`
	LoggedTime *string    `json:"logged_time"`
	Notes      string     `json:"notes"`
}

type WaterLogRequest struct {
	AmountMl   int     `json:"amount_ml" binding:"required,gt=0"`
	LoggedDate string  `json:"logged_date" binding:"required"`
	LoggedTime *string `json:"logged_time"`
}

type FavoriteRequest struct {
	FoodID   *uuid.UUID `json:"food_id"`
	RecipeID *uuid.UUID `json:"recipe_id"`
}

type UpdateProfileRequest struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	DateOfBirth   *string  `json:"date_of_birth"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`

	GoalType           *string  `json:"goal_type"`
	DailyCalorieTarget *float64 `json:"daily_calorie_target"`
	ProteinTargetG     *float64 `json:"protein_target_g"`
	CarbsTargetG       *float64 `json:"carbs_target_g"`
	FatsTargetG        *float64 `json:"fats_target_g"`
	WaterTargetMl      *int     `json:"water_target_ml"`
}
