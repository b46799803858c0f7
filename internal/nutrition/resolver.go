package nutrition

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidLogTarget is returned when a log request does not reference
	// exactly one of a food or a recipe.
	ErrInvalidLogTarget = errors.New("exactly one of food_id or recipe_id must be set")

	// ErrInvalidQuantity is returned when a log request carries a zero or
	// negative quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrFoodNotFound is returned when a food or its nutrition record does not exist.
	ErrFoodNotFound = errors.New("food nutrition not found")

	// ErrRecipeNotFound is returned when a referenced recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Ingredient is one line of a recipe: a catalog food reference plus the
// quantity used, in the ingredient's own unit.
type Ingredient struct {
	FoodID   uuid.UUID
	Quantity float64
	Unit     string
}

// Recipe is the materialized input for recipe nutrition resolution.
type Recipe struct {
	Servings    int
	Ingredients []Ingredient
}

// FoodSource fetches the per-serving nutrition record for a catalog food.
// Implementations return ErrFoodNotFound when the food or its nutrition
// record is absent.
type FoodSource interface {
	FoodNutrition(ctx context.Context, foodID uuid.UUID) (*FoodNutrition, error)
}

// RecipeSource fetches a recipe with its ingredients populated.
// Implementations return ErrRecipeNotFound when the recipe is absent.
type RecipeSource interface {
	Recipe(ctx context.Context, recipeID uuid.UUID) (*Recipe, error)
}

// IngredientNutrition is one ingredient's contribution to a recipe total.
// NutritionAvailable is false when the referenced food has no nutrition
// record; such ingredients contribute zero rather than failing resolution,
// and the flag lets callers detect a degraded total.
type IngredientNutrition struct {
	FoodID             uuid.UUID       `json:"food_id"`
	NutritionAvailable bool            `json:"nutrition_available"`
	Profile            NutrientProfile `json:"nutrition"`
}

// RecipeNutrition is the resolved nutrition of a recipe.
type RecipeNutrition struct {
	Total       NutrientProfile       `json:"total"`
	PerServing  NutrientProfile       `json:"per_serving"`
	Ingredients []IngredientNutrition `json:"ingredients"`
}

// LogRequest describes a single entry to be logged: exactly one of FoodID or
// RecipeID, and the quantity consumed.
type LogRequest struct {
	FoodID   *uuid.UUID
	RecipeID *uuid.UUID
	Quantity float64
	Unit     string
}

// Resolver computes recipe and log nutrition over a food/recipe data source.
// It holds no state of its own and never caches: every resolution reflects
// live catalog data.
type Resolver struct {
	foods   FoodSource
	recipes RecipeSource
}

// NewResolver creates a new Resolver instance.
func NewResolver(foods FoodSource, recipes RecipeSource) *Resolver {
	return &Resolver{
		foods:   foods,
		recipes: recipes,
	}
}

// RecipeNutrition resolves the total and per-serving nutrition of a recipe by ID.
func (r *Resolver) RecipeNutrition(ctx context.Context, recipeID uuid.UUID) (*RecipeNutrition, error) {
	recipe, err := r.recipes.Recipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return r.ResolveRecipe(ctx, recipe)
}

// ResolveRecipe scales each ingredient against its food's reference serving,
// aggregates the contributions and divides by the recipe's serving count.
// Ingredients whose food has no nutrition record contribute zero; see
// IngredientNutrition.NutritionAvailable.
func (r *Resolver) ResolveRecipe(ctx context.Context, recipe *Recipe) (*RecipeNutrition, error) {
	ingredients := make([]IngredientNutrition, 0, len(recipe.Ingredients))
	profiles := make([]NutrientProfile, 0, len(recipe.Ingredients))

	for _, ing := range recipe.Ingredients {
		food, err := r.foods.FoodNutrition(ctx, ing.FoodID)
		if errors.Is(err, ErrFoodNotFound) {
			ingredients = append(ingredients, IngredientNutrition{FoodID: ing.FoodID})
			continue
		}
		if err != nil {
			return nil, err
		}

		scaled := Scale(food.Reference, food.Profile, ing.Quantity)
		ingredients = append(ingredients, IngredientNutrition{
			FoodID:             ing.FoodID,
			NutritionAvailable: true,
			Profile:            scaled,
		})
		profiles = append(profiles, scaled)
	}

	total := Aggregate(profiles)
	return &RecipeNutrition{
		Total:       total,
		PerServing:  PerServing(total, recipe.Servings),
		Ingredients: ingredients,
	}, nil
}

// LogNutrition computes the nutrient contribution of a single log entry.
//
// For a food, the quantity is a magnitude in the food's serving unit and is
// scaled against the reference serving. For a recipe, the quantity is a
// SERVINGS MULTIPLIER: logging quantity 1.5 means one and a half servings of
// the recipe, regardless of unit. Callers freeze the returned values onto the
// stored entry so later catalog edits do not rewrite history.
func (r *Resolver) LogNutrition(ctx context.Context, req LogRequest) (NutrientProfile, error) {
	if (req.FoodID == nil) == (req.RecipeID == nil) {
		return NutrientProfile{}, ErrInvalidLogTarget
	}
	if req.Quantity <= 0 {
		return NutrientProfile{}, ErrInvalidQuantity
	}

	if req.FoodID != nil {
		food, err := r.foods.FoodNutrition(ctx, *req.FoodID)
		if err != nil {
			return NutrientProfile{}, err
		}
		return Scale(food.Reference, food.Profile, req.Quantity), nil
	}

	resolved, err := r.RecipeNutrition(ctx, *req.RecipeID)
	if err != nil {
		return NutrientProfile{}, err
	}
	// One unit of reference serving per recipe serving.
	return Scale(ReferenceServing{ServingSize: 1}, resolved.PerServing, req.Quantity), nil
}
