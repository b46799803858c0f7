package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/nutrition"
)

var ErrNotAuthorized = errors.New("not authorized")

// IngredientParams is one recipe line on create/update.
type IngredientParams struct {
	FoodID   uuid.UUID
	Quantity float64
	Unit     string
}

// RecipeParams carries the fields for recipe creation and update.
type RecipeParams struct {
	Name            string
	Description     string
	Instructions    string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        int
	IsPublic        bool
	Ingredients     []IngredientParams
}

// RecipeService handles recipe operations. It implements
// nutrition.RecipeSource for the aggregation engine.
type RecipeService struct {
	db       *gorm.DB
	resolver *nutrition.Resolver
}

// NewRecipeService creates a new RecipeService instance. The food source
// backs ingredient nutrition lookups during resolution.
func NewRecipeService(db *gorm.DB, foods nutrition.FoodSource) *RecipeService {
	s := &RecipeService{db: db}
	s.resolver = nutrition.NewResolver(foods, s)
	return s
}

// CreateRecipe creates a recipe with its ordered ingredients.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, params RecipeParams) (*models.Recipe, error) {
	recipe := models.Recipe{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            params.Name,
		Description:     params.Description,
		Instructions:    params.Instructions,
		PrepTimeMinutes: params.PrepTimeMinutes,
		CookTimeMinutes: params.CookTimeMinutes,
		Servings:        params.Servings,
		IsPublic:        params.IsPublic,
	}
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}
	for i, ing := range params.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipe.ID,
			FoodID:       ing.FoodID,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			DisplayOrder: i,
		})
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe retrieves a recipe with ingredients. Private recipes are only
// visible to their owner.
func (s *RecipeService) GetRecipe(ctx context.Context, id, requesterID uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != requesterID && !recipe.IsPublic {
		return nil, ErrNotAuthorized
	}
	return recipe, nil
}

// ListRecipes lists a user's recipes with simple paging.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Recipe, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("display_order") }).
		Where("user_id = ?", userID).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe replaces a recipe's fields and ingredient list.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, userID uuid.UUID, params RecipeParams) (*models.Recipe, error) {
	recipe, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotAuthorized
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":              params.Name,
			"description":       params.Description,
			"instructions":      params.Instructions,
			"prep_time_minutes": params.PrepTimeMinutes,
			"cook_time_minutes": params.CookTimeMinutes,
			"is_public":         params.IsPublic,
		}
		if params.Servings > 0 {
			updates["servings"] = params.Servings
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i, ing := range params.Ingredients {
			ingredient := models.RecipeIngredient{
				ID:           uuid.New(),
				RecipeID:     id,
				FoodID:       ing.FoodID,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
				DisplayOrder: i,
			}
			if err := tx.Create(&ingredient).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// DeleteRecipe deletes a recipe owned by the user.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	recipe, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrNotAuthorized
	}
	return s.db.WithContext(ctx).Select("Ingredients").Delete(recipe).Error
}

// Nutrition resolves the recipe's total and per-serving nutrition from the
// current ingredient and catalog data. Nothing is cached: edits to underlying
// foods show up on the next call.
func (s *RecipeService) Nutrition(ctx context.Context, recipeID uuid.UUID) (*nutrition.RecipeNutrition, error) {
	return s.resolver.RecipeNutrition(ctx, recipeID)
}

// Resolver exposes the recipe/food resolver for collaborating services.
func (s *RecipeService) Resolver() *nutrition.Resolver {
	return s.resolver
}

// Recipe implements nutrition.RecipeSource: the materialized ingredient list
// for resolution, or nutrition.ErrRecipeNotFound.
func (s *RecipeService) Recipe(ctx context.Context, recipeID uuid.UUID) (*nutrition.Recipe, error) {
	recipe, err := s.fetch(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nutrition.ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	resolved := nutrition.Recipe{Servings: recipe.Servings}
	for _, ing := range recipe.Ingredients {
		resolved.Ingredients = append(resolved.Ingredients, nutrition.Ingredient{
			FoodID:   ing.FoodID,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return &resolved, nil
}

func (s *RecipeService) fetch(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("display_order") }).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
