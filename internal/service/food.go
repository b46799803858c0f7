package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/nutrition"
	"github.com/snedea/meal-planner-app/internal/provider"
)

var ErrInvalidServingSize = errors.New("serving size must be positive")

// Enough local hits to skip the external provider entirely.
const minLocalResults = 5

const foodSearchCacheTTL = time.Hour

// FoodService handles catalog search and custom foods. It implements
// nutrition.FoodSource for the aggregation engine.
type FoodService struct {
	db       *gorm.DB
	cache    *redis.Client
	provider provider.FoodDataProvider
}

// NewFoodService creates a new FoodService instance. The cache client may be
// nil, in which case search results are never cached.
func NewFoodService(db *gorm.DB, cache *redis.Client, p provider.FoodDataProvider) *FoodService {
	return &FoodService{
		db:       db,
		cache:    cache,
		provider: p,
	}
}

// NutritionParams carries a nutrition record for food creation. Optional
// nutrients are nil when unknown.
type NutritionParams struct {
	ServingSize          float64
	ServingUnit          string
	ServingsPerContainer *float64

	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64

	FiberG        *float64
	SugarG        *float64
	SaturatedFatG *float64
	TransFatG     *float64
	CholesterolMg *float64
	SodiumMg      *float64
}

// CreateFoodParams carries the fields for a custom catalog food.
type CreateFoodParams struct {
	Name        string
	Brand       string
	Description string
	Nutrition   NutritionParams
}

// SearchFoods looks up foods by name: the local catalog first, then the
// search cache, then the external provider. Provider results are persisted so
// subsequent searches and recipes can reference them.
func (s *FoodService) SearchFoods(ctx context.Context, query string, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 20
	}

	local, err := s.searchLocal(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(local) >= minLocalResults {
		return local, nil
	}

	cacheKey := "food_search:" + strings.ToLower(query)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	external, err := s.provider.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := local
	for _, data := range external {
		food, err := s.saveExternalFood(ctx, data)
		if err != nil {
			return nil, err
		}
		if containsFood(results, food.ID) {
			continue
		}
		results = append(results, *food)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	s.cacheSet(ctx, cacheKey, results)
	return results, nil
}

func (s *FoodService) searchLocal(ctx context.Context, query string, limit int) ([]models.Food, error) {
	like := "%" + strings.ToLower(query) + "%"
	dbQuery := s.db.WithContext(ctx).Preload("Nutrition").Where("LOWER(name) LIKE ?", like)

	if s.db.Dialector.Name() == "postgres" {
		vec := GenerateEmbedding(query)
		dbQuery = dbQuery.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		})
	} else {
		dbQuery = dbQuery.Order("name")
	}

	var foods []models.Food
	if err := dbQuery.Limit(limit).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// cacheGet and cacheSet swallow cache errors: a broken cache degrades search
// to the provider path, it never fails the request.
func (s *FoodService) cacheGet(ctx context.Context, key string) ([]models.Food, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var foods []models.Food
	if err := json.Unmarshal(payload, &foods); err != nil {
		return nil, false
	}
	return foods, true
}

func (s *FoodService) cacheSet(ctx context.Context, key string, foods []models.Food) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(foods)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, foodSearchCacheTTL).Err(); err != nil {
		log.Printf("food search cache set failed: %v", err)
	}
}

func (s *FoodService) saveExternalFood(ctx context.Context, data provider.FoodData) (*models.Food, error) {
	var existing models.Food
	err := s.db.WithContext(ctx).Preload("Nutrition").
		Where("source = ? AND source_id = ?", data.Source, data.SourceID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	food := models.Food{
		ID:          uuid.New(),
		Name:        data.Name,
		Brand:       data.Brand,
		Source:      data.Source,
		SourceID:    data.SourceID,
		Description: data.Description,
		IsVerified:  data.Source == models.SourceUSDA,
		Embedding:   GenerateEmbedding(data.Name + " " + data.Description),
	}
	info := models.NutritionInfo{
		ID:            uuid.New(),
		ServingSize:   data.Nutrition.ServingSize,
		ServingUnit:   data.Nutrition.ServingUnit,
		Calories:      data.Nutrition.Calories,
		ProteinG:      data.Nutrition.ProteinG,
		CarbsG:        data.Nutrition.CarbsG,
		FatsG:         data.Nutrition.FatsG,
		FiberG:        data.Nutrition.FiberG,
		SugarG:        data.Nutrition.SugarG,
		SaturatedFatG: data.Nutrition.SaturatedFatG,
		TransFatG:     data.Nutrition.TransFatG,
		CholesterolMg: data.Nutrition.CholesterolMg,
		SodiumMg:      data.Nutrition.SodiumMg,
	}

	if err := s.createFoodWithNutrition(ctx, &food, &info); err != nil {
		return nil, err
	}
	return &food, nil
}

// CreateCustomFood adds a user-defined food with its nutrition record.
func (s *FoodService) CreateCustomFood(ctx context.Context, userID uuid.UUID, params CreateFoodParams) (*models.Food, error) {
	// The scaler has no clamp of its own; a non-positive serving size must
	// never reach the catalog.
	if params.Nutrition.ServingSize <= 0 {
		return nil, ErrInvalidServingSize
	}

	food := models.Food{
		ID:              uuid.New(),
		Name:            params.Name,
		Brand:           params.Brand,
		Description:     params.Description,
		Source:          models.SourceCustom,
		CreatedByUserID: &userID,
		Embedding:       GenerateEmbedding(params.Name + " " + params.Description),
	}
	info := models.NutritionInfo{
		ID:                   uuid.New(),
		ServingSize:          params.Nutrition.ServingSize,
		ServingUnit:          params.Nutrition.ServingUnit,
		ServingsPerContainer: params.Nutrition.ServingsPerContainer,
		Calories:             params.Nutrition.Calories,
		ProteinG:             params.Nutrition.ProteinG,
		CarbsG:               params.Nutrition.CarbsG,
		FatsG:                params.Nutrition.FatsG,
		FiberG:               params.Nutrition.FiberG,
		SugarG:               params.Nutrition.SugarG,
		SaturatedFatG:        params.Nutrition.SaturatedFatG,
		TransFatG:            params.Nutrition.TransFatG,
		CholesterolMg:        params.Nutrition.CholesterolMg,
		SodiumMg:             params.Nutrition.SodiumMg,
	}

	if err := s.createFoodWithNutrition(ctx, &food, &info); err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) createFoodWithNutrition(ctx context.Context, food *models.Food, info *models.NutritionInfo) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(food).Error; err != nil {
			return err
		}
		info.FoodID = food.ID
		if err := tx.Create(info).Error; err != nil {
			return err
		}
		food.Nutrition = info
		return nil
	})
}

// GetFood retrieves a food with its nutrition record.
func (s *FoodService) GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).Preload("Nutrition").First(&food, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// FoodNutrition implements nutrition.FoodSource: the per-serving nutrition
// record for a catalog food, or nutrition.ErrFoodNotFound when the food has
// none.
func (s *FoodService) FoodNutrition(ctx context.Context, foodID uuid.UUID) (*nutrition.FoodNutrition, error) {
	var info models.NutritionInfo
	err := s.db.WithContext(ctx).Where("food_id = ?", foodID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nutrition.ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}

	return &nutrition.FoodNutrition{
		Reference: nutrition.ReferenceServing{
			ServingSize: info.ServingSize,
			ServingUnit: info.ServingUnit,
		},
		Profile: nutrition.NutrientProfile{
			Calories:      info.Calories,
			ProteinG:      info.ProteinG,
			CarbsG:        info.CarbsG,
			FatsG:         info.FatsG,
			FiberG:        info.FiberG,
			SugarG:        info.SugarG,
			SaturatedFatG: info.SaturatedFatG,
			TransFatG:     info.TransFatG,
			CholesterolMg: info.CholesterolMg,
			SodiumMg:      info.SodiumMg,
		},
	}, nil
}

func containsFood(foods []models.Food, id uuid.UUID) bool {
	for _, f := range foods {
		if f.ID == id {
			return true
		}
	}
	return false
}
