package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/nutrition"
)

var (
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMealType       = errors.New("meal type must be breakfast, lunch, dinner or snack")
	ErrInvalidFavoriteTarget = errors.New("exactly one of food_id or recipe_id must be set")
	ErrInvalidWaterAmount    = errors.New("water amount must be positive")
)

// CreateLogParams carries the fields for a new meal log entry. Exactly one of
// FoodID and RecipeID must be set; for a recipe, Quantity is a number of
// servings.
type CreateLogParams struct {
	FoodID     *uuid.UUID
	RecipeID   *uuid.UUID
	Quantity   float64
	Unit       string
	MealType   string
	LoggedDate string
	LoggedTime *string
	Notes      string
}

// DailySummary is the per-day roll-up returned to callers: frozen log totals
// against the user's current targets, plus water intake.
type DailySummary struct {
	Date string `json:"date"`
	nutrition.DailySummary
	WaterTotalMl  int `json:"water_total_ml"`
	WaterTargetMl int `json:"water_target_ml"`
}

// MealLogService handles meal and water logging and daily summaries.
type MealLogService struct {
	db       *gorm.DB
	resolver *nutrition.Resolver
}

// NewMealLogService creates a new MealLogService instance. The resolver
// computes the nutrition frozen onto each created entry.
func NewMealLogService(db *gorm.DB, resolver *nutrition.Resolver) *MealLogService {
	return &MealLogService{
		db:       db,
		resolver: resolver,
	}
}

// CreateLog validates the request, resolves its nutrient contribution and
// stores the entry with the macros frozen. Historical entries are never
// recomputed when catalog data changes.
func (s *MealLogService) CreateLog(ctx context.Context, userID uuid.UUID, params CreateLogParams) (*models.MealLog, error) {
	if !validMealType(params.MealType) {
		return nil, ErrInvalidMealType
	}
	if _, err := time.Parse("2006-01-02", params.LoggedDate); err != nil {
		return nil, ErrInvalidDate
	}

	profile, err := s.resolver.LogNutrition(ctx, nutrition.LogRequest{
		FoodID:   params.FoodID,
		RecipeID: params.RecipeID,
		Quantity: params.Quantity,
		Unit:     params.Unit,
	})
	if err != nil {
		return nil, err
	}

	entry := models.MealLog{
		ID:         uuid.New(),
		UserID:     userID,
		FoodID:     params.FoodID,
		RecipeID:   params.RecipeID,
		Quantity:   params.Quantity,
		Unit:       params.Unit,
		Calories:   profile.Calories,
		ProteinG:   profile.ProteinG,
		CarbsG:     profile.CarbsG,
		FatsG:      profile.FatsG,
		MealType:   params.MealType,
		LoggedDate: params.LoggedDate,
		LoggedTime: params.LoggedTime,
		Notes:      params.Notes,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListLogs returns a user's entries for one date, ordered by logged time for
// display. The order does not affect summary totals.
func (s *MealLogService) ListLogs(ctx context.Context, userID uuid.UUID, date string) ([]models.MealLog, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	var logs []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_date = ?", userID, date).
		Order("logged_time").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteLog deletes a log entry owned by the user.
func (s *MealLogService) DeleteLog(ctx context.Context, id, userID uuid.UUID) error {
	var entry models.MealLog
	if err := s.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return err
	}
	if entry.UserID != userID {
		return ErrNotAuthorized
	}
	return s.db.WithContext(ctx).Delete(&entry).Error
}

// Summary computes the daily nutrition summary for a user and date from the
// denormalized entry values and the user's current targets.
func (s *MealLogService) Summary(ctx context.Context, userID uuid.UUID, date string) (*DailySummary, error) {
	logs, err := s.ListLogs(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	entries := make([]nutrition.EntryTotals, len(logs))
	for i, entry := range logs {
		entries[i] = nutrition.EntryTotals{
			Calories: entry.Calories,
			ProteinG: entry.ProteinG,
			CarbsG:   entry.CarbsG,
			FatsG:    entry.FatsG,
		}
	}

	targets := nutrition.Targets{
		Calories: user.DailyCalorieTarget,
		ProteinG: user.ProteinTargetG,
		CarbsG:   user.CarbsTargetG,
		FatsG:    user.FatsTargetG,
	}

	waterTotal, err := s.waterTotal(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:          date,
		DailySummary:  nutrition.Summarize(entries, targets),
		WaterTotalMl:  waterTotal,
		WaterTargetMl: user.WaterTargetMl,
	}, nil
}

// CreateWaterLog records a water intake entry.
func (s *MealLogService) CreateWaterLog(ctx context.Context, userID uuid.UUID, amountMl int, date string, loggedTime *string) (*models.WaterLog, error) {
	if amountMl <= 0 {
		return nil, ErrInvalidWaterAmount
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	entry := models.WaterLog{
		ID:         uuid.New(),
		UserID:     userID,
		AmountMl:   amountMl,
		LoggedDate: date,
		LoggedTime: loggedTime,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListWaterLogs returns a user's water entries for one date.
func (s *MealLogService) ListWaterLogs(ctx context.Context, userID uuid.UUID, date string) ([]models.WaterLog, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	var logs []models.WaterLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_date = ?", userID, date).
		Order("logged_time").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *MealLogService) waterTotal(ctx context.Context, userID uuid.UUID, date string) (int, error) {
	var total *int
	err := s.db.WithContext(ctx).Model(&models.WaterLog{}).
		Select("SUM(amount_ml)").
		Where("user_id = ? AND logged_date = ?", userID, date).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// AddFavorite marks a food or recipe as a favorite.
func (s *MealLogService) AddFavorite(ctx context.Context, userID uuid.UUID, foodID, recipeID *uuid.UUID) (*models.Favorite, error) {
	if (foodID == nil) == (recipeID == nil) {
		return nil, ErrInvalidFavoriteTarget
	}

	fav := models.Favorite{
		ID:       uuid.New(),
		UserID:   userID,
		FoodID:   foodID,
		RecipeID: recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

// RemoveFavorite removes a favorite owned by the user.
func (s *MealLogService) RemoveFavorite(ctx context.Context, id, userID uuid.UUID) error {
	var fav models.Favorite
	if err := s.db.WithContext(ctx).First(&fav, "id = ?", id).Error; err != nil {
		return err
	}
	if fav.UserID != userID {
		return ErrNotAuthorized
	}
	return s.db.WithContext(ctx).Delete(&fav).Error
}

// ListFavorites returns the user's favorites.
func (s *MealLogService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func validMealType(mealType string) bool {
	switch mealType {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return true
	}
	return false
}
