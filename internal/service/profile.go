package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/models"
)

// UpdateProfileParams carries optional profile and target updates; nil fields
// are left unchanged.
type UpdateProfileParams struct {
	FirstName     *string
	LastName      *string
	DateOfBirth   *time.Time
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *string

	GoalType           *string
	DailyCalorieTarget *float64
	ProteinTargetG     *float64
	CarbsTargetG       *float64
	FatsTargetG        *float64
	WaterTargetMl      *int
}

// ProfileService handles user profile and macro-target operations
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the provided profile fields and macro targets.
// Targets have no history; the summary always reads the current values.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	if params.FirstName != nil {
		user.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		user.LastName = *params.LastName
	}
	if params.DateOfBirth != nil {
		user.DateOfBirth = params.DateOfBirth
	}
	if params.Gender != nil {
		user.Gender = *params.Gender
	}
	if params.HeightCm != nil {
		user.HeightCm = params.HeightCm
	}
	if params.WeightKg != nil {
		user.WeightKg = params.WeightKg
	}
	if params.ActivityLevel != nil {
		user.ActivityLevel = *params.ActivityLevel
	}
	if params.GoalType != nil {
		user.GoalType = *params.GoalType
	}
	if params.DailyCalorieTarget != nil {
		user.DailyCalorieTarget = params.DailyCalorieTarget
	}
	if params.ProteinTargetG != nil {
		user.ProteinTargetG = params.ProteinTargetG
	}
	if params.CarbsTargetG != nil {
		user.CarbsTargetG = params.CarbsTargetG
	}
	if params.FatsTargetG != nil {
		user.FatsTargetG = params.FatsTargetG
	}
	if params.WaterTargetMl != nil {
		user.WaterTargetMl = *params.WaterTargetMl
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
