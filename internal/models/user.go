package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	FirstName    string         `gorm:"size:100" json:"first_name"`
	LastName     string         `gorm:"size:100" json:"last_name"`

	// Profile data
	DateOfBirth   *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender        string     `gorm:"size:20" json:"gender,omitempty"`
	HeightCm      *float64   `gorm:"type:numeric(5,2)" json:"height_cm,omitempty"`
	WeightKg      *float64   `gorm:"type:numeric(5,2)" json:"weight_kg,omitempty"`
	ActivityLevel string     `gorm:"size:20" json:"activity_level,omitempty"`

	// Goals. Nil means the user has not set that target.
	GoalType           string   `gorm:"size:20" json:"goal_type,omitempty"`
	DailyCalorieTarget *float64 `gorm:"type:numeric(8,2)" json:"daily_calorie_target,omitempty"`
	ProteinTargetG     *float64 `gorm:"type:numeric(6,2)" json:"protein_target_g,omitempty"`
	CarbsTargetG       *float64 `gorm:"type:numeric(6,2)" json:"carbs_target_g,omitempty"`
	FatsTargetG        *float64 `gorm:"type:numeric(6,2)" json:"fats_target_g,omitempty"`
	WaterTargetMl      int      `gorm:"default:2000" json:"water_target_ml"`

	IsActive bool `gorm:"default:true" json:"is_active"`
}
