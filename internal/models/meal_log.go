package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal types accepted on a log entry.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealLog is one logged food or recipe entry. Exactly one of FoodID and
// RecipeID is set. The macro columns are computed once at creation and stored
// so that later edits to the catalog do not change historical logs.
type MealLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	FoodID   *uuid.UUID `gorm:"type:uuid" json:"food_id,omitempty"`
	RecipeID *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"`

	Quantity float64 `gorm:"type:numeric(10,2);not null;check:quantity > 0" json:"quantity"`
	Unit     string  `gorm:"size:50;not null" json:"unit"`

	// Frozen nutrition, denormalized at creation time.
	Calories float64 `gorm:"type:numeric(8,2)" json:"calories"`
	ProteinG float64 `gorm:"type:numeric(6,2)" json:"protein_g"`
	CarbsG   float64 `gorm:"type:numeric(6,2)" json:"carbs_g"`
	FatsG    float64 `gorm:"type:numeric(6,2)" json:"fats_g"`

	MealType   string  `gorm:"size:20;not null" json:"meal_type"`
	LoggedDate string  `gorm:"type:date;not null;index" json:"logged_date"`
	LoggedTime *string `gorm:"type:time" json:"logged_time,omitempty"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`
}

// WaterLog is a single water intake entry.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	AmountMl int `gorm:"not null;check:amount_ml > 0" json:"amount_ml"`

	LoggedDate string  `gorm:"type:date;not null;index" json:"logged_date"`
	LoggedTime *string `gorm:"type:time" json:"logged_time,omitempty"`
}

// Favorite marks a food or recipe as a user favorite.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	FoodID   *uuid.UUID `gorm:"type:uuid" json:"food_id,omitempty"`
	RecipeID *uuid.UUID `gorm:"type:uuid" json:"recipe_id,omitempty"`
}
