package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Food source values.
const (
	SourceOpenFoodFacts = "openfoodfacts"
	SourceUSDA          = "usda"
	SourceCustom        = "custom"
)

type Food struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `gorm:"size:255;not null;index" json:"name"`
	Brand   string `gorm:"size:255" json:"brand,omitempty"`
	Barcode string `gorm:"size:50;index" json:"barcode,omitempty"`

	// Source tracking: 'openfoodfacts', 'usda' or 'custom'.
	Source   string `gorm:"size:20;not null" json:"source"`
	SourceID string `gorm:"size:100" json:"source_id,omitempty"`

	Description     string          `gorm:"type:text" json:"description,omitempty"`
	IsVerified      bool            `gorm:"default:false" json:"is_verified"`
	CreatedByUserID *uuid.UUID      `gorm:"type:uuid" json:"created_by_user_id,omitempty"`
	Embedding       pgvector.Vector `gorm:"type:vector(3)" json:"-"`

	Nutrition *NutritionInfo `gorm:"constraint:OnDelete:CASCADE" json:"nutrition,omitempty"`
}

// NutritionInfo is the per-serving nutrition record for a food. Created once
// with the food and immutable afterwards; recipes and logs always scale from
// these reference values.
type NutritionInfo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FoodID    uuid.UUID `gorm:"type:uuid;not null;index" json:"food_id"`
	CreatedAt time.Time `json:"created_at"`

	// Serving information. ServingSize must be positive; the engine's
	// scaler depends on it.
	ServingSize          float64  `gorm:"type:numeric(10,2);not null;check:serving_size > 0" json:"serving_size"`
	ServingUnit          string   `gorm:"size:50;not null" json:"serving_unit"`
	ServingsPerContainer *float64 `gorm:"type:numeric(6,2)" json:"servings_per_container,omitempty"`

	// Macronutrients (per serving)
	Calories float64 `gorm:"type:numeric(8,2);not null;check:calories >= 0" json:"calories"`
	ProteinG float64 `gorm:"type:numeric(6,2);default:0" json:"protein_g"`
	CarbsG   float64 `gorm:"type:numeric(6,2);default:0" json:"carbs_g"`
	FatsG    float64 `gorm:"type:numeric(6,2);default:0" json:"fats_g"`

	// Additional macros; nil means not reported by the source.
	FiberG        *float64 `gorm:"type:numeric(6,2)" json:"fiber_g,omitempty"`
	SugarG        *float64 `gorm:"type:numeric(6,2)" json:"sugar_g,omitempty"`
	SaturatedFatG *float64 `gorm:"type:numeric(6,2)" json:"saturated_fat_g,omitempty"`
	TransFatG     *float64 `gorm:"type:numeric(6,2)" json:"trans_fat_g,omitempty"`
	CholesterolMg *float64 `gorm:"type:numeric(6,2)" json:"cholesterol_mg,omitempty"`
	SodiumMg      *float64 `gorm:"type:numeric(6,2)" json:"sodium_mg,omitempty"`
}
