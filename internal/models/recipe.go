package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a user-created recipe. Nutrition is never stored on the recipe;
// it is recomputed from the current ingredient and food data on every read.
type Recipe struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`

	Name         string `gorm:"size:255;not null;index" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	Instructions string `gorm:"type:text" json:"instructions,omitempty"`

	PrepTimeMinutes *int `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int `json:"cook_time_minutes,omitempty"`

	Servings int `gorm:"not null;default:1;check:servings > 0" json:"servings"`

	IsPublic bool `gorm:"default:false" json:"is_public"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

type RecipeIngredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	FoodID    uuid.UUID `gorm:"type:uuid;not null;index" json:"food_id"`

	// Quantity in the ingredient's own unit, independent of the food's
	// reference serving unit.
	Quantity float64 `gorm:"type:numeric(10,2);not null;check:quantity > 0" json:"quantity"`
	Unit     string  `gorm:"size:50;not null" json:"unit"`

	DisplayOrder int `gorm:"default:0" json:"display_order"`

	Food *Food `json:"food,omitempty"`
}
