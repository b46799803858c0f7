// Package testhelpers provides shared database setup for the test suites.
package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snedea/meal-planner-app/internal/database"
	"github.com/snedea/meal-planner-app/internal/models"
)

// NewTestDB creates an in-memory SQLite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser inserts a user and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestFood inserts a catalog food with per-serving nutrition.
func CreateTestFood(t *testing.T, db *gorm.DB, name string, servingSize float64, servingUnit string, calories, protein, carbs, fats float64) *models.Food {
	t.Helper()

	food := &models.Food{
		ID:     uuid.New(),
		Name:   name,
		Source: models.SourceCustom,
		Nutrition: &models.NutritionInfo{
			ID:          uuid.New(),
			ServingSize: servingSize,
			ServingUnit: servingUnit,
			Calories:    calories,
			ProteinG:    protein,
			CarbsG:      carbs,
			FatsG:       fats,
		},
	}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("failed to create test food: %v", err)
	}
	return food
}
