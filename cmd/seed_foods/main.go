package main

import (
	"log"

	"github.com/google/uuid"

	"github.com/snedea/meal-planner-app/config"
	"github.com/snedea/meal-planner-app/internal/database"
	"github.com/snedea/meal-planner-app/internal/models"
	"github.com/snedea/meal-planner-app/internal/provider"
	"github.com/snedea/meal-planner-app/internal/service"
)

// Seeds the food catalog with the static provider dataset so a fresh
// deployment has searchable foods before any external lookups happen.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	seeded := 0
	for _, data := range provider.NewStaticProvider().Foods() {
		var count int64
		if err := db.Model(&models.Food{}).
			Where("source = ? AND source_id = ?", data.Source, data.SourceID).
			Count(&count).Error; err != nil {
			log.Fatalf("failed to check existing food %q: %v", data.Name, err)
		}
		if count > 0 {
			continue
		}

		food := models.Food{
			ID:          uuid.New(),
			Name:        data.Name,
			Brand:       data.Brand,
			Source:      data.Source,
			SourceID:    data.SourceID,
			Description: data.Description,
			IsVerified:  true,
			Embedding:   service.GenerateEmbedding(data.Name),
			Nutrition: &models.NutritionInfo{
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
			},
		}

		if err := db.Create(&food).Error; err != nil {
			log.Fatalf("failed to seed food %q: %v", data.Name, err)
		}
		seeded++
	}

	log.Printf("Seeded %d foods", seeded)
}
