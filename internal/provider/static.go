package provider

import (
	"context"
	"strings"
)

// StaticProvider serves a fixed USDA-derived food set. It stands in for the
// real external APIs in development and tests, and seeds the starter catalog.
type StaticProvider struct {
	foods []FoodData
}

// NewStaticProvider creates a provider over the built-in food set.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{foods: staticFoods}
}

// Search returns foods whose name contains the query, case-insensitively.
func (p *StaticProvider) Search(ctx context.Context, query string, limit int) ([]FoodData, error) {
	q := strings.ToLower(query)
	var results []FoodData
	for _, food := range p.foods {
		if strings.Contains(strings.ToLower(food.Name), q) {
			results = append(results, food)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
	}
	return results, nil
}

// GetByBarcode is not supported by the static dataset.
func (p *StaticProvider) GetByBarcode(ctx context.Context, barcode string) (*FoodData, error) {
	return nil, nil
}

// Foods returns the full dataset, used by the catalog seeder.
func (p *StaticProvider) Foods() []FoodData {
	return p.foods
}

func ptr(v float64) *float64 { return &v }

var staticFoods = []FoodData{
	{
		Name:        "Chicken Breast, Raw",
		Brand:       "Generic",
		Source:      "usda",
		SourceID:    "171077",
		Description: "Raw chicken breast without skin",
		Nutrition: NutritionData{
			ServingSize:   100,
			ServingUnit:   "g",
			Calories:      165,
			ProteinG:      31.0,
			CarbsG:        0.0,
			FatsG:         3.6,
			SaturatedFatG: ptr(1.0),
			CholesterolMg: ptr(85),
			SodiumMg:      ptr(74),
		},
	},
	{
		Name:        "Brown Rice, Cooked",
		Brand:       "Generic",
		Source:      "usda",
		SourceID:    "168878",
		Description: "Cooked brown rice",
		Nutrition: NutritionData{
			ServingSize: 100,
			ServingUnit: "g",
			Calories:    112,
			ProteinG:    2.6,
			CarbsG:      23.5,
			FatsG:       0.9,
			FiberG:      ptr(1.8),
			SodiumMg:    ptr(5),
		},
	},
	{
		Name:        "Broccoli, Raw",
		Source:      "usda",
		SourceID:    "170379",
		Description: "Raw broccoli florets",
		Nutrition: NutritionData{
			ServingSize: 100,
			ServingUnit: "g",
			Calories:    34,
			ProteinG:    2.8,
			CarbsG:      6.6,
			FatsG:       0.4,
			FiberG:      ptr(2.6),
			SugarG:      ptr(1.7),
			SodiumMg:    ptr(33),
		},
	},
	{
		Name:        "Salmon, Atlantic, Raw",
		Brand:       "Generic",
		Source:      "usda",
		SourceID:    "175167",
		Description: "Raw Atlantic salmon",
		Nutrition: NutritionData{
			ServingSize:   100,
			ServingUnit:   "g",
			Calories:      208,
			ProteinG:      20.4,
			CarbsG:        0.0,
			FatsG:         13.4,
			SaturatedFatG: ptr(3.1),
			CholesterolMg: ptr(55),
			SodiumMg:      ptr(59),
		},
	},
	{
		Name:        "Oatmeal, Dry",
		Brand:       "Generic",
		Source:      "usda",
		SourceID:    "173904",
		Description: "Dry rolled oats",
		Nutrition: NutritionData{
			ServingSize: 50,
			ServingUnit: "g",
			Calories:    190,
			ProteinG:    6.8,
			CarbsG:      32.0,
			FatsG:       3.4,
			FiberG:      ptr(5.0),
			SugarG:      ptr(1.0),
			SodiumMg:    ptr(5),
		},
	},
	{
		Name:        "Eggs, Whole, Raw",
		Brand:       "Generic",
		Source:      "usda",
		SourceID:    "173424",
		Description: "Whole raw eggs",
		Nutrition: NutritionData{
			ServingSize:   50,
			ServingUnit:   "g",
			Calories:      72,
			ProteinG:      6.3,
			CarbsG:        0.4,
			FatsG:         4.8,
			SaturatedFatG: ptr(1.6),
			CholesterolMg: ptr(186),
			SodiumMg:      ptr(71),
		},
	},
	{
		Name:        "Banana, Raw",
		Source:      "usda",
		SourceID:    "173944",
		Description: "Fresh banana",
		Nutrition: NutritionData{
			ServingSize: 100,
			ServingUnit: "g",
			Calories:    89,
			ProteinG:    1.1,
			CarbsG:      22.8,
			FatsG:       0.3,
			FiberG:      ptr(2.6),
			SugarG:      ptr(12.2),
			SodiumMg:    ptr(1),
		},
	},
	{
		Name:        "Greek Yogurt, Plain, Nonfat",
		Brand:       "Generic",
		Source:      "usda",
		SourceID:    "170903",
		Description: "Plain nonfat Greek yogurt",
		Nutrition: NutritionData{
			ServingSize: 100,
			ServingUnit: "g",
			Calories:    59,
			ProteinG:    10.2,
			CarbsG:      3.6,
			FatsG:       0.4,
			SugarG:      ptr(3.2),
			SodiumMg:    ptr(36),
		},
	},
}
