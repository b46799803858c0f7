// Package provider integrates external food-data sources. The shipped
// implementation serves a static USDA-derived dataset; a real OpenFoodFacts
// or FoodData Central client would satisfy the same interface.
package provider

import "context"

// FoodData is a single food result from an external source, with its
// per-serving nutrition. Optional nutrients are nil when the source does not
// report them.
type FoodData struct {
	Name        string
	Brand       string
	Source      string
	SourceID    string
	Description string
	Nutrition   NutritionData
}

type NutritionData struct {
	ServingSize float64
	ServingUnit string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatsG       float64

	FiberG        *float64
	SugarG        *float64
	SaturatedFatG *float64
	TransFatG     *float64
	CholesterolMg *float64
	SodiumMg      *float64
}

// FoodDataProvider searches external food databases.
type FoodDataProvider interface {
	Search(ctx context.Context, query string, limit int) ([]FoodData, error)
	GetByBarcode(ctx context.Context, barcode string) (*FoodData, error)
}
