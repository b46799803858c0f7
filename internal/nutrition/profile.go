// Package nutrition implements the nutrition aggregation engine: scaling a
// food's per-serving nutrients to a consumed quantity, rolling ingredient
// nutrients up into recipe totals, resolving the contribution of a single
// logged entry, and summarizing a day's entries against user targets.
//
// Every operation is a pure, synchronous computation over already-fetched
// inputs and returns freshly allocated values.
package nutrition

// NutrientProfile holds the nutrient amounts for some quantity of food.
//
// The four macro fields are always defined. The remaining nutrients are
// optional: a nil pointer means the value is unknown, which is distinct from
// a recorded zero. Scaling preserves that distinction; aggregation defines an
// optional field on the result only when at least one input defines it.
type NutrientProfile struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`

	FiberG        *float64 `json:"fiber_g,omitempty"`
	SugarG        *float64 `json:"sugar_g,omitempty"`
	SaturatedFatG *float64 `json:"saturated_fat_g,omitempty"`
	TransFatG     *float64 `json:"trans_fat_g,omitempty"`
	CholesterolMg *float64 `json:"cholesterol_mg,omitempty"`
	SodiumMg      *float64 `json:"sodium_mg,omitempty"`
}

// ReferenceServing is the serving a nutrition record is expressed per.
type ReferenceServing struct {
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
}

// FoodNutrition is the canonical per-serving nutrition for a catalog food.
type FoodNutrition struct {
	Reference ReferenceServing `json:"reference"`
	Profile   NutrientProfile  `json:"profile"`
}
