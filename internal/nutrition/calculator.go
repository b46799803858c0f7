package nutrition

// Scale adjusts a per-serving nutrient profile to a consumed quantity.
//
// The quantity and ref.ServingSize must already be expressed in compatible
// units; no unit conversion is performed, the result is a plain linear ratio
// of the two magnitudes. Callers are responsible for ref.ServingSize > 0 and
// quantity > 0.
func Scale(ref ReferenceServing, p NutrientProfile, quantity float64) NutrientProfile {
	ratio := quantity / ref.ServingSize

	return NutrientProfile{
		Calories: p.Calories * ratio,
		ProteinG: p.ProteinG * ratio,
		CarbsG:   p.CarbsG * ratio,
		FatsG:    p.FatsG * ratio,

		FiberG:        scaleOptional(p.FiberG, ratio),
		SugarG:        scaleOptional(p.SugarG, ratio),
		SaturatedFatG: scaleOptional(p.SaturatedFatG, ratio),
		TransFatG:     scaleOptional(p.TransFatG, ratio),
		CholesterolMg: scaleOptional(p.CholesterolMg, ratio),
		SodiumMg:      scaleOptional(p.SodiumMg, ratio),
	}
}

// Aggregate sums nutrient profiles element-wise. The macro fields are always
// summed; an optional field is defined on the result only when at least one
// input defines it, with missing values contributing zero. An empty input
// yields an all-zero profile.
func Aggregate(profiles []NutrientProfile) NutrientProfile {
	var total NutrientProfile
	for _, p := range profiles {
		total.Calories += p.Calories
		total.ProteinG += p.ProteinG
		total.CarbsG += p.CarbsG
		total.FatsG += p.FatsG

		total.FiberG = addOptional(total.FiberG, p.FiberG)
		total.SugarG = addOptional(total.SugarG, p.SugarG)
		total.SaturatedFatG = addOptional(total.SaturatedFatG, p.SaturatedFatG)
		total.TransFatG = addOptional(total.TransFatG, p.TransFatG)
		total.CholesterolMg = addOptional(total.CholesterolMg, p.CholesterolMg)
		total.SodiumMg = addOptional(total.SodiumMg, p.SodiumMg)
	}
	return total
}

// PerServing divides every defined field of total by the serving count.
// A serving count of zero or less is clamped to 1.
func PerServing(total NutrientProfile, servings int) NutrientProfile {
	if servings <= 0 {
		servings = 1
	}
	n := float64(servings)

	return NutrientProfile{
		Calories: total.Calories / n,
		ProteinG: total.ProteinG / n,
		CarbsG:   total.CarbsG / n,
		FatsG:    total.FatsG / n,

		FiberG:        scaleOptional(total.FiberG, 1/n),
		SugarG:        scaleOptional(total.SugarG, 1/n),
		SaturatedFatG: scaleOptional(total.SaturatedFatG, 1/n),
		TransFatG:     scaleOptional(total.TransFatG, 1/n),
		CholesterolMg: scaleOptional(total.CholesterolMg, 1/n),
		SodiumMg:      scaleOptional(total.SodiumMg, 1/n),
	}
}

func scaleOptional(v *float64, ratio float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * ratio
	return &scaled
}

func addOptional(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	sum := *v
	if acc != nil {
		sum += *acc
	}
	return &sum
}
