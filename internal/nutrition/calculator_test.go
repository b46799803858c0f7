package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestScaleChickenBreast(t *testing.T) {
	ref := ReferenceServing{ServingSize: 100, ServingUnit: "g"}
	profile := NutrientProfile{Calories: 165, ProteinG: 31, CarbsG: 0, FatsG: 3.6}

	scaled := Scale(ref, profile, 200)

	assert.InDelta(t, 330, scaled.Calories, 1e-9)
	assert.InDelta(t, 62, scaled.ProteinG, 1e-9)
	assert.InDelta(t, 0, scaled.CarbsG, 1e-9)
	assert.InDelta(t, 7.2, scaled.FatsG, 1e-9)
}

func TestScalePreservesUnknownOptionals(t *testing.T) {
	ref := ReferenceServing{ServingSize: 50, ServingUnit: "g"}
	profile := NutrientProfile{
		Calories: 190,
		ProteinG: 6.8,
		CarbsG:   32,
		FatsG:    3.4,
		FiberG:   f(5),
		SodiumMg: f(5),
	}

	scaled := Scale(ref, profile, 100)

	if assert.NotNil(t, scaled.FiberG) {
		assert.InDelta(t, 10, *scaled.FiberG, 1e-9)
	}
	if assert.NotNil(t, scaled.SodiumMg) {
		assert.InDelta(t, 10, *scaled.SodiumMg, 1e-9)
	}
	// Unknown stays unknown, not zero.
	assert.Nil(t, scaled.SugarG)
	assert.Nil(t, scaled.SaturatedFatG)
	assert.Nil(t, scaled.TransFatG)
	assert.Nil(t, scaled.CholesterolMg)
}

func TestScaleLinearity(t *testing.T) {
	ref := ReferenceServing{ServingSize: 100, ServingUnit: "g"}
	profile := NutrientProfile{Calories: 208, ProteinG: 20.4, CarbsG: 0, FatsG: 13.4, SodiumMg: f(59)}

	q1, q2 := 72.5, 151.3
	whole := Scale(ref, profile, q1+q2)
	split := Aggregate([]NutrientProfile{Scale(ref, profile, q1), Scale(ref, profile, q2)})

	assert.InDelta(t, whole.Calories, split.Calories, 1e-9)
	assert.InDelta(t, whole.ProteinG, split.ProteinG, 1e-9)
	assert.InDelta(t, whole.CarbsG, split.CarbsG, 1e-9)
	assert.InDelta(t, whole.FatsG, split.FatsG, 1e-9)
	assert.InDelta(t, *whole.SodiumMg, *split.SodiumMg, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	total := Aggregate(nil)

	assert.Zero(t, total.Calories)
	assert.Zero(t, total.ProteinG)
	assert.Zero(t, total.CarbsG)
	assert.Zero(t, total.FatsG)
	assert.Nil(t, total.FiberG)
	assert.Nil(t, total.SodiumMg)
}

func TestAggregateOptionalDefinedByAnyInput(t *testing.T) {
	total := Aggregate([]NutrientProfile{
		{Calories: 112, ProteinG: 2.6, CarbsG: 23.5, FatsG: 0.9, FiberG: f(1.8)},
		{Calories: 34, ProteinG: 2.8, CarbsG: 6.6, FatsG: 0.4},
	})

	assert.InDelta(t, 146, total.Calories, 1e-9)
	if assert.NotNil(t, total.FiberG) {
		// The profile without fiber contributes zero, not unknown.
		assert.InDelta(t, 1.8, *total.FiberG, 1e-9)
	}
	assert.Nil(t, total.SugarG)
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := NutrientProfile{Calories: 100, ProteinG: 10, CarbsG: 5, FatsG: 2, SodiumMg: f(30)}
	b := NutrientProfile{Calories: 300, ProteinG: 7, CarbsG: 40, FatsG: 9}
	c := NutrientProfile{Calories: 50, ProteinG: 1, CarbsG: 12, FatsG: 0.5, SodiumMg: f(12)}

	fwd := Aggregate([]NutrientProfile{a, b, c})
	rev := Aggregate([]NutrientProfile{c, b, a})

	assert.InDelta(t, fwd.Calories, rev.Calories, 1e-9)
	assert.InDelta(t, fwd.ProteinG, rev.ProteinG, 1e-9)
	assert.InDelta(t, *fwd.SodiumMg, *rev.SodiumMg, 1e-9)
}

func TestPerServingInverseOfAggregation(t *testing.T) {
	p := NutrientProfile{Calories: 250, ProteinG: 12.5, CarbsG: 30, FatsG: 8, FiberG: f(4)}
	n := 4

	replicated := make([]NutrientProfile, n)
	for i := range replicated {
		replicated[i] = p
	}

	per := PerServing(Aggregate(replicated), n)

	assert.InDelta(t, p.Calories, per.Calories, 1e-9)
	assert.InDelta(t, p.ProteinG, per.ProteinG, 1e-9)
	assert.InDelta(t, p.CarbsG, per.CarbsG, 1e-9)
	assert.InDelta(t, p.FatsG, per.FatsG, 1e-9)
	assert.InDelta(t, *p.FiberG, *per.FiberG, 1e-9)
}

func TestPerServingClampsNonPositiveServings(t *testing.T) {
	total := NutrientProfile{Calories: 400, ProteinG: 20, CarbsG: 50, FatsG: 10}

	for _, servings := range []int{0, -3} {
		per := PerServing(total, servings)
		assert.InDelta(t, 400, per.Calories, 1e-9)
		assert.InDelta(t, 20, per.ProteinG, 1e-9)
	}
}
