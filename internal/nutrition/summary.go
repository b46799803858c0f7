package nutrition

// Targets are a user's current daily macro targets. A nil field means the
// user has not set that target.
type Targets struct {
	Calories *float64 `json:"calorie_target,omitempty"`
	ProteinG *float64 `json:"protein_target_g,omitempty"`
	CarbsG   *float64 `json:"carbs_target_g,omitempty"`
	FatsG    *float64 `json:"fats_target_g,omitempty"`
}

// EntryTotals are the macro values frozen onto one logged entry at creation
// time. Summaries sum these as stored and never re-resolve catalog data.
type EntryTotals struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64
}

// DailySummary is the derived, never-persisted summary of one user-day.
// Remaining carries target minus total for each set target; a target that is
// unset has no remaining value rather than a zero.
type DailySummary struct {
	Totals    NutrientProfile `json:"totals"`
	Targets   Targets         `json:"targets"`
	Remaining Targets         `json:"remaining"`
}

// Summarize sums the frozen macro values of a day's entries and compares the
// totals to the user's current targets. Entries are expected to be already
// filtered to a single user and date; their order does not affect the result.
func Summarize(entries []EntryTotals, targets Targets) DailySummary {
	var totals NutrientProfile
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.ProteinG += e.ProteinG
		totals.CarbsG += e.CarbsG
		totals.FatsG += e.FatsG
	}

	return DailySummary{
		Totals:  totals,
		Targets: targets,
		Remaining: Targets{
			Calories: remaining(targets.Calories, totals.Calories),
			ProteinG: remaining(targets.ProteinG, totals.ProteinG),
			CarbsG:   remaining(targets.CarbsG, totals.CarbsG),
			FatsG:    remaining(targets.FatsG, totals.FatsG),
		},
	}
}

func remaining(target *float64, total float64) *float64 {
	if target == nil {
		return nil
	}
	rem := *target - total
	return &rem
}
