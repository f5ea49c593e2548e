package service

import "github.com/saadjs/runnutri/internal/model"

// MealIntakes sums entries per slot. Entries with an unrecognized slot are
// skipped.
func MealIntakes(entries []model.Entry) model.MealIntake {
	var totals model.MealIntake
	for _, e := range entries {
		i := e.Meal.Index()
		if i < 0 {
			continue
		}
		totals[i] = totals[i].Add(model.Macros{CarbG: e.CarbG, ProteinG: e.ProteinG})
	}
	return totals
}

func DailyIntake(entries []model.Entry) model.Macros {
	var total model.Macros
	for _, e := range entries {
		total = total.Add(model.Macros{CarbG: e.CarbG, ProteinG: e.ProteinG})
	}
	return total
}
