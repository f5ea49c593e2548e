package service

import (
	"fmt"

	"github.com/saadjs/runnutri/internal/model"
)

var trainingConfigs = map[model.TrainingCategory]model.TrainingConfig{
	model.TrainingEasy:     {Category: model.TrainingEasy, CarbFactor: 3, ProteinFactor: 1.2, Label: "Rest day"},
	model.TrainingModerate: {Category: model.TrainingModerate, CarbFactor: 5, ProteinFactor: 1.4, Label: "Regular training"},
	model.TrainingHard:     {Category: model.TrainingHard, CarbFactor: 7, ProteinFactor: 1.6, Label: "Intervals / LSD"},
}

// baseRatios must sum to 1.0 per macro; TestBaseRatiosSumToOne in
// targets_test.go checks it.
var baseRatios = model.MealRatios{
	{CarbShare: 0.15, ProteinShare: 0.10}, // preWorkout
	{CarbShare: 0.15, ProteinShare: 0.20}, // breakfast
	{CarbShare: 0.20, ProteinShare: 0.20}, // lunch
	{CarbShare: 0.20, ProteinShare: 0.25}, // dinner
	{CarbShare: 0.30, ProteinShare: 0.25}, // postWorkout
}

func TrainingCategories() []model.TrainingCategory {
	return []model.TrainingCategory{model.TrainingEasy, model.TrainingModerate, model.TrainingHard}
}

func TrainingConfigFor(category model.TrainingCategory) (model.TrainingConfig, error) {
	cfg, ok := trainingConfigs[category]
	if !ok {
		return model.TrainingConfig{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	return cfg, nil
}

func DailyTargetsFor(weightKg float64, category model.TrainingCategory) (model.DailyTargets, error) {
	cfg, err := TrainingConfigFor(category)
	if err != nil {
		return model.DailyTargets{}, err
	}
	if err := validateWeight(weightKg); err != nil {
		return model.DailyTargets{}, err
	}
	return model.DailyTargets{
		CarbG:    roundGrams(weightKg * cfg.CarbFactor),
		ProteinG: roundGrams(weightKg * cfg.ProteinFactor),
	}, nil
}

func BaseRatios() model.MealRatios {
	return baseRatios
}

// EffectiveRatios starts from a copy of the base table on every call, so
// toggling the dinner-recovery merge never accumulates.
func EffectiveRatios(mergeDinnerAndPostWorkout bool) model.MealRatios {
	ratios := baseRatios
	if mergeDinnerAndPostWorkout {
		dinner := model.MealDinner.Index()
		post := model.MealPostWorkout.Index()
		ratios[dinner] = model.Ratio{
			CarbShare:    baseRatios[dinner].CarbShare + baseRatios[post].CarbShare,
			ProteinShare: baseRatios[dinner].ProteinShare + baseRatios[post].ProteinShare,
		}
		ratios[post] = model.Ratio{}
	}
	return ratios
}

func MealTargetsFor(daily model.DailyTargets, mergeDinnerAndPostWorkout bool) model.MealTargets {
	ratios := EffectiveRatios(mergeDinnerAndPostWorkout)
	var out model.MealTargets
	for i, r := range ratios {
		out[i] = model.MealTarget{
			CarbG:    roundGrams(float64(daily.CarbG) * r.CarbShare),
			ProteinG: roundGrams(float64(daily.ProteinG) * r.ProteinShare),
		}
	}
	return out
}
