package service

import (
	"math"

	"github.com/saadjs/runnutri/internal/model"
)

const (
	LowerBound = 0.8
	UpperBound = 1.2
)

var tierLabels = map[model.Tier]string{
	model.TierUndefined:    "-",
	model.TierInsufficient: "Low",
	model.TierAdequate:     "On target",
	model.TierExcessive:    "Over",
}

func TierLabel(t model.Tier) string {
	return tierLabels[t]
}

// Evaluate classifies current against target. Both bounds are inclusive of
// adequate; a zero target cannot be evaluated.
func Evaluate(current, target float64) model.Evaluation {
	if target == 0 {
		return newEvaluation(model.TierUndefined)
	}
	r := current / target
	switch {
	case r < LowerBound:
		return newEvaluation(model.TierInsufficient)
	case r <= UpperBound:
		return newEvaluation(model.TierAdequate)
	default:
		return newEvaluation(model.TierExcessive)
	}
}

func EvaluateMeal(intake model.Macros, target model.MealTarget) model.MacroEvaluation {
	return model.MacroEvaluation{
		Carb:    Evaluate(intake.CarbG, float64(target.CarbG)),
		Protein: Evaluate(intake.ProteinG, float64(target.ProteinG)),
	}
}

func newEvaluation(t model.Tier) model.Evaluation {
	return model.Evaluation{Tier: t, Label: tierLabels[t]}
}

// maxPercent keeps ProgressPercent within int range on 32-bit platforms.
const maxPercent = math.MaxInt32

// ProgressPercent is round(intake/target*100), not clamped to 100. A zero
// target reports 0; results saturate at maxPercent.
func ProgressPercent(intake, target float64) int {
	if target == 0 {
		return 0
	}
	pct := math.Round(intake / target * 100)
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0
	case pct > maxPercent:
		return maxPercent
	}
	return int(pct)
}

func DailyProgress(intake model.Macros, targets model.DailyTargets) model.Progress {
	return model.Progress{
		CarbPct:    ProgressPercent(intake.CarbG, float64(targets.CarbG)),
		ProteinPct: ProgressPercent(intake.ProteinG, float64(targets.ProteinG)),
	}
}

// OnTrack reports whether both daily macros have reached the lower bound of
// their targets.
func OnTrack(intake model.Macros, targets model.DailyTargets) bool {
	return intake.CarbG >= float64(targets.CarbG)*LowerBound &&
		intake.ProteinG >= float64(targets.ProteinG)*LowerBound
}
