package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/runnutri/internal/model"
	"github.com/saadjs/runnutri/internal/service"
)

func TestBaseRatiosSumToOne(t *testing.T) {
	t.Parallel()
	for _, merge := range []bool{false, true} {
		var carb, protein float64
		for _, r := range service.EffectiveRatios(merge) {
			carb += r.CarbShare
			protein += r.ProteinShare
		}
		assert.InDelta(t, 1.0, carb, 1e-9, "carb shares, merge=%v", merge)
		assert.InDelta(t, 1.0, protein, 1e-9, "protein shares, merge=%v", merge)
	}
}

func TestDailyTargetsFollowFactors(t *testing.T) {
	t.Parallel()
	factors := map[model.TrainingCategory][2]float64{
		model.TrainingEasy:     {3, 1.2},
		model.TrainingModerate: {5, 1.4},
		model.TrainingHard:     {7, 1.6},
	}
	for _, w := range []float64{0.5, 41, 52.5, 65, 72.3, 98.7} {
		for c, f := range factors {
			got, err := service.DailyTargetsFor(w, c)
			require.NoError(t, err)
			assert.Equal(t, int(math.Round(w*f[0])), got.CarbG, "carb w=%v c=%s", w, c)
			assert.Equal(t, int(math.Round(w*f[1])), got.ProteinG, "protein w=%v c=%s", w, c)
		}
	}
}

func TestDailyTargetsModerateRunner(t *testing.T) {
	t.Parallel()
	daily, err := service.DailyTargetsFor(65, model.TrainingModerate)
	require.NoError(t, err)
	assert.Equal(t, model.DailyTargets{CarbG: 325, ProteinG: 91}, daily)

	meals := service.MealTargetsFor(daily, false)
	assert.Equal(t, model.MealTarget{CarbG: 65, ProteinG: 18}, meals.For(model.MealLunch))
	assert.Equal(t, model.MealTarget{CarbG: 65, ProteinG: 23}, meals.For(model.MealDinner))
}

func TestDailyTargetsRejectsBadInput(t *testing.T) {
	t.Parallel()
	_, err := service.DailyTargetsFor(65, model.TrainingCategory("tempo"))
	assert.ErrorIs(t, err, service.ErrInvalidCategory)

	for _, w := range []float64{0, -3, math.NaN(), math.Inf(1), 1e19, service.MaxWeightKg + 0.5} {
		_, err := service.DailyTargetsFor(w, model.TrainingEasy)
		assert.ErrorIs(t, err, service.ErrInvalidWeight, "weight %v", w)
	}
}

func TestDailyTargetsAtMaxWeight(t *testing.T) {
	t.Parallel()
	daily, err := service.DailyTargetsFor(service.MaxWeightKg, model.TrainingHard)
	require.NoError(t, err)
	assert.Equal(t, model.DailyTargets{CarbG: 7_000_000, ProteinG: 1_600_000}, daily)
	for _, m := range service.MealTargetsFor(daily, true) {
		assert.GreaterOrEqual(t, m.CarbG, 0)
		assert.GreaterOrEqual(t, m.ProteinG, 0)
	}
}

func TestMealTargetsSumWithinRounding(t *testing.T) {
	t.Parallel()
	for _, w := range []float64{47, 58.4, 65, 81, 103} {
		for _, c := range service.TrainingCategories() {
			daily, err := service.DailyTargetsFor(w, c)
			require.NoError(t, err)
			var carb, protein int
			for _, m := range service.MealTargetsFor(daily, false) {
				carb += m.CarbG
				protein += m.ProteinG
			}
			slots := len(model.MealSlots)
			assert.LessOrEqual(t, absInt(carb-daily.CarbG), slots, "carb w=%v c=%s", w, c)
			assert.LessOrEqual(t, absInt(protein-daily.ProteinG), slots, "protein w=%v c=%s", w, c)
		}
	}
}

func TestMealTargetsDinnerRecoveryMerge(t *testing.T) {
	t.Parallel()
	daily := model.DailyTargets{CarbG: 325, ProteinG: 91}

	plain := service.MealTargetsFor(daily, false)
	merged := service.MealTargetsFor(daily, true)

	assert.Equal(t, model.MealTarget{}, merged.For(model.MealPostWorkout))
	assert.Equal(t, model.MealTarget{CarbG: 163, ProteinG: 46}, merged.For(model.MealDinner))
	for _, slot := range []model.MealSlot{model.MealPreWorkout, model.MealBreakfast, model.MealLunch} {
		assert.Equal(t, plain.For(slot), merged.For(slot), slot)
	}

	ratios := service.EffectiveRatios(true)
	base := service.BaseRatios()
	dinner, post := model.MealDinner.Index(), model.MealPostWorkout.Index()
	assert.Equal(t, base[dinner].CarbShare+base[post].CarbShare, ratios[dinner].CarbShare)
	assert.Equal(t, base[dinner].ProteinShare+base[post].ProteinShare, ratios[dinner].ProteinShare)
	assert.Equal(t, model.Ratio{}, ratios[post])
}

func TestMealTargetsToggleHasNoDrift(t *testing.T) {
	t.Parallel()
	daily := model.DailyTargets{CarbG: 455, ProteinG: 104}
	first := service.MealTargetsFor(daily, false)
	merged := service.MealTargetsFor(daily, true)
	for i := 0; i < 5; i++ {
		assert.Equal(t, merged, service.MealTargetsFor(daily, true))
		assert.Equal(t, first, service.MealTargetsFor(daily, false))
	}
	assert.Equal(t, service.BaseRatios(), service.EffectiveRatios(false))
}

func TestParseTrainingCategory(t *testing.T) {
	t.Parallel()
	c, err := service.ParseTrainingCategory(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, model.TrainingHard, c)

	_, err = service.ParseTrainingCategory("recovery")
	assert.ErrorIs(t, err, service.ErrInvalidCategory)
}

func TestParseMealSlot(t *testing.T) {
	t.Parallel()
	m, err := service.ParseMealSlot("postworkout")
	require.NoError(t, err)
	assert.Equal(t, model.MealPostWorkout, m)

	_, err = service.ParseMealSlot("snack")
	assert.ErrorIs(t, err, service.ErrInvalidMealSlot)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
