package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saadjs/runnutri/internal/model"
	"github.com/saadjs/runnutri/internal/service"
)

func TestEvaluateBoundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		current, target float64
		want            model.Tier
	}{
		{80, 100, model.TierAdequate},
		{79.999, 100, model.TierInsufficient},
		{120, 100, model.TierAdequate},
		{120.001, 100, model.TierExcessive},
		{100, 100, model.TierAdequate},
		{0, 65, model.TierInsufficient},
		{54, 49, model.TierAdequate},
		{0, 0, model.TierUndefined},
		{42, 0, model.TierUndefined},
	}
	for _, tt := range tests {
		got := service.Evaluate(tt.current, tt.target)
		assert.Equal(t, tt.want, got.Tier, "evaluate(%v, %v)", tt.current, tt.target)
		assert.Equal(t, service.TierLabel(tt.want), got.Label)
	}
}

func TestEvaluateLabels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-", service.Evaluate(10, 0).Label)
	assert.Equal(t, "Low", service.Evaluate(10, 100).Label)
	assert.Equal(t, "On target", service.Evaluate(100, 100).Label)
	assert.Equal(t, "Over", service.Evaluate(200, 100).Label)
}

func TestEvaluateMeal(t *testing.T) {
	t.Parallel()
	got := service.EvaluateMeal(model.Macros{CarbG: 54, ProteinG: 30}, model.MealTarget{CarbG: 65, ProteinG: 18})
	assert.Equal(t, model.TierAdequate, got.Carb.Tier)
	assert.Equal(t, model.TierExcessive, got.Protein.Tier)

	merged := service.EvaluateMeal(model.Macros{CarbG: 20}, model.MealTarget{})
	assert.Equal(t, model.TierUndefined, merged.Carb.Tier)
	assert.Equal(t, model.TierUndefined, merged.Protein.Tier)
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 17, service.ProgressPercent(54, 325))
	assert.Equal(t, 0, service.ProgressPercent(0, 91))
	assert.Equal(t, 123, service.ProgressPercent(400, 325))
	assert.Equal(t, 0, service.ProgressPercent(12, 0))
	assert.Equal(t, math.MaxInt32, service.ProgressPercent(1e300, 325))
	assert.Equal(t, math.MaxInt32, service.ProgressPercent(service.MaxGrams, 1))

	p := service.DailyProgress(model.Macros{CarbG: 162.5, ProteinG: 91}, model.DailyTargets{CarbG: 325, ProteinG: 91})
	assert.Equal(t, model.Progress{CarbPct: 50, ProteinPct: 100}, p)
}

func TestOnTrack(t *testing.T) {
	t.Parallel()
	targets := model.DailyTargets{CarbG: 325, ProteinG: 91}
	assert.True(t, service.OnTrack(model.Macros{CarbG: 260, ProteinG: 73}, targets))
	assert.False(t, service.OnTrack(model.Macros{CarbG: 259, ProteinG: 91}, targets))
	assert.False(t, service.OnTrack(model.Macros{CarbG: 400, ProteinG: 50}, targets))
}
