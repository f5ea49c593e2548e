package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/runnutri/internal/model"
)

const (
	// MaxGrams bounds every gram amount so rounded values fit in an int on
	// any platform.
	MaxGrams = 1_000_000_000
	// MaxWeightKg keeps weight times the largest factor below MaxGrams.
	MaxWeightKg = 1_000_000
)

var (
	ErrInvalidCategory = errors.New("invalid training category")
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrInvalidMealSlot = errors.New("invalid meal slot")
	ErrUnknownFood     = errors.New("unknown food")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrInvalidQuantity, name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrInvalidQuantity, name)
	}
	if value > MaxGrams {
		return fmt.Errorf("%w: %s must be <= %d", ErrInvalidQuantity, name, MaxGrams)
	}
	return nil
}

func validateWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return fmt.Errorf("%w: %v kg (must be > 0)", ErrInvalidWeight, weightKg)
	}
	if weightKg > MaxWeightKg {
		return fmt.Errorf("%w: %v kg (must be <= %d)", ErrInvalidWeight, weightKg, MaxWeightKg)
	}
	return nil
}

// roundGrams rounds half up. Inputs are never negative, so math.Round
// (half away from zero) gives the same result. Callers validate against
// MaxGrams; the clamp only keeps the int conversion defined.
func roundGrams(v float64) int {
	return int(math.Round(clampGrams(v)))
}

func clampGrams(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > MaxGrams:
		return MaxGrams
	}
	return v
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// ParseMealSlot accepts slot ids case-insensitively ("postworkout", "Dinner").
func ParseMealSlot(value string) (model.MealSlot, error) {
	name := normalizeName(value)
	for _, slot := range model.MealSlots {
		if strings.ToLower(string(slot)) == name {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidMealSlot, value, joinSlots())
}

func ParseTrainingCategory(value string) (model.TrainingCategory, error) {
	c := model.TrainingCategory(normalizeName(value))
	if _, ok := trainingConfigs[c]; !ok {
		return "", fmt.Errorf("%w: %q (expected easy, moderate or hard)", ErrInvalidCategory, value)
	}
	return c, nil
}

func joinSlots() string {
	names := make([]string, 0, len(model.MealSlots))
	for _, slot := range model.MealSlots {
		names = append(names, string(slot))
	}
	return strings.Join(names, ", ")
}
