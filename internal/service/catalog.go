package service

import (
	"fmt"
	"math"
	"strconv"
)

type FoodUnit string

const (
	UnitPiece FoodUnit = "piece"
	UnitGram  FoodUnit = "g"
)

// Food is a catalog item with macros per unit: per piece, or per gram.
type Food struct {
	ID       string
	Label    string
	Unit     FoodUnit
	CarbG    float64
	ProteinG float64

	// Input bounds for the presentation layer; not enforced here.
	Max     float64
	Step    float64
	Default float64
}

// One banana unit is a ~100 g medium banana.
var foodCatalog = []Food{
	{ID: "banana", Label: "Banana", Unit: UnitPiece, CarbG: 27, ProteinG: 1, Max: 3, Step: 1, Default: 1},
	{ID: "egg", Label: "Tea egg", Unit: UnitPiece, CarbG: 1, ProteinG: 7, Max: 5, Step: 1, Default: 1},
	{ID: "rice", Label: "Brown rice", Unit: UnitGram, CarbG: 0.25, ProteinG: 0.03, Max: 500, Step: 10, Default: 150},
	{ID: "chicken", Label: "Chicken breast", Unit: UnitGram, CarbG: 0, ProteinG: 0.25, Max: 400, Step: 10, Default: 100},
}

func Foods() []Food {
	out := make([]Food, len(foodCatalog))
	copy(out, foodCatalog)
	return out
}

func LookupFood(id string) (Food, error) {
	name := normalizeName(id)
	for _, f := range foodCatalog {
		if f.ID == name {
			return f, nil
		}
	}
	return Food{}, fmt.Errorf("%w: %q", ErrUnknownFood, id)
}

// FromCatalog builds a candidate for quantity units of a catalog food.
// Piece foods take whole counts and are not rounded; gram foods round each
// macro to a whole gram.
func FromCatalog(id string, quantity float64) (Candidate, error) {
	food, err := LookupFood(id)
	if err != nil {
		return Candidate{}, err
	}
	switch food.Unit {
	case UnitPiece:
		if err := validateNonNegativeFloat(food.ID+" count", quantity); err != nil {
			return Candidate{}, err
		}
		if quantity != math.Trunc(quantity) {
			return Candidate{}, fmt.Errorf("%w: %s count must be a whole number, got %v", ErrInvalidQuantity, food.ID, quantity)
		}
		if quantity*math.Max(food.CarbG, food.ProteinG) > MaxGrams {
			return Candidate{}, fmt.Errorf("%w: %v x %s exceeds %d g", ErrInvalidQuantity, quantity, food.ID, MaxGrams)
		}
		return Candidate{
			Name:     fmt.Sprintf("%s x%s", food.Label, formatQuantity(quantity)),
			CarbG:    quantity * food.CarbG,
			ProteinG: quantity * food.ProteinG,
		}, nil
	default:
		if err := validateNonNegativeFloat(food.ID+" grams", quantity); err != nil {
			return Candidate{}, err
		}
		return Candidate{
			Name:     fmt.Sprintf("%s %sg", food.Label, formatQuantity(quantity)),
			CarbG:    float64(roundGrams(quantity * food.CarbG)),
			ProteinG: float64(roundGrams(quantity * food.ProteinG)),
		}, nil
	}
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
