package service

import (
	"math"
	"strconv"
	"strings"
)

const DefaultManualName = "Custom food"

// Candidate is a food entry that has not been logged yet.
type Candidate struct {
	Name     string
	CarbG    float64
	ProteinG float64
}

func Banana(count int) (Candidate, error) {
	if err := validateNonNegativeInt("banana count", count); err != nil {
		return Candidate{}, err
	}
	return FromCatalog("banana", float64(count))
}

func Egg(count int) (Candidate, error) {
	if err := validateNonNegativeInt("egg count", count); err != nil {
		return Candidate{}, err
	}
	return FromCatalog("egg", float64(count))
}

func Rice(grams float64) (Candidate, error) {
	return FromCatalog("rice", grams)
}

func Chicken(grams float64) (Candidate, error) {
	return FromCatalog("chicken", grams)
}

// Manual never fails. Unparseable macro fields count as 0 grams and a blank
// name falls back to DefaultManualName.
func Manual(name, carb, protein string) Candidate {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultManualName
	}
	return Candidate{
		Name:     name,
		CarbG:    ParseGramsOrZero(carb),
		ProteinG: ParseGramsOrZero(protein),
	}
}

// ParseGramsOrZero returns 0 for empty, non-numeric, non-finite or negative
// input, and caps parsed values at MaxGrams.
func ParseGramsOrZero(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return math.Min(v, MaxGrams)
}
