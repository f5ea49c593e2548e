package model

import "time"

type TrainingCategory string

const (
	TrainingEasy     TrainingCategory = "easy"
	TrainingModerate TrainingCategory = "moderate"
	TrainingHard     TrainingCategory = "hard"
)

type MealSlot string

const (
	MealPreWorkout  MealSlot = "preWorkout"
	MealBreakfast   MealSlot = "breakfast"
	MealLunch       MealSlot = "lunch"
	MealDinner      MealSlot = "dinner"
	MealPostWorkout MealSlot = "postWorkout"
)

// MealSlots lists the five slots in display order.
var MealSlots = [...]MealSlot{MealPreWorkout, MealBreakfast, MealLunch, MealDinner, MealPostWorkout}

// Index returns the position of s in MealSlots, or -1 for an unknown slot.
func (s MealSlot) Index() int {
	for i, slot := range MealSlots {
		if slot == s {
			return i
		}
	}
	return -1
}

func (s MealSlot) Valid() bool {
	return s.Index() >= 0
}

type TrainingConfig struct {
	Category      TrainingCategory
	CarbFactor    float64
	ProteinFactor float64
	Label         string
}

// DailyTargets are whole grams for the day.
type DailyTargets struct {
	CarbG    int
	ProteinG int
}

type MealTarget struct {
	CarbG    int
	ProteinG int
}

// MealTargets is indexed by MealSlot.Index().
type MealTargets [len(MealSlots)]MealTarget

func (m MealTargets) For(slot MealSlot) MealTarget {
	i := slot.Index()
	if i < 0 {
		return MealTarget{}
	}
	return m[i]
}

type Ratio struct {
	CarbShare    float64
	ProteinShare float64
}

// MealRatios is indexed by MealSlot.Index().
type MealRatios [len(MealSlots)]Ratio

type Macros struct {
	CarbG    float64
	ProteinG float64
}

func (m Macros) Add(o Macros) Macros {
	return Macros{CarbG: m.CarbG + o.CarbG, ProteinG: m.ProteinG + o.ProteinG}
}

// MealIntake is indexed by MealSlot.Index().
type MealIntake [len(MealSlots)]Macros

func (m MealIntake) For(slot MealSlot) Macros {
	i := slot.Index()
	if i < 0 {
		return Macros{}
	}
	return m[i]
}

type Entry struct {
	ID       int64
	Meal     MealSlot
	Name     string
	CarbG    float64
	ProteinG float64
	LoggedAt time.Time
}

type Tier string

const (
	TierUndefined    Tier = "undefined"
	TierInsufficient Tier = "insufficient"
	TierAdequate     Tier = "adequate"
	TierExcessive    Tier = "excessive"
)

type Evaluation struct {
	Tier  Tier
	Label string
}

type MacroEvaluation struct {
	Carb    Evaluation
	Protein Evaluation
}

type Progress struct {
	CarbPct    int
	ProteinPct int
}
