package service

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/saadjs/runnutri/internal/model"
)

const planCacheSize = 64

type SessionInput struct {
	WeightKg       float64
	Training       model.TrainingCategory
	Meal           model.MealSlot
	DinnerRecovery bool
	Logger         *slog.Logger
	Now            func() time.Time
}

type Plan struct {
	Daily model.DailyTargets
	Meals model.MealTargets
}

type planKey struct {
	weightKg float64
	training model.TrainingCategory
	merge    bool
}

type intakeView struct {
	revision uint64
	meals    model.MealIntake
	daily    model.Macros
}

// Session is the state of one planning session: the raw inputs plus the food
// log. Derived values are recomputed from those inputs on read. A Session has
// a single writer and is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	weightKg       float64
	training       model.TrainingCategory
	meal           model.MealSlot
	dinnerRecovery bool

	log    *LogStore
	plans  *lru.Cache[planKey, Plan]
	intake *intakeView

	logger *slog.Logger
	now    func() time.Time
}

func NewSession(in SessionInput) (*Session, error) {
	if _, err := DailyTargetsFor(in.WeightKg, in.Training); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if in.Meal == "" {
		in.Meal = model.MealPreWorkout
	}
	if !in.Meal.Valid() {
		return nil, fmt.Errorf("new session: %w: %q", ErrInvalidMealSlot, in.Meal)
	}
	plans, err := lru.New[planKey, Plan](planCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create plan cache: %w", err)
	}
	if in.Logger == nil {
		in.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if in.Now == nil {
		in.Now = time.Now
	}
	id := uuid.New()
	return &Session{
		ID:             id,
		weightKg:       in.WeightKg,
		training:       in.Training,
		meal:           in.Meal,
		dinnerRecovery: in.DinnerRecovery,
		log:            NewLogStore(),
		plans:          plans,
		logger:         in.Logger.With("session_id", id.String()),
		now:            in.Now,
	}, nil
}

func (s *Session) WeightKg() float64                 { return s.weightKg }
func (s *Session) Training() model.TrainingCategory { return s.training }
func (s *Session) Meal() model.MealSlot             { return s.meal }
func (s *Session) DinnerRecovery() bool             { return s.dinnerRecovery }

func (s *Session) SetWeight(weightKg float64) error {
	if err := validateWeight(weightKg); err != nil {
		return err
	}
	s.weightKg = weightKg
	return nil
}

func (s *Session) SetTraining(category model.TrainingCategory) error {
	if _, err := TrainingConfigFor(category); err != nil {
		return err
	}
	s.training = category
	return nil
}

func (s *Session) SelectMeal(meal model.MealSlot) error {
	if !meal.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMealSlot, meal)
	}
	s.meal = meal
	return nil
}

func (s *Session) SetDinnerRecovery(on bool) {
	s.dinnerRecovery = on
}

// Log appends c to the active meal slot.
func (s *Session) Log(c Candidate) (model.Entry, error) {
	e, err := s.log.Append(s.meal, c, s.now())
	if err != nil {
		return model.Entry{}, err
	}
	s.logger.Debug("logged entry", "entry_id", e.ID, "meal", string(e.Meal), "carb_g", e.CarbG, "protein_g", e.ProteinG)
	return e, nil
}

// Remove reports whether an entry with id existed. Removing an unknown id is
// a no-op.
func (s *Session) Remove(id int64) bool {
	if s.log.Remove(id) {
		s.logger.Debug("removed entry", "entry_id", id)
		return true
	}
	s.logger.Debug("remove ignored, no such entry", "entry_id", id)
	return false
}

func (s *Session) Entries() []model.Entry {
	return s.log.Entries()
}

// Plan returns the daily and per-meal targets for the current inputs.
func (s *Session) Plan() (Plan, error) {
	key := planKey{weightKg: s.weightKg, training: s.training, merge: s.dinnerRecovery}
	if p, ok := s.plans.Get(key); ok {
		return p, nil
	}
	daily, err := DailyTargetsFor(s.weightKg, s.training)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Daily: daily, Meals: MealTargetsFor(daily, s.dinnerRecovery)}
	s.plans.Add(key, p)
	return p, nil
}

func (s *Session) intakes() *intakeView {
	rev := s.log.Revision()
	if s.intake != nil && s.intake.revision == rev {
		return s.intake
	}
	entries := s.log.Entries()
	s.intake = &intakeView{
		revision: rev,
		meals:    MealIntakes(entries),
		daily:    DailyIntake(entries),
	}
	return s.intake
}

type Snapshot struct {
	SessionID      string
	WeightKg       float64
	Training       model.TrainingConfig
	Meal           model.MealSlot
	DinnerRecovery bool

	Daily       model.DailyTargets
	Meals       model.MealTargets
	MealIntakes model.MealIntake
	Evaluations [len(model.MealSlots)]model.MacroEvaluation
	DailyIntake model.Macros
	Progress    model.Progress
	OnTrack     bool

	MealTarget     model.MealTarget
	MealIntake     model.Macros
	MealEvaluation model.MacroEvaluation

	// MealEntries are the active slot's entries, newest first.
	MealEntries []model.Entry
}

func (s *Session) View() (Snapshot, error) {
	plan, err := s.Plan()
	if err != nil {
		return Snapshot{}, err
	}
	cfg, err := TrainingConfigFor(s.training)
	if err != nil {
		return Snapshot{}, err
	}
	in := s.intakes()

	snap := Snapshot{
		SessionID:      s.ID.String(),
		WeightKg:       s.weightKg,
		Training:       cfg,
		Meal:           s.meal,
		DinnerRecovery: s.dinnerRecovery,
		Daily:          plan.Daily,
		Meals:          plan.Meals,
		MealIntakes:    in.meals,
		DailyIntake:    in.daily,
		Progress:       DailyProgress(in.daily, plan.Daily),
		OnTrack:        OnTrack(in.daily, plan.Daily),
		MealTarget:     plan.Meals.For(s.meal),
		MealIntake:     in.meals.For(s.meal),
		MealEntries:    s.log.ForMeal(s.meal),
	}
	for i := range model.MealSlots {
		snap.Evaluations[i] = EvaluateMeal(in.meals[i], plan.Meals[i])
	}
	snap.MealEvaluation = snap.Evaluations[s.meal.Index()]
	return snap, nil
}
