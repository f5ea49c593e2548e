package service

import (
	"fmt"
	"time"

	"github.com/saadjs/runnutri/internal/model"
)

// LogStore holds logged entries newest first. Entries are never modified in
// place; a correction is a Remove followed by a new Append.
type LogStore struct {
	entries  []model.Entry
	nextID   int64
	revision uint64
}

func NewLogStore() *LogStore {
	return &LogStore{nextID: 1}
}

func (s *LogStore) Append(meal model.MealSlot, c Candidate, loggedAt time.Time) (model.Entry, error) {
	if !meal.Valid() {
		return model.Entry{}, fmt.Errorf("%w: %q", ErrInvalidMealSlot, meal)
	}
	e := model.Entry{
		ID:       s.nextID,
		Meal:     meal,
		Name:     c.Name,
		CarbG:    c.CarbG,
		ProteinG: c.ProteinG,
		LoggedAt: loggedAt,
	}
	entries := make([]model.Entry, 0, len(s.entries)+1)
	entries = append(entries, e)
	entries = append(entries, s.entries...)
	s.entries = entries
	s.nextID++
	s.revision++
	return e, nil
}

// Remove deletes the entry with id. It reports whether an entry was removed;
// an unknown id leaves the store untouched.
func (s *LogStore) Remove(id int64) bool {
	for i, e := range s.entries {
		if e.ID != id {
			continue
		}
		entries := make([]model.Entry, 0, len(s.entries)-1)
		entries = append(entries, s.entries[:i]...)
		entries = append(entries, s.entries[i+1:]...)
		s.entries = entries
		s.revision++
		return true
	}
	return false
}

// Entries returns a copy of the log, newest first.
func (s *LogStore) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *LogStore) ForMeal(meal model.MealSlot) []model.Entry {
	out := make([]model.Entry, 0)
	for _, e := range s.entries {
		if e.Meal == meal {
			out = append(out, e)
		}
	}
	return out
}

func (s *LogStore) Len() int {
	return len(s.entries)
}

// Revision changes on every append and every effective remove.
func (s *LogStore) Revision() uint64 {
	return s.revision
}
