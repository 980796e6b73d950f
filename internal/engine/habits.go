package engine

import (
	"math"
	"strings"
	"time"

	"betterfocus-api/internal/models"

	"github.com/google/uuid"
)

// AddHabitInput carries the caller-supplied fields for a new habit.
type AddHabitInput struct {
	Name        string
	Description string
	Frequency   models.HabitFrequency
	Color       string
}

// HabitPatch is a partial habit update; nil fields are left untouched.
type HabitPatch struct {
	Name        *string
	Description *string
	Frequency   *models.HabitFrequency
	Color       *string
}

// HabitResult reports the effect of marking a habit done today.
type HabitResult struct {
	Habit            models.Habit         `json:"habit"`
	AlreadyCompleted bool                 `json:"alreadyCompleted"`
	XPAwarded        int                  `json:"xpAwarded"`
	LevelUp          bool                 `json:"levelUp"`
	Unlocked         []models.Achievement `json:"unlocked,omitempty"`
}

// AddHabit creates a habit; the days-per-week target follows the frequency.
func (s *Service) AddHabit(in AddHabitInput) (*models.Habit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	frequency := in.Frequency
	if !frequency.IsValid() {
		frequency = models.FrequencyDaily
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habit := models.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Description:    in.Description,
		Frequency:      frequency,
		TargetDays:     frequency.TargetDays(),
		CreatedAt:      s.nowMillis(),
		CompletedDates: []string{},
		Color:          in.Color,
	}
	s.doc.Habits = append([]models.Habit{habit}, s.doc.Habits...)
	s.persist()
	return &habit, nil
}

// UpdateHabit merges the patch; changing the frequency recomputes the target.
func (s *Service) UpdateHabit(id string, patch HabitPatch) (*models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.habitIndex(id)
	if idx < 0 {
		return nil, ErrHabitNotFound
	}
	habit := &s.doc.Habits[idx]

	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != "" {
			habit.Name = name
		}
	}
	if patch.Description != nil {
		habit.Description = *patch.Description
	}
	if patch.Frequency != nil && patch.Frequency.IsValid() {
		habit.Frequency = *patch.Frequency
		habit.TargetDays = patch.Frequency.TargetDays()
	}
	if patch.Color != nil {
		habit.Color = *patch.Color
	}

	s.persist()
	out := *habit
	return &out, nil
}

// DeleteHabit removes a habit; earned XP stays earned.
func (s *Service) DeleteHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.habitIndex(id)
	if idx < 0 {
		return ErrHabitNotFound
	}
	s.doc.Habits = append(s.doc.Habits[:idx], s.doc.Habits[idx+1:]...)
	s.persist()
	return nil
}

// Habits returns a snapshot of all habits, most recent first.
func (s *Service) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Habit(nil), s.doc.Habits...)
}

// CompleteHabitToday marks today in the habit's completion set. The insert is
// idempotent, but the 10 XP grant is unconditional even when today was
// already marked; the no-op path is reported through AlreadyCompleted.
func (s *Service) CompleteHabitToday(id string) (*HabitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.habitIndex(id)
	if idx < 0 {
		return nil, ErrHabitNotFound
	}
	habit := &s.doc.Habits[idx]

	today := dateKey(s.now())
	res := &HabitResult{AlreadyCompleted: habit.CompletedOn(today)}
	if !res.AlreadyCompleted {
		habit.CompletedDates = append(habit.CompletedDates, today)
	}

	res.XPAwarded = habitXP
	res.LevelUp = s.awardXP(habitXP)
	res.Unlocked = s.checkAchievements()
	s.persist()

	res.Habit = *habit
	return res, nil
}

// CompletionPercentage derives the rolling-week completion rate: completions
// on any of the last seven calendar dates ending today, over seven, as a
// rounded percentage. Independent of the habit's target.
func CompletionPercentage(h models.Habit, now time.Time) int {
	count := 0
	for i := 0; i < 7; i++ {
		if h.CompletedOn(dateKey(now.AddDate(0, 0, -i))) {
			count++
		}
	}
	return int(math.Round(float64(count) / 7 * 100))
}

// HabitCompletion reports a habit's rolling-week percentage as of now.
func (s *Service) HabitCompletion(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.habitIndex(id)
	if idx < 0 {
		return 0, ErrHabitNotFound
	}
	return CompletionPercentage(s.doc.Habits[idx], s.now()), nil
}

func (s *Service) habitIndex(id string) int {
	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID == id {
			return i
		}
	}
	return -1
}
