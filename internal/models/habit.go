package models

// HabitFrequency represents how often a habit is meant to be done.
type HabitFrequency string

const (
	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
)

// IsValid reports whether the frequency is one of the known values.
func (f HabitFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// TargetDays returns the days-per-week target implied by the frequency.
func (f HabitFrequency) TargetDays() int {
	if f == FrequencyWeekly {
		return 4
	}
	return 7
}

// Habit represents a recurring practice to track. CompletedDates holds ISO
// YYYY-MM-DD strings, each date at most once. Color is a display tag only.
type Habit struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Frequency      HabitFrequency `json:"frequency"`
	TargetDays     int            `json:"targetDays"`
	CreatedAt      int64          `json:"createdAt"`
	CompletedDates []string       `json:"completedDates"`
	Color          string         `json:"color"`
}

// CompletedOn reports whether the habit was marked done on the given date key.
func (h *Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}
