package models

// UserSettings carries UI preferences. The core only reads the default
// focus/break durations; everything else is pass-through for the client.
type UserSettings struct {
	Theme                string `json:"theme"`
	SoundEnabled         bool   `json:"soundEnabled"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	DefaultFocusDuration int    `json:"defaultFocusDuration"`
	DefaultBreakDuration int    `json:"defaultBreakDuration"`
	Language             string `json:"language"`
}

// Document is the single persisted JSON blob holding all domain state.
// Its shape is the import/export contract and must round-trip losslessly.
type Document struct {
	Tasks         []Task         `json:"tasks"`
	UserProgress  UserProgress   `json:"userProgress"`
	Achievements  []Achievement  `json:"achievements"`
	DailyStats    []DailyStats   `json:"dailyStats"`
	FocusSessions []FocusSession `json:"focusSessions"`
	Habits        []Habit        `json:"habits"`
	Settings      UserSettings   `json:"settings"`
	ExportDate    string         `json:"exportDate,omitempty"`
}

// DefaultSettings returns the initial UI preferences.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:                "auto",
		SoundEnabled:         true,
		NotificationsEnabled: true,
		DefaultFocusDuration: 25,
		DefaultBreakDuration: 5,
		Language:             "en",
	}
}

// DefaultProgress returns a fresh progress record: level 1, nothing earned.
func DefaultProgress(nowMillis int64) UserProgress {
	return UserProgress{
		Level:          1,
		MaxLevelXp:     100,
		LastActiveDate: nowMillis,
	}
}

// DefaultAchievements returns the fixed ten-badge catalog, all locked.
// The ids are stable and used by the unlock predicates.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: 1, Name: "First Steps", Description: "Complete your first task", Icon: "🎯"},
		{ID: 2, Name: "Week Warrior", Description: "7-day streak", Icon: "🔥"},
		{ID: 3, Name: "Focus Master", Description: "50+ focus sessions", Icon: "⏱️"},
		{ID: 4, Name: "Task Champion", Description: "Complete 100 tasks", Icon: "💯"},
		{ID: 5, Name: "Consistency King", Description: "30-day streak", Icon: "👑"},
		{ID: 6, Name: "Night Owl", Description: "Complete task after 10pm", Icon: "🦉"},
		{ID: 7, Name: "Speed Demon", Description: "Complete 5 tasks in one day", Icon: "⚡"},
		{ID: 8, Name: "Focus Beast", Description: "300+ total focus minutes", Icon: "🚀"},
		{ID: 9, Name: "Breathing Buddha", Description: "Complete 10 breathing exercises", Icon: "🧘"},
		{ID: 10, Name: "Co-worker Champion", Description: "60 minutes in body doubling sessions", Icon: "👥"},
	}
}

// DefaultDocument returns an empty-state document with defaults filled in.
func DefaultDocument(nowMillis int64) *Document {
	return &Document{
		Tasks:         []Task{},
		UserProgress:  DefaultProgress(nowMillis),
		Achievements:  DefaultAchievements(),
		DailyStats:    []DailyStats{},
		FocusSessions: []FocusSession{},
		Habits:        []Habit{},
		Settings:      DefaultSettings(),
	}
}

// Normalize fills zero-valued sections of a loaded document with defaults so
// documents persisted by older builds (or hand-edited ones) stay loadable.
func (d *Document) Normalize(nowMillis int64) {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.UserProgress.Level < 1 {
		d.UserProgress = DefaultProgress(nowMillis)
	}
	if d.UserProgress.MaxLevelXp == 0 {
		d.UserProgress.MaxLevelXp = 100
	}
	if len(d.Achievements) == 0 {
		d.Achievements = DefaultAchievements()
	}
	if d.DailyStats == nil {
		d.DailyStats = []DailyStats{}
	}
	if d.FocusSessions == nil {
		d.FocusSessions = []FocusSession{}
	}
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.Settings == (UserSettings{}) {
		d.Settings = DefaultSettings()
	}
}
