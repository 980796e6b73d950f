package models

// UserProgress tracks gamified progression for the device user (singleton).
// All counters are monotonic; CurrentLevelXp always stays below MaxLevelXp.
type UserProgress struct {
	Level               int   `json:"level"`
	XP                  int   `json:"xp"`
	CurrentLevelXp      int   `json:"currentLevelXp"`
	MaxLevelXp          int   `json:"maxLevelXp"`
	Streak              int   `json:"streak"`
	LongestStreak       int   `json:"longestStreak"`
	TasksCompleted      int   `json:"tasksCompleted"`
	FocusMinutes        int   `json:"focusMinutes"`
	LastActiveDate      int64 `json:"lastActiveDate"`
	BodyDoublingMinutes int   `json:"bodyDoublingMinutes"`
}

// DailyStats holds per-calendar-date aggregates. Date is an ISO YYYY-MM-DD
// key, unique across the ledger.
type DailyStats struct {
	Date              string `json:"date"`
	TasksCompleted    int    `json:"tasksCompleted"`
	FocusMinutes      int    `json:"focusMinutes"`
	SessionsCompleted int    `json:"sessionsCompleted"`
}

// Achievement is a one-way badge: Unlocked never reverts once set.
type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  *int64 `json:"unlockedAt,omitempty"`
	Icon        string `json:"icon"`
}

// SessionType distinguishes recorded focus sessions from breaks.
type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// FocusSession is a single recorded timer run.
type FocusSession struct {
	ID        string      `json:"id"`
	StartTime int64       `json:"startTime"`
	EndTime   int64       `json:"endTime"`
	Duration  int         `json:"duration"`
	Type      SessionType `json:"type"`
	Completed bool        `json:"completed"`
	Notes     string      `json:"notes,omitempty"`
}
