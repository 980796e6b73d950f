package engine

import (
	"math"
	"time"

	"betterfocus-api/internal/models"
)

const (
	// levelXpGrowth is the per-level multiplier on the XP bar (floor'd).
	levelXpGrowth = 1.1

	// focusXPMinutes is how many focused minutes earn one XP.
	focusXPMinutes = 5

	// bodyDoublingXPMinutes is how many co-working minutes earn one XP.
	bodyDoublingXPMinutes = 10

	// habitXP is the flat award for marking a habit done.
	habitXP = 10
)

// SessionResult reports the progress effects of a recorded session.
type SessionResult struct {
	Minutes   int                  `json:"minutes"`
	XPAwarded int                  `json:"xpAwarded"`
	LevelUp   bool                 `json:"levelUp"`
	Unlocked  []models.Achievement `json:"unlocked,omitempty"`
}

// awardXP adds amount to both the cumulative and the in-level XP. At most one
// level roll-over happens per call; the overshoot carries into the new level
// rather than resetting to zero. Returns true when the level advanced.
// Callers must hold s.mu.
func (s *Service) awardXP(amount int) bool {
	p := &s.doc.UserProgress
	p.XP += amount
	p.CurrentLevelXp += amount
	if p.CurrentLevelXp >= p.MaxLevelXp {
		p.Level++
		p.CurrentLevelXp -= p.MaxLevelXp
		p.MaxLevelXp = int(math.Floor(float64(p.MaxLevelXp) * levelXpGrowth))
		return true
	}
	return false
}

// recordTaskCompletion bumps the completion counter and recomputes the streak
// on calendar-day boundaries: same day leaves it alone, an active yesterday
// extends it, anything older restarts at 1. A zero streak always becomes 1 on
// the first completion, even when the account was created today.
// Callers must hold s.mu.
func (s *Service) recordTaskCompletion() {
	p := &s.doc.UserProgress
	now := s.now()
	today := dateKey(now)
	lastActive := dateKey(time.UnixMilli(p.LastActiveDate))

	if today != lastActive {
		yesterday := dateKey(now.AddDate(0, 0, -1))
		if lastActive == yesterday {
			p.Streak++
		} else {
			p.Streak = 1
		}
	} else if p.Streak == 0 {
		p.Streak = 1
	}
	if p.Streak > p.LongestStreak {
		p.LongestStreak = p.Streak
	}

	p.TasksCompleted++
	p.LastActiveDate = now.UnixMilli()
}

// RecordFocusSession credits focused minutes: the monotonic total, one XP per
// five minutes, and today's ledger entry (minutes plus a completed session).
func (s *Service) RecordFocusSession(minutes int) (*SessionResult, error) {
	if minutes <= 0 {
		return nil, ErrInvalidMinutes
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.UserProgress.FocusMinutes += minutes
	xp := ceilDiv(minutes, focusXPMinutes)
	levelUp := s.awardXP(xp)

	s.bumpDaily(dateKey(s.now()), func(d *models.DailyStats) {
		d.FocusMinutes += minutes
		d.SessionsCompleted++
	})
	unlocked := s.checkAchievements()
	s.persist()

	return &SessionResult{Minutes: minutes, XPAwarded: xp, LevelUp: levelUp, Unlocked: unlocked}, nil
}

// RecordBodyDoublingSession credits co-working minutes and one XP per ten.
// Body doubling never touches the daily ledger.
func (s *Service) RecordBodyDoublingSession(minutes int) (*SessionResult, error) {
	if minutes <= 0 {
		return nil, ErrInvalidMinutes
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.UserProgress.BodyDoublingMinutes += minutes
	xp := ceilDiv(minutes, bodyDoublingXPMinutes)
	levelUp := s.awardXP(xp)
	unlocked := s.checkAchievements()
	s.persist()

	return &SessionResult{Minutes: minutes, XPAwarded: xp, LevelUp: levelUp, Unlocked: unlocked}, nil
}

// Progress returns a snapshot of the user's progress record.
func (s *Service) Progress() models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.UserProgress
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
