package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAwardXP_CumulativeTotalAndSingleRollover(t *testing.T) {
	s := newTestService(t)

	// Four awards of 30 from a fresh bar: the fourth crosses 100 and rolls
	// over exactly once, carrying the overshoot into the new level.
	for i := 0; i < 3; i++ {
		s.mu.Lock()
		leveled := s.awardXP(30)
		s.mu.Unlock()
		require.False(t, leveled)
	}
	p := s.Progress()
	require.Equal(t, 90, p.CurrentLevelXp)
	require.Equal(t, 1, p.Level)

	s.mu.Lock()
	leveled := s.awardXP(30)
	s.mu.Unlock()
	require.True(t, leveled)

	p = s.Progress()
	require.Equal(t, 2, p.Level)
	require.Equal(t, 20, p.CurrentLevelXp)
	require.Equal(t, 110, p.MaxLevelXp)
	require.Equal(t, 120, p.XP)
}

func TestAwardXP_BarStaysBelowThreshold(t *testing.T) {
	s := newTestService(t)

	total := 0
	for _, amount := range []int{10, 25, 15, 90, 100, 7, 60, 33} {
		s.mu.Lock()
		s.awardXP(amount)
		s.mu.Unlock()
		total += amount

		p := s.Progress()
		require.Less(t, p.CurrentLevelXp, p.MaxLevelXp)
		require.Equal(t, total, p.XP)
	}
}

func TestRecordFocusSession(t *testing.T) {
	s := newTestService(t)

	res, err := s.RecordFocusSession(25)
	require.NoError(t, err)
	require.Equal(t, 5, res.XPAwarded) // ceil(25/5)

	p := s.Progress()
	require.Equal(t, 25, p.FocusMinutes)
	require.Equal(t, 5, p.XP)

	today := s.TodayStats()
	require.Equal(t, 25, today.FocusMinutes)
	require.Equal(t, 1, today.SessionsCompleted)
	require.Equal(t, 0, today.TasksCompleted)
}

func TestRecordFocusSession_RoundsXPUp(t *testing.T) {
	s := newTestService(t)

	res, err := s.RecordFocusSession(1)
	require.NoError(t, err)
	require.Equal(t, 1, res.XPAwarded)

	res, err = s.RecordFocusSession(11)
	require.NoError(t, err)
	require.Equal(t, 3, res.XPAwarded)
}

func TestRecordFocusSession_RejectsNonPositiveMinutes(t *testing.T) {
	s := newTestService(t)

	_, err := s.RecordFocusSession(0)
	require.ErrorIs(t, err, ErrInvalidMinutes)
	_, err = s.RecordFocusSession(-5)
	require.ErrorIs(t, err, ErrInvalidMinutes)
	require.Equal(t, 0, s.Progress().FocusMinutes)
}

func TestRecordBodyDoublingSession(t *testing.T) {
	s := newTestService(t)

	res, err := s.RecordBodyDoublingSession(25)
	require.NoError(t, err)
	require.Equal(t, 3, res.XPAwarded) // ceil(25/10)

	p := s.Progress()
	require.Equal(t, 25, p.BodyDoublingMinutes)
	require.Equal(t, 0, p.FocusMinutes)

	// Body doubling never touches the daily ledger.
	today := s.TodayStats()
	require.Equal(t, 0, today.SessionsCompleted)
	require.Equal(t, 0, today.FocusMinutes)
}

func completeOneTask(t *testing.T, s *Service) {
	t.Helper()
	task, err := s.AddTask(AddTaskInput{Title: "streak task"})
	require.NoError(t, err)
	done := true
	_, err = s.UpdateTask(task.ID, TaskPatch{Completed: &done})
	require.NoError(t, err)
}

func TestStreak_Lifecycle(t *testing.T) {
	s := newTestService(t)
	day1 := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	// First completion ever starts the streak at 1.
	setClock(s, day1)
	completeOneTask(t, s)
	require.Equal(t, 1, s.Progress().Streak)

	// A second completion on the same day never changes the streak.
	completeOneTask(t, s)
	require.Equal(t, 1, s.Progress().Streak)

	// Next calendar day extends it.
	setClock(s, day1.AddDate(0, 0, 1))
	completeOneTask(t, s)
	p := s.Progress()
	require.Equal(t, 2, p.Streak)
	require.Equal(t, 2, p.LongestStreak)

	// A gap of two or more days resets to 1 but keeps the longest.
	setClock(s, day1.AddDate(0, 0, 4))
	completeOneTask(t, s)
	p = s.Progress()
	require.Equal(t, 1, p.Streak)
	require.Equal(t, 2, p.LongestStreak)
	require.GreaterOrEqual(t, p.LongestStreak, p.Streak)
}
