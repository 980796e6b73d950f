package engine

import (
	"testing"
	"time"

	"betterfocus-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAddTask_RejectsBlankTitle(t *testing.T) {
	s := newTestService(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.AddTask(AddTaskInput{Title: title})
		require.ErrorIs(t, err, ErrEmptyTitle)
	}
	require.Empty(t, s.Tasks())
}

func TestAddTask_InsertsAtHeadWithDefaults(t *testing.T) {
	s := newTestService(t)

	first, err := s.AddTask(AddTaskInput{Title: "first", Priority: models.PriorityLow})
	require.NoError(t, err)
	second, err := s.AddTask(AddTaskInput{Title: "second"})
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	require.Equal(t, second.ID, tasks[0].ID)
	require.Equal(t, first.ID, tasks[1].ID)
	require.Equal(t, models.PriorityMedium, tasks[0].Priority)
	require.False(t, tasks[0].Completed)
	require.Nil(t, tasks[0].CompletedAt)
}

// The first high-priority completion from a pristine state: 25 XP, no level
// change, streak started, First Steps earned.
func TestCompleteTask_FirstHighPriorityScenario(t *testing.T) {
	s := newTestService(t)

	task, err := s.AddTask(AddTaskInput{Title: "Ship it", Priority: models.PriorityHigh})
	require.NoError(t, err)

	done := true
	res, err := s.UpdateTask(task.ID, TaskPatch{Completed: &done})
	require.NoError(t, err)
	require.True(t, res.Completed)
	require.Equal(t, 25, res.XPAwarded)
	require.False(t, res.LevelUp)
	require.NotNil(t, res.Task.CompletedAt)

	p := s.Progress()
	require.Equal(t, 1, p.Level)
	require.Equal(t, 25, p.XP)
	require.Equal(t, 25, p.CurrentLevelXp)
	require.Equal(t, 1, p.TasksCompleted)
	require.Equal(t, 1, p.Streak)

	require.Len(t, res.Unlocked, 1)
	require.Equal(t, "First Steps", res.Unlocked[0].Name)
	require.Equal(t, 1, s.CompletedTodayCount())
}

func TestCompleteTask_XPSizedByPriority(t *testing.T) {
	s := newTestService(t)
	done := true

	cases := []struct {
		priority models.TaskPriority
		xp       int
	}{
		{models.PriorityHigh, 25},
		{models.PriorityMedium, 15},
		{models.PriorityLow, 10},
	}
	for _, tc := range cases {
		task, err := s.AddTask(AddTaskInput{Title: "task", Priority: tc.priority})
		require.NoError(t, err)
		res, err := s.UpdateTask(task.ID, TaskPatch{Completed: &done})
		require.NoError(t, err)
		require.Equal(t, tc.xp, res.XPAwarded)
	}
}

func TestUpdateTask_AwardsOnlyOnFalseToTrueEdge(t *testing.T) {
	s := newTestService(t)

	task, err := s.AddTask(AddTaskInput{Title: "toggle me", Priority: models.PriorityHigh})
	require.NoError(t, err)

	done := true
	res, err := s.UpdateTask(task.ID, TaskPatch{Completed: &done})
	require.NoError(t, err)
	require.Equal(t, 25, res.XPAwarded)

	// A true→true no-op update must not award again.
	notes := "still done"
	res, err = s.UpdateTask(task.ID, TaskPatch{Notes: &notes, Completed: &done})
	require.NoError(t, err)
	require.False(t, res.Completed)
	require.Zero(t, res.XPAwarded)
	require.Equal(t, 25, s.Progress().XP)
	require.Equal(t, 1, s.Progress().TasksCompleted)
}

func TestUpdateTask_UncompleteKeepsProgress(t *testing.T) {
	s := newTestService(t)

	task, err := s.AddTask(AddTaskInput{Title: "undo me", Priority: models.PriorityLow})
	require.NoError(t, err)

	done, undone := true, false
	_, err = s.UpdateTask(task.ID, TaskPatch{Completed: &done})
	require.NoError(t, err)

	// Un-completing clears completedAt but retracts nothing.
	res, err := s.UpdateTask(task.ID, TaskPatch{Completed: &undone})
	require.NoError(t, err)
	require.Nil(t, res.Task.CompletedAt)
	require.Equal(t, 10, s.Progress().XP)
	require.Equal(t, 1, s.Progress().TasksCompleted)

	// Re-completing is a fresh false→true edge and awards again.
	res, err = s.UpdateTask(task.ID, TaskPatch{Completed: &done})
	require.NoError(t, err)
	require.Equal(t, 10, res.XPAwarded)
	require.Equal(t, 20, s.Progress().XP)
	require.Equal(t, 2, s.Progress().TasksCompleted)
}

func TestUpdateTask_NotFound(t *testing.T) {
	s := newTestService(t)
	done := true
	_, err := s.UpdateTask("nope", TaskPatch{Completed: &done})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	s := newTestService(t)

	task, err := s.AddTask(AddTaskInput{Title: "short-lived"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask(task.ID))
	require.Empty(t, s.Tasks())
	require.ErrorIs(t, s.DeleteTask(task.ID), ErrTaskNotFound)
}

func TestTaskQueries(t *testing.T) {
	s := newTestService(t)
	done := true

	open, err := s.AddTask(AddTaskInput{Title: "open"})
	require.NoError(t, err)
	closed, err := s.AddTask(AddTaskInput{Title: "closed"})
	require.NoError(t, err)
	_, err = s.UpdateTask(closed.ID, TaskPatch{Completed: &done})
	require.NoError(t, err)

	pending := s.PendingTasks()
	require.Len(t, pending, 1)
	require.Equal(t, open.ID, pending[0].ID)

	completed := s.CompletedTasks()
	require.Len(t, completed, 1)
	require.Equal(t, closed.ID, completed[0].ID)
}

func TestAchievements_SpeedDemonAndMonotonicity(t *testing.T) {
	s := newTestService(t)
	done := true

	for i := 0; i < 5; i++ {
		task, err := s.AddTask(AddTaskInput{Title: "sprint"})
		require.NoError(t, err)
		_, err = s.UpdateTask(task.ID, TaskPatch{Completed: &done})
		require.NoError(t, err)
	}

	byID := achievementsByID(s)
	require.True(t, byID[1].Unlocked) // First Steps
	require.True(t, byID[7].Unlocked) // Speed Demon: 5 tasks today
	require.NotNil(t, byID[7].UnlockedAt)
	unlockedAt := *byID[7].UnlockedAt

	// Further operations never re-lock or re-stamp.
	setClock(s, time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC))
	completeOneTask(t, s)
	byID = achievementsByID(s)
	require.True(t, byID[7].Unlocked)
	require.Equal(t, unlockedAt, *byID[7].UnlockedAt)
}

func TestAchievements_NightOwl(t *testing.T) {
	s := newTestService(t)

	setClock(s, time.Date(2025, 3, 10, 23, 15, 0, 0, time.UTC))
	completeOneTask(t, s)
	require.True(t, achievementsByID(s)[6].Unlocked)
}

func TestAchievements_BreathingBuddhaStaysLocked(t *testing.T) {
	s := newTestService(t)

	for i := 0; i < 12; i++ {
		completeOneTask(t, s)
	}
	_, err := s.RecordFocusSession(400)
	require.NoError(t, err)
	require.False(t, achievementsByID(s)[9].Unlocked)
}

func TestAchievements_FocusBeast(t *testing.T) {
	s := newTestService(t)

	_, err := s.RecordFocusSession(299)
	require.NoError(t, err)
	require.False(t, achievementsByID(s)[8].Unlocked)

	_, err = s.RecordFocusSession(1)
	require.NoError(t, err)
	require.True(t, achievementsByID(s)[8].Unlocked)
}

func TestAchievements_CoworkerChampion(t *testing.T) {
	s := newTestService(t)

	_, err := s.RecordBodyDoublingSession(60)
	require.NoError(t, err)
	require.True(t, achievementsByID(s)[10].Unlocked)
}

func achievementsByID(s *Service) map[int]models.Achievement {
	out := make(map[int]models.Achievement)
	for _, a := range s.Achievements() {
		out[a.ID] = a
	}
	return out
}
