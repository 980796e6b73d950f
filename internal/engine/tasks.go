package engine

import (
	"strings"
	"time"

	"betterfocus-api/internal/models"

	"github.com/google/uuid"
)

// AddTaskInput carries the caller-supplied fields for a new task.
type AddTaskInput struct {
	Title    string
	Notes    string
	Priority models.TaskPriority
	DueDate  string
}

// TaskPatch is a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Title        *string
	Notes        *string
	Completed    *bool
	Priority     *models.TaskPriority
	DueDate      *string
	FocusMinutes *int
}

// UpdateResult reports what an update did beyond the field merge. Completed
// is true only on a false→true transition, the single point where XP, streak,
// the daily ledger and achievements move.
type UpdateResult struct {
	Task      models.Task          `json:"task"`
	Completed bool                 `json:"completed"`
	XPAwarded int                  `json:"xpAwarded"`
	LevelUp   bool                 `json:"levelUp"`
	Unlocked  []models.Achievement `json:"unlocked,omitempty"`
}

// AddTask creates a task at the head of the list (most-recent-first). A blank
// or whitespace-only title is rejected without persisting anything.
func (s *Service) AddTask(in AddTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	priority := in.Priority
	if !priority.IsValid() {
		priority = models.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Notes:     in.Notes,
		Priority:  priority,
		DueDate:   in.DueDate,
		CreatedAt: s.nowMillis(),
	}
	s.doc.Tasks = append([]models.Task{task}, s.doc.Tasks...)
	s.persist()
	return &task, nil
}

// UpdateTask merges the patch into the task. Completing a task (false→true)
// atomically awards priority-sized XP, updates the streak, rolls today's
// stats and re-evaluates achievements. Un-completing clears completedAt but
// deliberately does not retract XP or counters; a later re-complete is a new
// false→true edge and awards again.
func (s *Service) UpdateTask(id string, patch TaskPatch) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return nil, ErrTaskNotFound
	}
	task := &s.doc.Tasks[idx]
	wasCompleted := task.Completed

	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			task.Title = title
		}
	}
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}
	if patch.Priority != nil && patch.Priority.IsValid() {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.FocusMinutes != nil && *patch.FocusMinutes >= 0 {
		task.FocusMinutes = *patch.FocusMinutes
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	res := &UpdateResult{}
	switch {
	case !wasCompleted && task.Completed:
		completedAt := s.nowMillis()
		task.CompletedAt = &completedAt

		res.Completed = true
		res.XPAwarded = task.Priority.XPValue()
		res.LevelUp = s.awardXP(res.XPAwarded)
		s.recordTaskCompletion()
		s.bumpDaily(dateKey(s.now()), func(d *models.DailyStats) {
			d.TasksCompleted++
		})
		res.Unlocked = s.checkAchievements()
	case wasCompleted && !task.Completed:
		task.CompletedAt = nil
	}

	s.persist()
	res.Task = *task
	return res, nil
}

// DeleteTask removes a task unconditionally; progress is never rolled back.
func (s *Service) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	s.doc.Tasks = append(s.doc.Tasks[:idx], s.doc.Tasks[idx+1:]...)
	s.persist()
	return nil
}

// Tasks returns a snapshot of all tasks, most recent first.
func (s *Service) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.doc.Tasks...)
}

// PendingTasks returns the tasks not yet completed.
func (s *Service) PendingTasks() []models.Task {
	return s.filterTasks(func(t models.Task) bool { return !t.Completed })
}

// CompletedTasks returns the tasks already completed.
func (s *Service) CompletedTasks() []models.Task {
	return s.filterTasks(func(t models.Task) bool { return t.Completed })
}

// CompletedTodayCount counts tasks whose completion fell on today's date.
func (s *Service) CompletedTodayCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := dateKey(s.now())
	count := 0
	for _, t := range s.doc.Tasks {
		if t.Completed && t.CompletedAt != nil && dateKey(time.UnixMilli(*t.CompletedAt)) == today {
			count++
		}
	}
	return count
}

func (s *Service) filterTasks(keep func(models.Task) bool) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, 0, len(s.doc.Tasks))
	for _, t := range s.doc.Tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) taskIndex(id string) int {
	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
