package engine

import (
	"log"
	"sync"
	"time"

	"betterfocus-api/internal/models"
	"betterfocus-api/internal/storage"
)

// Service owns all domain state for the single device user. It is constructed
// once at startup and injected into the delivery layer; every mutation runs
// under one mutex, so the domain stays logically single-writer even though
// the HTTP layer serves requests concurrently.
type Service struct {
	mu  sync.Mutex
	gw  storage.Gateway
	doc *models.Document

	// now is an indirection for tests that replay streaks across days.
	now func() time.Time
}

// New loads the persisted document through the gateway, seeding sample state
// when nothing is stored yet or the stored blob cannot be decoded. Startup
// never fails on a bad document.
func New(gw storage.Gateway) *Service {
	s := &Service{gw: gw, now: time.Now}

	doc, err := gw.Load()
	switch {
	case err != nil:
		log.Printf("engine: discarding stored document, starting fresh: %v", err)
		s.doc = sampleDocument(s.now())
		s.persist()
	case doc == nil:
		s.doc = sampleDocument(s.now())
		s.persist()
	default:
		doc.Normalize(s.now().UnixMilli())
		doc.ExportDate = ""
		s.doc = doc
	}
	return s
}

// persist writes the document back through the gateway. Persistence is
// best-effort: on failure the in-memory state remains authoritative and the
// next successful save restores durability. Callers must hold s.mu.
func (s *Service) persist() {
	if err := s.gw.Save(s.doc); err != nil {
		log.Printf("engine: save failed (state kept in memory): %v", err)
	}
}

func (s *Service) nowMillis() int64 {
	return s.now().UnixMilli()
}

// sampleDocument is the first-run state: a few onboarding tasks and starter
// habits so the client has something to show, with the progress the sample
// completed task implies.
func sampleDocument(now time.Time) *models.Document {
	nowMs := now.UnixMilli()
	doneAt := nowMs - 12*int64(time.Hour/time.Millisecond)

	doc := models.DefaultDocument(nowMs)
	doc.Tasks = []models.Task{
		{
			ID:           "1",
			Title:        "Complete onboarding",
			Completed:    true,
			Priority:     models.PriorityHigh,
			CreatedAt:    nowMs - 24*int64(time.Hour/time.Millisecond),
			CompletedAt:  &doneAt,
			FocusMinutes: 15,
		},
		{
			ID:        "2",
			Title:     "Try the focus timer",
			Notes:     "Pomodoro technique",
			Priority:  models.PriorityMedium,
			CreatedAt: nowMs - int64(time.Hour/time.Millisecond),
		},
		{
			ID:        "3",
			Title:     "Add your first real task",
			Notes:     "Start building your task list",
			Priority:  models.PriorityMedium,
			CreatedAt: nowMs - 30*int64(time.Minute/time.Millisecond),
		},
	}
	doc.Habits = []models.Habit{
		{
			ID:             "1",
			Name:           "Morning Exercise",
			Description:    "Start your day with movement",
			Frequency:      models.FrequencyDaily,
			TargetDays:     7,
			CreatedAt:      nowMs,
			CompletedDates: []string{},
			Color:          "bg-blue-500",
		},
		{
			ID:             "2",
			Name:           "Read",
			Description:    "Read for at least 15 minutes",
			Frequency:      models.FrequencyDaily,
			TargetDays:     7,
			CreatedAt:      nowMs,
			CompletedDates: []string{},
			Color:          "bg-purple-500",
		},
	}
	doc.UserProgress.TasksCompleted = 1
	doc.UserProgress.XP = 50
	doc.UserProgress.CurrentLevelXp = 50
	return doc
}
