package engine

import (
	"time"

	"betterfocus-api/internal/models"
)

// dateKey formats a time as the ISO calendar-date key used throughout the
// daily ledger and habit completion sets.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekdayStat is one entry of the weekly chart window.
type WeekdayStat struct {
	Day     string `json:"day"`
	Tasks   int    `json:"tasks"`
	Minutes int    `json:"minutes"`
}

// weekdayLabels is Monday-first; time.Weekday counts from Sunday, hence the
// (weekday+6)%7 remap below.
var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// bumpDaily finds or creates the ledger record for date and applies fn to it.
// At most one record exists per date. Callers must hold s.mu.
func (s *Service) bumpDaily(date string, fn func(*models.DailyStats)) {
	for i := range s.doc.DailyStats {
		if s.doc.DailyStats[i].Date == date {
			fn(&s.doc.DailyStats[i])
			return
		}
	}
	entry := models.DailyStats{Date: date}
	fn(&entry)
	s.doc.DailyStats = append(s.doc.DailyStats, entry)
}

// todayStats returns today's ledger record, zero-valued when absent.
// Callers must hold s.mu.
func (s *Service) todayStats() models.DailyStats {
	return statsFor(s.doc.DailyStats, dateKey(s.now()))
}

// TodayStats returns today's aggregates for the dashboard.
func (s *Service) TodayStats() models.DailyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayStats()
}

// WeeklyStats returns the chart window for the last 7 days ending today.
func (s *Service) WeeklyStats() []WeekdayStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return weeklyWindow(s.doc.DailyStats, s.now())
}

// weeklyWindow derives exactly seven entries covering the last seven calendar
// days ending at now, oldest first, zero-filled for dates with no record.
func weeklyWindow(stats []models.DailyStats, now time.Time) []WeekdayStat {
	window := make([]WeekdayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := statsFor(stats, dateKey(day))
		window = append(window, WeekdayStat{
			Day:     weekdayLabels[(int(day.Weekday())+6)%7],
			Tasks:   entry.TasksCompleted,
			Minutes: entry.FocusMinutes,
		})
	}
	return window
}

func statsFor(stats []models.DailyStats, date string) models.DailyStats {
	for _, st := range stats {
		if st.Date == date {
			return st
		}
	}
	return models.DailyStats{Date: date}
}
