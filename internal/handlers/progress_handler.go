package handlers

import (
	"net/http"
	"time"

	"betterfocus-api/internal/engine"
	"betterfocus-api/internal/models"

	"github.com/gin-gonic/gin"
)

// FocusSessionRequest records a finished timer run. Minutes drives the
// progress credit; the remaining fields describe the history entry.
type FocusSessionRequest struct {
	Minutes   int                `json:"minutes" binding:"required"`
	StartTime int64              `json:"startTime"`
	EndTime   int64              `json:"endTime"`
	Type      models.SessionType `json:"type"`
	Completed bool               `json:"completed"`
	Notes     string             `json:"notes"`
}

// Duration derives the stored session length, defaulting to the credited
// minutes when the client did not send an explicit span.
func (r FocusSessionRequest) Duration() int {
	if r.EndTime > r.StartTime && r.StartTime > 0 {
		return int(time.UnixMilli(r.EndTime).Sub(time.UnixMilli(r.StartTime)) / time.Minute)
	}
	return r.Minutes
}

// BodyDoublingRequest records a finished co-working session.
type BodyDoublingRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

// GetProgress handles GET /api/progress
func (a *API) GetProgress(c *gin.Context) {
	c.JSON(http.StatusOK, a.engine.Progress())
}

// GetAchievements handles GET /api/achievements
func (a *API) GetAchievements(c *gin.Context) {
	achievements := a.engine.Achievements()
	unlocked := 0
	for _, ach := range achievements {
		if ach.Unlocked {
			unlocked++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"achievements": achievements,
		"unlocked":     unlocked,
		"total":        len(achievements),
	})
}

// GetWeeklyStats handles GET /api/stats/weekly
// The window is memoized per calendar day with a short TTL and invalidated
// whenever a mutation can move the numbers.
func (a *API) GetWeeklyStats(c *gin.Context) {
	key := time.Now().Format("2006-01-02")
	window, ok := a.weekly.Get(key)
	if !ok {
		window = a.engine.WeeklyStats()
		a.weekly.Set(key, window, weeklyStatsTTL)
	}
	c.JSON(http.StatusOK, gin.H{"days": window})
}

// GetTodayStats handles GET /api/stats/today
func (a *API) GetTodayStats(c *gin.Context) {
	c.JSON(http.StatusOK, a.engine.TodayStats())
}

// RecordFocusSession handles POST /api/focus/sessions
// One call credits the minutes (XP, totals, daily ledger) and appends the
// session to the history list.
func (a *API) RecordFocusSession(c *gin.Context) {
	var req FocusSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := a.engine.RecordFocusSession(req.Minutes)
	if err != nil {
		writeError(c, err)
		return
	}

	duration := req.Duration()
	session := a.engine.AddFocusSessionRecord(engine.FocusSessionInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  duration,
		Type:      req.Type,
		Completed: req.Completed,
		Notes:     req.Notes,
	})

	a.statsChanged()
	a.publish("session_recorded", gin.H{
		"sessionId": session.ID,
		"minutes":   res.Minutes,
		"xpAwarded": res.XPAwarded,
	})
	a.publishProgress(res.LevelUp, res.Unlocked)

	c.JSON(http.StatusCreated, gin.H{
		"session": session,
		"result":  res,
	})
}

// RecordBodyDoubling handles POST /api/body-doubling/sessions
func (a *API) RecordBodyDoubling(c *gin.Context) {
	var req BodyDoublingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := a.engine.RecordBodyDoublingSession(req.Minutes)
	if err != nil {
		writeError(c, err)
		return
	}

	a.publish("session_recorded", gin.H{
		"kind":      "body_doubling",
		"minutes":   res.Minutes,
		"xpAwarded": res.XPAwarded,
	})
	a.publishProgress(res.LevelUp, res.Unlocked)

	c.JSON(http.StatusCreated, res)
}

// GetFocusSessions handles GET /api/focus/sessions
func (a *API) GetFocusSessions(c *gin.Context) {
	sessions := a.engine.FocusSessions()
	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}
