package handlers

import (
	"errors"
	"net/http"
	"time"

	"betterfocus-api/internal/cache"
	"betterfocus-api/internal/engine"
	"betterfocus-api/internal/models"
	"betterfocus-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// weeklyStatsTTL bounds how stale the memoized weekly chart may get; the
// cache is also cleared on every mutation that can move the numbers.
const weeklyStatsTTL = 30 * time.Second

// API bundles the handlers' dependencies: the domain engine, the websocket
// hub for pushing events to open client windows, and a small cache for
// derived read endpoints.
type API struct {
	engine *engine.Service
	hub    *realtime.Hub
	weekly *cache.TTLCache[string, []engine.WeekdayStat]
}

// New wires an API around an engine and a hub.
func New(svc *engine.Service, hub *realtime.Hub) *API {
	return &API{
		engine: svc,
		hub:    hub,
		weekly: cache.New[string, []engine.WeekdayStat](),
	}
}

// publish pushes a domain event to connected clients.
func (a *API) publish(eventType string, payload map[string]any) {
	a.hub.Publish(eventType, payload)
}

// publishProgress emits the follow-up events a progress-moving operation can
// produce: a level_up when the bar rolled over and one achievement_unlocked
// per newly earned badge.
func (a *API) publishProgress(levelUp bool, unlocked []models.Achievement) {
	if levelUp {
		a.publish("level_up", gin.H{"level": a.engine.Progress().Level})
	}
	for _, ach := range unlocked {
		a.publish("achievement_unlocked", gin.H{
			"achievementId": ach.ID,
			"name":          ach.Name,
		})
	}
}

// statsChanged drops memoized derivations after any mutation.
func (a *API) statsChanged() {
	a.weekly.Clear()
}

// writeError maps engine errors to the HTTP surface: validation rejections
// become 400s, missing entities 404s.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrTaskNotFound), errors.Is(err, engine.ErrHabitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrEmptyTitle), errors.Is(err, engine.ErrEmptyName),
		errors.Is(err, engine.ErrInvalidMinutes), errors.Is(err, engine.ErrInvalidDocument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
