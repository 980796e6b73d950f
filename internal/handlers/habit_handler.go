package handlers

import (
	"net/http"
	"time"

	"betterfocus-api/internal/engine"
	"betterfocus-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateHabitRequest represents the request payload for creating a habit
type CreateHabitRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Frequency   models.HabitFrequency `json:"frequency"`
	Color       string                `json:"color"`
}

// UpdateHabitRequest represents the request payload for updating a habit
type UpdateHabitRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Frequency   *models.HabitFrequency `json:"frequency"`
	Color       *string                `json:"color"`
}

// habitView decorates a habit with its derived rolling-week completion rate.
type habitView struct {
	models.Habit
	CompletionPercentage int `json:"completionPercentage"`
}

// GetHabits handles GET /api/habits
func (a *API) GetHabits(c *gin.Context) {
	habits := a.engine.Habits()
	now := time.Now()

	views := make([]habitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, habitView{
			Habit:                h,
			CompletionPercentage: engine.CompletionPercentage(h, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"habits": views,
		"count":  len(views),
	})
}

// CreateHabit handles POST /api/habits
func (a *API) CreateHabit(c *gin.Context) {
	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := a.engine.AddHabit(engine.AddHabitInput{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Color:       req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	a.publish("habit_created", gin.H{"habitId": habit.ID})
	c.JSON(http.StatusCreated, habit)
}

// UpdateHabit handles PUT /api/habits/:id
func (a *API) UpdateHabit(c *gin.Context) {
	habitID := c.Param("id")
	if habitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Habit ID is required"})
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := a.engine.UpdateHabit(habitID, engine.HabitPatch{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Color:       req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	a.publish("habit_updated", gin.H{"habitId": habit.ID})
	c.JSON(http.StatusOK, habit)
}

// DeleteHabit handles DELETE /api/habits/:id
func (a *API) DeleteHabit(c *gin.Context) {
	habitID := c.Param("id")
	if habitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Habit ID is required"})
		return
	}

	if err := a.engine.DeleteHabit(habitID); err != nil {
		writeError(c, err)
		return
	}

	a.publish("habit_deleted", gin.H{"habitId": habitID})
	c.JSON(http.StatusOK, gin.H{
		"message": "Habit deleted successfully",
		"id":      habitID,
	})
}

// CompleteHabit handles POST /api/habits/:id/complete
// Marking is idempotent per day; the XP grant is not. The response carries
// alreadyCompleted so the client can tell the two apart.
func (a *API) CompleteHabit(c *gin.Context) {
	habitID := c.Param("id")
	if habitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Habit ID is required"})
		return
	}

	res, err := a.engine.CompleteHabitToday(habitID)
	if err != nil {
		writeError(c, err)
		return
	}

	a.publish("habit_completed", gin.H{
		"habitId":   res.Habit.ID,
		"xpAwarded": res.XPAwarded,
	})
	a.publishProgress(res.LevelUp, res.Unlocked)

	c.JSON(http.StatusOK, res)
}
