package handlers

import (
	"net/http"

	"betterfocus-api/internal/engine"
	"betterfocus-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title    string              `json:"title" binding:"required"`
	Notes    string              `json:"notes"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  string              `json:"dueDate"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// Pointer fields distinguish "absent" from zero values.
type UpdateTaskRequest struct {
	Title        *string              `json:"title"`
	Notes        *string              `json:"notes"`
	Completed    *bool                `json:"completed"`
	Priority     *models.TaskPriority `json:"priority"`
	DueDate      *string              `json:"dueDate"`
	FocusMinutes *int                 `json:"focusMinutes"`
}

// GetTasks handles GET /api/tasks
// Optional query param: filter=pending|completed; default returns everything.
func (a *API) GetTasks(c *gin.Context) {
	var tasks []models.Task
	switch c.Query("filter") {
	case "pending":
		tasks = a.engine.PendingTasks()
	case "completed":
		tasks = a.engine.CompletedTasks()
	default:
		tasks = a.engine.Tasks()
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":          tasks,
		"count":          len(tasks),
		"completedToday": a.engine.CompletedTodayCount(),
	})
}

// CreateTask handles POST /api/tasks
func (a *API) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := a.engine.AddTask(engine.AddTaskInput{
		Title:    req.Title,
		Notes:    req.Notes,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	a.publish("task_created", gin.H{"taskId": task.ID})
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
// Completion transitions ripple through XP, streak, daily stats and
// achievements inside the engine; the handler just reports what happened.
func (a *API) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := a.engine.UpdateTask(taskID, engine.TaskPatch{
		Title:        req.Title,
		Notes:        req.Notes,
		Completed:    req.Completed,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		FocusMinutes: req.FocusMinutes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if res.Completed {
		a.statsChanged()
		a.publish("task_completed", gin.H{
			"taskId":    res.Task.ID,
			"xpAwarded": res.XPAwarded,
		})
		a.publishProgress(res.LevelUp, res.Unlocked)
	} else {
		a.publish("task_updated", gin.H{"taskId": res.Task.ID})
	}

	c.JSON(http.StatusOK, res)
}

// DeleteTask handles DELETE /api/tasks/:id
func (a *API) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	if err := a.engine.DeleteTask(taskID); err != nil {
		writeError(c, err)
		return
	}

	a.publish("task_deleted", gin.H{"taskId": taskID})
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}
