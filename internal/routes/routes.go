package routes

import (
	"betterfocus-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the router around an already wired handler set.
func SetupRoutes(api *handlers.API, allowedOrigin string) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (the client UI runs on its own dev server)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "BetterFocus API is running",
		})
	})

	// Websocket endpoint for domain events
	ginRouter.GET("/ws", api.WebSocket)

	// Single-user local API; there is no authentication layer.
	apiRoutes := ginRouter.Group("/api")
	{
		// Task endpoints
		apiRoutes.GET("/tasks", api.GetTasks)
		apiRoutes.POST("/tasks", api.CreateTask)
		apiRoutes.PUT("/tasks/:id", api.UpdateTask)
		apiRoutes.DELETE("/tasks/:id", api.DeleteTask)

		// Progress and stats endpoints
		apiRoutes.GET("/progress", api.GetProgress)
		apiRoutes.GET("/achievements", api.GetAchievements)
		apiRoutes.GET("/stats/weekly", api.GetWeeklyStats)
		apiRoutes.GET("/stats/today", api.GetTodayStats)

		// Session endpoints
		apiRoutes.GET("/focus/sessions", api.GetFocusSessions)
		apiRoutes.POST("/focus/sessions", api.RecordFocusSession)
		apiRoutes.POST("/body-doubling/sessions", api.RecordBodyDoubling)

		// Habit endpoints
		apiRoutes.GET("/habits", api.GetHabits)
		apiRoutes.POST("/habits", api.CreateHabit)
		apiRoutes.PUT("/habits/:id", api.UpdateHabit)
		apiRoutes.DELETE("/habits/:id", api.DeleteHabit)
		apiRoutes.POST("/habits/:id/complete", api.CompleteHabit)

		// Settings and data endpoints
		apiRoutes.GET("/settings", api.GetSettings)
		apiRoutes.PUT("/settings", api.UpdateSettings)
		apiRoutes.GET("/export", api.ExportData)
		apiRoutes.POST("/import", api.ImportData)
		apiRoutes.POST("/reset", api.ResetData)
	}

	return ginRouter
}
