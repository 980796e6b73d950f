package main

import (
	"log"

	"betterfocus-api/internal/config"
	"betterfocus-api/internal/engine"
	"betterfocus-api/internal/handlers"
	"betterfocus-api/internal/realtime"
	"betterfocus-api/internal/routes"
	"betterfocus-api/internal/storage"
)

func main() {
	// Load configuration (defaults apply when config.yaml is absent)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Open the document store (file is created on first run)
	gateway, err := storage.OpenSqlite(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	// The engine loads persisted state once and owns it for the process
	svc := engine.New(gateway)
	hub := realtime.NewHub()
	api := handlers.New(svc, hub)

	ginRoutes := routes.SetupRoutes(api, cfg.CORS.AllowedOrigin)

	log.Printf("Server starting on %s", cfg.Server.Addr)
	log.Println("API endpoints:")
	log.Println("  GET    /api/tasks")
	log.Println("  POST   /api/tasks")
	log.Println("  PUT    /api/tasks/:id")
	log.Println("  DELETE /api/tasks/:id")
	log.Println("  GET    /api/progress")
	log.Println("  GET    /api/achievements")
	log.Println("  GET    /api/stats/weekly")
	log.Println("  POST   /api/focus/sessions")
	log.Println("  POST   /api/body-doubling/sessions")
	log.Println("  GET    /api/habits")
	log.Println("  POST   /api/habits/:id/complete")
	log.Println("  GET    /api/export")
	log.Println("  POST   /api/import")
	log.Println("  GET    /ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(cfg.Server.Addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
