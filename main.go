package main

import (
	"context"
	"log"

	"mahjongmaven/config"
	"mahjongmaven/handlers"
	"mahjongmaven/middleware"
	"mahjongmaven/models"
	"mahjongmaven/routes"
	"mahjongmaven/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(&models.Participant{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load the roster; it is fixed for the session
	roster, err := services.LoadRoster(db)
	if err != nil {
		log.Fatal("Failed to load roster:", err)
	}
	log.Printf("Loaded roster with %d participants", len(roster))

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	availabilityService := services.NewAvailabilityService()
	gameService := services.NewGameService(roster, availabilityService)
	credentialService := services.NewCredentialService(redisClient)
	announcementService := services.NewAnnouncementService(credentialService, cfg.GeminiAPIURL)

	// A key from the environment bootstraps the credential store
	if cfg.GeminiAPIKey != "" {
		if err := credentialService.Set(context.Background(), cfg.GeminiAPIKey); err != nil {
			log.Printf("Failed to store bootstrap credential: %v", err)
		}
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize handlers
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, gameService)
	gameHandler := handlers.NewGameHandler(gameService, announcementService, hub)
	historyHandler := handlers.NewHistoryHandler(gameService, hub)
	credentialHandler := handlers.NewCredentialHandler(credentialService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, availabilityHandler, gameHandler, historyHandler, credentialHandler, hub)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
