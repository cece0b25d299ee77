package routes

import (
	"log"
	"net/http"

	"mahjongmaven/handlers"
	"mahjongmaven/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	availabilityHandler *handlers.AvailabilityHandler,
	gameHandler *handlers.GameHandler,
	historyHandler *handlers.HistoryHandler,
	credentialHandler *handlers.CredentialHandler,
	hub *services.Hub,
) {
	// API routes
	api := router.Group("/api")
	{
		api.GET("/participants", availabilityHandler.GetParticipants)

		availability := api.Group("/availability")
		{
			availability.GET("/:participantId", availabilityHandler.GetAvailability)
			availability.PUT("/:participantId", availabilityHandler.SetAvailability)
		}

		api.POST("/schedule", gameHandler.Schedule)

		games := api.Group("/games")
		{
			games.GET("", gameHandler.GetGames)
			games.POST("/:date/finalize", gameHandler.FinalizeGame)
			games.POST("/:date/cancel", gameHandler.CancelPlayer)
			games.POST("/:date/host", gameHandler.ChangeHost)
			games.GET("/:date/announcement", gameHandler.GetAnnouncement)
			games.GET("/:date/calendar", gameHandler.DownloadCalendar)
		}

		api.GET("/history", historyHandler.GetHistory)
		api.PUT("/history/:date/winner", historyHandler.SetWinner)
		api.GET("/stats", historyHandler.GetStats)

		api.POST("/credential", credentialHandler.SetCredential)
		api.GET("/credential/status", credentialHandler.GetCredentialStatus)
	}

	// WebSocket feed for schedule updates
	router.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		hub.RegisterClient(conn)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
