package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"mahjongmaven/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService         *services.GameService
	announcementService *services.AnnouncementService
	hub                 *services.Hub
}

func NewGameHandler(gameService *services.GameService, announcementService *services.AnnouncementService, hub *services.Hub) *GameHandler {
	return &GameHandler{
		gameService:         gameService,
		announcementService: announcementService,
		hub:                 hub,
	}
}

type CancelPlayerRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

type ChangeHostRequest struct {
	HostID string `json:"host_id" binding:"required"`
}

// Schedule archives elapsed games and computes a fresh proposal set
// over the coming week, in one step.
func (h *GameHandler) Schedule(c *gin.Context) {
	games := h.gameService.Reschedule(time.Now())

	if h.hub != nil {
		h.hub.Broadcast("schedule_update", gin.H{"games": games})
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.gameService.Games())
}

func (h *GameHandler) FinalizeGame(c *gin.Context) {
	date := c.Param("date")

	h.gameService.FinalizeGame(date)

	if game, ok := h.gameService.GameByDate(date); ok && h.hub != nil {
		h.hub.Broadcast("game_finalized", gin.H{"game": game})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game finalized"})
}

func (h *GameHandler) CancelPlayer(c *gin.Context) {
	date := c.Param("date")

	var req CancelPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.gameService.CancelPlayer(date, req.ParticipantID)

	if game, ok := h.gameService.GameByDate(date); ok && h.hub != nil {
		h.hub.Broadcast("player_cancelled", gin.H{
			"game":           game,
			"participant_id": req.ParticipantID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cancellation processed"})
}

func (h *GameHandler) ChangeHost(c *gin.Context) {
	date := c.Param("date")

	var req ChangeHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.gameService.ChangeHost(date, req.HostID)

	if game, ok := h.gameService.GameByDate(date); ok && h.hub != nil {
		h.hub.Broadcast("host_changed", gin.H{"game": game})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Host change processed"})
}

// GetAnnouncement asks the provider for a witty announcement text.
// Failures are classified and surfaced as messages; the game itself is
// untouched either way.
func (h *GameHandler) GetAnnouncement(c *gin.Context) {
	date := c.Param("date")

	game, ok := h.gameService.GameByDate(date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	text, err := h.announcementService.Generate(c.Request.Context(), game)
	if err != nil {
		var providerErr *services.ProviderError
		switch {
		case errors.Is(err, services.ErrMissingCredential):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No API key configured. Announcements are disabled."})
		case errors.Is(err, services.ErrInvalidCredential):
			c.JSON(http.StatusBadRequest, gin.H{"error": "The configured API key was rejected by the provider."})
		case errors.As(err, &providerErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": providerErr.Message})
		default:
			log.Printf("Error generating announcement for %s: %v", date, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate announcement"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcement": text})
}

// DownloadCalendar serves the game's calendar event as an .ics file.
func (h *GameHandler) DownloadCalendar(c *gin.Context) {
	date := c.Param("date")

	game, ok := h.gameService.GameByDate(date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	ics, err := services.BuildICS(game, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar event"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=mahjong-game-%s.ics", game.Date))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
