package handlers

import (
	"net/http"

	"mahjongmaven/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	gameService *services.GameService
	hub         *services.Hub
}

func NewHistoryHandler(gameService *services.GameService, hub *services.Hub) *HistoryHandler {
	return &HistoryHandler{
		gameService: gameService,
		hub:         hub,
	}
}

type SetWinnerRequest struct {
	WinnerID string `json:"winner_id" binding:"required"`
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.gameService.History())
}

func (h *HistoryHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.gameService.Stats())
}

func (h *HistoryHandler) SetWinner(c *gin.Context) {
	date := c.Param("date")

	var req SetWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.gameService.SetWinner(date, req.WinnerID)

	if h.hub != nil {
		h.hub.Broadcast("winner_recorded", gin.H{
			"date":      date,
			"winner_id": req.WinnerID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Winner recorded"})
}
