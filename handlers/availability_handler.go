package handlers

import (
	"net/http"

	"mahjongmaven/models"
	"mahjongmaven/services"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
	gameService         *services.GameService
}

func NewAvailabilityHandler(availabilityService *services.AvailabilityService, gameService *services.GameService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
		gameService:         gameService,
	}
}

type SetAvailabilityRequest struct {
	Date      string `json:"date" binding:"required"`
	Available bool   `json:"available"`
	Hosting   bool   `json:"hosting"`
}

func (h *AvailabilityHandler) GetParticipants(c *gin.Context) {
	c.JSON(http.StatusOK, h.gameService.Roster())
}

func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	participantID := c.Param("participantId")
	if !h.onRoster(participantID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}

	c.JSON(http.StatusOK, h.availabilityService.ForParticipant(participantID))
}

func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	participantID := c.Param("participantId")
	if !h.onRoster(participantID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.availabilityService.Set(participantID, req.Date, models.DayAvailability{
		Available: req.Available,
		Hosting:   req.Hosting,
	})

	c.JSON(http.StatusOK, h.availabilityService.ForParticipant(participantID))
}

func (h *AvailabilityHandler) onRoster(participantID string) bool {
	for _, p := range h.gameService.Roster() {
		if p.ID == participantID {
			return true
		}
	}
	return false
}
