package handlers

import (
	"net/http"

	"mahjongmaven/services"

	"github.com/gin-gonic/gin"
)

type CredentialHandler struct {
	credentialService *services.CredentialService
}

func NewCredentialHandler(credentialService *services.CredentialService) *CredentialHandler {
	return &CredentialHandler{credentialService: credentialService}
}

type SetCredentialRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

func (h *CredentialHandler) SetCredential(c *gin.Context) {
	var req SetCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.credentialService.Set(c.Request.Context(), req.APIKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credential stored"})
}

func (h *CredentialHandler) GetCredentialStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"configured": h.credentialService.Exists(c.Request.Context()),
	})
}
