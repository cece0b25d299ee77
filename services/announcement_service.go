package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"mahjongmaven/models"
)

var (
	// ErrMissingCredential means no provider key is stored; the
	// announcement feature is simply disabled.
	ErrMissingCredential = errors.New("no announcement credential configured")
	// ErrInvalidCredential means the provider rejected the stored key.
	ErrInvalidCredential = errors.New("announcement credential rejected by provider")
)

// ProviderError carries an upstream failure message through to the
// caller for display. It never affects game state.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "announcement provider error: " + e.Message
}

const announcementModel = "gemini-2.5-flash"

// AnnouncementService generates a short game announcement through the
// Gemini generateContent endpoint. Purely informational: a failure
// here never gates finalization.
type AnnouncementService struct {
	credentials *CredentialService
	baseURL     string
	client      *http.Client
}

func NewAnnouncementService(credentials *CredentialService, baseURL string) *AnnouncementService {
	return &AnnouncementService{
		credentials: credentials,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate produces an announcement for a game, or classifies the
// failure as missing credential, invalid credential or provider error.
func (s *AnnouncementService) Generate(ctx context.Context, game models.Game) (string, error) {
	key, err := s.credentials.Get(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(game)}}}},
	})
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, announcementModel, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Message: err.Error()}
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		log.Printf("Announcement provider rejected credential: status %d", resp.StatusCode)
		return "", ErrInvalidCredential
	default:
		return "", &ProviderError{Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))}
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ProviderError{Message: err.Error()}
	}
	if parsed.Error != nil {
		return "", &ProviderError{Message: parsed.Error.Message}
	}

	text := ""
	if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		text = strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	}
	if text == "" {
		return "", &ProviderError{Message: "no text returned from provider"}
	}
	return text, nil
}

func buildPrompt(game models.Game) string {
	date := game.Date
	if d, err := time.Parse(gameDateLayout, game.Date); err == nil {
		date = d.Format("Monday, January 2, 2006")
	}

	return fmt.Sprintf(`You are a fun and witty social coordinator for a group of ladies who play Mah Jong.
Your task is to write a short, exciting, and friendly announcement for an upcoming game.

Here are the details for the game:
- Date: %s
- Host: %s
- Players: %s

Make the announcement sound fun and personal. Mention the host and the players.
Do not use emojis. Keep it to 2-3 short sentences.`, date, game.Host.Name, joinNames(game.Players))
}
