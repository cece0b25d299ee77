package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnnouncementService(t *testing.T, handler http.HandlerFunc) *AnnouncementService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	credentials := newTestCredentialService(t)
	require.NoError(t, credentials.Set(context.Background(), "test-key"))

	return NewAnnouncementService(credentials, server.URL)
}

func TestGenerateAnnouncement(t *testing.T) {
	var gotPath string
	s := newTestAnnouncementService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Bob hosts on Monday! "}]}}]}`))
	})

	text, err := s.Generate(context.Background(), fullGame("2025-06-02"))

	require.NoError(t, err)
	assert.Equal(t, "Bob hosts on Monday!", text)
	assert.True(t, strings.HasSuffix(gotPath, "/models/gemini-2.5-flash:generateContent"))
}

func TestGenerateAnnouncementMissingCredential(t *testing.T) {
	credentials := newTestCredentialService(t)
	s := NewAnnouncementService(credentials, "http://localhost:0")

	_, err := s.Generate(context.Background(), fullGame("2025-06-02"))

	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGenerateAnnouncementInvalidCredential(t *testing.T) {
	s := newTestAnnouncementService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusForbidden)
	})

	_, err := s.Generate(context.Background(), fullGame("2025-06-02"))

	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGenerateAnnouncementProviderFailure(t *testing.T) {
	s := newTestAnnouncementService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	})

	_, err := s.Generate(context.Background(), fullGame("2025-06-02"))

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, providerErr.Message, "backend exploded")
}

func TestGenerateAnnouncementEmptyResponse(t *testing.T) {
	s := newTestAnnouncementService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := s.Generate(context.Background(), fullGame("2025-06-02"))

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, providerErr.Message, "no text returned")
}

func TestBuildPromptMentionsGameDetails(t *testing.T) {
	prompt := buildPrompt(fullGame("2025-06-02"))

	assert.Contains(t, prompt, "Monday, June 2, 2025")
	assert.Contains(t, prompt, "Host: Bob")
	assert.Contains(t, prompt, "Alice, Bob, Carol, Dana")
}
