package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCredentialService(t *testing.T) *CredentialService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCredentialService(client)
}

func TestCredentialRoundTrip(t *testing.T) {
	s := newTestCredentialService(t)
	ctx := context.Background()

	assert.False(t, s.Exists(ctx))

	require.NoError(t, s.Set(ctx, "  secret-key  "))
	assert.True(t, s.Exists(ctx))

	key, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", key, "stored keys are trimmed")
}

func TestCredentialMissingIsSentinel(t *testing.T) {
	s := newTestCredentialService(t)

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestCredentialRejectsBlank(t *testing.T) {
	s := newTestCredentialService(t)

	assert.Error(t, s.Set(context.Background(), "   "))
	assert.False(t, s.Exists(context.Background()))
}
