package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const credentialKey = "announcement:credential"

// CredentialService keeps the announcement provider key in Redis,
// outside the in-memory core. An absent key just means the feature is
// disabled, never a fatal condition.
type CredentialService struct {
	redis *redis.Client
}

func NewCredentialService(redisClient *redis.Client) *CredentialService {
	return &CredentialService{redis: redisClient}
}

// Set stores the provider key. Blank keys are rejected.
func (s *CredentialService) Set(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("credential must not be empty")
	}
	if err := s.redis.Set(ctx, credentialKey, key, 0).Err(); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Get returns the stored key, or ErrMissingCredential when none is set.
func (s *CredentialService) Get(ctx context.Context) (string, error) {
	key, err := s.redis.Get(ctx, credentialKey).Result()
	if err == redis.Nil {
		return "", ErrMissingCredential
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return key, nil
}

// Exists reports whether a credential is stored.
func (s *CredentialService) Exists(ctx context.Context) bool {
	n, err := s.redis.Exists(ctx, credentialKey).Result()
	return err == nil && n > 0
}
