package redis

import (
	"context"
	"errors"
	"time"

	"filebox/internal/store"

	goredis "github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session entries in the shared cache.
const sessionKeyPrefix = "auth_"

// SessionStore is the Redis implementation of the store.SessionStore
// interface. Entries expire server-side, so a missing key covers both
// "never issued" and "expired".
type SessionStore struct {
	client *Client
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}

// Set stores token -> userID with the given time-to-live.
func (s *SessionStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	if token == "" || userID == "" {
		return errors.New("session: missing token or user id")
	}
	return s.client.Client.Set(ctx, s.key(token), userID, ttl).Err()
}

// Get returns the userID bound to a token, or store.ErrNotFound if the token
// is missing or has expired.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	val, err := s.client.Client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Del removes a token and reports whether an entry existed. Deleting an
// absent token is not an error.
func (s *SessionStore) Del(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
