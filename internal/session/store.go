// Package session implements the server-side session store backing login state.
// A session is an opaque token handed to the client in a cookie; the token maps
// to a user ID in Redis with a TTL. Logging in and out touches only this store,
// never the database.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the session token.
const CookieName = "warbler_session"

const keyPrefix = "session:%s"

// ErrStoreUnavailable is returned when no Redis client is configured.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store binds session tokens to user IDs.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a Store writing to rdb with the given session lifetime.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(token string) string {
	return fmt.Sprintf(keyPrefix, token)
}

// Create establishes a new session for userID and returns its token.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	if s.rdb == nil {
		return "", ErrStoreUnavailable
	}

	token := uuid.New().String()
	val := strconv.FormatUint(uint64(userID), 10)
	if err := s.rdb.Set(ctx, key(token), val, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Get resolves a token to the bound user ID. The second return is false when
// the token is unknown or expired; that is not an error.
func (s *Store) Get(ctx context.Context, token string) (uint, bool, error) {
	if s.rdb == nil || token == "" {
		return 0, false, nil
	}

	val, err := s.rdb.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		// A corrupt entry is treated as no session; it will age out via TTL.
		return 0, false, nil
	}
	return uint(userID), true, nil
}

// Destroy removes the session bound to token. Destroying an absent session is
// a no-op, so logout is idempotent.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if s.rdb == nil || token == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// DestroyAllForUser removes every session bound to userID. Used when an
// account is deleted.
func (s *Store) DestroyAllForUser(ctx context.Context, userID uint) error {
	if s.rdb == nil {
		return nil
	}

	val := strconv.FormatUint(uint64(userID), 10)
	iter := s.rdb.Scan(ctx, 0, fmt.Sprintf(keyPrefix, "*"), 100).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		got, err := s.rdb.Get(ctx, k).Result()
		if err != nil {
			continue
		}
		if got == val {
			s.rdb.Del(ctx, k)
		}
	}
	return iter.Err()
}
