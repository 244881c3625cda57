// File: services/booking/session_store.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nafis/config"
	"nafis/models"
	"nafis/utils"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "booking_session:"

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore constructs a SessionStore over the dedicated session
// Redis database. The TTL resets on every save, so an active wizard stays
// alive while an abandoned one expires.
func NewRedisSessionStore() SessionStore {
	return &redisSessionStore{
		client: utils.GetSessionCacheClient(),
		ttl:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err()
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
