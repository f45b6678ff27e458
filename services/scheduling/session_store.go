package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tranquilflow/models"

	"github.com/go-redis/redis/v8"
)

// sessionTTL bounds how long an abandoned scheduling session survives.
const sessionTTL = 30 * time.Minute

// RedisSessionStore keeps scheduling sessions as JSON blobs in Redis.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore constructs a session store over the given client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(sessionID string) string {
	return "scheduling:" + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("scheduling session not found or expired: %w", err)
	}
	var session models.SchedulingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse scheduling session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.SchedulingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduling session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store scheduling session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete scheduling session: %w", err)
	}
	return nil
}
