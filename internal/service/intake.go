package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hospistay/backend/internal/types"
)

// intakeTTL bounds how long a submitted intake waits for its result view
const intakeTTL = 30 * time.Minute

// RedisIntakeStore holds each user's pending intake between the intake step
// and the result step. One key per user; the payload is the raw form JSON.
type RedisIntakeStore struct {
	redis *redis.Client
}

// NewRedisIntakeStore creates a Redis-backed intake session store
func NewRedisIntakeStore(redisClient *redis.Client) *RedisIntakeStore {
	return &RedisIntakeStore{redis: redisClient}
}

func intakeKey(userID uuid.UUID) string {
	return fmt.Sprintf("intake:session:%s", userID)
}

// Put stores the pending intake, replacing any previous submission
func (s *RedisIntakeStore) Put(ctx context.Context, userID uuid.UUID, intake *types.Intake) error {
	data, err := json.Marshal(intake)
	if err != nil {
		return fmt.Errorf("failed to marshal intake: %w", err)
	}
	if err := s.redis.Set(ctx, intakeKey(userID), data, intakeTTL).Err(); err != nil {
		return fmt.Errorf("failed to save intake session: %w", err)
	}
	return nil
}

// Get returns the pending intake, or nil when none is stored. Absence is a
// guard condition for the workflow, not an error.
func (s *RedisIntakeStore) Get(ctx context.Context, userID uuid.UUID) (*types.Intake, error) {
	data, err := s.redis.Get(ctx, intakeKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read intake session: %w", err)
	}

	var intake types.Intake
	if err := json.Unmarshal(data, &intake); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intake: %w", err)
	}
	return &intake, nil
}

// Clear removes the pending intake after the result view consumed it
func (s *RedisIntakeStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.redis.Del(ctx, intakeKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear intake session: %w", err)
	}
	return nil
}
