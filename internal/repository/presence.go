package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_map/internal/service"
)

const presenceKey = "community_map:presence"

// PresenceRepository хранит heartbeat-ы в sorted set: member - id сессии,
// score - время последнего heartbeat в миллисекундах.
type PresenceRepository struct {
	redisClient *redis.Client
}

func NewPresenceRepository(redisClient *redis.Client) service.PresenceRepository {
	return &PresenceRepository{redisClient: redisClient}
}

// Touch создает или обновляет запись сессии
func (r *PresenceRepository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	err := r.redisClient.ZAdd(ctx, presenceKey, redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: sessionID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// RemoveOlderThan удаляет сессии с heartbeat строго раньше cutoff
func (r *PresenceRepository) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	maxScore := "(" + strconv.FormatInt(cutoff.UnixMilli(), 10)
	n, err := r.redisClient.ZRemRangeByScore(ctx, presenceKey, "-inf", maxScore).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to remove stale sessions: %w", err)
	}
	return n, nil
}

func (r *PresenceRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.redisClient.ZCard(ctx, presenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
