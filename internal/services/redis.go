package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/models"
)

// RedisService is the optional cache layer: leaderboard snapshots and
// per-account play rate limiting. A nil *RedisService is valid and turns
// every method into a no-op, so the core runs without redis.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	if cfg.RedisURL == "" {
		zap.L().Info("No redis configured, cache layer disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisService{client: client}, nil
}

func (s *RedisService) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}

// CheckRateLimit counts actions in a rolling window. Fails open when the
// cache is down: a missing limiter must not block play.
func (s *RedisService) CheckRateLimit(ctx context.Context, accountID int64, action string, limit int, window time.Duration) bool {
	if s == nil {
		return true
	}

	key := fmt.Sprintf(KeyRateLimit, accountID, action)
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		zap.L().Warn("Rate limit check failed", zap.Error(err))
		return true
	}
	if count == 1 {
		s.client.Expire(ctx, key, window)
	}
	return count <= int64(limit)
}

func (s *RedisService) GetCachedLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, bool) {
	if s == nil {
		return nil, false
	}

	key := fmt.Sprintf(KeyLeaderboard, limit)
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		zap.L().Warn("Dropping unreadable leaderboard cache entry", zap.Error(err))
		s.client.Del(ctx, key)
		return nil, false
	}
	return entries, true
}

func (s *RedisService) CacheLeaderboard(ctx context.Context, limit int, entries []models.LeaderboardEntry) {
	if s == nil {
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, fmt.Sprintf(KeyLeaderboard, limit), data, TTLLeaderboard).Err(); err != nil {
		zap.L().Warn("Failed to cache leaderboard", zap.Error(err))
	}
}

// InvalidateLeaderboard drops cached snapshots after a balance moved.
func (s *RedisService) InvalidateLeaderboard(ctx context.Context) {
	if s == nil {
		return
	}

	iter := s.client.Scan(ctx, 0, "leaderboard:*", 100).Iterator()
	for iter.Next(ctx) {
		s.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("Leaderboard invalidation scan failed", zap.Error(err))
	}
}
