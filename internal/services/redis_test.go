package services_test

import (
	"context"
	"testing"
	"time"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/models"
	"coin-casino-backend/internal/services"
)

// A nil service is the documented no-redis mode: everything degrades to a
// no-op and rate limits fail open.
func TestNilRedisServiceDegrades(t *testing.T) {
	var s *services.RedisService
	ctx := context.Background()

	if !s.CheckRateLimit(ctx, 1, "play", 1, time.Minute) {
		t.Error("Nil redis should fail open on rate limits")
	}
	if _, ok := s.GetCachedLeaderboard(ctx, 10); ok {
		t.Error("Nil redis should never report a cache hit")
	}
	s.CacheLeaderboard(ctx, 10, []models.LeaderboardEntry{{AccountID: 1}})
	s.InvalidateLeaderboard(ctx)
	if err := s.Close(); err != nil {
		t.Errorf("Nil redis Close should be a no-op, got %v", err)
	}
}

func TestNewRedisServiceWithoutURL(t *testing.T) {
	s, err := services.NewRedisService(&config.Config{})
	if err != nil {
		t.Fatalf("NewRedisService failed: %v", err)
	}
	if s != nil {
		t.Error("Empty REDIS_URL should disable the cache layer")
	}
}

func openTestRedis(t *testing.T) *services.RedisService {
	t.Helper()
	s, err := services.NewRedisService(&config.Config{RedisURL: "localhost:6379", RedisDB: 15})
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisRateLimit(t *testing.T) {
	s := openTestRedis(t)
	ctx := context.Background()
	accountID := time.Now().UnixNano()

	for i := 0; i < 3; i++ {
		if !s.CheckRateLimit(ctx, accountID, "test", 3, time.Minute) {
			t.Fatalf("Request %d should pass a limit of 3", i+1)
		}
	}
	if s.CheckRateLimit(ctx, accountID, "test", 3, time.Minute) {
		t.Error("Fourth request should exceed a limit of 3")
	}
}

func TestRedisLeaderboardCache(t *testing.T) {
	s := openTestRedis(t)
	ctx := context.Background()

	s.InvalidateLeaderboard(ctx)
	if _, ok := s.GetCachedLeaderboard(ctx, 10); ok {
		t.Fatal("Expected a cache miss after invalidation")
	}

	entries := []models.LeaderboardEntry{
		{AccountID: 2, Balance: 7000},
		{AccountID: 1, Balance: 3000},
	}
	s.CacheLeaderboard(ctx, 10, entries)

	cached, ok := s.GetCachedLeaderboard(ctx, 10)
	if !ok {
		t.Fatal("Expected a cache hit after caching")
	}
	if len(cached) != 2 || cached[0].AccountID != 2 || cached[0].Balance != 7000 {
		t.Errorf("Cached entries corrupted: %+v", cached)
	}

	s.InvalidateLeaderboard(ctx)
	if _, ok := s.GetCachedLeaderboard(ctx, 10); ok {
		t.Error("Invalidation should drop the cached snapshot")
	}
}
