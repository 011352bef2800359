package services

import "time"

const (
	KeyLeaderboard = "leaderboard:%d"
	KeyRateLimit   = "ratelimit:%d:%s"

	TTLLeaderboard = 30 * time.Second

	DefaultRateLimitPlays = 30 // max plays per account per minute
)
