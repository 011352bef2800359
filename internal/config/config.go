package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env  string
	Port string

	DatabasePath string

	RedisURL  string
	RedisPass string
	RedisDB   int

	JWTSecret  string
	AuthSecret string
	AdminToken string

	StartingBalance int64
	DailyReward     int64
	MinBet          int64
	MaxBet          int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DatabasePath: getEnv("DATABASE_PATH", "data/casino.db"),

		RedisURL:  os.Getenv("REDIS_URL"),
		RedisPass: os.Getenv("REDIS_PASS"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		AuthSecret: os.Getenv("AUTH_SECRET"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.StartingBalance, err = getEnvInt64("STARTING_BALANCE", 1000); err != nil {
		return nil, err
	}
	if cfg.DailyReward, err = getEnvInt64("DAILY_REWARD", 500); err != nil {
		return nil, err
	}
	if cfg.MinBet, err = getEnvInt64("MIN_BET", 10); err != nil {
		return nil, err
	}
	if cfg.MaxBet, err = getEnvInt64("MAX_BET", 10000); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MinBet <= 0 || cfg.MaxBet < cfg.MinBet {
		return nil, fmt.Errorf("invalid bet bounds: min=%d max=%d", cfg.MinBet, cfg.MaxBet)
	}
	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("starting balance cannot be negative: %d", cfg.StartingBalance)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}
