package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/games"
	"coin-casino-backend/internal/handlers"
	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/middleware"
	"coin-casino-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	store, err := ledger.Open(context.Background(), cfg.DatabasePath, cfg.StartingBalance)
	if err != nil {
		zap.L().Fatal("Failed to open ledger store", zap.Error(err))
	}
	defer store.Close()

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisService.Close()

	jwtService := services.NewJWTService(cfg)

	gameEngine := services.NewGameEngine(store, games.NewSource(), cfg)
	gameEngine.SetRedis(redisService)

	scheduler := services.NewRewardScheduler(store, cfg)

	feedHandler := handlers.NewFeedHandler(store)
	gameEngine.SetBroadcaster(feedHandler)

	authHandler := handlers.NewAuthHandler(jwtService, cfg.AuthSecret)
	gameHandler := handlers.NewGameHandler(gameEngine, redisService)
	economyHandler := handlers.NewEconomyHandler(store, scheduler, gameEngine)
	adminHandler := handlers.NewAdminHandler(store, redisService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/auth/token", authHandler.IssueToken)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/feed", feedHandler.HandleFeed)

		games := protected.Group("/games")
		{
			games.POST("/play", gameHandler.Play)
		}

		economy := protected.Group("/economy")
		{
			economy.GET("/balance", economyHandler.GetBalance)
			economy.GET("/stats", economyHandler.GetStats)
			economy.GET("/leaderboard", economyHandler.GetLeaderboard)
			economy.GET("/history", economyHandler.GetHistory)
			economy.POST("/daily", economyHandler.ClaimDaily)
			economy.POST("/give", economyHandler.Give)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg.AdminToken))
		{
			admin.POST("/setbalance", adminHandler.SetBalance)
			admin.POST("/adjust", adminHandler.AdjustBalance)
			admin.POST("/reset", adminHandler.ResetAccount)
			admin.GET("/botstats", adminHandler.BotStats)
		}
	}

	zap.L().Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
