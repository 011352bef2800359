package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coin-casino-backend/internal/models"
	"coin-casino-backend/internal/services"
)

type GameHandler struct {
	gameEngine   *services.GameEngine
	redisService *services.RedisService
}

func NewGameHandler(gameEngine *services.GameEngine, redisService *services.RedisService) *GameHandler {
	return &GameHandler{
		gameEngine:   gameEngine,
		redisService: redisService,
	}
}

// Play resolves one wager end to end: validate, resolve, settle.
func (h *GameHandler) Play(c *gin.Context) {
	accountID := c.GetInt64("account_id")

	var req models.PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	allowed := h.redisService.CheckRateLimit(c.Request.Context(), accountID, "play",
		services.DefaultRateLimitPlays, time.Minute)
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many plays. Please wait."})
		return
	}

	result, err := h.gameEngine.Play(c.Request.Context(), accountID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}
