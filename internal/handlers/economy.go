package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/models"
	"coin-casino-backend/internal/services"
)

type EconomyHandler struct {
	store      *ledger.Store
	scheduler  *services.RewardScheduler
	gameEngine *services.GameEngine
}

func NewEconomyHandler(store *ledger.Store, scheduler *services.RewardScheduler, gameEngine *services.GameEngine) *EconomyHandler {
	return &EconomyHandler{
		store:      store,
		scheduler:  scheduler,
		gameEngine: gameEngine,
	}
}

// GetBalance reports the caller's balance, or another account's when
// ?account_id= is given. Unseen accounts are created lazily.
func (h *EconomyHandler) GetBalance(c *gin.Context) {
	accountID := c.GetInt64("account_id")
	if other := c.Query("account_id"); other != "" {
		parsed, err := strconv.ParseInt(other, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account_id"})
			return
		}
		accountID = parsed
	}

	balance, err := h.store.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_id": accountID,
		"balance":    balance,
	})
}

func (h *EconomyHandler) GetStats(c *gin.Context) {
	accountID := c.GetInt64("account_id")
	if other := c.Query("account_id"); other != "" {
		parsed, err := strconv.ParseInt(other, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account_id"})
			return
		}
		accountID = parsed
	}

	stats, err := h.store.Stats(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_id": accountID,
		"stats":      stats,
	})
}

func (h *EconomyHandler) GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}

	entries, err := h.gameEngine.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"leaderboard": entries,
		"count":       len(entries),
	})
}

// ClaimDaily pays the daily reward once per 24h window.
func (h *EconomyHandler) ClaimDaily(c *gin.Context) {
	accountID := c.GetInt64("account_id")

	result, err := h.scheduler.Claim(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Claimed {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success":     false,
			"error":       "Daily reward already claimed",
			"retry_after": result.RetryAfter.Seconds(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reward":  result,
	})
}

// Give transfers coins from the caller to another account.
func (h *EconomyHandler) Give(c *gin.Context) {
	accountID := c.GetInt64("account_id")

	var req models.GiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	newBalance, err := h.store.Transfer(c.Request.Context(), accountID, req.ToAccountID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"amount":      req.Amount,
		"to":          req.ToAccountID,
		"new_balance": newBalance,
	})
}

func (h *EconomyHandler) GetHistory(c *gin.Context) {
	accountID := c.GetInt64("account_id")

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = 50
	}

	records, err := h.store.History(c.Request.Context(), accountID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"games":   records,
		"count":   len(records),
	})
}
