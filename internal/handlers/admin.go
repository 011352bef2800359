package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/models"
	"coin-casino-backend/internal/services"
)

type AdminHandler struct {
	store        *ledger.Store
	redisService *services.RedisService
}

func NewAdminHandler(store *ledger.Store, redisService *services.RedisService) *AdminHandler {
	return &AdminHandler{
		store:        store,
		redisService: redisService,
	}
}

func (h *AdminHandler) SetBalance(c *gin.Context) {
	var req models.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.store.SetBalance(c.Request.Context(), req.AccountID, req.Balance); err != nil {
		respondError(c, err)
		return
	}
	h.redisService.InvalidateLeaderboard(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_id": req.AccountID,
		"balance":    req.Balance,
	})
}

func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	var req models.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	newBalance, err := h.store.ApplyDelta(c.Request.Context(), req.AccountID, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	h.redisService.InvalidateLeaderboard(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"account_id":  req.AccountID,
		"new_balance": newBalance,
	})
}

// ResetAccount restores the starting balance and purges history.
func (h *AdminHandler) ResetAccount(c *gin.Context) {
	var req models.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.store.Reset(c.Request.Context(), req.AccountID); err != nil {
		respondError(c, err)
		return
	}
	h.redisService.InvalidateLeaderboard(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_id": req.AccountID,
	})
}

func (h *AdminHandler) BotStats(c *gin.Context) {
	stats, err := h.store.BotStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
