package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/models"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Each
// InvalidBet reason stays distinguishable in the payload.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrBetBelowMinimum):
		c.JSON(http.StatusBadRequest, gin.H{"error": "bet below minimum", "reason": "below_minimum"})
	case errors.Is(err, models.ErrBetAboveMaximum):
		c.JSON(http.StatusBadRequest, gin.H{"error": "bet above maximum", "reason": "above_maximum"})
	case errors.Is(err, models.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient funds", "reason": "insufficient_funds"})
	case errors.Is(err, models.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameter", "details": err.Error()})
	case errors.Is(err, ledger.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
