package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"coin-casino-backend/internal/services"
)

// AuthHandler exchanges a platform account id for a session token. The
// upstream command layer has already authenticated the human; this layer
// only needs the shared secret to trust the mapping.
type AuthHandler struct {
	jwtService *services.JWTService
	authSecret string
}

func NewAuthHandler(jwtService *services.JWTService, authSecret string) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		authSecret: authSecret,
	}
}

func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		AccountID int64 `json:"account_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if h.authSecret != "" {
		provided := c.GetHeader("X-Auth-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.authSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid auth secret"})
			return
		}
	}

	token, sessionID, err := h.jwtService.GenerateToken(req.AccountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"session_id": sessionID,
	})
}
