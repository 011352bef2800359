package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/middleware"
	"coin-casino-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(jwtService *services.JWTService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": c.GetInt64("account_id")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret"})
	router := newAuthRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Valid token should pass, got %d", w.Code)
	}

	// Query fallback for websocket clients that cannot set headers.
	req = httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Query token should pass, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret"})
	router := newAuthRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Missing token should 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Non-bearer scheme should 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Garbage token should 401, got %d", w.Code)
	}

	other := services.NewJWTService(&config.Config{JWTSecret: "other-secret"})
	token, _, err := other.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Token from another secret should 401, got %d", w.Code)
	}
}

func TestAdminMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/admin", middleware.AdminMiddleware("topsecret"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Admin-Token", "topsecret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Correct admin token should pass, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Wrong admin token should 403, got %d", w.Code)
	}
}

func TestAdminMiddlewareDisabledWithoutToken(t *testing.T) {
	router := gin.New()
	router.GET("/admin", middleware.AdminMiddleware(""), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Admin-Token", "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Empty configured token should disable admin, got %d", w.Code)
	}
}
