package services_test

import (
	"strings"
	"testing"

	"coin-casino-backend/internal/config"
	"coin-casino-backend/internal/services"
)

func TestJWTRoundTrip(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret"})

	token, sessionID, err := jwtService.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" || sessionID == "" {
		t.Fatal("Expected a non-empty token and session id")
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("Expected account 42, got %d", claims.AccountID)
	}
	if claims.SessionID != sessionID {
		t.Errorf("Session id mismatch: %q vs %q", claims.SessionID, sessionID)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := services.NewJWTService(&config.Config{JWTSecret: "secret-a"})
	verifier := services.NewJWTService(&config.Config{JWTSecret: "secret-b"})

	token, _, err := issuer.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("Token signed with a different secret should be rejected")
	}
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret"})

	token, _, err := jwtService.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := jwtService.ValidateToken(tampered); err == nil {
		t.Error("Tampered token should be rejected")
	}
	if _, err := jwtService.ValidateToken("not.a.token"); err == nil {
		t.Error("Garbage token should be rejected")
	}
	if _, err := jwtService.ValidateToken(strings.Repeat("a", 64)); err == nil {
		t.Error("Malformed token should be rejected")
	}
}
