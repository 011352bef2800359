package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.StartingBalance != 1000 {
		t.Errorf("Expected default starting balance 1000, got %d", cfg.StartingBalance)
	}
	if cfg.DailyReward != 500 {
		t.Errorf("Expected default daily reward 500, got %d", cfg.DailyReward)
	}
	if cfg.MinBet != 10 || cfg.MaxBet != 10000 {
		t.Errorf("Expected default bet bounds 10..10000, got %d..%d", cfg.MinBet, cfg.MaxBet)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("STARTING_BALANCE", "2500")
	t.Setenv("MIN_BET", "1")
	t.Setenv("MAX_BET", "100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" || cfg.StartingBalance != 2500 || cfg.MinBet != 1 || cfg.MaxBet != 100 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load should fail without JWT_SECRET")
	}
}

func TestLoadRejectsBadBetBounds(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MIN_BET", "100")
	t.Setenv("MAX_BET", "10")

	if _, err := Load(); err == nil {
		t.Error("Load should reject max below min")
	}
}

func TestLoadRejectsUnparsableNumbers(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STARTING_BALANCE", "plenty")

	if _, err := Load(); err == nil {
		t.Error("Load should reject a non-numeric STARTING_BALANCE")
	}
}
