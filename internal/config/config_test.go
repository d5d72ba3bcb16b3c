package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")

	_, err := Load()
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("Load() error = %v, want ErrMissingJWTSecret", err)
	}
}

func TestLoadRejectsShortSecretInProduction(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "short")
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for short production secret")
	}

	t.Setenv("AUTH_JWT_SECRET", strings.Repeat("k", MinProductionSecretLength))
	if _, err := Load(); err != nil {
		t.Fatalf("Load() with long secret: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "dev")
	t.Setenv("APP_ENV", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_SECONDS", "")
	t.Setenv("AUTH_TWO_FACTOR_TTL_SECONDS", "")
	t.Setenv("AUTH_LOGIN_MAX_ATTEMPTS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if !cfg.App.IsDevelopment() {
		t.Errorf("env = %q, want development", cfg.App.Env)
	}
	if got := cfg.Auth.TokenTTL(); got != 24*time.Hour {
		t.Errorf("TokenTTL = %v", got)
	}
	if got := cfg.Auth.TwoFactorTTL(); got != 10*time.Minute {
		t.Errorf("TwoFactorTTL = %v", got)
	}
	if cfg.Auth.LoginMaxAttempts != 5 {
		t.Errorf("LoginMaxAttempts = %d", cfg.Auth.LoginMaxAttempts)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "dev")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_SECONDS", "3600")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Auth.TokenTTL() != time.Hour {
		t.Errorf("TokenTTL = %v", cfg.Auth.TokenTTL())
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Errorf("RequestTimeout = %v, want 0", cfg.App.RequestTimeout())
	}
	if !strings.HasSuffix(cfg.App.Addr(), ":9090") {
		t.Errorf("Addr = %q", cfg.App.Addr())
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "dev")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_SECONDS", "-5")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative TTL")
	}
}

func TestInvalidRedisDB(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "dev")
	t.Setenv("REDIS_DB", "zero")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric REDIS_DB")
	}
}
