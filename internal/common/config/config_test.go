package config

import (
	"errors"
	"testing"
	"time"

	commonerrors "github.com/versionverse/backend/internal/common/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-must-be-at-least-32-bytes-long")
	t.Setenv("PASSWORD_SALT", "10")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/versionverse")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BcryptCost != 10 {
		t.Errorf("expected cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.HTTPPort != "3001" {
		t.Errorf("expected default port 3001, got %s", cfg.HTTPPort)
	}
	if cfg.TokenTTL != 0 {
		t.Errorf("expected no token ttl by default, got %v", cfg.TokenTTL)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, commonerrors.ErrMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
}

func TestLoad_ShortJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	if !errors.Is(err, commonerrors.ErrInvalidJWTSecret) {
		t.Fatalf("expected invalid secret error, got %v", err)
	}
}

func TestLoad_MissingPasswordSalt(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PASSWORD_SALT", "")

	_, err := Load()
	if !errors.Is(err, commonerrors.ErrMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
}

func TestLoad_InvalidPasswordSalt(t *testing.T) {
	setRequiredEnv(t)

	for _, value := range []string{"abc", "2", "40"} {
		t.Setenv("PASSWORD_SALT", value)

		_, err := Load()
		if !errors.Is(err, commonerrors.ErrInvalidBcryptCost) {
			t.Fatalf("value %q: expected invalid cost error, got %v", value, err)
		}
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if !errors.Is(err, commonerrors.ErrMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("expected ttl 15m, got %v", cfg.TokenTTL)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("expected timeout 2s, got %v", cfg.RequestTimeout)
	}
}
