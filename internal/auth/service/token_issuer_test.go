package service

import (
	"testing"
	"time"

	"github.com/versionverse/backend/internal/common/clock"
	userdomain "github.com/versionverse/backend/internal/user/domain"
)

const testSecret = "test-secret-key-must-be-at-least-32-bytes-long"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0, clock.NewRealClock())

	user := userdomain.User{
		ID:       "user-123",
		Username: "alice",
	}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected token to be set")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected user id user-123, got %s", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %s", claims.Username)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer1 := NewTokenIssuer(testSecret, 0, clock.NewRealClock())
	issuer2 := NewTokenIssuer("different-secret-key-must-be-at-least-32b", 0, clock.NewRealClock())

	token, err := issuer1.Issue(userdomain.User{ID: "user-123", Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := issuer2.Verify(token); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0, clock.NewRealClock())

	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Fatal("expected verification to fail")
	}
}

func TestTokenIssuer_Tampered(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0, clock.NewRealClock())

	token, err := issuer.Issue(userdomain.User{ID: "user-123", Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := issuer.Verify(tampered); err == nil {
		t.Fatal("expected verification of tampered token to fail")
	}
}

func TestTokenIssuer_ExpiredWhenTTLSet(t *testing.T) {
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	issuer := NewTokenIssuer(testSecret, time.Hour, past)

	token, err := issuer.Issue(userdomain.User{ID: "user-123", Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestTokenIssuer_NoExpiryByDefault(t *testing.T) {
	past := clock.NewMockClock(time.Now().Add(-24 * time.Hour))
	issuer := NewTokenIssuer(testSecret, 0, past)

	token, err := issuer.Issue(userdomain.User{ID: "user-123", Username: "alice"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("token without ttl should never expire, got %v", err)
	}
}
