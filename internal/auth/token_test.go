package auth

import (
	"testing"
	"time"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Error("Expected token to be generated")
	}

	subject, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Expected no error verifying token, got %v", err)
	}
	if subject != "user-1" {
		t.Errorf("Expected subject user-1, got %s", subject)
	}
}

func TestTokenManager_VerifyEmptyToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	if _, err := tm.Verify(""); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_VerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	if _, err := tm.Verify("invalid.token.here"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_VerifyWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tm.Issue("user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := other.Verify(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_VerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := tm.Verify(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}
