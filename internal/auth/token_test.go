package auth

import (
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	token, err := IssueToken("user-42")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	userID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("user id = %q, want user-42", userID)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	token, err := IssueToken("user-42")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	t.Setenv("JWT_KEY", "other-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token validated with the wrong key")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestMissingKey(t *testing.T) {
	t.Setenv("JWT_KEY", "")

	if _, err := IssueToken("user-42"); !errors.Is(err, ErrMissingKey) {
		t.Errorf("IssueToken() error = %v, want ErrMissingKey", err)
	}

	t.Setenv("JWT_KEY", "test-secret")
	token, err := IssueToken("user-42")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	t.Setenv("JWT_KEY", "")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token validated without a signing key")
	}
}
