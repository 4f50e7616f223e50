package services

import (
	"errors"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	InitializeIdentity("test-secret")

	token, err := IssueSessionToken("user-123")
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	userID, err := ResolveSessionToken(token)
	if err != nil {
		t.Fatalf("ResolveSessionToken: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("resolved user = %q, want user-123", userID)
	}
}

func TestSessionTokenGarbageRejected(t *testing.T) {
	InitializeIdentity("test-secret")

	if _, err := ResolveSessionToken("not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage token: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionTokenWrongSecretRejected(t *testing.T) {
	InitializeIdentity("secret-a")
	token, err := IssueSessionToken("user-123")
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	InitializeIdentity("secret-b")
	if _, err := ResolveSessionToken(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("foreign token: err = %v, want ErrInvalidCredentials", err)
	}
}
