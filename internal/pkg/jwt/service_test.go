package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_IssueValidateRoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)

	token, err := svc.Issue("dev@example.com", "candidate")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.Email != "dev@example.com" || claims.Role != "candidate" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	token, err := svc.Issue("dev@example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).Issue("dev@example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_GarbageToken(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)

	if _, err := svc.Validate("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
