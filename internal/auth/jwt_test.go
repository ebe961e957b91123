package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/caretrack/wellness/internal/models"
)

func TestJWTGenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-123", Role: models.RoleProvider}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", claims.UserID)
	}
	if claims.Role != models.RoleProvider {
		t.Errorf("Role = %q, want provider", claims.Role)
	}
}

func TestJWTExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	user := &models.User{ID: "user-123", Role: models.RolePatient}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err = manager.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, err := issuer.Generate(&models.User{ID: "user-123", Role: models.RolePatient})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTMalformedToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}
