package security_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mymindapp/user-service/internal/domain"
	"github.com/mymindapp/user-service/internal/security"
)

const testSecret = "test-secret-key-with-32-chars!!!"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 60*time.Minute, 7*24*time.Hour)

	accessToken, err := manager.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}
	if accessToken == "" {
		t.Error("access token is empty")
	}

	claims, err := manager.ValidateAccessToken(accessToken)
	if err != nil {
		t.Fatalf("failed to validate access token: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject mismatch: got %q, want %q", claims.Subject, "user-123")
	}
	if claims.TokenType != security.TokenTypeAccess {
		t.Errorf("token type mismatch: got %q, want %q", claims.TokenType, security.TokenTypeAccess)
	}
}

func TestTokenManager_GenerateTokenPair(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 60*time.Minute, 7*24*time.Hour)

	access, refresh, expiresIn, err := manager.GenerateTokenPair("user-123")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if access == "" || refresh == "" {
		t.Fatal("token pair contains an empty token")
	}
	if access == refresh {
		t.Error("access and refresh tokens are identical")
	}
	if expiresIn != int64((60 * time.Minute).Seconds()) {
		t.Errorf("expires in mismatch: got %d, want %d", expiresIn, int64((60*time.Minute).Seconds()))
	}

	subject, err := manager.ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}
	if subject != "user-123" {
		t.Errorf("subject from refresh token mismatch: got %q, want %q", subject, "user-123")
	}
}

func TestTokenManager_TypeDiscriminator(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 60*time.Minute, 7*24*time.Hour)

	access, _ := manager.GenerateAccessToken("user-123")
	refresh, _ := manager.GenerateRefreshToken("user-123")

	// An access token must not pass where a refresh token is required
	if _, err := manager.ValidateRefreshToken(access); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("access token accepted as refresh token, err = %v", err)
	}

	// A refresh token must not pass as an access token
	if _, err := manager.ValidateAccessToken(refresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("refresh token accepted as access token, err = %v", err)
	}
}

func TestTokenManager_Expiry(t *testing.T) {
	manager := security.NewTokenManager(testSecret, -1*time.Minute, -1*time.Minute)

	access, err := manager.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}
	refresh, err := manager.GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	if _, err := manager.ValidateAccessToken(access); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expired access token accepted, err = %v", err)
	}
	if _, err := manager.ValidateRefreshToken(refresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expired refresh token accepted, err = %v", err)
	}
}

func TestTokenManager_InvalidToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 60*time.Minute, 7*24*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "invalid-token"},
		{"truncated jwt", "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := manager.ValidateAccessToken(tt.token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}

	// Token signed with a different secret
	other := security.NewTokenManager("different-secret-key-32-chars!!!", 60*time.Minute, 7*24*time.Hour)
	forged, _ := other.GenerateAccessToken("user-123")

	if _, err := manager.ValidateAccessToken(forged); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("token signed with different secret accepted, err = %v", err)
	}
}

func TestTokenManager_RotationProducesLaterExpiry(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 60*time.Minute, 7*24*time.Hour)

	first, _ := manager.GenerateAccessToken("user-123")
	firstClaims, err := manager.ValidateAccessToken(first)
	if err != nil {
		t.Fatalf("failed to validate first token: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	second, _ := manager.GenerateAccessToken("user-123")
	secondClaims, err := manager.ValidateAccessToken(second)
	if err != nil {
		t.Fatalf("failed to validate second token: %v", err)
	}

	if !secondClaims.ExpiresAt.After(firstClaims.ExpiresAt.Time) {
		t.Errorf("expected strictly later expiry: first %v, second %v",
			firstClaims.ExpiresAt.Time, secondClaims.ExpiresAt.Time)
	}
}
