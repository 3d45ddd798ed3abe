package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mymindapp/user-service/internal/domain"
)

const (
	// TokenTypeAccess and TokenTypeRefresh discriminate the two issuance
	// paths structurally, so a refresh exchange can never be satisfied with
	// an access token and vice versa.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	issuer = "mymind-user-service"
)

// Claims is the signed claim set carried by both token kinds.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed bearer tokens.
type TokenManager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewTokenManager creates a new token manager.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:          []byte(secret),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

func (m *TokenManager) generate(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// GenerateAccessToken generates a short-lived access token for the subject.
func (m *TokenManager) GenerateAccessToken(subject string) (string, error) {
	return m.generate(subject, TokenTypeAccess, m.accessTokenTTL)
}

// GenerateRefreshToken generates a long-lived refresh token for the subject.
func (m *TokenManager) GenerateRefreshToken(subject string) (string, error) {
	return m.generate(subject, TokenTypeRefresh, m.refreshTokenTTL)
}

// GenerateTokenPair generates both access and refresh tokens.
func (m *TokenManager) GenerateTokenPair(subject string) (accessToken, refreshToken string, expiresIn int64, err error) {
	accessToken, err = m.GenerateAccessToken(subject)
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err = m.GenerateRefreshToken(subject)
	if err != nil {
		return "", "", 0, err
	}
	return accessToken, refreshToken, int64(m.accessTokenTTL.Seconds()), nil
}

// parse verifies the signature, algorithm and expiry of a token. Every
// failure cause collapses into domain.ErrInvalidToken so the caller cannot
// tell expired from forged.
func (m *TokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// ValidateAccessToken verifies an access token and returns its claims.
// Refresh tokens are rejected here.
func (m *TokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == TokenTypeRefresh {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// ValidateRefreshToken verifies a refresh token and returns its subject.
// Tokens without the refresh discriminator claim are rejected.
func (m *TokenManager) ValidateRefreshToken(tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

// AccessTokenTTL returns the access token TTL.
func (m *TokenManager) AccessTokenTTL() time.Duration {
	return m.accessTokenTTL
}
