package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mymindapp/user-service/internal/domain"
	"github.com/mymindapp/user-service/internal/security"
)

const tokenTypeBearer = "bearer"

// AuthService handles registration and token issuance.
type AuthService struct {
	userRepo     UserRepository
	tokenManager *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenManager *security.TokenManager) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// Register creates a new user account. The subject identifier is generated
// here and never changes afterwards. The data treatment acceptance is
// recorded with the origin IP of the registering request.
func (s *AuthService) Register(ctx context.Context, input domain.UserCreate, remoteIP string) (*domain.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	privacy := domain.Privacy{AllowAnonymizedUsage: input.AllowAnonymizedUsage}
	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  hash,
		Notifications: input.Notifications,
		Privacy:       privacy,
		DataTreatment: domain.DataTreatment{
			Accepted:   input.AcceptDataTreatment,
			AcceptedAt: now,
			AcceptedIP: remoteIP,
			Privacy:    privacy,
		},
		Transcriptions: []domain.Transcription{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a token pair. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !security.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(user.ID)
}

// Refresh exchanges a valid refresh token for a brand-new token pair. The
// refresh token is rotated on every exchange.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	subject, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	return s.issueTokens(user.ID)
}

func (s *AuthService) issueTokens(subject string) (*domain.TokenPair, error) {
	access, refresh, expiresIn, err := s.tokenManager.GenerateTokenPair(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    expiresIn,
	}, nil
}
