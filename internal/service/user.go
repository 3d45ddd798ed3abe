package service

import (
	"context"
	"fmt"

	"github.com/mymindapp/user-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// UserService handles profile reads and field mutations.
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile retrieves the full user document.
func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// setField applies a single-field update with a fetch-compare step first.
// When the stored value already equals the desired one the store is not
// touched at all, so "no document matched" and "nothing changed" stay
// distinguishable.
func (s *UserService) setField(ctx context.Context, id, field string, desired, current any) error {
	if desired == current {
		return nil
	}
	modified, err := s.userRepo.UpdateFields(ctx, id, bson.M{field: desired})
	if err != nil {
		return err
	}
	if modified == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateName updates the user's display name.
func (s *UserService) UpdateName(ctx context.Context, id, name string) error {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	return s.setField(ctx, id, "name", name, user.Name)
}

// UpdateEmail updates the user's email, enforcing uniqueness. The unique
// index backs this up against concurrent registrations.
func (s *UserService) UpdateEmail(ctx context.Context, id, email string) error {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if user.Email == email {
		return nil
	}

	taken, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken != nil && taken.ID != id {
		return domain.ErrEmailTaken
	}

	return s.setField(ctx, id, "email", email, user.Email)
}

// UpdateNotifications updates the notification flag.
func (s *UserService) UpdateNotifications(ctx context.Context, id string, enabled bool) error {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	return s.setField(ctx, id, "notifications", enabled, user.Notifications)
}

// UpdateProfilePic updates the profile picture reference.
func (s *UserService) UpdateProfilePic(ctx context.Context, id, profilePic string) error {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	return s.setField(ctx, id, "profile_pic", profilePic, user.ProfilePic)
}

// TogglePrivacy atomically flips the anonymized-usage preference and returns
// the new value.
func (s *UserService) TogglePrivacy(ctx context.Context, id string) (bool, error) {
	user, err := s.userRepo.TogglePrivacy(ctx, id)
	if err != nil {
		return false, err
	}
	return user.Privacy.AllowAnonymizedUsage, nil
}

// Delete removes the account and, by embedding, all of its transcriptions.
func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}
