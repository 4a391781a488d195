package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"huntquest/internal/model"
	"huntquest/internal/repository"
)

// ProfileService handles account-related business logic: registration,
// login, and push-token lifecycle.
type ProfileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Register creates a new profile with a bcrypt-hashed password.
func (s *ProfileService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.profiles.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &model.Profile{
		ID:             uuid.NewString(),
		Email:          email,
		DisplayName:    req.DisplayName,
		PasswordHashed: string(hashed),
		CreatedAt:      time.Now(),
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return profile, nil
}

// Login verifies the credentials and returns the profile.
func (s *ProfileService) Login(ctx context.Context, req *model.LoginRequest) (*model.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		// Don't reveal whether the email exists.
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return profile, nil
}

// GetByID returns one profile.
func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// RegisterPushToken stores the device's FCM token on the profile. The
// client calls this on login and every time FCM rotates the token.
func (s *ProfileService) RegisterPushToken(ctx context.Context, profileID, token string) error {
	return s.profiles.SetPushToken(ctx, profileID, token)
}

// RemovePushToken clears the token, e.g. on logout.
func (s *ProfileService) RemovePushToken(ctx context.Context, profileID string) error {
	return s.profiles.RemovePushToken(ctx, profileID)
}
