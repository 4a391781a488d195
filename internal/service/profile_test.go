package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"huntquest/internal/model"
)

// =============================================================================
// MOCK REPOSITORY
// =============================================================================

type mockProfileRepository struct {
	createFn        func(ctx context.Context, profile *model.Profile) error
	getByIDFn       func(ctx context.Context, id string) (*model.Profile, error)
	getByEmailFn    func(ctx context.Context, email string) (*model.Profile, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	setPushTokenFn  func(ctx context.Context, profileID, token string) error

	createCalls   []*model.Profile
	setTokenCalls []string
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	m.createCalls = append(m.createCalls, profile)
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrProfileNotFound
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, model.ErrProfileNotFound
}

func (m *mockProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockProfileRepository) SetPushToken(ctx context.Context, profileID, token string) error {
	m.setTokenCalls = append(m.setTokenCalls, token)
	if m.setPushTokenFn != nil {
		return m.setPushTokenFn(ctx, profileID, token)
	}
	return nil
}

func (m *mockProfileRepository) RemovePushToken(ctx context.Context, profileID string) error {
	return nil
}

// =============================================================================
// REGISTER TESTS
// =============================================================================

func TestProfileService_Register_Success(t *testing.T) {
	mockRepo := &mockProfileRepository{}
	svc := NewProfileService(mockRepo)

	req := &model.RegisterRequest{
		Email:       "Finder@Example.com",
		Password:    "securepassword123",
		DisplayName: "Finder",
	}

	profile, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if profile.ID == "" {
		t.Error("expected a generated profile ID")
	}

	// Email is normalized to lowercase.
	if profile.Email != "finder@example.com" {
		t.Errorf("email = %q, want %q", profile.Email, "finder@example.com")
	}

	// Verify password was hashed (not stored in plain text!)
	if profile.PasswordHashed == req.Password {
		t.Error("password should be hashed, not stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHashed), []byte(req.Password)); err != nil {
		t.Error("password hash should be valid bcrypt hash")
	}

	if len(mockRepo.createCalls) != 1 {
		t.Errorf("Create called %d times, want 1", len(mockRepo.createCalls))
	}
}

func TestProfileService_Register_EmailExists(t *testing.T) {
	mockRepo := &mockProfileRepository{
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	svc := NewProfileService(mockRepo)

	profile, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
	})

	if !errors.Is(err, model.ErrEmailExists) {
		t.Errorf("error = %v, want %v", err, model.ErrEmailExists)
	}
	if profile != nil {
		t.Error("profile should be nil when registration fails")
	}
	if len(mockRepo.createCalls) != 0 {
		t.Error("Create should not be called when email exists")
	}
}

// =============================================================================
// LOGIN TESTS
// =============================================================================

func TestProfileService_Login(t *testing.T) {
	validPassword := "correctpassword"
	validHash, _ := bcrypt.GenerateFromPassword([]byte(validPassword), bcrypt.MinCost)

	stored := &model.Profile{
		ID:             "u1",
		Email:          "finder@example.com",
		PasswordHashed: string(validHash),
	}

	tests := []struct {
		name     string
		email    string
		password string
		repoErr  error
		wantErr  error
	}{
		{
			name:     "success",
			email:    "finder@example.com",
			password: validPassword,
		},
		{
			name:     "wrong password",
			email:    "finder@example.com",
			password: "wrongpassword",
			wantErr:  model.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: validPassword,
			repoErr:  model.ErrProfileNotFound,
			wantErr:  model.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockProfileRepository{
				getByEmailFn: func(ctx context.Context, email string) (*model.Profile, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return stored, nil
				},
			}
			svc := NewProfileService(mockRepo)

			profile, err := svc.Login(context.Background(), &model.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if profile.ID != "u1" {
				t.Errorf("profile ID = %q, want u1", profile.ID)
			}
		})
	}
}

// =============================================================================
// PUSH TOKEN TESTS
// =============================================================================

func TestProfileService_RegisterPushToken(t *testing.T) {
	mockRepo := &mockProfileRepository{}
	svc := NewProfileService(mockRepo)

	if err := svc.RegisterPushToken(context.Background(), "u1", "TOK"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mockRepo.setTokenCalls) != 1 || mockRepo.setTokenCalls[0] != "TOK" {
		t.Errorf("SetPushToken calls = %v, want [TOK]", mockRepo.setTokenCalls)
	}
}
