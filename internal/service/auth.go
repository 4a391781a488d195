package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"huntquest/internal/config"
	"huntquest/internal/model"
)

// AuthService issues access tokens for authenticated profiles.
type AuthService struct {
	config *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{config: cfg}
}

// IssueTokens signs a new access token for the profile.
func (s *AuthService) IssueTokens(profileID string) (model.TokenPair, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"profile_id": profileID,
		"iat":        now.Unix(),
		"exp":        now.Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	return model.TokenPair{
		AccessToken: signed,
		ExpiresIn:   s.config.AccessTokenMaxAge,
	}, nil
}
