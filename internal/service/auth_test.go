package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"huntquest/internal/config"
)

func TestAuthService_IssueTokens(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: 900,
	}
	svc := NewAuthService(cfg)

	pair, err := svc.IssueTokens("u1")
	if err != nil {
		t.Fatalf("IssueTokens: %v", err)
	}
	if pair.AccessToken == "" {
		t.Fatal("empty access token")
	}
	if pair.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", pair.ExpiresIn)
	}

	token, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("token claims invalid")
	}
	if claims["profile_id"] != "u1" {
		t.Errorf("profile_id claim = %v, want u1", claims["profile_id"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	if remaining := time.Until(exp.Time); remaining <= 0 || remaining > 15*time.Minute {
		t.Errorf("unexpected token lifetime: %v", remaining)
	}
}

func TestAuthService_IssueTokens_WrongSecretRejected(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "secret-a", AccessTokenMaxAge: 900})

	pair, err := svc.IssueTokens("u1")
	if err != nil {
		t.Fatalf("IssueTokens: %v", err)
	}

	_, err = jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Error("expected verification failure with wrong secret")
	}
}
