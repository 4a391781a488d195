package model

import (
	"errors"
	"time"
)

// Profile represents an app user's account document.
type Profile struct {
	ID             string     `firestore:"-" json:"id"`
	Email          string     `firestore:"email" json:"email"`
	DisplayName    string     `firestore:"displayName" json:"display_name"`
	PasswordHashed string     `firestore:"passwordHash" json:"-"` // "-" hides from JSON output
	Author         AuthorInfo `firestore:"author" json:"-"`
	CreatedAt      time.Time  `firestore:"createdAt" json:"created_at"`
}

// AuthorInfo is the nested block on a profile document that the mobile
// client writes. FCMToken may be empty when the device never registered
// for push, or unset entirely on older documents.
type AuthorInfo struct {
	FCMToken string `firestore:"fcmToken,omitempty" json:"-"`
}

// RegisterRequest represents the data needed to register a new profile
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterTokenRequest is the request body for registering a push token.
// The client re-sends this whenever FCM rotates the token.
type RegisterTokenRequest struct {
	Token string `json:"token"`
}

var (
	// ErrProfileNotFound is returned when a profile document does not exist
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmailExists is returned when registering with a taken email
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
