package repository

import (
	"context"

	"huntquest/internal/model"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// SetPushToken stores the device's FCM token under author.fcmToken.
	SetPushToken(ctx context.Context, profileID, token string) error
	// RemovePushToken clears the token (e.g. on logout).
	RemovePushToken(ctx context.Context, profileID string) error
}

type HuntRepository interface {
	Create(ctx context.Context, hunt *model.Hunt) error
	GetByID(ctx context.Context, id string) (*model.Hunt, error)
	ListRecent(ctx context.Context, limit int) ([]model.Hunt, error)
	SetCoverURL(ctx context.Context, huntID, url string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	ListByHunt(ctx context.Context, huntID string, limit int) ([]model.Review, error)
}

type AuditRepository interface {
	// Append writes one immutable debug_notifications record. The server
	// assigns the timestamp.
	Append(ctx context.Context, record *model.DebugNotification) error
	// ListByReview returns the audit records written for one review.
	ListByReview(ctx context.Context, reviewID string, limit int) ([]model.DebugNotification, error)
}
