package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huntquest/internal/model"
)

const profilesCollection = "profiles"

type profileRepository struct {
	client *firestore.Client
}

func NewProfileRepository(client *firestore.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	_, err := r.client.Collection(profilesCollection).Doc(profile.ID).Create(ctx, profile)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	snap, err := r.client.Collection(profilesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var profile model.Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	profile.ID = snap.Ref.ID
	return &profile, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	iter := r.client.Collection(profilesCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile by email: %w", err)
	}

	var profile model.Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	profile.ID = snap.Ref.ID
	return &profile, nil
}

func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == model.ErrProfileNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetPushToken upserts author.fcmToken on the profile document. Called
// whenever the client registers a device or FCM rotates the token.
func (r *profileRepository) SetPushToken(ctx context.Context, profileID, token string) error {
	_, err := r.client.Collection(profilesCollection).Doc(profileID).Update(ctx, []firestore.Update{
		{Path: "author.fcmToken", Value: token},
	})
	if status.Code(err) == codes.NotFound {
		return model.ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("set push token: %w", err)
	}
	return nil
}

func (r *profileRepository) RemovePushToken(ctx context.Context, profileID string) error {
	_, err := r.client.Collection(profilesCollection).Doc(profileID).Update(ctx, []firestore.Update{
		{Path: "author.fcmToken", Value: firestore.Delete},
	})
	if status.Code(err) == codes.NotFound {
		return model.ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("remove push token: %w", err)
	}
	return nil
}
