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

const huntsCollection = "hunts"

type huntRepository struct {
	client *firestore.Client
}

func NewHuntRepository(client *firestore.Client) HuntRepository {
	return &huntRepository{client: client}
}

// Create writes the hunt document under its pre-assigned ID.
func (r *huntRepository) Create(ctx context.Context, hunt *model.Hunt) error {
	_, err := r.client.Collection(huntsCollection).Doc(hunt.ID).Create(ctx, hunt)
	if err != nil {
		return fmt.Errorf("create hunt: %w", err)
	}
	return nil
}

// GetByID fetches a hunt document. A missing document maps to
// model.ErrHuntNotFound.
func (r *huntRepository) GetByID(ctx context.Context, id string) (*model.Hunt, error) {
	snap, err := r.client.Collection(huntsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, model.ErrHuntNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hunt: %w", err)
	}

	var hunt model.Hunt
	if err := snap.DataTo(&hunt); err != nil {
		return nil, fmt.Errorf("decode hunt: %w", err)
	}
	hunt.ID = snap.Ref.ID
	return &hunt, nil
}

// ListRecent returns the newest hunts first.
func (r *huntRepository) ListRecent(ctx context.Context, limit int) ([]model.Hunt, error) {
	iter := r.client.Collection(huntsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var hunts []model.Hunt
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list hunts: %w", err)
		}

		var hunt model.Hunt
		if err := snap.DataTo(&hunt); err != nil {
			return nil, fmt.Errorf("decode hunt: %w", err)
		}
		hunt.ID = snap.Ref.ID
		hunts = append(hunts, hunt)
	}
	return hunts, nil
}

// SetCoverURL updates only the cover field on an existing hunt.
func (r *huntRepository) SetCoverURL(ctx context.Context, huntID, url string) error {
	_, err := r.client.Collection(huntsCollection).Doc(huntID).Update(ctx, []firestore.Update{
		{Path: "coverUrl", Value: url},
	})
	if status.Code(err) == codes.NotFound {
		return model.ErrHuntNotFound
	}
	if err != nil {
		return fmt.Errorf("set hunt cover: %w", err)
	}
	return nil
}
