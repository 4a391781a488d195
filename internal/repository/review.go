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

const reviewsCollection = "huntsReviews"

type reviewRepository struct {
	client *firestore.Client
}

func NewReviewRepository(client *firestore.Client) ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Create(ctx, review)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	snap, err := r.client.Collection(reviewsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, model.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	var review model.Review
	if err := snap.DataTo(&review); err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}
	review.ID = snap.Ref.ID
	return &review, nil
}

func (r *reviewRepository) ListByHunt(ctx context.Context, huntID string, limit int) ([]model.Review, error) {
	iter := r.client.Collection(reviewsCollection).
		Where("huntId", "==", huntID).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var reviews []model.Review
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list reviews: %w", err)
		}

		var review model.Review
		if err := snap.DataTo(&review); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		review.ID = snap.Ref.ID
		reviews = append(reviews, review)
	}
	return reviews, nil
}
