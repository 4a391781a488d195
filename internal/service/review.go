package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"huntquest/internal/model"
	"huntquest/internal/queue"
	"huntquest/internal/repository"
)

// ErrEmptyComment is returned when a review is submitted without a comment.
var ErrEmptyComment = errors.New("comment is required")

// ReviewService handles review creation and listing. Creating a review
// persists the document and then publishes a review_created event; the
// notifier picks the event up asynchronously.
type ReviewService struct {
	reviews   repository.ReviewRepository
	hunts     repository.HuntRepository
	publisher queue.Publisher
}

func NewReviewService(
	reviews repository.ReviewRepository,
	hunts repository.HuntRepository,
	publisher queue.Publisher,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		hunts:     hunts,
		publisher: publisher,
	}
}

// Create persists a review of the hunt and publishes its creation event.
// The hunt must exist at creation time; the notifier re-resolves it on
// delivery and fails closed if it disappeared in between.
func (s *ReviewService) Create(ctx context.Context, authorID, huntID string, req *model.CreateReviewRequest) (*model.Review, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.hunts.GetByID(ctx, huntID); err != nil {
		return nil, err
	}

	review := &model.Review{
		ID:        uuid.NewString(),
		HuntID:    huntID,
		AuthorID:  authorID,
		Comment:   comment,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	// The review document is already committed; a publish failure only
	// means no notification, which operators can see in the audit trail's
	// absence. The request itself still succeeds.
	if _, err := s.publisher.PublishReviewCreated(ctx, review.ID, review.HuntID, review.Comment); err != nil {
		log.Printf("[ReviewService] publish review_created FAILED: review=%s err=%v", review.ID, err)
	}

	return review, nil
}

// ListByHunt returns reviews for one hunt.
func (s *ReviewService) ListByHunt(ctx context.Context, huntID string, limit int) ([]model.Review, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	return s.reviews.ListByHunt(ctx, huntID, limit)
}
