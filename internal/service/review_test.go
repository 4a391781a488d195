package service

import (
	"context"
	"errors"
	"testing"

	"huntquest/internal/model"
	"huntquest/internal/queue"
)

// =============================================================================
// MOCKS
// =============================================================================

type mockReviewRepository struct {
	createFn func(ctx context.Context, review *model.Review) error

	createCalls []*model.Review
}

func (m *mockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	m.createCalls = append(m.createCalls, review)
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	return nil, model.ErrReviewNotFound
}

func (m *mockReviewRepository) ListByHunt(ctx context.Context, huntID string, limit int) ([]model.Review, error) {
	return nil, nil
}

type mockHuntRepository struct {
	getByIDFn func(ctx context.Context, id string) (*model.Hunt, error)
}

func (m *mockHuntRepository) Create(ctx context.Context, hunt *model.Hunt) error { return nil }

func (m *mockHuntRepository) GetByID(ctx context.Context, id string) (*model.Hunt, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrHuntNotFound
}

func (m *mockHuntRepository) ListRecent(ctx context.Context, limit int) ([]model.Hunt, error) {
	return nil, nil
}

func (m *mockHuntRepository) SetCoverURL(ctx context.Context, huntID, url string) error { return nil }

type mockPublisher struct {
	publishErr error

	events []queue.ReviewEvent
}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.ReviewEvent) (string, error) {
	m.events = append(m.events, event)
	if m.publishErr != nil {
		return "", m.publishErr
	}
	return "1702000000000-0", nil
}

func (m *mockPublisher) PublishReviewCreated(ctx context.Context, reviewID, huntID, comment string) (string, error) {
	return m.Publish(ctx, queue.StreamReviews, queue.NewReviewCreatedEvent(reviewID, huntID, comment))
}

// =============================================================================
// CREATE TESTS
// =============================================================================

func existingHunt() *mockHuntRepository {
	return &mockHuntRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Hunt, error) {
			return &model.Hunt{ID: id, Title: "City Crawl", AuthorID: "u1"}, nil
		},
	}
}

func TestReviewService_Create_PublishesEvent(t *testing.T) {
	reviews := &mockReviewRepository{}
	publisher := &mockPublisher{}
	svc := NewReviewService(reviews, existingHunt(), publisher)

	review, err := svc.Create(context.Background(), "u2", "h1", &model.CreateReviewRequest{
		Comment: "Loved it!",
		Rating:  5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reviews.createCalls) != 1 {
		t.Fatalf("Create called %d times, want 1", len(reviews.createCalls))
	}

	// The event carries the document payload so the notifier never has
	// to read the review back.
	if len(publisher.events) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.events))
	}
	event := publisher.events[0]
	if event.Type != queue.EventReviewCreated {
		t.Errorf("event type = %q, want %q", event.Type, queue.EventReviewCreated)
	}
	if event.ReviewID != review.ID {
		t.Errorf("event review ID = %q, want %q", event.ReviewID, review.ID)
	}
	if event.HuntID != "h1" || event.Comment != "Loved it!" {
		t.Errorf("event payload = %+v, want huntID=h1 comment=Loved it!", event)
	}
}

func TestReviewService_Create_HuntMissing(t *testing.T) {
	reviews := &mockReviewRepository{}
	publisher := &mockPublisher{}
	svc := NewReviewService(reviews, &mockHuntRepository{}, publisher)

	_, err := svc.Create(context.Background(), "u2", "ghost", &model.CreateReviewRequest{Comment: "hi"})
	if !errors.Is(err, model.ErrHuntNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrHuntNotFound)
	}

	if len(reviews.createCalls) != 0 {
		t.Error("no review should be written when the hunt is missing")
	}
	if len(publisher.events) != 0 {
		t.Error("no event should be published when the hunt is missing")
	}
}

func TestReviewService_Create_EmptyComment(t *testing.T) {
	svc := NewReviewService(&mockReviewRepository{}, existingHunt(), &mockPublisher{})

	if _, err := svc.Create(context.Background(), "u2", "h1", &model.CreateReviewRequest{Comment: "   "}); err == nil {
		t.Error("expected error for empty comment")
	}
}

func TestReviewService_Create_PublishFailureStillSucceeds(t *testing.T) {
	// The document is committed before publishing; a publish fault costs
	// the notification, not the review.
	publisher := &mockPublisher{publishErr: errors.New("redis down")}
	svc := NewReviewService(&mockReviewRepository{}, existingHunt(), publisher)

	review, err := svc.Create(context.Background(), "u2", "h1", &model.CreateReviewRequest{Comment: "ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review == nil {
		t.Fatal("expected review despite publish failure")
	}
}
