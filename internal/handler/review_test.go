package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"huntquest/internal/model"
	"huntquest/internal/queue"
	"huntquest/internal/service"
	"huntquest/internal/transport/http/middleware"
)

// =============================================================================
// MOCKS
// =============================================================================

type mockReviewRepository struct {
	createCalls []*model.Review
}

func (m *mockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	m.createCalls = append(m.createCalls, review)
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	return nil, model.ErrReviewNotFound
}

func (m *mockReviewRepository) ListByHunt(ctx context.Context, huntID string, limit int) ([]model.Review, error) {
	return nil, nil
}

type mockHuntRepository struct{}

func (m *mockHuntRepository) Create(ctx context.Context, hunt *model.Hunt) error { return nil }

func (m *mockHuntRepository) GetByID(ctx context.Context, id string) (*model.Hunt, error) {
	return &model.Hunt{ID: id, Title: "City Crawl", AuthorID: "u1"}, nil
}

func (m *mockHuntRepository) ListRecent(ctx context.Context, limit int) ([]model.Hunt, error) {
	return nil, nil
}

func (m *mockHuntRepository) SetCoverURL(ctx context.Context, huntID, url string) error { return nil }

type mockPublisher struct{}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.ReviewEvent) (string, error) {
	return "1-0", nil
}

func (m *mockPublisher) PublishReviewCreated(ctx context.Context, reviewID, huntID, comment string) (string, error) {
	return "1-0", nil
}

// =============================================================================
// Helpers
// =============================================================================

func postReview(t *testing.T, h *ReviewHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/hunts/{id}/reviews", h.Create)

	req := httptest.NewRequest("POST", "/hunts/h1/reviews", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), middleware.ProfileIDKey, "u2"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Tests
// =============================================================================

// TestReviewHandler_Create_RatingOptional verifies a review with only a
// comment is accepted; rating is not a required field.
func TestReviewHandler_Create_RatingOptional(t *testing.T) {
	reviews := &mockReviewRepository{}
	h := NewReviewHandler(service.NewReviewService(reviews, &mockHuntRepository{}, &mockPublisher{}))

	rec := postReview(t, h, `{"comment":"Loved it!"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(reviews.createCalls) != 1 {
		t.Fatalf("created %d reviews, want 1", len(reviews.createCalls))
	}
	if got := reviews.createCalls[0].Rating; got != 0 {
		t.Errorf("rating = %d, want 0 (omitted)", got)
	}
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	reviews := &mockReviewRepository{}
	h := NewReviewHandler(service.NewReviewService(reviews, &mockHuntRepository{}, &mockPublisher{}))

	rec := postReview(t, h, `{"comment":"hi","rating":7}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if len(reviews.createCalls) != 0 {
		t.Errorf("created %d reviews, want 0", len(reviews.createCalls))
	}
}

func TestReviewHandler_Create_RatingInRange(t *testing.T) {
	reviews := &mockReviewRepository{}
	h := NewReviewHandler(service.NewReviewService(reviews, &mockHuntRepository{}, &mockPublisher{}))

	rec := postReview(t, h, `{"comment":"hi","rating":5}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if got := reviews.createCalls[0].Rating; got != 5 {
		t.Errorf("rating = %d, want 5", got)
	}
}
