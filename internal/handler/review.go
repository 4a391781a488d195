package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"huntquest/internal/httputil"
	"huntquest/internal/model"
	"huntquest/internal/service"
	"huntquest/internal/transport/http/middleware"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles POST /hunts/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	huntID := chi.URLParam(r, "id")

	var req model.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	// Rating is optional; validate the range only when one was given.
	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		httputil.WriteBadRequest(w, "rating must be between 1 and 5")
		return
	}

	review, err := h.reviewService.Create(r.Context(), profileID, huntID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrHuntNotFound):
			httputil.WriteNotFound(w, "Hunt not found")
		case errors.Is(err, service.ErrEmptyComment):
			httputil.WriteBadRequest(w, "comment is required")
		default:
			log.Printf("[ERROR] Create review: hunt=%s profile=%s err=%v", huntID, profileID, err)
			httputil.WriteInternalError(w, "Failed to create review")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, review)
}

// ListByHunt handles GET /hunts/{id}/reviews
func (h *ReviewHandler) ListByHunt(w http.ResponseWriter, r *http.Request) {
	huntID := chi.URLParam(r, "id")

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			httputil.WriteBadRequest(w, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	reviews, err := h.reviewService.ListByHunt(r.Context(), huntID, limit)
	if err != nil {
		log.Printf("[ERROR] List reviews: hunt=%s err=%v", huntID, err)
		httputil.WriteInternalError(w, "Failed to list reviews")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}
