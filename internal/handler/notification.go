package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"huntquest/internal/httputil"
	"huntquest/internal/model"
	"huntquest/internal/repository"
	"huntquest/internal/service"
	"huntquest/internal/transport/http/middleware"
)

// NotificationHandler exposes push-token registration and the
// debug_notifications audit trail.
type NotificationHandler struct {
	profileService *service.ProfileService
	audits         repository.AuditRepository
}

func NewNotificationHandler(profileService *service.ProfileService, audits repository.AuditRepository) *NotificationHandler {
	return &NotificationHandler{
		profileService: profileService,
		audits:         audits,
	}
}

// RegisterToken handles POST /notifications/token
func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.RegisterTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Token == "" {
		httputil.WriteBadRequest(w, "token is required")
		return
	}

	if err := h.profileService.RegisterPushToken(r.Context(), profileID, req.Token); err != nil {
		log.Printf("[ERROR] Register push token: profile=%s err=%v", profileID, err)
		httputil.WriteInternalError(w, "Failed to register push token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Token registered"})
}

// RemoveToken handles DELETE /notifications/token
func (h *NotificationHandler) RemoveToken(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if err := h.profileService.RemovePushToken(r.Context(), profileID); err != nil {
		log.Printf("[ERROR] Remove push token: profile=%s err=%v", profileID, err)
		httputil.WriteInternalError(w, "Failed to remove push token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Token removed"})
}

// ListDebug handles GET /debug/notifications?review_id=
func (h *NotificationHandler) ListDebug(w http.ResponseWriter, r *http.Request) {
	reviewID := r.URL.Query().Get("review_id")
	if reviewID == "" {
		httputil.WriteBadRequest(w, "review_id is required")
		return
	}

	records, err := h.audits.ListByReview(r.Context(), reviewID, 50)
	if err != nil {
		log.Printf("[ERROR] List debug notifications: review=%s err=%v", reviewID, err)
		httputil.WriteInternalError(w, "Failed to list notification records")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"notifications": records})
}
