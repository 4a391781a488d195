package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"huntquest/internal/httputil"
	"huntquest/internal/model"
	"huntquest/internal/service"
	"huntquest/internal/transport/http/middleware"
)

type AuthHandler struct {
	profileService *service.ProfileService
	authService    *service.AuthService
}

func NewAuthHandler(profileService *service.ProfileService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		profileService: profileService,
		authService:    authService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || len(req.Password) < 8 {
		httputil.WriteBadRequest(w, "email and a password of at least 8 characters are required")
		return
	}

	profile, err := h.profileService.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmailExists) {
			httputil.WriteConflict(w, "Email already registered")
			return
		}
		log.Printf("[ERROR] Register: err=%v", err)
		httputil.WriteInternalError(w, "Failed to register")
		return
	}

	tokens, err := h.authService.IssueTokens(profile.ID)
	if err != nil {
		log.Printf("[ERROR] Register issue tokens: profile=%s err=%v", profile.ID, err)
		httputil.WriteInternalError(w, "Failed to issue tokens")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, model.AuthResponse{Profile: profile, Tokens: tokens})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.profileService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, "Invalid credentials")
			return
		}
		log.Printf("[ERROR] Login: err=%v", err)
		httputil.WriteInternalError(w, "Failed to log in")
		return
	}

	tokens, err := h.authService.IssueTokens(profile.ID)
	if err != nil {
		log.Printf("[ERROR] Login issue tokens: profile=%s err=%v", profile.ID, err)
		httputil.WriteInternalError(w, "Failed to issue tokens")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.AuthResponse{Profile: profile, Tokens: tokens})
}

// Me handles GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.profileService.GetByID(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			httputil.WriteNotFound(w, "Profile not found")
			return
		}
		log.Printf("[ERROR] Me: profile=%s err=%v", profileID, err)
		httputil.WriteInternalError(w, "Failed to get profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}
