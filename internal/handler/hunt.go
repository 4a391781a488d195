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

type HuntHandler struct {
	huntService  *service.HuntService
	mediaService *service.MediaService // nil when R2 is not configured
}

func NewHuntHandler(huntService *service.HuntService, mediaService *service.MediaService) *HuntHandler {
	return &HuntHandler{
		huntService:  huntService,
		mediaService: mediaService,
	}
}

// Create handles POST /hunts
func (h *HuntHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateHuntRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" {
		httputil.WriteBadRequest(w, "title is required")
		return
	}

	hunt, err := h.huntService.Create(r.Context(), profileID, &req)
	if err != nil {
		log.Printf("[ERROR] Create hunt: profile=%s err=%v", profileID, err)
		httputil.WriteInternalError(w, "Failed to create hunt")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, hunt)
}

// GetByID handles GET /hunts/{id}
func (h *HuntHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	huntID := chi.URLParam(r, "id")

	hunt, err := h.huntService.GetByID(r.Context(), huntID)
	if err != nil {
		if errors.Is(err, model.ErrHuntNotFound) {
			httputil.WriteNotFound(w, "Hunt not found")
			return
		}
		log.Printf("[ERROR] Get hunt: hunt=%s err=%v", huntID, err)
		httputil.WriteInternalError(w, "Failed to get hunt")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, hunt)
}

// List handles GET /hunts
func (h *HuntHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			httputil.WriteBadRequest(w, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	hunts, err := h.huntService.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] List hunts: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list hunts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"hunts": hunts})
}

// UploadCover handles POST /hunts/{id}/cover (multipart form, field "cover")
func (h *HuntHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.GetProfileIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if h.mediaService == nil {
		httputil.WriteError(w, http.StatusServiceUnavailable, httputil.ErrCodeInternal, "Cover uploads are not configured")
		return
	}

	huntID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(model.MaxCoverSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("cover")
	if err != nil {
		httputil.WriteBadRequest(w, "cover file is required")
		return
	}
	defer file.Close()

	result, err := h.mediaService.UploadHuntCover(r.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteBadRequest(w, "File too large")
		case errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequest(w, "Invalid image type")
		default:
			log.Printf("[ERROR] Upload cover: hunt=%s err=%v", huntID, err)
			httputil.WriteInternalError(w, "Failed to upload cover")
		}
		return
	}

	if err := h.huntService.SetCover(r.Context(), huntID, profileID, result.URL); err != nil {
		switch {
		case errors.Is(err, model.ErrHuntNotFound):
			httputil.WriteNotFound(w, "Hunt not found")
		case errors.Is(err, model.ErrNotHuntOwner):
			httputil.WriteForbidden(w, "Only the hunt owner can change the cover")
		default:
			log.Printf("[ERROR] Set cover: hunt=%s err=%v", huntID, err)
			httputil.WriteInternalError(w, "Failed to set cover")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}
