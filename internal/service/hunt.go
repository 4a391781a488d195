package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"huntquest/internal/model"
	"huntquest/internal/repository"
)

// HuntService handles hunt-related business logic.
type HuntService struct {
	hunts repository.HuntRepository
}

func NewHuntService(hunts repository.HuntRepository) *HuntService {
	return &HuntService{hunts: hunts}
}

// Create writes a new hunt owned by the authenticated profile.
func (s *HuntService) Create(ctx context.Context, authorID string, req *model.CreateHuntRequest) (*model.Hunt, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	hunt := &model.Hunt{
		ID:          uuid.NewString(),
		Title:       title,
		AuthorID:    authorID,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		CreatedAt:   time.Now(),
	}

	if err := s.hunts.Create(ctx, hunt); err != nil {
		return nil, err
	}
	return hunt, nil
}

// GetByID returns one hunt.
func (s *HuntService) GetByID(ctx context.Context, id string) (*model.Hunt, error) {
	return s.hunts.GetByID(ctx, id)
}

// ListRecent returns the newest hunts.
func (s *HuntService) ListRecent(ctx context.Context, limit int) ([]model.Hunt, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	return s.hunts.ListRecent(ctx, limit)
}

// SetCover stores the uploaded cover's public URL on the hunt. Only the
// owner may change the cover.
func (s *HuntService) SetCover(ctx context.Context, huntID, profileID, url string) error {
	hunt, err := s.hunts.GetByID(ctx, huntID)
	if err != nil {
		return err
	}
	if hunt.AuthorID != profileID {
		return model.ErrNotHuntOwner
	}
	return s.hunts.SetCoverURL(ctx, huntID, url)
}
