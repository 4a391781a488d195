package model

import (
	"errors"
	"time"
)

// Hunt is a treasure-hunt activity document owned by the profile that
// created it. Lat/Lng locate the starting point for the app's map screen.
type Hunt struct {
	ID          string    `firestore:"-" json:"id"`
	Title       string    `firestore:"title" json:"title"`
	AuthorID    string    `firestore:"authorId" json:"author_id"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	Lat         float64   `firestore:"lat,omitempty" json:"lat,omitempty"`
	Lng         float64   `firestore:"lng,omitempty" json:"lng,omitempty"`
	CoverURL    string    `firestore:"coverUrl,omitempty" json:"cover_url,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
}

// CreateHuntRequest is the request body for creating a hunt
type CreateHuntRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

var (
	// ErrHuntNotFound is returned when a hunt document does not exist
	ErrHuntNotFound = errors.New("hunt not found")

	// ErrNotHuntOwner is returned when a profile modifies a hunt it does not own
	ErrNotHuntOwner = errors.New("not the hunt owner")
)
