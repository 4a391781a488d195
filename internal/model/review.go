package model

import (
	"errors"
	"time"
)

// Review is a user-submitted comment on a hunt. Creating one is the
// event source for the notification pipeline; the pipeline itself only
// ever reads the delivered payload.
type Review struct {
	ID        string    `firestore:"-" json:"id"`
	HuntID    string    `firestore:"huntId" json:"hunt_id"`
	AuthorID  string    `firestore:"authorId" json:"author_id"`
	Comment   string    `firestore:"comment" json:"comment"`
	Rating    int       `firestore:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
}

// CreateReviewRequest is the request body for reviewing a hunt
type CreateReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// ErrReviewNotFound is returned when a review document does not exist
var ErrReviewNotFound = errors.New("review not found")
