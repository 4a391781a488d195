package model

import "time"

// Terminal outcomes of one notification pipeline invocation.
const (
	AuditStatusHuntNotFound = "hunt_not_found"
	AuditStatusNoToken      = "no_token"
	AuditStatusSent         = "sent"
	AuditStatusSendError    = "send_error"
)

// DebugNotification is one append-only audit record in the
// debug_notifications collection. Exactly one is written per pipeline
// invocation; operators diagnose push delivery through these, they are
// never read back by business logic.
type DebugNotification struct {
	Status   string `firestore:"status" json:"status"`
	ReviewID string `firestore:"reviewId" json:"review_id"`
	HuntID   string `firestore:"huntId,omitempty" json:"hunt_id,omitempty"`
	OwnerID  string `firestore:"ownerId,omitempty" json:"owner_id,omitempty"`
	Token    string `firestore:"token,omitempty" json:"token,omitempty"`
	Error    string `firestore:"error,omitempty" json:"error,omitempty"`

	// Timestamp is assigned by the server on append.
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
