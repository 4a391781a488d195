package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types for the review stream
const (
	EventReviewCreated = "review_created"
)

// Stream names
const (
	StreamReviews = "stream:reviews"
)

// Consumer group name for notifier workers
const (
	ConsumerGroupNotifier = "notifier_workers"
)

// ReviewEvent is published once per created review document. It carries
// the document's payload so the notifier never reads the review back:
// one delivery equals one pipeline invocation. Delivery is at-least-once;
// a redelivered event runs the pipeline again.
type ReviewEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // Unix timestamp when event occurred

	ReviewID string `json:"review_id"`
	HuntID   string `json:"hunt_id"`
	Comment  string `json:"comment"`
}

// NewReviewCreatedEvent creates the event for a freshly written review.
func NewReviewCreatedEvent(reviewID, huntID, comment string) ReviewEvent {
	return ReviewEvent{
		Type:      EventReviewCreated,
		Timestamp: time.Now().Unix(),
		ReviewID:  reviewID,
		HuntID:    huntID,
		Comment:   comment,
	}
}

// ToMap converts the event to a map for Redis XADD.
// Redis Streams store field-value pairs, so the event is serialized to
// JSON in a "data" field.
func (e ReviewEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseReviewEvent parses a ReviewEvent from Redis stream message values.
func ParseReviewEvent(values map[string]interface{}) (ReviewEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return ReviewEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event ReviewEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return ReviewEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}
