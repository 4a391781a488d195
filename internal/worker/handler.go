package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"huntquest/internal/queue"
)

// ReviewNotifier is the pipeline driven once per delivered review event.
// An error means the invocation did not reach its audited terminal state
// and the event must stay pending for redelivery.
type ReviewNotifier interface {
	HandleReviewCreated(ctx context.Context, reviewID, huntID, comment string) error
}

// Handler routes review events from the stream to the notifier.
type Handler struct {
	notifier ReviewNotifier
}

// NewHandler creates a new event handler.
func NewHandler(notifier ReviewNotifier) *Handler {
	return &Handler{notifier: notifier}
}

// HandleEvent dispatches one event. Each delivered event is one pipeline
// invocation; concurrent invocations for distinct reviews are fine
// because they touch disjoint documents.
func (h *Handler) HandleEvent(ctx context.Context, event queue.ReviewEvent) error {
	startTime := time.Now()

	var err error
	switch event.Type {
	case queue.EventReviewCreated:
		err = h.notifier.HandleReviewCreated(ctx, event.ReviewID, event.HuntID, event.Comment)
	default:
		log.Printf("[Worker] Unknown event type: %s", event.Type)
		return fmt.Errorf("unknown event type: %s", event.Type)
	}

	if err != nil {
		log.Printf("[Worker] HandleEvent FAILED: type=%s review=%s duration=%v err=%v",
			event.Type, event.ReviewID, time.Since(startTime), err)
		return err
	}

	log.Printf("[Worker] HandleEvent OK: type=%s review=%s duration=%v",
		event.Type, event.ReviewID, time.Since(startTime))
	return nil
}
