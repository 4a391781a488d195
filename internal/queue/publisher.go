package queue

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher defines the interface for publishing events to a stream.
type Publisher interface {
	// Publish adds an event to the specified stream.
	// Returns the message ID assigned by Redis.
	Publish(ctx context.Context, stream string, event ReviewEvent) (messageID string, err error)

	// PublishReviewCreated is a convenience wrapper for the one event
	// type this system emits.
	PublishReviewCreated(ctx context.Context, reviewID, huntID, comment string) (string, error)
}

// RedisPublisher implements Publisher using Redis Streams.
type RedisPublisher struct {
	client *redis.Client
}

// NewPublisher creates a new Publisher backed by Redis Streams.
func NewPublisher(client *redis.Client) Publisher {
	return &RedisPublisher{client: client}
}

// Publish adds an event to the stream using XADD.
// Uses "*" for auto-generated message ID (timestamp-sequence).
func (p *RedisPublisher) Publish(ctx context.Context, stream string, event ReviewEvent) (string, error) {
	startTime := time.Now()

	values, err := event.ToMap()
	if err != nil {
		log.Printf("[Publisher] Publish FAILED: stream=%s type=%s err=%v", stream, event.Type, err)
		return "", fmt.Errorf("serialize event: %w", err)
	}

	messageID, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()

	if err != nil {
		log.Printf("[Publisher] Publish FAILED: stream=%s type=%s err=%v", stream, event.Type, err)
		return "", fmt.Errorf("xadd to stream: %w", err)
	}

	log.Printf("[Publisher] Publish OK: stream=%s type=%s review=%s hunt=%s msgID=%s duration=%v",
		stream, event.Type, event.ReviewID, event.HuntID, messageID, time.Since(startTime))

	return messageID, nil
}

// PublishReviewCreated publishes the review-created event to the review stream.
func (p *RedisPublisher) PublishReviewCreated(ctx context.Context, reviewID, huntID, comment string) (string, error) {
	event := NewReviewCreatedEvent(reviewID, huntID, comment)
	return p.Publish(ctx, StreamReviews, event)
}
