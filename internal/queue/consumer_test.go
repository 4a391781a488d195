package queue_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"huntquest/internal/queue"
)

func setupTestRedis(t *testing.T) *redis.Client {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("Failed to parse Redis URL: %v", err)
	}

	// Use DB 1 for testing to avoid conflicts with dev data
	opts.DB = 1

	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available, skipping test: %v", err)
	}

	client.FlushDB(ctx)
	return client
}

func cleanupTestRedis(client *redis.Client) {
	ctx := context.Background()
	client.FlushDB(ctx)
	client.Close()
}

// TestConsumer_DiscardsMalformedMessages verifies that a message the
// consumer cannot decode is acknowledged away rather than left pending,
// where every recovery pass would re-scan it forever.
func TestConsumer_DiscardsMalformedMessages(t *testing.T) {
	client := setupTestRedis(t)
	defer cleanupTestRedis(client)

	ctx := context.Background()
	consumer := queue.NewConsumer(client)

	if err := consumer.EnsureGroup(ctx, queue.StreamReviews, queue.ConsumerGroupNotifier); err != nil {
		t.Fatalf("ensure group: %v", err)
	}

	// A raw entry without the "data" field cannot be parsed into an event.
	if err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: queue.StreamReviews,
		Values: map[string]interface{}{"garbage": "x"},
	}).Err(); err != nil {
		t.Fatalf("xadd malformed: %v", err)
	}

	publisher := queue.NewPublisher(client)
	if _, err := publisher.PublishReviewCreated(ctx, "r1", "h1", "Loved it!"); err != nil {
		t.Fatalf("publish: %v", err)
	}

	msgs, err := consumer.Read(ctx, queue.StreamReviews, queue.ConsumerGroupNotifier, "worker-1", 10, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// Only the well-formed event comes back.
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Event.ReviewID != "r1" {
		t.Errorf("review id = %q, want r1", msgs[0].Event.ReviewID)
	}

	// The malformed entry must not stay pending; only the delivered event
	// awaits its ack.
	pending, err := consumer.Pending(ctx, queue.StreamReviews, queue.ConsumerGroupNotifier)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending != 1 {
		t.Errorf("pending = %d, want 1 (the valid unacked event only)", pending)
	}

	// And a recovery pass must not resurrect it.
	recovered, err := consumer.ReadPending(ctx, queue.StreamReviews, queue.ConsumerGroupNotifier, "worker-1", 10)
	if err != nil {
		t.Fatalf("read pending: %v", err)
	}
	if len(recovered) != 1 || recovered[0].Event.ReviewID != "r1" {
		t.Errorf("recovered = %+v, want only the valid event", recovered)
	}
}
