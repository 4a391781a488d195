package push

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// Message is one push envelope addressed by a raw device token. The
// notification block is what the OS displays; Data is the invisible
// payload the app uses for deep-linking.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Sender sends one push message and returns the provider's message ID.
// The notifier depends on this interface so tests can substitute a fake.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// FCMSender sends messages through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

// Send makes exactly one send attempt. There is no retry here; the
// caller decides what a failed send means.
func (s *FCMSender) Send(ctx context.Context, msg Message) (string, error) {
	m := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high", // Ensures delivery even in battery-saving mode
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	id, err := s.client.Send(ctx, m)
	if err != nil {
		return "", fmt.Errorf("send fcm message: %w", err)
	}
	return id, nil
}
