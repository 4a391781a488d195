package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"huntquest/internal/model"
)

const auditCollection = "debug_notifications"

type auditRepository struct {
	client *firestore.Client
}

func NewAuditRepository(client *firestore.Client) AuditRepository {
	return &auditRepository{client: client}
}

// Append writes one record with an auto-generated ID. The serverTimestamp
// tag on the model fills the timestamp field; records are never updated
// or deleted afterwards.
func (r *auditRepository) Append(ctx context.Context, record *model.DebugNotification) error {
	_, err := r.client.Collection(auditCollection).NewDoc().Create(ctx, record)
	if err != nil {
		return fmt.Errorf("append debug notification: %w", err)
	}
	return nil
}

func (r *auditRepository) ListByReview(ctx context.Context, reviewID string, limit int) ([]model.DebugNotification, error) {
	iter := r.client.Collection(auditCollection).
		Where("reviewId", "==", reviewID).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []model.DebugNotification
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list debug notifications: %w", err)
		}

		var record model.DebugNotification
		if err := snap.DataTo(&record); err != nil {
			return nil, fmt.Errorf("decode debug notification: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
