package notifier

import (
	"context"
	"fmt"
	"log"
	"time"

	"huntquest/internal/model"
	"huntquest/internal/push"
)

// HuntProvider abstracts the hunt lookup so the pipeline doesn't depend
// on the repository layer directly.
type HuntProvider interface {
	GetByID(ctx context.Context, id string) (*model.Hunt, error)
}

// ProfileProvider abstracts the owner-profile lookup.
type ProfileProvider interface {
	GetByID(ctx context.Context, id string) (*model.Profile, error)
}

// AuditAppender appends one immutable debug record per invocation.
type AuditAppender interface {
	Append(ctx context.Context, record *model.DebugNotification) error
}

// Push message text for a new review.
const (
	notificationTitle = "New review!"
)

// outcome of resolving a hunt ID into a push target.
type outcome int

const (
	outcomeFound outcome = iota
	outcomeHuntNotFound
	outcomeNoToken
)

// resolution carries whatever context was established before resolution
// stopped. hunt and ownerID are set for outcomeNoToken; everything is
// set for outcomeFound.
type resolution struct {
	outcome outcome
	hunt    *model.Hunt
	ownerID string
	token   string
}

// Pipeline reacts to each created review exactly once: it resolves the
// reviewed hunt and its owner's push token, sends at most one push
// message, and appends exactly one debug_notifications record with the
// terminal outcome. All collaborators are injected interfaces.
type Pipeline struct {
	hunts    HuntProvider
	profiles ProfileProvider
	audits   AuditAppender
	sender   push.Sender
}

func NewPipeline(
	hunts HuntProvider,
	profiles ProfileProvider,
	audits AuditAppender,
	sender push.Sender,
) *Pipeline {
	return &Pipeline{
		hunts:    hunts,
		profiles: profiles,
		audits:   audits,
		sender:   sender,
	}
}

// HandleReviewCreated runs one pipeline invocation for the delivered
// review payload. Hunt lookup strictly precedes profile lookup, both
// precede dispatch, and the audit append is always last.
//
// Missing hunt and missing token are normal branches, not faults. A
// failed send is recorded and swallowed so the event is acknowledged.
// The only error this returns is a failed audit append, which the caller
// must treat as "invocation failed" so the event is redelivered.
func (p *Pipeline) HandleReviewCreated(ctx context.Context, reviewID, huntID, comment string) error {
	startTime := time.Now()

	res := p.resolveOwnerToken(ctx, huntID)

	switch res.outcome {
	case outcomeHuntNotFound:
		log.Printf("[Pipeline] review=%s hunt=%s: hunt not found, skipping dispatch", reviewID, huntID)
		return p.appendAudit(ctx, &model.DebugNotification{
			Status:   model.AuditStatusHuntNotFound,
			ReviewID: reviewID,
			HuntID:   huntID,
		})

	case outcomeNoToken:
		log.Printf("[Pipeline] review=%s hunt=%s owner=%s: no push token, skipping dispatch",
			reviewID, huntID, res.ownerID)
		return p.appendAudit(ctx, &model.DebugNotification{
			Status:   model.AuditStatusNoToken,
			ReviewID: reviewID,
			HuntID:   huntID,
			OwnerID:  res.ownerID,
		})
	}

	msg := buildReviewMessage(res.token, res.hunt.Title, comment, huntID, reviewID)

	msgID, err := p.sender.Send(ctx, msg)
	if err != nil {
		// One attempt only. The fault is recorded, not re-raised, so the
		// triggering event is acknowledged rather than redelivered.
		log.Printf("[Pipeline] review=%s hunt=%s owner=%s: send FAILED: %v",
			reviewID, huntID, res.ownerID, err)
		return p.appendAudit(ctx, &model.DebugNotification{
			Status:   model.AuditStatusSendError,
			ReviewID: reviewID,
			HuntID:   huntID,
			OwnerID:  res.ownerID,
			Token:    res.token,
			Error:    err.Error(),
		})
	}

	log.Printf("[Pipeline] review=%s hunt=%s owner=%s: sent msgID=%s duration=%v",
		reviewID, huntID, res.ownerID, msgID, time.Since(startTime))
	return p.appendAudit(ctx, &model.DebugNotification{
		Status:   model.AuditStatusSent,
		ReviewID: reviewID,
		HuntID:   huntID,
		OwnerID:  res.ownerID,
		Token:    res.token,
	})
}

// resolveOwnerToken translates a hunt ID into the owning profile's push
// token. It fails closed: a store fault on either read resolves to the
// same branch as a missing document, and no dispatch is attempted.
func (p *Pipeline) resolveOwnerToken(ctx context.Context, huntID string) resolution {
	hunt, err := p.hunts.GetByID(ctx, huntID)
	if err != nil {
		return resolution{outcome: outcomeHuntNotFound}
	}

	profile, err := p.profiles.GetByID(ctx, hunt.AuthorID)
	if err != nil {
		return resolution{outcome: outcomeNoToken, hunt: hunt, ownerID: hunt.AuthorID}
	}

	token := profile.Author.FCMToken
	if token == "" {
		return resolution{outcome: outcomeNoToken, hunt: hunt, ownerID: hunt.AuthorID}
	}

	return resolution{outcome: outcomeFound, hunt: hunt, ownerID: hunt.AuthorID, token: token}
}

// buildReviewMessage constructs the push envelope. The data payload
// carries the IDs the client needs to deep-link into the review.
func buildReviewMessage(token, huntTitle, comment, huntID, reviewID string) push.Message {
	return push.Message{
		Token: token,
		Title: notificationTitle,
		Body:  fmt.Sprintf("Your hunt '%s' received a new review: %s", huntTitle, comment),
		Data: map[string]string{
			"huntId":   huntID,
			"reviewId": reviewID,
		},
	}
}

func (p *Pipeline) appendAudit(ctx context.Context, record *model.DebugNotification) error {
	if err := p.audits.Append(ctx, record); err != nil {
		log.Printf("[Pipeline] review=%s: audit append FAILED: %v", record.ReviewID, err)
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}
