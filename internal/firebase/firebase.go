package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"huntquest/internal/config"
)

// Clients bundles the Firebase-backed clients the application uses.
// One app instance is created at startup and shared; the document store
// and the push sender both hang off it.
type Clients struct {
	Firestore *firestore.Client
	Messaging *messaging.Client
}

// NewClients initializes the Firebase app and derives the Firestore and
// Cloud Messaging clients from it.
func NewClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firestore client: %w", err)
	}

	msg, err := app.Messaging(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("get messaging client: %w", err)
	}

	log.Printf("[Firebase] Initialized (project=%s)", cfg.FirebaseProjectID)
	return &Clients{Firestore: fs, Messaging: msg}, nil
}

// Close releases the underlying connections.
func (c *Clients) Close() error {
	return c.Firestore.Close()
}
