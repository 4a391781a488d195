package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"huntquest/internal/config"
	"huntquest/internal/firebase"
	"huntquest/internal/handler"
	"huntquest/internal/notifier"
	"huntquest/internal/push"
	"huntquest/internal/queue"
	"huntquest/internal/redis"
	"huntquest/internal/repository"
	"huntquest/internal/service"
	"huntquest/internal/worker"
)

func Run() error {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Firebase (Firestore + Cloud Messaging)
	fb, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init firebase clients: %w", err)
	}
	defer fb.Close()

	// 3. Connect to Redis
	rdb, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer rdb.Close()
	if err := rdb.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	// 4. Repositories
	profileRepo := repository.NewProfileRepository(fb.Firestore)
	huntRepo := repository.NewHuntRepository(fb.Firestore)
	reviewRepo := repository.NewReviewRepository(fb.Firestore)
	auditRepo := repository.NewAuditRepository(fb.Firestore)

	// 5. Notifier workers consuming review events
	pipeline := notifier.NewPipeline(huntRepo, profileRepo, auditRepo, push.NewFCMSender(fb.Messaging))
	manager := worker.NewManager(
		queue.NewConsumer(rdb.Client),
		worker.NewHandler(pipeline),
		worker.ManagerConfig{WorkerCount: cfg.NotifierWorkers},
	)
	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start notifier workers: %w", err)
	}
	defer manager.Stop()

	// 6. Services
	publisher := queue.NewPublisher(rdb.Client)
	authService := service.NewAuthService(cfg)
	profileService := service.NewProfileService(profileRepo)
	huntService := service.NewHuntService(huntRepo)
	reviewService := service.NewReviewService(reviewRepo, huntRepo, publisher)

	// Cover uploads are optional; without R2 credentials the endpoint
	// responds 503 instead of the server refusing to boot.
	var mediaService *service.MediaService
	if cfg.R2AccountID != "" {
		mediaService, err = service.NewMediaService(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to init media service: %w", err)
		}
	} else {
		log.Println("[Server] R2 not configured, cover uploads disabled")
	}

	// 7. Handlers and Router
	router := NewRouter(RouterConfig{
		AuthHandler:         handler.NewAuthHandler(profileService, authService),
		HuntHandler:         handler.NewHuntHandler(huntService, mediaService),
		ReviewHandler:       handler.NewReviewHandler(reviewService),
		NotificationHandler: handler.NewNotificationHandler(profileService, auditRepo),
		JWTSecret:           cfg.JWTSecret,
	})

	// 8. HTTP server with graceful shutdown
	srv := &stdhttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] listening on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("[Server] received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
