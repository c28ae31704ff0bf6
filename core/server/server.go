package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"social-events-api/core/cache"
	"social-events-api/core/config"
	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/core/middleware"
	"social-events-api/core/storage"
	"social-events-api/core/worker"
	"social-events-api/modules/block"
	"social-events-api/modules/capacity"
	"social-events-api/modules/comment"
	"social-events-api/modules/company"
	"social-events-api/modules/event"
	"social-events-api/modules/image"
	"social-events-api/modules/moderation"
	"social-events-api/modules/notification"
	"social-events-api/modules/participation"
	"social-events-api/modules/post"
	"social-events-api/modules/user"
)

// Run boots the whole service: config, database, cache, background
// worker, HTTP server and every module. It blocks until SIGINT/SIGTERM
// and then drains gracefully.
func Run() error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	redisCache, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer redisCache.Close()

	queueClient := worker.NewClient(cfg.Redis)
	defer queueClient.Close()

	objectStorage := storage.NewS3Storage(cfg.AWS)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	mw := middleware.NewMiddleware(redisCache)

	// Module wiring. Order matters only where one module consumes
	// another's service.
	user.Init(e, db, mw)
	company.Init(e, db, mw)
	capacitySvc := capacity.Init(e, db, mw)
	event.Init(e, db, mw, capacitySvc)
	participation.Init(e, db, mw)
	moderationSvc := moderation.Init(db, queueClient)
	post.Init(e, db, mw, moderationSvc)
	comment.Init(e, db, mw, moderationSvc)
	block.Init(e, db, mw)
	image.Init(e, db, mw, objectStorage)
	notificationSvc := notification.Init(e, db, mw)

	queueServer := worker.NewServer(cfg.Redis, notificationSvc.ModerationReviewHandler())
	queueServer.Start()
	defer queueServer.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
