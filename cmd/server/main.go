package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/videostream-app/videostream-go/internal/config"
	"github.com/videostream-app/videostream-go/internal/handler"
	"github.com/videostream-app/videostream-go/internal/middleware"
	"github.com/videostream-app/videostream-go/internal/router"
	"github.com/videostream-app/videostream-go/internal/service"
	"github.com/videostream-app/videostream-go/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "videostream-api")
	log := middleware.Logger

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to create data directory")
	}

	videos := store.NewVideoStore(cfg.DataDir, log)
	submissions := store.NewSubmissionStore(cfg.DataDir, log)
	reports := store.NewReportStore(cfg.DataDir, log)

	ctx := context.Background()
	if err := store.SeedCatalog(ctx, videos); err != nil {
		log.Warn().Err(err).Msg("failed to seed sample catalog")
	}

	cache := service.NewCacheService(cfg.RedisURL, log)
	defer cache.Close()

	catalogSvc := service.NewCatalogService(videos, cache)
	submissionSvc := service.NewSubmissionService(submissions, videos, cache)
	notificationSvc := service.NewNotificationService(submissions, reports)

	handler.InitMetrics(cache)

	h := &router.Handlers{
		Video:        handler.NewVideoHandler(catalogSvc),
		Submission:   handler.NewSubmissionHandler(submissionSvc),
		Notification: handler.NewNotificationHandler(notificationSvc),
		Health:       handler.NewHealthHandler(cfg.DataDir, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "VideoStream API",
		ServerHeader: "VideoStream",
	})
	router.Setup(app, h, cfg.CORSOrigins)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Str("data_dir", cfg.DataDir).
		Msg("videostream backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
