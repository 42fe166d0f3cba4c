package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cloud-media-platform/internal/auth"
	"cloud-media-platform/internal/config"
	"cloud-media-platform/internal/handlers"
	"cloud-media-platform/internal/repository"
	"cloud-media-platform/internal/services"
	"cloud-media-platform/internal/storage"
	"cloud-media-platform/internal/utils"
)

func main() {
	// load config
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	// logger
	logger, err := utils.NewLogger(dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	// Mongo
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}
	db := mc.Database(cfg.Mongo.Database)
	userRepo := repository.NewMongoUserRepo(db.Collection(cfg.Mongo.UsersCollection))
	mediaRepo := repository.NewMongoMediaRepo(db.Collection(cfg.Mongo.MediaCollection))

	// S3 store
	store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint, cfg.PresignTTL)
	if err != nil {
		logger.Fatalf("s3 init: %v", err)
	}

	// services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, tokens, 0, logger)
	mediaSvc := services.NewMediaService(mediaRepo, store, services.MediaConfig{
		MaxFileSizeBytes: cfg.MaxFileSizeBytes,
		ImageTypes:       cfg.ImageTypes,
		VideoTypes:       cfg.VideoTypes,
	}, logger)

	// fiber app & routes
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		// slack for the multipart envelope around the payload ceiling
		BodyLimit:    int(cfg.MaxFileSizeBytes) + 10*1024*1024,
		ErrorHandler: handlers.NewErrorHandler(logger, dev),
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	h := handlers.NewHandler(authSvc, mediaSvc, cfg.MaxFileSizeBytes)
	handlers.RegisterRoutes(app, h, handlers.AuthMiddleware(tokens))

	// start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
		logger.Infof("starting cloud media platform on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown requested")
	timeoutCtx, cancel2 := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel2()

	_ = app.Shutdown()
	_ = mc.Disconnect(timeoutCtx)
	logger.Info("shutdown completed")
}
