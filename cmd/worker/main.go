package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"filesmanager/internal/adapter/repository"
	"filesmanager/internal/infrastructure/queue"
	"filesmanager/internal/infrastructure/storage"
	"filesmanager/internal/worker"
	"filesmanager/pkg/config"
	"filesmanager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := repository.ConnectMongo(ctx, cfg.MongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.DBName)

	contentStore, err := storage.NewLocalStore(cfg.FolderPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage root: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	fileRepo := repository.NewMongoFileRepository(db)

	thumbnailer := worker.NewThumbnailer(fileRepo, contentStore)
	welcomer := worker.NewWelcomer(userRepo)

	thumbnailConsumer, err := queue.NewConsumer(cfg.AMQPURL, queue.ThumbnailQueue)
	if err != nil {
		log.Fatalf("Failed to start thumbnail consumer: %v", err)
	}
	defer thumbnailConsumer.Close()

	welcomeConsumer, err := queue.NewConsumer(cfg.AMQPURL, queue.WelcomeQueue)
	if err != nil {
		log.Fatalf("Failed to start welcome consumer: %v", err)
	}
	defer welcomeConsumer.Close()

	go func() {
		if err := thumbnailConsumer.Start(ctx, thumbnailer.Handle); err != nil && ctx.Err() == nil {
			logger.Error("Thumbnail consumer stopped: %v", err)
			stop()
		}
	}()
	go func() {
		if err := welcomeConsumer.Start(ctx, welcomer.Handle); err != nil && ctx.Err() == nil {
			logger.Error("Welcome consumer stopped: %v", err)
			stop()
		}
	}()

	logger.Info("Worker started")
	<-ctx.Done()
	logger.Info("Worker shutting down")
}
