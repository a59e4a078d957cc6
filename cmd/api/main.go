package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"filesmanager/internal/adapter/api"
	"filesmanager/internal/adapter/api/handler"
	apimiddleware "filesmanager/internal/adapter/api/middleware"
	"filesmanager/internal/adapter/api/router"
	"filesmanager/internal/adapter/repository"
	"filesmanager/internal/infrastructure/queue"
	"filesmanager/internal/infrastructure/storage"
	"filesmanager/internal/infrastructure/tokenstore"
	"filesmanager/internal/usecase"
	"filesmanager/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	mongoClient, err := repository.ConnectMongo(ctx, cfg.MongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.DBName)

	tokens, err := tokenstore.NewRedisStore(cfg.RedisAddr())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer tokens.Close()

	jobs, err := queue.NewPublisher(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer jobs.Close()

	contentStore, err := storage.NewLocalStore(cfg.FolderPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage root: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	fileRepo := repository.NewMongoFileRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := fileRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create file indexes: %v", err)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, cfg.TokenTTL)
	userUseCase := usecase.NewUserUseCase(userRepo, jobs)
	fileUseCase := usecase.NewFileUseCase(fileRepo, userRepo, contentStore, jobs)
	appUseCase := usecase.NewAppUseCase(repository.NewMongoHealth(mongoClient), tokens, userRepo, fileRepo)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)

	router.Setup(e,
		handler.NewAppHandler(appUseCase),
		handler.NewUserHandler(userUseCase),
		handler.NewAuthHandler(authUseCase),
		handler.NewFileHandler(fileUseCase),
		authMiddleware,
	)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
