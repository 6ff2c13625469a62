package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/playtube-app/playtube/internal/handler/http"
	redisclient "github.com/playtube-app/playtube/internal/infrastructure/cache"
	"github.com/playtube-app/playtube/internal/infrastructure/config"
	database "github.com/playtube-app/playtube/internal/infrastructure/database"
	"github.com/playtube-app/playtube/internal/infrastructure/jwt"
	"github.com/playtube-app/playtube/internal/infrastructure/logger"
	"github.com/playtube-app/playtube/internal/infrastructure/objectstore"
	passwordservice "github.com/playtube-app/playtube/internal/infrastructure/password_service"
	"github.com/playtube-app/playtube/internal/infrastructure/repository/mongodb"
	"github.com/playtube-app/playtube/internal/infrastructure/store"
	"github.com/playtube-app/playtube/internal/infrastructure/uuidgen"
	"github.com/playtube-app/playtube/internal/infrastructure/validator"
	"github.com/playtube-app/playtube/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewUserRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	tweetRepo := mongodb.NewTweetRepository(db)
	playlistRepo := mongodb.NewPlaylistRepository(db)
	reactionRepo := mongodb.NewReactionRepository(db)
	subscriptionRepo := mongodb.NewSubscriptionRepository(db)

	// The unique indexes carry the one-reaction-per-target and
	// one-subscription-per-channel invariants; refuse to start without them.
	ctx := context.Background()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := videoRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create video indexes: %v", err)
	}
	if err := reactionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create reaction indexes: %v", err)
	}
	if err := subscriptionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create subscription indexes: %v", err)
	}

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtRefreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if jwtRefreshSecret == "" {
		jwtRefreshSecret = jwtSecret
	}
	jwtManager := jwt.NewJWTManager(
		jwtSecret, jwtRefreshSecret, appConfig.GetAppBaseURL(),
		appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry(),
	)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Object storage for video files, thumbnails and avatars
	mediaStorage, err := objectstore.NewMinioStorage(ctx, objectstore.Options{
		Endpoint:        os.Getenv("MINIO_ENDPOINT"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:          appConfig.GetMediaBucket(),
		PublicBaseURL:   appConfig.GetMediaPublicBaseURL(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, mediaStorage, uuidGenerator, appValidator, appLogger)
	videoUsecase := usecase.NewVideoUsecase(videoRepo, mediaStorage, uuidGenerator, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, videoRepo, uuidGenerator)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepo, uuidGenerator)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepo, videoRepo, uuidGenerator)

	resolver := usecase.NewTargetResolver(videoRepo, commentRepo, tweetRepo)
	engagementUsecase := usecase.NewEngagementUsecase(reactionRepo, resolver, uuidGenerator, appLogger)
	engagementQueries := usecase.NewEngagementQueryUsecase(reactionRepo)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepo, userRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(ctx, redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			videoUsecase.SetVideoCache(store.NewVideoCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, videoUsecase, commentUsecase, tweetUsecase,
		playlistUsecase, engagementUsecase, engagementQueries,
		subscriptionUsecase, jwtService,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
