package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"quiz-forge/internal/adapter"
	"quiz-forge/internal/adapter/extractor"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/handler"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/quizgen"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	// Connect to database
	db, err := database.NewSQLXOracleDB(startCtx, cfg.GetDSN(), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	contentRepository := repository.NewSubjectContentDatabaseAdapter(db)

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(startCtx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Document extraction, cached per file version
	registry := extractor.NewDefaultRegistry(cfg.Storage.UploadDir, appLogger.Named("extractor"))
	textExtractor := extractor.NewCachedExtractor(registry, cacheAdapter, cfg.Generator.ExtractCacheTTL, appLogger.Named("extractor"))

	// Initialize services
	aggregator := service.NewContextAggregator(contentRepository, textExtractor, cfg.Generator.ExtractConcurrency, appLogger.Named("aggregator"))
	generator := quizgen.NewGenerator(
		cfg.Generator.Options(),
		quizgen.WithRandomFactory(cfg.Generator.RandomFactory()),
		quizgen.WithLogger(appLogger.Named("quizgen")),
	)
	draftService := service.NewQuizDraftService(contentRepository, aggregator, generator, cacheAdapter, cfg.Generator, appLogger.Named("drafts"))
	appLogger.Info("QuizDraftService initialized",
		zap.Int("target_question_count", cfg.Generator.TargetQuestionCount),
		zap.Duration("timeout", cfg.Generator.Timeout),
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	handler.RegisterRoutes(app, handler.NewQuizDraftHandler(draftService), handler.NewHealthHandler(cacheAdapter))

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
