// @title Quizbot API
// @version 1.0
// @description Generates quiz questions and topic descriptions through a chat completion endpoint.
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizbot/internal/adapter"
	"quizbot/internal/cache"
	"quizbot/internal/config"
	"quizbot/internal/database"
	"quizbot/internal/domain"
	"quizbot/internal/handler"
	"quizbot/internal/llm"
	"quizbot/internal/logger"
	"quizbot/internal/middleware"
	"quizbot/internal/repository"
	"quizbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		requestID, _ := c.Locals(middleware.RequestIDKey).(string)

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("request_id", requestID),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXSqliteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	describeRepository := repository.NewDescribeDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	completionClient := llm.NewClient(cfg.LLM, nil)

	// Redis is optional. Without it the stats endpoint recomputes counters
	// on every call.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without stats cache", zap.Error(err))
		} else {
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	generationService := service.NewGenerationService(completionClient, quizRepository, describeRepository, txManager)
	activityService := service.NewActivityService(quizRepository, describeRepository, cacheAdapter)

	generationHandler := handler.NewGenerationHandler(generationService)
	activityHandler := handler.NewActivityHandler(activityService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,X-Owner-ID,X-Request-ID", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz", generationHandler.GenerateQuiz)
	apiGroup.Post("/quiz/:quizId/answer", generationHandler.SubmitAnswer)
	apiGroup.Post("/describe", generationHandler.GenerateDescribe)
	apiGroup.Get("/quizzes", activityHandler.ListQuizzes)
	apiGroup.Get("/describes", activityHandler.ListDescribes)
	apiGroup.Get("/stats", activityHandler.GetStats)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
