package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"advisory-service/internal/config"
	"advisory-service/internal/database/postgres"
	"advisory-service/internal/database/redis"
	"advisory-service/internal/event"
	"advisory-service/internal/handlers"
	"advisory-service/internal/reference"
	"advisory-service/internal/repository"
	"advisory-service/internal/services"

	"github.com/gofiber/fiber/v3"
	goredis "github.com/redis/go-redis/v9"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join(os.Getenv("LOG_DIR"))
	if logDir == "" {
		logDir = filepath.Join(".", "log", "advisory_service")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	logFileName := fmt.Sprintf("log_%s.log", time.Now().Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connecting to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	var cacheClient *goredis.Client
	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		slog.Warn("Redis unavailable, prediction cache disabled", "error", err)
	} else {
		cacheClient = redisClient.GetClient()
		defer redisClient.Close()
	}

	var publisher *event.Publisher
	rabbitConn, err := event.NewRabbitMQConnection(
		cfg.RabbitMQCfg.Username, cfg.RabbitMQCfg.Password, cfg.RabbitMQCfg.Host, cfg.RabbitMQCfg.Port)
	if err != nil {
		slog.Warn("RabbitMQ unavailable, advisory events disabled", "error", err)
	} else {
		publisher = event.NewPublisher(rabbitConn)
		defer rabbitConn.Close()
	}

	catalog := reference.NewCatalog()

	var outcomeStore services.OutcomeStore
	var predictionRepo *repository.PredictionRepository
	if db != nil {
		outcomeStore = repository.NewOutcomeRepository(db)
		predictionRepo = repository.NewPredictionRepository(db)
	} else {
		slog.Warn("No database connection, using in-memory outcome store")
		outcomeStore = repository.NewMemoryOutcomeStore(reference.SeedOutcomes())
	}

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	predictor := services.NewPredictorService(catalog, outcomeStore, cacheClient, cfg.ScoringStrategy, cacheTTL)
	planner := services.NewPlannerService(catalog, predictor)
	outcomeService := services.NewOutcomeService(outcomeStore, publisher)
	jwtService := services.NewJWTService(cfg.JWTSecret)

	middleware := handlers.NewMiddleware(jwtService)
	advisoryHandler := handlers.NewAdvisoryHandler(catalog, predictor, planner, outcomeService, predictionRepo, publisher)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Advisory service is healthy")
	})
	advisoryHandler.RegisterRoutes(app, middleware)

	slog.Info("Starting advisory service",
		"port", cfg.Port,
		"scoring_strategy", string(cfg.ScoringStrategy))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
