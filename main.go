package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"yt-describe/config"
	"yt-describe/download"
	"yt-describe/generation"
	"yt-describe/handlers"
	"yt-describe/logger"
	"yt-describe/services/job"
	"yt-describe/session"
	"yt-describe/transcription"
	"yt-describe/validation"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logConfig, err := logger.NewAccessLogConfig(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Session store with TTL eviction
	store := session.NewStore(cfg.SessionTTL)
	defer store.Close()

	// Pipeline collaborators
	downloader := download.NewDownloader(download.Config{
		BinPath:         cfg.Download.BinPath,
		WorkDir:         cfg.WorkDir,
		CookiesFile:     cfg.Download.CookiesFile,
		CallTimeout:     cfg.Download.CallTimeout,
		AttemptInterval: cfg.Download.AttemptInterval,
	}, download.DefaultStrategies())

	translator := transcription.NewClient(transcription.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.WhisperModel,
		WorkDir: cfg.WorkDir,
	})

	generator := generation.NewClient(generation.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})

	validator := validation.NewValidator(cfg)

	jobService := job.NewService(store, downloader, translator, generator, validator, job.Config{
		HasCredentials: cfg.HasCredentials(),
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.Debug,
		AppName:               "yt-describe " + cfg.Version,
	})

	setupMiddleware(app, cfg, logConfig)

	jobHandler := handlers.NewJobHandler(jobService)

	app.Post("/process", jobHandler.Process)
	app.Get("/progress/:session_id", jobHandler.Progress)
	app.Get("/download/:session_id/:file_type", jobHandler.Download)
	app.Get("/health", handlers.HealthCheck)

	// Operator UI
	app.Static("/", cfg.StaticDir)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	serverAddr := ":" + cfg.ServerPort
	if cfg.Debug {
		log.Printf("Server starting on http://localhost%s", serverAddr)
	}

	if err := app.Listen(serverAddr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func setupMiddleware(app *fiber.App, cfg *config.Config, logConfig *fiberLogger.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Debug,
	}))

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	app.Use(fiberLogger.New(*logConfig))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowMethods: strings.Join(cfg.CORS.AllowedMethods, ","),
		AllowHeaders: strings.Join(cfg.CORS.AllowedHeaders, ","),
	}))

	if cfg.RateLimit.Enabled {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.RequestsPerMinute,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}))
	}
}
