package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/resume-analyzer/resume-analyzer/internal/config"
	"github.com/resume-analyzer/resume-analyzer/internal/handlers"
	"github.com/resume-analyzer/resume-analyzer/internal/models"
	"github.com/resume-analyzer/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize LLM provider
	llmService, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	llmService = services.NewCircuitBreakerLLMService(llmService, cfg.CircuitBreaker)
	log.Printf("✅ LLM provider %s initialized (model %s)\n", llmService.Name(), cfg.LLM.Model)

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		services.NewTextExtractorService(),
		llmService,
		cfg.Analysis.StrictSchema,
		cfg.LLM.Timeout,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize worker
	worker := services.NewWorker(analyzerService, cfg.Worker.Concurrency, cfg.Worker.QueueSize)
	worker.Start(context.Background())
	log.Println("✅ Worker started successfully")

	analyzeHandler := handlers.NewAnalyzeHandler(worker, cfg.Upload.MaxFileSize)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{Message: "Backend is running!"})
	})
	app.Post("/analyze", analyzeHandler.HandleAnalyze)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		worker.Stop()
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

	// Listen returns once Shutdown starts; let in-flight analyses finish.
	<-shutdownDone
	log.Println("✅ Server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{Error: err.Error()})
}
