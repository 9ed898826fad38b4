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
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resumatch/internal/config"
	"alfredoptarigan/resumatch/internal/handlers"
	"alfredoptarigan/resumatch/internal/services"
)

// multipart boundaries and the job description ride along with the file
const formOverhead = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize)
	extractor := services.NewTextExtractorService()

	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized with model %s", geminiService.ModelName())

	analyzerService := services.NewAnalyzerService(
		extractor,
		geminiService,
		services.AnalyzerOptions{
			MaxConcurrent: cfg.Analysis.MaxConcurrent,
			Timeout:       cfg.Analysis.Timeout,
		},
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		uploadService,
		cfg.Upload.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:           "ResuMatch AI",
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		BodyLimit:         int(cfg.Upload.MaxFileSize) + formOverhead,
		ErrorHandler:      handlers.ErrorHandler,
		EnablePrintRoutes: cfg.IsDevelopment(),
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

	// Routes
	handlers.RegisterRoutes(app, analyzeHandler, handlers.NewRateLimiter(cfg.RateLimit))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in a browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
