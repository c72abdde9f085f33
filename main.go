package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"astrocrew/config"
	"astrocrew/database"
	"astrocrew/handlers"
	"astrocrew/middleware"
	"astrocrew/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// Initialize database (runs migrations and seeds the task catalog)
	database.InitDB(cfg.DatabaseURL)
	defer database.CloseDB()

	photoStore, err := storage.NewPhotoStore(
		cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	handlers.Init(database.GetDB(), cfg, photoStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	api.Post("/register", middleware.AuthRateLimitMiddleware(), handlers.Register)
	api.Post("/login", middleware.AuthRateLimitMiddleware(), handlers.Login)
	api.Get("/protected", middleware.AuthMiddleware, handlers.Protected)

	// User routes
	api.Get("/users", middleware.AuthMiddleware, handlers.GetUsers)
	api.Get("/users/team/:teamId", middleware.AuthMiddleware, handlers.GetUsersByTeam)
	api.Get("/users/:id", middleware.AuthMiddleware, handlers.GetUser)

	// Task routes
	api.Get("/tasks", middleware.AuthMiddleware, handlers.GetTasks)
	api.Get("/tasks/not-completed", middleware.AuthMiddleware, handlers.GetTasksNotCompleted)
	api.Get("/tasks/:id", middleware.AuthMiddleware, handlers.GetTask)
	api.Post("/tasks/:id/complete", middleware.AuthMiddleware, handlers.CompleteTask)

	// Proof photo upload
	api.Post("/generate-presigned-url", middleware.AuthMiddleware, handlers.GeneratePresignedURL)

	// Completion feed
	api.Get("/user-tasks/recent/:limit", middleware.AuthMiddleware, handlers.GetRecentCompletions)

	// Team routes (leaderboard is public)
	api.Get("/teams/points", handlers.GetTeamPoints)
	api.Get("/teams/:id", middleware.AuthMiddleware, handlers.GetTeam)

	// Crew feed
	api.Get("/posts", middleware.AuthMiddleware, handlers.GetPosts)
	api.Post("/posts", middleware.AuthMiddleware, handlers.CreatePost)

	// Station tracker proxy
	api.Get("/iss-now", handlers.GetISSPosition)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	port := cfg.Port
	log.Printf("HTTP server starting on port %s", port)
	log.Printf("Environment: %s", cfg.AppEnv)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
