package main

import (
	"log"
	"os"
	"time"

	"enigmaquest/database"
	"enigmaquest/handlers"
	"enigmaquest/handlers/admin"
	"enigmaquest/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	database.InitDB()
	defer database.CloseDB()

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

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Get("/profile", middleware.AuthMiddleware, handlers.GetProfile)
	userGroup.Patch("/profile", middleware.AuthMiddleware, handlers.UpdateProfile)
	userGroup.Get("/stats", middleware.AuthMiddleware, handlers.GetUserStats)
	userGroup.Get("/leaderboard", handlers.GetLeaderboard)

	// Brain teaser routes
	teaserGroup := api.Group("/teasers")
	teaserGroup.Get("/today", handlers.GetTodayTeaser)
	teaserGroup.Post("/submit", middleware.AuthMiddleware, handlers.SubmitSolution)

	// Admin teaser management
	teaserGroup.Post("/", middleware.AdminAuthMiddleware, admin.CreateTeaser)
	teaserGroup.Get("/all", middleware.AdminAuthMiddleware, admin.GetAllTeasers)
	teaserGroup.Patch("/:id", middleware.AdminAuthMiddleware, admin.UpdateTeaser)
	teaserGroup.Delete("/:id", middleware.AdminAuthMiddleware, admin.DeleteTeaser)
	teaserGroup.Post("/generate", middleware.AdminAuthMiddleware, admin.GenerateTeaser)

	// World state routes
	gameStateGroup := api.Group("/game-state")
	gameStateGroup.Get("/", handlers.GetGameState)
	gameStateGroup.Post("/", handlers.CreateGameState)
	gameStateGroup.Get("/progress", handlers.GetCommunityProgress)
	gameStateGroup.Post("/check-attacks", middleware.AuthMiddleware, handlers.CheckCreatureAttacks)

	// Settings routes
	api.Get("/settings", handlers.GetSettings)
	api.Put("/settings", middleware.AdminAuthMiddleware, admin.UpdateSettings)

	// Realtime relay
	app.Use("/ws", handlers.RelayUpgrade)
	app.Get("/ws", handlers.RelayHandler)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 Server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🌐 WebSocket available at ws://localhost:%s/ws", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
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
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
