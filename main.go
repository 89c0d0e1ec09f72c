package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"trackvault/internal/config"
	"trackvault/internal/database"
	"trackvault/internal/handlers"
	"trackvault/internal/middleware"
	"trackvault/internal/repositories"
	"trackvault/internal/security"
	"trackvault/internal/services"
	"trackvault/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Built once here and passed into each constructor; nothing below
	// reads the environment directly.
	cfg := config.Load()

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// --- RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, track events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	trackRepo := repositories.NewGORMTrackRepository(db)

	// --- Security components ---
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// --- Services ---
	authService := services.NewAuthService(userRepo, hasher, tokens)
	var publisher services.TrackEventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	trackService := services.NewTrackService(trackRepo, userRepo, publisher)
	userService := services.NewUserService(userRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	trackHandler := handlers.NewTrackHandler(trackService)
	userHandler := handlers.NewUserHandler(userService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Routes ---
	// Public authentication routes
	authHandler.RegisterRoutes(app)

	// Track routes carry the bearer-token gate on their own groups, so
	// /health and unmatched paths stay outside it
	authRequired := middleware.AuthRequired(tokens)
	trackHandler.RegisterRoutes(app, authRequired)

	// Admin routes additionally require the admin role
	adminRoutes := app.Group("/admin", authRequired, middleware.AdminOnly(userRepo))
	userHandler.RegisterRoutes(adminRoutes)

	// --- Track Event Consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for track events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received track event (tag %d, type %s): %s", msg.DeliveryTag, msg.Type, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeTrackEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
