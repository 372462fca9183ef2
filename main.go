package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"bookclub/internal/app"
	"bookclub/internal/auth"
	"bookclub/internal/config"
	"bookclub/internal/database"
	"bookclub/internal/services"
	"bookclub/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Starting with %s", cfg)

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if cfg.SeedData {
		hasher := auth.NewPasswordHasher(cfg.BcryptCost)
		if err := database.Seed(db, hasher.Hash); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// --- Refresh token revocation ---
	var revocations auth.RevocationStore = auth.NewMemoryRevocationStore()
	if cfg.RedisURL != "" {
		redisStore, err := auth.NewRedisRevocationStore(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer redisStore.Close()
		revocations = redisStore
		log.Println("Refresh token revocation backed by Redis")
	}

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		if err := mqClient.ConsumeCatalogEvents(rabbitmq.LogCatalogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Fiber App ---
	server, _ := app.New(app.Options{
		Config:      cfg,
		DB:          db,
		Revocations: revocations,
		Events:      events,
	})

	run(server, cfg.AppPort)
}

// run serves until SIGINT/SIGTERM, then shuts the server down gracefully.
func run(server *fiber.App, addr string) {
	log.Printf("Starting server on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
