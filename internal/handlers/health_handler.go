package handlers

import (
	"context"
	"log"
	"time"

	"bookclub/internal/dto"
	"bookclub/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the API can reach its datastore.
type HealthHandler struct {
	db repositories.Pinger
}

func NewHealthHandler(db repositories.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Printf("Health check failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status:  "unhealthy",
			Message: "Datastore unreachable",
		})
	}
	return c.JSON(dto.HealthResponse{Status: "healthy", Message: "Book review API is running"})
}
