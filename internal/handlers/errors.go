package handlers

import (
	"errors"
	"log"

	"bookclub/internal/dto"
	"bookclub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a service error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest), errors.Is(err, services.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrServiceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError logs the full error and sends only the public message.
func respondError(c *fiber.Ctx, op string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("Error %s: %v", op, err)
	} else {
		log.Printf("%s rejected (%d): %v", op, status, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: services.PublicMessage(err)})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

// parseID reads a positive :id route parameter.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUserID is set by middleware.AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}
