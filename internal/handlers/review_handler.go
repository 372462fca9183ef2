package handlers

import (
	"log"

	"bookclub/internal/dto"
	"bookclub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: dto.NewValidator(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Get("/:id", h.HandleGetReviewByID)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Patch("/:id", h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAllReviews()
	if err != nil {
		return respondError(c, "getting all reviews", err)
	}
	return c.JSON(dto.ReviewsFromModels(reviews))
}

func (h *ReviewHandler) HandleGetReviewByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid review ID")
	}
	review, err := h.service.GetReviewByID(id)
	if err != nil {
		return respondError(c, "getting review", err)
	}
	return c.JSON(dto.ReviewFromModel(review))
}

// HandleCreateReview attaches a review by the caller to an existing book.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, dto.Describe(err))
	}

	review, err := h.service.CreateReview(currentUserID(c), services.ReviewInput{
		Rating:  *req.Rating,
		Comment: *req.Comment,
		BookID:  *req.BookID,
	})
	if err != nil {
		return respondError(c, "creating review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReviewFromModel(review))
}

func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid review ID")
	}
	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body for review update: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, dto.Describe(err))
	}

	review, err := h.service.UpdateReview(currentUserID(c), id, req.Fields())
	if err != nil {
		return respondError(c, "updating review", err)
	}
	return c.JSON(dto.ReviewFromModel(review))
}

func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid review ID")
	}
	if err := h.service.DeleteReview(currentUserID(c), id); err != nil {
		return respondError(c, "deleting review", err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Review deleted"})
}
