package handlers

import (
	"log"

	"bookclub/internal/dto"
	"bookclub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	service  *services.BookService
	validate *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: dto.NewValidator(),
	}
}

// RegisterRoutes registers the book routes with the Fiber app.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleGetBooks)
	bookRoutes.Get("/:id", h.HandleGetBookByID)
	bookRoutes.Post("/", h.HandleCreateBook)
	bookRoutes.Patch("/:id", h.HandleUpdateBook)
	bookRoutes.Delete("/:id", h.HandleDeleteBook)
}

// HandleGetBooks retrieves all books.
func (h *BookHandler) HandleGetBooks(c *fiber.Ctx) error {
	books, err := h.service.GetAllBooks()
	if err != nil {
		return respondError(c, "getting all books", err)
	}
	return c.JSON(dto.BooksFromModels(books))
}

// HandleGetBookByID retrieves a single book by its ID.
func (h *BookHandler) HandleGetBookByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid book ID")
	}
	book, err := h.service.GetBookByID(id)
	if err != nil {
		return respondError(c, "getting book", err)
	}
	return c.JSON(dto.BookFromModel(book))
}

// HandleCreateBook creates a book owned by the caller.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, dto.Describe(err))
	}

	book, err := h.service.CreateBook(currentUserID(c), services.BookInput{
		Title:         *req.Title,
		Author:        *req.Author,
		YearPublished: *req.YearPublished,
		Description:   *req.Description,
	})
	if err != nil {
		return respondError(c, "creating book", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BookFromModel(book))
}

// HandleUpdateBook applies a partial update to a book the caller owns.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid book ID")
	}
	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body for book update: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, dto.Describe(err))
	}

	book, err := h.service.UpdateBook(currentUserID(c), id, req.Fields())
	if err != nil {
		return respondError(c, "updating book", err)
	}
	return c.JSON(dto.BookFromModel(book))
}

// HandleDeleteBook deletes a book the caller owns, together with its reviews.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid book ID")
	}
	if err := h.service.DeleteBook(currentUserID(c), id); err != nil {
		return respondError(c, "deleting book", err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Book deleted"})
}
