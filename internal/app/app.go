package app

import (
	"errors"
	"log"

	"bookclub/internal/auth"
	"bookclub/internal/config"
	"bookclub/internal/dto"
	"bookclub/internal/handlers"
	"bookclub/internal/middleware"
	"bookclub/internal/repositories"
	"bookclub/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options are the already opened resources the API is built on.
type Options struct {
	Config *config.Config
	DB     *gorm.DB
	// Revocations defaults to an in-memory store.
	Revocations auth.RevocationStore
	// Events may be nil; catalog events are then dropped.
	Events services.EventPublisher
	// Tokens overrides the token service built from Config.
	Tokens *auth.TokenService
	// DisableRequestLog turns off the per-request logger middleware.
	DisableRequestLog bool
}

// New wires repositories, services and handlers into a Fiber app.
func New(opts Options) (*fiber.App, *services.AuthService) {
	cfg := opts.Config

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(opts.DB)
	bookRepo := repositories.NewGORMBookRepository(opts.DB)
	reviewRepo := repositories.NewGORMReviewRepository(opts.DB)

	// --- Services ---
	tokens := opts.Tokens
	if tokens == nil {
		tokens = auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	}
	revocations := opts.Revocations
	if revocations == nil {
		revocations = auth.NewMemoryRevocationStore()
	}
	authService := services.NewAuthService(userRepo, auth.NewPasswordHasher(cfg.BcryptCost), tokens, revocations)
	bookService := services.NewBookService(bookRepo, opts.Events)
	reviewService := services.NewReviewService(reviewRepo, bookRepo, opts.Events)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(repositories.NewGORMPinger(opts.DB))
	bookHandler := handlers.NewBookHandler(bookService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	app := fiber.New(fiber.Config{
		AppName:      "bookclub",
		ErrorHandler: errorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	if !opts.DisableRequestLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	// Public routes
	healthHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)

	// Protected routes (require an access token)
	protected := app.Group("", middleware.AuthRequired(authService))
	bookHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)

	return app, authService
}

// errorHandler renders framework errors (unknown routes, recovered panics) in the API's error shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
}
