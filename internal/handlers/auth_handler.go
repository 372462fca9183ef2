package handlers

import (
	"log"
	"strings"

	"bookclub/internal/dto"
	"bookclub/internal/middleware"
	"bookclub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    dto.NewValidator(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.HandleSignup)
	router.Post("/login", h.HandleLogin)
	router.Post("/refresh", h.HandleRefresh)
	router.Post("/logout", h.HandleLogout)
}

// HandleSignup handles new user registration.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, dto.Describe(err))
	}

	result, err := h.authService.Signup(*req.Username, *req.Email, *req.Password)
	if err != nil {
		return respondError(c, "signing up", err)
	}
	return c.Status(fiber.StatusCreated).JSON(authResponse(result))
}

// HandleLogin handles user login and issues a token pair.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, dto.Describe(err))
	}

	result, err := h.authService.Login(*req.Username, *req.Password)
	if err != nil {
		return respondError(c, "logging in "+*req.Username, err)
	}
	return c.JSON(authResponse(result))
}

// HandleRefresh exchanges a refresh token for a new access token.
func (h *AuthHandler) HandleRefresh(c *fiber.Ctx) error {
	token := refreshToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing refresh token"})
	}

	access, err := h.authService.Refresh(c.UserContext(), token)
	if err != nil {
		return respondError(c, "refreshing token", err)
	}
	return c.JSON(dto.RefreshResponse{AccessToken: access})
}

// HandleLogout revokes the presented refresh token.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	token := refreshToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing refresh token"})
	}

	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		return respondError(c, "logging out", err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Logged out"})
}

// refreshToken reads "Bearer <token>" first and falls back to the JSON body.
func refreshToken(c *fiber.Ctx) string {
	if token := middleware.BearerToken(c.Get(fiber.HeaderAuthorization)); token != "" {
		return token
	}
	var req dto.RefreshRequest
	if len(c.Body()) == 0 {
		return ""
	}
	if err := c.BodyParser(&req); err != nil {
		return ""
	}
	return strings.TrimSpace(req.RefreshToken)
}

func authResponse(r *services.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		User: dto.UserResponse{
			ID:       r.User.ID,
			Username: r.User.Username,
			Email:    r.User.Email,
		},
	}
}
