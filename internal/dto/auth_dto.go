package dto

import "bookclub/internal/models"

type SignupRequest struct {
	Username *string `json:"username" validate:"required,min=1,max=80"`
	Email    *string `json:"email" validate:"required,email,max=120"`
	Password *string `json:"password" validate:"required,min=1,max=72"`
}

type LoginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// RefreshRequest is the optional body of /refresh and /logout when the token
// is not sent in the Authorization header.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UserFromModel returns nil for a missing user so it serializes as null.
func UserFromModel(u *models.User) *UserResponse {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}
