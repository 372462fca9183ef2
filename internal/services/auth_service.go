package services

import (
	"context"
	"errors"
	"log"
	"time"

	"bookclub/internal/auth"
	"bookclub/internal/models"
	"bookclub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthResult is what a successful signup or login hands back to the client.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// AuthService handles signup, login and the token lifecycle.
type AuthService struct {
	userRepo    repositories.UserRepository
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenService
	revocations auth.RevocationStore
	dummyHash   string
}

// NewAuthService creates a new AuthService. revocations may be nil.
func NewAuthService(userRepo repositories.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService, revocations auth.RevocationStore) *AuthService {
	dummy, err := hasher.Hash("dummy-password-for-timing")
	if err != nil {
		log.Printf("Failed to prepare dummy hash: %v", err)
	}
	return &AuthService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		dummyHash:   dummy,
	}
}

// Signup registers a user and logs them in.
func (s *AuthService) Signup(username, email, password string) (*AuthResult, error) {
	// Fast path only; the unique index below is what actually guarantees uniqueness.
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, newError(ErrConflict, nil, "Username already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fromRepository(err, "")
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, newError(ErrConflict, nil, "Email already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fromRepository(err, "")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, newError(ErrBadRequest, err, "password must be at most 72 bytes")
		}
		return nil, err
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, newError(ErrConflict, err, "Username or email already exists")
		}
		return nil, fromRepository(err, "")
	}
	log.Printf("User %d (%s) signed up", user.ID, user.Username)

	return s.issue(user)
}

// Login checks credentials. Unknown users and wrong passwords fail identically.
func (s *AuthService) Login(username, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fromRepository(err, "")
		}
		// Keep the response time close to the wrong-password path.
		s.hasher.Verify(s.dummyHash, password)
		return nil, newError(ErrInvalidCredentials, nil, "Invalid credentials")
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, newError(ErrInvalidCredentials, nil, "Invalid credentials")
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Authenticate resolves an access token to its user id.
func (s *AuthService) Authenticate(accessToken string) (uint, error) {
	claims, err := s.tokens.Validate(accessToken, auth.AccessToken)
	if err != nil {
		return 0, tokenError(err)
	}
	return claims.UserID, nil
}

// Refresh issues a new access token for the owner of a valid, unrevoked refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Validate(refreshToken, auth.RefreshToken)
	if err != nil {
		return "", tokenError(err)
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return "", err
	}
	// The account may have been removed since the refresh token was issued.
	if _, err := s.userRepo.GetByID(claims.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", newError(ErrUnauthorized, err, "Invalid token")
		}
		return "", fromRepository(err, "")
	}
	access, err := s.tokens.IssueAccess(claims.UserID)
	if err != nil {
		return "", err
	}
	return access, nil
}

// Logout revokes a refresh token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.Validate(refreshToken, auth.RefreshToken)
	if err != nil {
		return tokenError(err)
	}
	if s.revocations == nil || claims.Id == "" {
		return nil
	}
	if err := s.revocations.Revoke(ctx, claims.Id, time.Unix(claims.ExpiresAt, 0)); err != nil {
		return newError(ErrServiceUnavailable, err, "Could not revoke token, try again later")
	}
	log.Printf("Refresh token %s of user %d revoked", claims.Id, claims.UserID)
	return nil
}

func (s *AuthService) checkRevoked(ctx context.Context, claims *auth.Claims) error {
	if s.revocations == nil || claims.Id == "" {
		return nil
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.Id)
	if err != nil {
		return newError(ErrServiceUnavailable, err, "Could not verify token, try again later")
	}
	if revoked {
		return newError(ErrUnauthorized, nil, "Token has been revoked")
	}
	return nil
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return newError(ErrUnauthorized, err, "Token has expired")
	case errors.Is(err, auth.ErrTokenWrongType):
		return newError(ErrUnauthorized, err, "Wrong token type")
	default:
		return newError(ErrUnauthorized, err, "Invalid token")
	}
}
