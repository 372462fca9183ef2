package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"bookclub/internal/auth"
	"bookclub/internal/models"
	"bookclub/internal/repositories"
	"bookclub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func newAuthService(repo repositories.UserRepository) (*services.AuthService, *auth.TokenService, *auth.PasswordHasher) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService(testJWTSecret, time.Hour, 24*time.Hour)
	return services.NewAuthService(repo, hasher, tokens, auth.NewMemoryRevocationStore()), tokens, hasher
}

func TestAuthService_Signup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, tokens, hasher := newAuthService(mockRepo)

	mockRepo.On("GetByUsername", "a").Return(nil, notFound("a")).Once()
	mockRepo.On("GetByEmail", "a@x.com").Return(nil, notFound("a@x.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 1
	}).Return(nil).Once()

	result, err := authService.Signup("a", "a@x.com", "pw1")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)

	assert.Equal(t, uint(1), result.User.ID)
	assert.NotEqual(t, "pw1", result.User.PasswordHash)
	assert.True(t, hasher.Verify(result.User.PasswordHash, "pw1"))

	claims, err := tokens.Validate(result.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	_, err = tokens.Validate(result.RefreshToken, auth.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_SignupConflicts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _, _ := newAuthService(mockRepo)

	// Username already taken
	mockRepo.On("GetByUsername", "a").Return(&models.User{ID: 1}, nil).Once()
	_, err := authService.Signup("a", "a@x.com", "pw1")
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, "Username already exists", services.PublicMessage(err))

	// Email already registered
	mockRepo.On("GetByUsername", "b").Return(nil, notFound("b")).Once()
	mockRepo.On("GetByEmail", "a@x.com").Return(&models.User{ID: 1}, nil).Once()
	_, err = authService.Signup("b", "a@x.com", "pw1")
	assert.ErrorIs(t, err, services.ErrConflict)

	// Lost race: the existence checks pass but the unique index fires
	mockRepo.On("GetByUsername", "c").Return(nil, notFound("c")).Once()
	mockRepo.On("GetByEmail", "c@x.com").Return(nil, notFound("c@x.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("failed to create user: %w", repositories.ErrDuplicateKey)).Once()
	_, err = authService.Signup("c", "c@x.com", "pw1")
	assert.ErrorIs(t, err, services.ErrConflict)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_SignupDatastoreDown(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _, _ := newAuthService(mockRepo)

	mockRepo.On("GetByUsername", "a").Return(nil, fmt.Errorf("boom: %w", repositories.ErrUnavailable)).Once()
	_, err := authService.Signup("a", "a@x.com", "pw1")
	assert.ErrorIs(t, err, services.ErrServiceUnavailable)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, tokens, hasher := newAuthService(mockRepo)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)
	user := &models.User{ID: 5, Username: "a", Email: "a@x.com", PasswordHash: hash}

	// Successful login
	mockRepo.On("GetByUsername", "a").Return(user, nil).Once()
	result, err := authService.Login("a", "pw1")
	require.NoError(t, err)
	claims, err := tokens.Validate(result.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// Wrong password
	mockRepo.On("GetByUsername", "a").Return(user, nil).Once()
	_, err = authService.Login("a", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user looks exactly the same
	mockRepo.On("GetByUsername", "ghost").Return(nil, notFound("ghost")).Once()
	_, err = authService.Login("ghost", "pw1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Equal(t, "Invalid credentials", services.PublicMessage(err))

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Authenticate(t *testing.T) {
	authService, tokens, _ := newAuthService(new(MockUserRepository))

	access, err := tokens.IssueAccess(3)
	require.NoError(t, err)
	userID, err := authService.Authenticate(access)
	require.NoError(t, err)
	assert.Equal(t, uint(3), userID)

	refresh, err := tokens.IssueRefresh(3)
	require.NoError(t, err)
	_, err = authService.Authenticate(refresh)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.ErrorIs(t, err, auth.ErrTokenWrongType)

	_, err = authService.Authenticate("garbage")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService, tokens, _ := newAuthService(mockRepo)
	mockRepo.On("GetByID", uint(8)).Return(&models.User{ID: 8, Username: "h"}, nil)

	refresh, err := tokens.IssueRefresh(8)
	require.NoError(t, err)

	access, err := authService.Refresh(ctx, refresh)
	require.NoError(t, err)
	userID, err := authService.Authenticate(access)
	require.NoError(t, err)
	assert.Equal(t, uint(8), userID)

	// An access token cannot be used to refresh
	_, err = authService.Refresh(ctx, access)
	assert.ErrorIs(t, err, auth.ErrTokenWrongType)

	require.NoError(t, authService.Logout(ctx, refresh))
	_, err = authService.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Equal(t, "Token has been revoked", services.PublicMessage(err))

	// Other refresh tokens of the same user are unaffected
	other, err := tokens.IssueRefresh(8)
	require.NoError(t, err)
	_, err = authService.Refresh(ctx, other)
	assert.NoError(t, err)
}

func TestAuthService_RefreshForRemovedUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService, tokens, _ := newAuthService(mockRepo)

	mockRepo.On("GetByID", uint(9)).Return(nil, notFound("user 9")).Once()
	refresh, err := tokens.IssueRefresh(9)
	require.NoError(t, err)
	_, err = authService.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Equal(t, "Invalid token", services.PublicMessage(err))

	mockRepo.On("GetByID", uint(10)).Return(nil, fmt.Errorf("conn reset: %w", repositories.ErrUnavailable)).Once()
	refresh, err = tokens.IssueRefresh(10)
	require.NoError(t, err)
	_, err = authService.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, services.ErrServiceUnavailable)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_SignupPasswordTooLong(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _, _ := newAuthService(mockRepo)

	mockRepo.On("GetByUsername", "longpw").Return(nil, notFound("longpw")).Once()
	mockRepo.On("GetByEmail", "l@x.com").Return(nil, notFound("l@x.com")).Once()

	// 25 three-byte runes: short in characters, 75 bytes for bcrypt.
	_, err := authService.Signup("longpw", "l@x.com", strings.Repeat("€", 25))
	assert.ErrorIs(t, err, services.ErrBadRequest)
	assert.Equal(t, "password must be at most 72 bytes", services.PublicMessage(err))

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}
