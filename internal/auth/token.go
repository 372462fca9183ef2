package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenWrongType = errors.New("wrong token type")
)

// Claims is the JWT payload issued by TokenService.
type Claims struct {
	UserID uint      `json:"user_id"`
	Type   TokenType `json:"type"`
	jwt.StandardClaims
}

// TokenService issues and validates HS256 access/refresh tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService signing with secret.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock replaces the time source; used to test expiry.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// IssueAccess signs a short-lived access token for userID.
func (s *TokenService) IssueAccess(userID uint) (string, error) {
	return s.issue(userID, AccessToken, s.accessTTL, "")
}

// IssueRefresh signs a long-lived refresh token for userID with a unique jti.
func (s *TokenService) IssueRefresh(userID uint) (string, error) {
	return s.issue(userID, RefreshToken, s.refreshTTL, uuid.NewString())
}

func (s *TokenService) issue(userID uint, typ TokenType, ttl time.Duration, jti string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Type:   typ,
		StandardClaims: jwt.StandardClaims{
			Id:        jti,
			Subject:   fmt.Sprint(userID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Validate checks signature, type and expiry, in that order.
func (s *TokenService) Validate(tokenString string, expected TokenType) (*Claims, error) {
	// Expiry is checked below against s.now so the clock stays injectable.
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing user_id", ErrTokenInvalid)
	}
	if claims.Type != expected {
		return nil, fmt.Errorf("%w: expected %s, got %q", ErrTokenWrongType, expected, claims.Type)
	}
	if !claims.VerifyExpiresAt(s.now().Unix(), true) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// Refresh mints a new access token from a valid refresh token.
// The refresh token itself is not rotated.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Validate(refreshToken, RefreshToken)
	if err != nil {
		return "", err
	}
	return s.IssueAccess(claims.UserID)
}
