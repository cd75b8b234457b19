package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"venuely/config"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrRevokedToken = errors.New("token has been revoked")

	errMissingHeader = errors.New("authorization header is required")
	errBearerFormat  = errors.New("authorization header must be 'Bearer <token>'")
)

const (
	bearerPrefix      = "Bearer "
	cacheRevokedToken = "auth:revoked"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carry the account identity. TokenID doubles as the jti used for revocation.
type Claims struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
	TokenID  string    `json:"token_id"`
	Type     TokenType `json:"type"`
	IssuedAt time.Time `json:"iat"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, userID, email, role string) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
	Revoke(ctx context.Context, claims *Claims) error
}

type Service struct {
	config *config.Config
	cache  cache.RedisCache
}

// New signs HS256 tokens with separate access and refresh secrets. Revoked token ids
// live in the cache until the token would have expired.
func New(cfg *config.Config, cache cache.RedisCache) JWT {
	return &Service{
		config: cfg,
		cache:  cache,
	}
}

func (s *Service) secret(tokenType TokenType) ([]byte, error) {
	switch tokenType {
	case AccessToken:
		return []byte(s.config.JWT.AccessSecret), nil
	case RefreshToken:
		return []byte(s.config.JWT.RefreshSecret), nil
	default:
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

func (s *Service) lifetime(tokenType TokenType) time.Duration {
	if tokenType == RefreshToken {
		return time.Duration(s.config.JWT.RefreshExpireMin) * time.Minute
	}

	return time.Duration(s.config.JWT.AccessExpireMin) * time.Minute
}

func (s *Service) GenerateTokenPair(_ context.Context, userID, email, role string) (*TokenPair, error) {
	now := timezone.Now()

	access, err := s.sign(userID, email, role, AccessToken, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(userID, email, role, RefreshToken, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    strings.TrimSpace(bearerPrefix),
		ExpiresIn:    int64(s.lifetime(AccessToken).Seconds()),
	}, nil
}

func (s *Service) sign(userID, email, role string, tokenType TokenType, now time.Time) (string, error) {
	secret, err := s.secret(tokenType)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Email:    email,
		Role:     role,
		TokenID:  id,
		Type:     tokenType,
		IssuedAt: now,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   userID,
			Issuer:    s.config.App.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime(tokenType))),
		},
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and token type, then rejects revoked token ids.
func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error) {
	secret, err := s.secret(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	revoked, err := s.cache.Exists(ctx, revokedKey(claims.TokenID))
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}

	if revoked {
		return nil, ErrRevokedToken
	}

	return claims, nil
}

// RefreshTokens rotates the pair. The presented refresh token cannot be used again.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	if err = s.Revoke(ctx, claims); err != nil {
		return nil, err
	}

	return s.GenerateTokenPair(ctx, claims.UserID, claims.Email, claims.Role)
}

// Revoke blocks the token id for the rest of its lifetime. Expired tokens are a no-op.
func (s *Service) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.TokenID == "" {
		return ErrInvalidClaim
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if ttl <= 0 {
		return nil
	}

	if err := s.cache.Save(ctx, revokedKey(claims.TokenID), claims.UserID, int(ttl.Seconds())+1); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func revokedKey(tokenID string) string {
	return shared.BuildCacheKey(cacheRevokedToken, tokenID)
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header value.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errMissingHeader
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errBearerFormat
	}

	return token, nil
}
