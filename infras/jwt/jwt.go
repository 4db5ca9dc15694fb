package jwt

import (
	"context"
	"errors"
	"fmt"
	"roomapi/config"
	"roomapi/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header is required")
	ErrBearerFormat = errors.New("authorization header must start with 'Bearer '")
	ErrNoSecret     = errors.New("JWT_ACCESS_SECRET is not set")
)

type TokenType string

const AccessToken TokenType = "access"

const (
	bearerPrefix = "Bearer "
	clockLeeway  = 5 * time.Second
)

// Claims is the payload of an access token issued by the identity provider.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// JWT verifies HS256 access tokens signed with the shared secret.
type JWT interface {
	GenerateAccessToken(userID, email, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type hmacJWT struct {
	issuer string
	secret []byte
	parser *jwt.Parser
}

// New builds the verifier and stops the process when no secret is configured.
func New(cfg *config.Config) JWT {
	verifier, err := NewHMAC(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize JWT verifier")
	}

	return verifier
}

// NewHMAC builds the verifier. An empty secret is rejected: HMAC with an empty key accepts
// tokens anyone can sign. When JWT_ISSUER is set only tokens from that issuer are accepted.
func NewHMAC(cfg *config.Config) (JWT, error) {
	if cfg.JWT.AccessSecret == "" {
		return nil, ErrNoSecret
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockLeeway),
		jwt.WithIssuedAt(),
	}

	issuer := cfg.App.Name
	if cfg.JWT.Issuer != "" {
		issuer = cfg.JWT.Issuer
		options = append(options, jwt.WithIssuer(cfg.JWT.Issuer))
	}

	return &hmacJWT{
		issuer: issuer,
		secret: []byte(cfg.JWT.AccessSecret),
		parser: jwt.NewParser(options...),
	}, nil
}

// GenerateAccessToken signs an access token valid for ttl. Production tokens come from the
// identity provider; this is used by local tooling and tests.
func (h *hmacJWT) GenerateAccessToken(userID, email, role string, ttl time.Duration) (string, error) {
	now := timezone.Now()
	id := uuid.NewString()

	claims := Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		TokenID: id,
		Type:    AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    h.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks the signature and registered claims, then requires an access token
// that names a user.
func (h *hmacJWT) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := h.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Type != AccessToken || claims.UserID == "" || claims.Email == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrBearerFormat
	}

	return strings.TrimSpace(token), nil
}

type claimsKey struct{}

// NewContext returns a copy of ctx carrying claims.
func NewContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// FromContext returns the claims stored by NewContext.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)

	return claims, ok && claims != nil
}
