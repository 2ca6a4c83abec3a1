package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default token lifetime. Tokens bind a user id for seven days.
const DefaultExpiration = 7 * 24 * time.Hour

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrMissingAuthHeader    = errors.New("authorization header missing")
	ErrInvalidAuthHeader    = errors.New("invalid authorization header format")
	ErrUserIDClaimMissing   = errors.New("user_id not found in token")
	ErrUserIDClaimMalformed = errors.New("invalid user_id format")
)

// Claims holds the decoded token payload.
type Claims struct {
	UserID uuid.UUID
}

// JWT provides methods to generate and validate signed bearer tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT instance with the given options.
func New(opts ...Option) *JWT {
	j := &JWT{exp: DefaultExpiration}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token binding the given user id.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     now.Add(j.exp).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate checks the token signature and expiration.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrUserIDClaimMissing
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrUserIDClaimMalformed
	}

	return &Claims{UserID: userID}, nil
}

// GetUserID parses the token string and returns the bound user id.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
