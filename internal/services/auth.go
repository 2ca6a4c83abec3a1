package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/repositories"
)

var (
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name, email, passwordHash string) (*models.UserDB, error)
	Update(ctx context.Context, userID uuid.UUID, name, passwordHash, profileImage, bio *string) error
}

// JWTGenerator defines an interface for issuing bearer tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and signs them in, returning the created
// id and a fresh token. Emails are unique at creation time.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (uuid.UUID, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return uuid.Nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return uuid.Nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, "", err
	}

	user, err := svc.writer.Save(ctx, uuid.New(), name, email, string(hashedPassword))
	// The pre-check above races concurrent registrations for the same
	// address; the unique constraint is the authority.
	if errors.Is(err, repositories.ErrEmailTaken) {
		logger.Log.Infow("email already registered", "email", email)
		return uuid.Nil, "", ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return uuid.Nil, "", err
	}

	return user.UserID, token, nil
}

// Login verifies credentials and returns the user plus a fresh token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}
