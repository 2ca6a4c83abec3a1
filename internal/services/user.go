package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

// UserService handles profile reads and updates.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies the supplied profile fields to the caller's own record
// and returns the updated user. A supplied password is re-hashed. An
// update with no fields skips the write entirely, so the stored record
// and its updated_at stay untouched.
func (svc *UserService) Update(ctx context.Context, caller *models.UserDB, upd models.UserUpdate) (*models.UserDB, error) {
	if upd.Name == nil && upd.Password == nil && upd.ProfileImage == nil && upd.Bio == nil {
		return caller, nil
	}

	var passwordHash *string
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		s := string(hashed)
		passwordHash = &s
	}

	if err := svc.writer.Update(ctx, caller.UserID, upd.Name, passwordHash, upd.ProfileImage, upd.Bio); err != nil {
		logger.Log.Errorw("failed to update user", "userID", caller.UserID, "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, caller.UserID)
	if err != nil {
		logger.Log.Errorw("failed to reload user", "userID", caller.UserID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
