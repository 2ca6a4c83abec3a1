package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// The password hash is never serialized to JSON.
type UserDB struct {
	UserID       uuid.UUID `json:"_id" db:"user_id"`                // Primary key
	Name         string    `json:"name" db:"name"`                  // Display name
	Email        string    `json:"email" db:"email"`                // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`            // Bcrypt hash, never exposed
	ProfileImage string    `json:"profileImage" db:"profile_image"` // Stored image reference, may be empty
	Bio          string    `json:"bio" db:"bio"`                    // Free-text bio
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`       // Last update timestamp
}

// UserUpdate carries the optional profile fields of an update request.
// Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Password     *string
	ProfileImage *string
	Bio          *string
}
