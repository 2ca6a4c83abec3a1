package models

import (
	"time"

	"github.com/google/uuid"
)

// PhotoDB represents a photo record with its likes and comments.
// The owner id is written once at creation and never updated; the owner
// name is a denormalized copy taken at creation time.
type PhotoDB struct {
	PhotoID   uuid.UUID   `json:"_id" db:"photo_id"`         // Primary key
	Image     string      `json:"image" db:"image"`          // Stored image reference
	Title     string      `json:"title" db:"title"`          // Photo title
	UserID    uuid.UUID   `json:"userId" db:"user_id"`       // Owning user, immutable
	UserName  string      `json:"userName" db:"user_name"`   // Denormalized owner name
	Likes     []uuid.UUID `json:"likes" db:"-"`              // Ids of users who liked, unique
	Comments  []CommentDB `json:"comments" db:"-"`           // Comments in append order
	CreatedAt time.Time   `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// CommentDB represents a single comment on a photo. Commenter name and
// image are denormalized copies taken at append time.
type CommentDB struct {
	CommentID uuid.UUID `json:"_id" db:"comment_id"`
	PhotoID   uuid.UUID `json:"-" db:"photo_id"`
	Comment   string    `json:"comment" db:"comment"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	UserName  string    `json:"userName" db:"user_name"`
	UserImage string    `json:"userImage" db:"user_image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PhotoUpdate carries the optional fields of a photo update request.
// Nil fields are left untouched.
type PhotoUpdate struct {
	Title *string
	Image *string
}
