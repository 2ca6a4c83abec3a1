package models

import "github.com/google/uuid"

// Activity event types published to Kafka.
const (
	ActivityPhotoCreated   = "photo_created"
	ActivityPhotoLiked     = "photo_liked"
	ActivityPhotoCommented = "photo_commented"
)

// ActivityEvent is the payload published for feed/notification consumers.
type ActivityEvent struct {
	EventID   string    `json:"event_id"`  // Unique event id
	Type      string    `json:"type"`      // One of the Activity* constants
	PhotoID   uuid.UUID `json:"photo_id"`  // Photo the event refers to
	UserID    uuid.UUID `json:"user_id"`   // Acting user
	Timestamp int64     `json:"timestamp"` // Unix seconds
}
