package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrNotPhotoOwner = errors.New("photo does not belong to user")
	ErrAlreadyLiked  = errors.New("photo already liked")
)

// PhotoReader defines read operations for photos.
type PhotoReader interface {
	GetByID(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error)
	ListAll(ctx context.Context) ([]models.PhotoDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PhotoDB, error)
	SearchByTitle(ctx context.Context, q string) ([]models.PhotoDB, error)
}

// PhotoWriter defines write operations for photos.
type PhotoWriter interface {
	Save(ctx context.Context, photo *models.PhotoDB) error
	Update(ctx context.Context, photoID uuid.UUID, title, image *string) error
	Delete(ctx context.Context, photoID uuid.UUID) error
	AddLike(ctx context.Context, photoID, userID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, comment *models.CommentDB) error
}

// FeedCache caches the global feed. A miss is (nil, nil).
type FeedCache interface {
	GetFeed(ctx context.Context) ([]models.PhotoDB, error)
	SetFeed(ctx context.Context, photos []models.PhotoDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PhotoService handles photo operations, feed caching and activity
// event publishing.
type PhotoService struct {
	reader      PhotoReader
	writer      PhotoWriter
	cache       FeedCache
	kafkaWriter KafkaWriter
}

// NewPhotoService creates a new PhotoService. cache and kafkaWriter may
// be nil; both are best-effort collaborators.
func NewPhotoService(reader PhotoReader, writer PhotoWriter, cache FeedCache, kafkaWriter KafkaWriter) *PhotoService {
	return &PhotoService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishActivity publishes an activity event. Failures are logged and
// never surfaced to the caller.
func (svc *PhotoService) publishActivity(ctx context.Context, eventType string, photoID, userID uuid.UUID) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		PhotoID:   photoID,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(photoID.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}

	logger.Log.Debugw("activity event published", "event_id", event.EventID, "type", eventType)
}

// invalidateFeed drops the cached feed after a mutation, best effort.
func (svc *PhotoService) invalidateFeed(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate feed cache", "error", err)
	}
}

// Create persists a new photo owned by caller, denormalizing the
// caller's display name.
func (svc *PhotoService) Create(ctx context.Context, caller *models.UserDB, title, image string) (*models.PhotoDB, error) {
	photo := &models.PhotoDB{
		PhotoID:  uuid.New(),
		Image:    image,
		Title:    title,
		UserID:   caller.UserID,
		UserName: caller.Name,
		Likes:    []uuid.UUID{},
		Comments: []models.CommentDB{},
	}

	if err := svc.writer.Save(ctx, photo); err != nil {
		logger.Log.Errorw("failed to save photo", "userID", caller.UserID, "err", err)
		return nil, err
	}

	svc.invalidateFeed(ctx)
	svc.publishActivity(ctx, models.ActivityPhotoCreated, photo.PhotoID, caller.UserID)

	return photo, nil
}

// Delete removes a photo owned by caller and returns the deleted id.
func (svc *PhotoService) Delete(ctx context.Context, caller *models.UserDB, photoID uuid.UUID) (uuid.UUID, error) {
	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photoID", photoID, "err", err)
		return uuid.Nil, err
	}
	if photo == nil {
		return uuid.Nil, ErrPhotoNotFound
	}
	if photo.UserID != caller.UserID {
		logger.Log.Infow("delete denied", "photoID", photoID, "callerID", caller.UserID, "ownerID", photo.UserID)
		return uuid.Nil, ErrNotPhotoOwner
	}

	if err := svc.writer.Delete(ctx, photoID); err != nil {
		logger.Log.Errorw("failed to delete photo", "photoID", photoID, "err", err)
		return uuid.Nil, err
	}

	svc.invalidateFeed(ctx)

	return photo.PhotoID, nil
}

// ListAll returns the global feed, newest first, through the cache.
func (svc *PhotoService) ListAll(ctx context.Context) ([]models.PhotoDB, error) {
	if svc.cache != nil {
		if photos, err := svc.cache.GetFeed(ctx); err == nil && photos != nil {
			return photos, nil
		}
	}

	photos, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list photos", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetFeed(ctx, photos); err != nil {
			logger.Log.Errorw("failed to cache feed", "error", err)
		}
	}

	return photos, nil
}

// ListByUser returns the photos owned by userID, newest first.
func (svc *PhotoService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PhotoDB, error) {
	photos, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user photos", "userID", userID, "err", err)
		return nil, err
	}
	return photos, nil
}

// GetByID returns a single photo with its likes and comments.
func (svc *PhotoService) GetByID(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error) {
	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photoID", photoID, "err", err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

// Update applies the supplied fields to a photo owned by caller and
// returns the updated photo.
func (svc *PhotoService) Update(ctx context.Context, caller *models.UserDB, photoID uuid.UUID, upd models.PhotoUpdate) (*models.PhotoDB, error) {
	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photoID", photoID, "err", err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	if photo.UserID != caller.UserID {
		logger.Log.Infow("update denied", "photoID", photoID, "callerID", caller.UserID, "ownerID", photo.UserID)
		return nil, ErrNotPhotoOwner
	}

	// No fields supplied: skip the write so updated_at stays untouched.
	if upd.Title == nil && upd.Image == nil {
		return photo, nil
	}

	if err := svc.writer.Update(ctx, photoID, upd.Title, upd.Image); err != nil {
		logger.Log.Errorw("failed to update photo", "photoID", photoID, "err", err)
		return nil, err
	}

	svc.invalidateFeed(ctx)

	return svc.reader.GetByID(ctx, photoID)
}

// Like appends caller to the photo's likers. Any authenticated user may
// like any photo, once.
func (svc *PhotoService) Like(ctx context.Context, caller *models.UserDB, photoID uuid.UUID) error {
	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photoID", photoID, "err", err)
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	inserted, err := svc.writer.AddLike(ctx, photoID, caller.UserID)
	if err != nil {
		logger.Log.Errorw("failed to add like", "photoID", photoID, "userID", caller.UserID, "err", err)
		return err
	}
	if !inserted {
		return ErrAlreadyLiked
	}

	svc.invalidateFeed(ctx)
	svc.publishActivity(ctx, models.ActivityPhotoLiked, photoID, caller.UserID)

	return nil
}

// Comment appends a comment by caller, denormalizing the caller's name
// and image, and returns the appended record.
func (svc *PhotoService) Comment(ctx context.Context, caller *models.UserDB, photoID uuid.UUID, text string) (*models.CommentDB, error) {
	photo, err := svc.reader.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photoID", photoID, "err", err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	comment := &models.CommentDB{
		CommentID: uuid.New(),
		PhotoID:   photoID,
		Comment:   text,
		UserID:    caller.UserID,
		UserName:  caller.Name,
		UserImage: caller.ProfileImage,
	}

	if err := svc.writer.AddComment(ctx, comment); err != nil {
		logger.Log.Errorw("failed to add comment", "photoID", photoID, "userID", caller.UserID, "err", err)
		return nil, err
	}

	svc.invalidateFeed(ctx)
	svc.publishActivity(ctx, models.ActivityPhotoCommented, photoID, caller.UserID)

	return comment, nil
}

// SearchByTitle returns photos whose title contains q, case-insensitive.
func (svc *PhotoService) SearchByTitle(ctx context.Context, q string) ([]models.PhotoDB, error) {
	photos, err := svc.reader.SearchByTitle(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to search photos", "q", q, "err", err)
		return nil, err
	}
	return photos, nil
}
