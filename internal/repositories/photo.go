package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

const photoColumns = "photo_id, image, title, user_id, user_name, created_at, updated_at"

// PhotoReadRepository handles photo read operations. Likes and comments
// live in their own tables and are assembled onto the returned models.
type PhotoReadRepository struct {
	db *sqlx.DB
}

func NewPhotoReadRepository(db *sqlx.DB) *PhotoReadRepository {
	return &PhotoReadRepository{db: db}
}

// GetByID returns the photo with its likes and comments, or nil if absent.
func (r *PhotoReadRepository) GetByID(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		WHERE photo_id = $1
	`

	var photo models.PhotoDB
	err := r.db.GetContext(ctx, &photo, query, photoID)

	logger.Log.Debugw("photo query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	photos := []models.PhotoDB{photo}
	if err := r.attachLikesAndComments(ctx, photos); err != nil {
		return nil, err
	}

	return &photos[0], nil
}

// ListAll returns all photos ordered by creation time descending.
func (r *PhotoReadRepository) ListAll(ctx context.Context) ([]models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

// ListByUser returns the photos owned by userID, newest first.
func (r *PhotoReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

// SearchByTitle returns photos whose title contains q as a
// case-insensitive substring. The query text is escaped so it is always
// matched literally.
func (r *PhotoReadRepository) SearchByTitle(ctx context.Context, q string) ([]models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		WHERE title ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, escapeLikePattern(q))
}

// escapeLikePattern neutralizes LIKE metacharacters in user input.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *PhotoReadRepository) list(ctx context.Context, query string, args ...any) ([]models.PhotoDB, error) {
	photos := []models.PhotoDB{}
	err := r.db.SelectContext(ctx, &photos, query, args...)

	logger.Log.Debugw("photo list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(photos),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	if err := r.attachLikesAndComments(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// attachLikesAndComments fills the Likes and Comments slices of the
// given photos with two batched queries. Slices are always non-nil so
// they serialize as [] rather than null.
func (r *PhotoReadRepository) attachLikesAndComments(ctx context.Context, photos []models.PhotoDB) error {
	for i := range photos {
		photos[i].Likes = []uuid.UUID{}
		photos[i].Comments = []models.CommentDB{}
	}
	if len(photos) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(photos))
	index := make(map[uuid.UUID]int, len(photos))
	for i, p := range photos {
		ids[i] = p.PhotoID
		index[p.PhotoID] = i
	}

	likesQuery, likesArgs, err := sqlx.In(`
		SELECT photo_id, user_id
		FROM photo_likes
		WHERE photo_id IN (?)
		ORDER BY created_at, user_id
	`, ids)
	if err != nil {
		return err
	}

	var likes []struct {
		PhotoID uuid.UUID `db:"photo_id"`
		UserID  uuid.UUID `db:"user_id"`
	}
	if err := r.db.SelectContext(ctx, &likes, r.db.Rebind(likesQuery), likesArgs...); err != nil {
		return err
	}
	for _, l := range likes {
		i := index[l.PhotoID]
		photos[i].Likes = append(photos[i].Likes, l.UserID)
	}

	commentsQuery, commentsArgs, err := sqlx.In(`
		SELECT comment_id, photo_id, user_id, user_name, user_image, comment, created_at
		FROM photo_comments
		WHERE photo_id IN (?)
		ORDER BY created_at, comment_id
	`, ids)
	if err != nil {
		return err
	}

	var comments []models.CommentDB
	if err := r.db.SelectContext(ctx, &comments, r.db.Rebind(commentsQuery), commentsArgs...); err != nil {
		return err
	}
	for _, c := range comments {
		i := index[c.PhotoID]
		photos[i].Comments = append(photos[i].Comments, c)
	}

	return nil
}

// PhotoWriteRepository handles photo write operations.
type PhotoWriteRepository struct {
	db *sqlx.DB
}

func NewPhotoWriteRepository(db *sqlx.DB) *PhotoWriteRepository {
	return &PhotoWriteRepository{db: db}
}

// Save inserts a new photo and fills in the DB-assigned timestamps.
func (r *PhotoWriteRepository) Save(ctx context.Context, photo *models.PhotoDB) error {
	const query = `
		INSERT INTO photos (photo_id, image, title, user_id, user_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{photo.PhotoID, photo.Image, photo.Title, photo.UserID, photo.UserName}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&photo.CreatedAt, &photo.UpdatedAt)

	logger.Log.Debugw("photo insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update applies the non-nil fields to the photo row and bumps
// updated_at. The owner columns are never touched. Callers skip the
// call entirely when no field is supplied.
func (r *PhotoWriteRepository) Update(ctx context.Context, photoID uuid.UUID, title, image *string) error {
	const query = `
		UPDATE photos
		SET title = COALESCE($2, title),
		    image = COALESCE($3, image),
		    updated_at = NOW()
		WHERE photo_id = $1
	`
	args := []any{photoID, title, image}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("photo update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the photo; likes and comments cascade.
func (r *PhotoWriteRepository) Delete(ctx context.Context, photoID uuid.UUID) error {
	const query = `DELETE FROM photos WHERE photo_id = $1`

	res, err := r.db.ExecContext(ctx, query, photoID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("photo delete",
		"query", query,
		"args", []any{photoID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// AddLike records that userID likes photoID. Returns false if the like
// was already present; the composite primary key enforces uniqueness.
func (r *PhotoWriteRepository) AddLike(ctx context.Context, photoID, userID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO photo_likes (photo_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (photo_id, user_id) DO NOTHING
	`
	args := []any{photoID, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("photo like insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// AddComment appends a comment and fills in its DB-assigned timestamp.
func (r *PhotoWriteRepository) AddComment(ctx context.Context, comment *models.CommentDB) error {
	const query = `
		INSERT INTO photo_comments (comment_id, photo_id, user_id, user_name, user_image, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	args := []any{comment.CommentID, comment.PhotoID, comment.UserID, comment.UserName, comment.UserImage, comment.Comment}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&comment.CreatedAt)

	logger.Log.Debugw("photo comment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{comment.CommentID, comment.PhotoID, comment.UserID},
		"error", err,
	)

	return err
}
