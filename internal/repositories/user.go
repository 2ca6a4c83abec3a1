package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

// ErrEmailTaken reports a unique-constraint violation on the email
// column. Save returns it when an insert races a concurrent registration
// for the same address.
var ErrEmailTaken = errors.New("email already taken")

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, profile_image, bio, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, profile_image, bio, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns it with DB-assigned timestamps.
func (r *UserWriteRepository) Save(ctx context.Context, userID uuid.UUID, name, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING user_id, name, email, password_hash, profile_image, bio, created_at, updated_at
	`
	args := []any{userID, name, email, passwordHash}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Debugw("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name, email},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies the non-nil fields to the user row and bumps
// updated_at. Absent fields keep their current values. Callers skip
// the call entirely when no field is supplied.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, name, passwordHash, profileImage, bio *string) error {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name),
		    password_hash = COALESCE($3, password_hash),
		    profile_image = COALESCE($4, profile_image),
		    bio = COALESCE($5, bio),
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, name, passwordHash, profileImage, bio}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
