package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSqlxMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "pgx"), mock
}

var userColumns = []string{"user_id", "name", "email", "password_hash", "profile_image", "bio", "created_at", "updated_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newSqlxMock(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	query := `SELECT\s+user_id, name, email, password_hash, profile_image, bio, created_at, updated_at\s+FROM users\s+WHERE email = \$1`

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(userID, "Alice", "alice@example.com", "hash", "avatar.png", "hi", time.Now(), time.Now())
		mock.ExpectQuery(query).WithArgs("alice@example.com").WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("absent returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("alice@example.com").WillReturnError(errors.New("db down"))

		_, err := repo.GetByEmail(context.Background(), "alice@example.com")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newSqlxMock(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	query := `SELECT\s+user_id, name, email, password_hash, profile_image, bio, created_at, updated_at\s+FROM users\s+WHERE user_id = \$1`

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(userID, "Bob", "bob@example.com", "hash", "", "", time.Now(), time.Now())
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("absent returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newSqlxMock(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()
	query := `INSERT INTO users \(user_id, name, email, password_hash, created_at, updated_at\)`

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(userID, "Alice", "alice@example.com", "hash", "", "", time.Now(), time.Now())
		mock.ExpectQuery(query).
			WithArgs(userID, "Alice", "alice@example.com", "hash").
			WillReturnRows(rows)

		user, err := repo.Save(context.Background(), userID, "Alice", "alice@example.com", "hash")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, "Alice", "alice@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.Save(context.Background(), userID, "Alice", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("other constraint violations pass through", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, "Alice", "alice@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23502"})

		_, err := repo.Save(context.Background(), userID, "Alice", "alice@example.com", "hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Update(t *testing.T) {
	db, mock := newSqlxMock(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()
	query := `UPDATE users\s+SET name = COALESCE\(\$2, name\)`

	t.Run("partial update", func(t *testing.T) {
		name := "New Name"
		mock.ExpectExec(query).
			WithArgs(userID, &name, nil, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), userID, &name, nil, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("db error", func(t *testing.T) {
		name := "New Name"

		mock.ExpectExec(query).
			WithArgs(userID, &name, nil, nil, nil).
			WillReturnError(errors.New("db down"))

		err := repo.Update(context.Background(), userID, &name, nil, nil, nil)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
