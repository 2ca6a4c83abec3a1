package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// UserLoader resolves a user id to a live user record.
type UserLoader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the authenticated user, or nil if the
// request did not pass the auth middleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// AuthMiddleware validates the bearer token and resolves it to a live
// user record exactly once, attaching the record to the request context
// for downstream handlers.
func AuthMiddleware(tokener Tokener, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			// A failed lookup is a backend fault, not a bad credential.
			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to load token user", "userID", userID, "err", err)
				writeServerError(w)
				return
			}
			if user == nil {
				logger.Log.Infow("token user no longer exists", "userID", userID)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string][]string{
		"errors": {"Access denied."},
	})
}

func writeServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string][]string{
		"errors": {"Internal server error, please try again later."},
	})
}
