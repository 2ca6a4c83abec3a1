package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewGetUserHandler returns an HTTP handler for fetching a user by id.
// The password hash is never part of the serialized user.
// @Summary Get user by id
// @Description Returns a user's public record
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserDB "User"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeErrors(w, http.StatusNotFound, "User not found.")
			default:
				logger.Log.Errorw("get user failed", "userID", userID, "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
