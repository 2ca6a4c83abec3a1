package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

// FeedLister defines the interface that the service must implement.
type FeedLister interface {
	ListAll(ctx context.Context) ([]models.PhotoDB, error)
}

// UserPhotosLister defines the interface that the service must implement.
type UserPhotosLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PhotoDB, error)
}

// NewListPhotosHandler returns an HTTP handler for the global feed,
// newest first.
// @Summary List all photos
// @Description Returns every photo ordered by creation time descending
// @Tags photos
// @Produce json
// @Success 200 {array} models.PhotoDB "Photos"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos [get]
func NewListPhotosHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photos, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("list photos failed", "err", err)
			writeErrors(w, http.StatusInternalServerError, "Failed to fetch photos.")
			return
		}

		writeJSON(w, http.StatusOK, photos)
	}
}

// NewListUserPhotosHandler returns an HTTP handler for a user's photos,
// newest first.
// @Summary List a user's photos
// @Description Returns the photos owned by the given user
// @Tags photos
// @Produce json
// @Param id path string true "User id"
// @Success 200 {array} models.PhotoDB "Photos"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/user/{id} [get]
func NewListUserPhotosHandler(svc UserPhotosLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		photos, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("list user photos failed", "userID", userID, "err", err)
			writeErrors(w, http.StatusInternalServerError, "Failed to fetch photos.")
			return
		}

		writeJSON(w, http.StatusOK, photos)
	}
}
